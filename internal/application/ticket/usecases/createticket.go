package usecases

import (
	"context"

	"careline/internal/application/ticket/dto"
	"careline/internal/domain/identity"
	"careline/internal/domain/ticket"
	"careline/internal/shared/errors"
	"careline/internal/shared/logger"
	"careline/internal/shared/sanitize"
)

type CreateTicketCommand struct {
	Caller      identity.Caller
	Description string
	Attachment  *AttachmentUpload
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	fileStore  FileStore
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	fileStore FileStore,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		fileStore:  fileStore,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "caller_id", cmd.Caller.ID)

	if !cmd.Caller.CanCreateTickets() {
		uc.logger.Warnw("med user attempted to create ticket", "caller_id", cmd.Caller.ID)
		return nil, errors.NewForbiddenError("Access Denied")
	}

	description := sanitize.Text(cmd.Description)

	attachmentRef, err := storeAttachment(ctx, uc.fileStore, cmd.Attachment)
	if err != nil {
		return nil, err
	}

	newTicket, err := ticket.NewTicket(cmd.Caller.ID, description, attachmentRef)
	if err != nil {
		detachQuietly(ctx, uc.fileStore, attachmentRef, uc.logger)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		detachQuietly(ctx, uc.fileStore, attachmentRef, uc.logger)
		return nil, err
	}

	uc.logger.Infow("ticket created", "ticket_id", newTicket.ID(), "creator_id", cmd.Caller.ID)

	result := dto.FromTicket(newTicket)
	return &result, nil
}
