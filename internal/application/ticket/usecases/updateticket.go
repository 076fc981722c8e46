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

// UpdateTicketCommand applies a partial update. Nil fields are left
// unchanged; there is no way to null-out an existing value.
type UpdateTicketCommand struct {
	Caller      identity.Caller
	TicketID    uint
	Description *string
	Attachment  *AttachmentUpload
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	fileStore  FileStore
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	fileStore FileStore,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		fileStore:  fileStore,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "caller_id", cmd.Caller.ID)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if cmd.Caller.IsMedUser || !t.IsOwnedBy(cmd.Caller.ID) {
		uc.logger.Warnw("caller does not own ticket", "ticket_id", cmd.TicketID, "caller_id", cmd.Caller.ID)
		return nil, errors.NewForbiddenError("User does not own this ticket.")
	}

	if cmd.Description != nil {
		if err := t.UpdateDescription(sanitize.Text(*cmd.Description)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	var newRef, previous *string
	if cmd.Attachment != nil {
		ref, err := storeAttachment(ctx, uc.fileStore, cmd.Attachment)
		if err != nil {
			return nil, err
		}
		newRef = ref
		previous = t.ReplaceAttachment(*ref)
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		// The row still references the old file; only the new bytes are orphaned.
		detachQuietly(ctx, uc.fileStore, newRef, uc.logger)
		return nil, err
	}

	// Replaced bytes go only after the new reference is durable.
	detachQuietly(ctx, uc.fileStore, previous, uc.logger)

	result := dto.FromTicket(t)
	return &result, nil
}
