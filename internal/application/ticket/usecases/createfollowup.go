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

// maxSequenceRetries bounds how often a create retries after losing a
// sequence-number or claim race before surfacing a conflict to the caller.
const maxSequenceRetries = 3

type CreateFollowUpCommand struct {
	Caller      identity.Caller
	TicketID    uint
	Description string
	Attachment  *AttachmentUpload
}

type CreateFollowUpUseCase struct {
	ticketRepo   ticket.TicketRepository
	followUpRepo ticket.FollowUpRepository
	txMgr        Transactor
	fileStore    FileStore
	logger       logger.Interface
}

func NewCreateFollowUpUseCase(
	ticketRepo ticket.TicketRepository,
	followUpRepo ticket.FollowUpRepository,
	txMgr Transactor,
	fileStore FileStore,
	logger logger.Interface,
) *CreateFollowUpUseCase {
	return &CreateFollowUpUseCase{
		ticketRepo:   ticketRepo,
		followUpRepo: followUpRepo,
		txMgr:        txMgr,
		fileStore:    fileStore,
		logger:       logger,
	}
}

// Execute appends a follow-up to a ticket's thread. On an open ticket only a
// med user may act; that first follow-up claims the ticket (closes it and
// records the claimer) in the same transaction as the insert. On a closed
// ticket only the creator and the assigned med user may continue the thread;
// the ticket is never reopened.
//
// Each attempt re-reads the ticket and re-evaluates authorization, so a
// caller who loses the claim race to another med user is rejected rather
// than silently stacked onto the other's thread.
func (uc *CreateFollowUpUseCase) Execute(ctx context.Context, cmd CreateFollowUpCommand) (*dto.FollowUpDTO, error) {
	uc.logger.Infow("executing create follow-up use case",
		"ticket_id", cmd.TicketID, "caller_id", cmd.Caller.ID, "is_med_user", cmd.Caller.IsMedUser)

	description := sanitize.Text(cmd.Description)

	attachmentRef, err := storeAttachment(ctx, uc.fileStore, cmd.Attachment)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < maxSequenceRetries; attempt++ {
		followUp, err := uc.tryCreate(ctx, cmd, description, attachmentRef)
		if err == nil {
			result := dto.FromFollowUp(followUp)
			return &result, nil
		}

		if errors.IsConflictError(err) || errors.IsDuplicateError(err) {
			uc.logger.Warnw("follow-up creation lost a race, retrying",
				"ticket_id", cmd.TicketID, "attempt", attempt+1, "error", err)
			lastErr = err
			continue
		}

		detachQuietly(ctx, uc.fileStore, attachmentRef, uc.logger)
		return nil, err
	}

	detachQuietly(ctx, uc.fileStore, attachmentRef, uc.logger)
	uc.logger.Errorw("follow-up creation exhausted retries", "ticket_id", cmd.TicketID, "error", lastErr)
	return nil, errors.NewConflictError("Concurrent update on ticket, please retry")
}

func (uc *CreateFollowUpUseCase) tryCreate(
	ctx context.Context,
	cmd CreateFollowUpCommand,
	description string,
	attachmentRef *string,
) (*ticket.FollowUp, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	claiming := false
	if t.IsOpen() {
		// Only med users may act on an open ticket; any med user may claim.
		if !cmd.Caller.CanWorkQueue() {
			return nil, errors.NewForbiddenError("Access Denied")
		}
		claiming = true
	} else if !t.IsOwnedBy(cmd.Caller.ID) && !t.IsAssignedTo(cmd.Caller.ID) {
		return nil, errors.NewForbiddenError("Not allowed to follow-up")
	}

	followUp, err := ticket.NewFollowUp(cmd.TicketID, cmd.Caller.ID, cmd.Caller.IsMedUser, description, attachmentRef)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		seq, err := uc.followUpRepo.NextSequence(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}
		if err := followUp.AssignSequenceNumber(seq); err != nil {
			return err
		}

		if err := uc.followUpRepo.Save(txCtx, followUp); err != nil {
			return err
		}

		if claiming {
			claimed, err := uc.ticketRepo.ClaimIfOpen(txCtx, cmd.TicketID, cmd.Caller.ID)
			if err != nil {
				return err
			}
			if !claimed {
				return errors.NewConflictError("ticket was claimed concurrently")
			}
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if claiming {
		uc.logger.Infow("ticket claimed", "ticket_id", cmd.TicketID, "med_user_id", cmd.Caller.ID)
	}

	return followUp, nil
}
