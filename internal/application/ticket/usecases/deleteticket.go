package usecases

import (
	"context"

	"careline/internal/domain/identity"
	"careline/internal/domain/ticket"
	"careline/internal/shared/errors"
	"careline/internal/shared/logger"
)

type DeleteTicketCommand struct {
	Caller   identity.Caller
	TicketID uint
}

type DeleteTicketUseCase struct {
	ticketRepo   ticket.TicketRepository
	followUpRepo ticket.FollowUpRepository
	txMgr        Transactor
	fileStore    FileStore
	logger       logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	followUpRepo ticket.FollowUpRepository,
	txMgr Transactor,
	fileStore FileStore,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:   ticketRepo,
		followUpRepo: followUpRepo,
		txMgr:        txMgr,
		fileStore:    fileStore,
		logger:       logger,
	}
}

// Execute removes the ticket, its whole thread and every attachment either
// owned. Record deletion is one transaction; file deletion happens after
// commit and is best-effort, so a failing file store never resurrects rows.
func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID, "caller_id", cmd.Caller.ID)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	if cmd.Caller.IsMedUser || !t.IsOwnedBy(cmd.Caller.ID) {
		uc.logger.Warnw("caller does not own ticket", "ticket_id", cmd.TicketID, "caller_id", cmd.Caller.ID)
		return errors.NewForbiddenError("User does not own this ticket.")
	}

	// Collect attachment references before the rows disappear.
	refs, err := uc.followUpRepo.AttachmentRefsByRoot(ctx, cmd.TicketID)
	if err != nil {
		return err
	}
	if t.Attachment() != nil {
		refs = append(refs, *t.Attachment())
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.followUpRepo.DeleteByRoot(txCtx, cmd.TicketID); err != nil {
			return err
		}
		return uc.ticketRepo.Delete(txCtx, cmd.TicketID)
	})
	if txErr != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", txErr)
		return txErr
	}

	for i := range refs {
		detachQuietly(ctx, uc.fileStore, &refs[i], uc.logger)
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID, "followup_attachments", len(refs))
	return nil
}
