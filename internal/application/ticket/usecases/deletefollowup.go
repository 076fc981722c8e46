package usecases

import (
	"context"

	"careline/internal/domain/identity"
	"careline/internal/domain/ticket"
	"careline/internal/shared/errors"
	"careline/internal/shared/logger"
)

type DeleteFollowUpCommand struct {
	Caller     identity.Caller
	FollowUpID uint
}

type DeleteFollowUpUseCase struct {
	followUpRepo ticket.FollowUpRepository
	fileStore    FileStore
	logger       logger.Interface
}

func NewDeleteFollowUpUseCase(
	followUpRepo ticket.FollowUpRepository,
	fileStore FileStore,
	logger logger.Interface,
) *DeleteFollowUpUseCase {
	return &DeleteFollowUpUseCase{
		followUpRepo: followUpRepo,
		fileStore:    fileStore,
		logger:       logger,
	}
}

// Execute removes one follow-up and its attachment. Remaining sequence
// numbers are not renumbered and the ticket state is untouched.
func (uc *DeleteFollowUpUseCase) Execute(ctx context.Context, cmd DeleteFollowUpCommand) error {
	uc.logger.Infow("executing delete follow-up use case", "followup_id", cmd.FollowUpID, "caller_id", cmd.Caller.ID)

	f, err := uc.followUpRepo.GetByID(ctx, cmd.FollowUpID)
	if err != nil {
		return err
	}

	if !f.IsOwnedBy(cmd.Caller.ID) {
		uc.logger.Warnw("caller does not own follow-up", "followup_id", cmd.FollowUpID, "caller_id", cmd.Caller.ID)
		return errors.NewForbiddenError("Access Denied")
	}

	if err := uc.followUpRepo.Delete(ctx, cmd.FollowUpID); err != nil {
		uc.logger.Errorw("failed to delete follow-up", "followup_id", cmd.FollowUpID, "error", err)
		return err
	}

	detachQuietly(ctx, uc.fileStore, f.Attachment(), uc.logger)

	return nil
}
