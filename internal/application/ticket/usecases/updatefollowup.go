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

// UpdateFollowUpCommand applies a partial update. Nil fields are left
// unchanged.
type UpdateFollowUpCommand struct {
	Caller      identity.Caller
	FollowUpID  uint
	Description *string
	Attachment  *AttachmentUpload
}

type UpdateFollowUpUseCase struct {
	followUpRepo ticket.FollowUpRepository
	fileStore    FileStore
	logger       logger.Interface
}

func NewUpdateFollowUpUseCase(
	followUpRepo ticket.FollowUpRepository,
	fileStore FileStore,
	logger logger.Interface,
) *UpdateFollowUpUseCase {
	return &UpdateFollowUpUseCase{
		followUpRepo: followUpRepo,
		fileStore:    fileStore,
		logger:       logger,
	}
}

func (uc *UpdateFollowUpUseCase) Execute(ctx context.Context, cmd UpdateFollowUpCommand) (*dto.FollowUpDTO, error) {
	uc.logger.Infow("executing update follow-up use case", "followup_id", cmd.FollowUpID, "caller_id", cmd.Caller.ID)

	f, err := uc.followUpRepo.GetByID(ctx, cmd.FollowUpID)
	if err != nil {
		return nil, err
	}

	if !f.IsOwnedBy(cmd.Caller.ID) {
		uc.logger.Warnw("caller does not own follow-up", "followup_id", cmd.FollowUpID, "caller_id", cmd.Caller.ID)
		return nil, errors.NewForbiddenError("User does not own this ticket.")
	}

	if cmd.Description != nil {
		if err := f.UpdateDescription(sanitize.Text(*cmd.Description)); err != nil {
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
		previous = f.ReplaceAttachment(*ref)
	}

	if err := uc.followUpRepo.Update(ctx, f); err != nil {
		uc.logger.Errorw("failed to update follow-up", "followup_id", cmd.FollowUpID, "error", err)
		detachQuietly(ctx, uc.fileStore, newRef, uc.logger)
		return nil, err
	}

	// Replaced bytes go only after the new reference is durable.
	detachQuietly(ctx, uc.fileStore, previous, uc.logger)

	result := dto.FromFollowUp(f)
	return &result, nil
}
