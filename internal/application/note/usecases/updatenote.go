package usecases

import (
	"context"

	"careline/internal/application/note/dto"
	"careline/internal/domain/identity"
	"careline/internal/domain/note"
	"careline/internal/shared/errors"
	"careline/internal/shared/logger"
	"careline/internal/shared/sanitize"
)

// UpdateNoteCommand applies a partial update. A nil content field is left
// unchanged.
type UpdateNoteCommand struct {
	Caller  identity.Caller
	NoteID  uint
	Content *string
}

type UpdateNoteUseCase struct {
	noteRepo note.NoteRepository
	logger   logger.Interface
}

func NewUpdateNoteUseCase(noteRepo note.NoteRepository, logger logger.Interface) *UpdateNoteUseCase {
	return &UpdateNoteUseCase{
		noteRepo: noteRepo,
		logger:   logger,
	}
}

func (uc *UpdateNoteUseCase) Execute(ctx context.Context, cmd UpdateNoteCommand) (*dto.NoteDTO, error) {
	uc.logger.Infow("executing update note use case", "note_id", cmd.NoteID, "caller_id", cmd.Caller.ID)

	if !cmd.Caller.CanKeepNotes() {
		return nil, errors.NewForbiddenError("Access Denied")
	}

	n, err := uc.noteRepo.GetByID(ctx, cmd.NoteID)
	if err != nil {
		return nil, err
	}

	if !n.IsOwnedBy(cmd.Caller.ID) {
		uc.logger.Warnw("caller does not own note", "note_id", cmd.NoteID, "caller_id", cmd.Caller.ID)
		return nil, errors.NewForbiddenError("User does not own this note.")
	}

	if cmd.Content != nil {
		if err := n.UpdateContent(sanitize.Text(*cmd.Content)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.noteRepo.Update(ctx, n); err != nil {
		uc.logger.Errorw("failed to update note", "note_id", cmd.NoteID, "error", err)
		return nil, err
	}

	result := dto.FromNote(n)
	return &result, nil
}
