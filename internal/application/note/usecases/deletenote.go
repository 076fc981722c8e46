package usecases

import (
	"context"

	"careline/internal/domain/identity"
	"careline/internal/domain/note"
	"careline/internal/shared/errors"
	"careline/internal/shared/logger"
)

type DeleteNoteCommand struct {
	Caller identity.Caller
	NoteID uint
}

type DeleteNoteUseCase struct {
	noteRepo note.NoteRepository
	logger   logger.Interface
}

func NewDeleteNoteUseCase(noteRepo note.NoteRepository, logger logger.Interface) *DeleteNoteUseCase {
	return &DeleteNoteUseCase{
		noteRepo: noteRepo,
		logger:   logger,
	}
}

func (uc *DeleteNoteUseCase) Execute(ctx context.Context, cmd DeleteNoteCommand) error {
	uc.logger.Infow("executing delete note use case", "note_id", cmd.NoteID, "caller_id", cmd.Caller.ID)

	if !cmd.Caller.CanKeepNotes() {
		return errors.NewForbiddenError("Access Denied")
	}

	n, err := uc.noteRepo.GetByID(ctx, cmd.NoteID)
	if err != nil {
		return err
	}

	if !n.IsOwnedBy(cmd.Caller.ID) {
		uc.logger.Warnw("caller does not own note", "note_id", cmd.NoteID, "caller_id", cmd.Caller.ID)
		return errors.NewForbiddenError("User does not own this note.")
	}

	if err := uc.noteRepo.Delete(ctx, cmd.NoteID); err != nil {
		uc.logger.Errorw("failed to delete note", "note_id", cmd.NoteID, "error", err)
		return err
	}

	uc.logger.Infow("note deleted", "note_id", cmd.NoteID)
	return nil
}
