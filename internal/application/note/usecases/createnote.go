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

type CreateNoteCommand struct {
	Caller  identity.Caller
	Content string
}

type CreateNoteUseCase struct {
	noteRepo note.NoteRepository
	logger   logger.Interface
}

func NewCreateNoteUseCase(noteRepo note.NoteRepository, logger logger.Interface) *CreateNoteUseCase {
	return &CreateNoteUseCase{
		noteRepo: noteRepo,
		logger:   logger,
	}
}

func (uc *CreateNoteUseCase) Execute(ctx context.Context, cmd CreateNoteCommand) (*dto.NoteDTO, error) {
	uc.logger.Infow("executing create note use case", "caller_id", cmd.Caller.ID)

	if !cmd.Caller.CanKeepNotes() {
		uc.logger.Warnw("med user attempted to create note", "caller_id", cmd.Caller.ID)
		return nil, errors.NewForbiddenError("Access Denied")
	}

	newNote, err := note.NewNote(cmd.Caller.ID, sanitize.Text(cmd.Content))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.noteRepo.Save(ctx, newNote); err != nil {
		uc.logger.Errorw("failed to save note", "error", err)
		return nil, err
	}

	uc.logger.Infow("note created", "note_id", newNote.ID(), "creator_id", cmd.Caller.ID)

	result := dto.FromNote(newNote)
	return &result, nil
}
