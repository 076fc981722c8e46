package usecases

import (
	"context"

	"careline/internal/application/note/dto"
	"careline/internal/domain/identity"
	"careline/internal/domain/note"
	"careline/internal/shared/errors"
	"careline/internal/shared/logger"
)

type GetNoteQuery struct {
	Caller identity.Caller
	NoteID uint
}

type GetNoteUseCase struct {
	noteRepo note.NoteRepository
	logger   logger.Interface
}

func NewGetNoteUseCase(noteRepo note.NoteRepository, logger logger.Interface) *GetNoteUseCase {
	return &GetNoteUseCase{
		noteRepo: noteRepo,
		logger:   logger,
	}
}

// Execute returns a single note. Notes are private, so only the creator may
// read one.
func (uc *GetNoteUseCase) Execute(ctx context.Context, query GetNoteQuery) (*dto.NoteDTO, error) {
	if !query.Caller.CanKeepNotes() {
		return nil, errors.NewForbiddenError("Access Denied")
	}

	n, err := uc.noteRepo.GetByID(ctx, query.NoteID)
	if err != nil {
		return nil, err
	}

	if !n.IsOwnedBy(query.Caller.ID) {
		return nil, errors.NewForbiddenError("User does not own this note.")
	}

	result := dto.FromNote(n)
	return &result, nil
}
