package usecases

import (
	"context"

	"careline/internal/application/note/dto"
	"careline/internal/domain/identity"
	"careline/internal/domain/note"
	"careline/internal/shared/errors"
	"careline/internal/shared/logger"
	"careline/internal/shared/utils"
)

type ListNotesQuery struct {
	Caller  identity.Caller
	Page    int
	PerPage int
}

type ListNotesResult struct {
	Notes   []dto.NoteDTO
	Total   int64
	Page    int
	PerPage int
}

type ListNotesUseCase struct {
	noteRepo note.NoteRepository
	logger   logger.Interface
}

func NewListNotesUseCase(noteRepo note.NoteRepository, logger logger.Interface) *ListNotesUseCase {
	return &ListNotesUseCase{
		noteRepo: noteRepo,
		logger:   logger,
	}
}

// Execute lists the caller's own notes, newest first.
func (uc *ListNotesUseCase) Execute(ctx context.Context, query ListNotesQuery) (*ListNotesResult, error) {
	uc.logger.Infow("executing list notes use case", "caller_id", query.Caller.ID)

	if !query.Caller.CanKeepNotes() {
		return nil, errors.NewForbiddenError("Access Denied")
	}

	pagination := utils.ValidatePagination(query.Page, query.PerPage)
	filter := note.Filter{Page: pagination.Page, PerPage: pagination.PerPage}

	notes, total, err := uc.noteRepo.ListByCreator(ctx, query.Caller.ID, filter)
	if err != nil {
		uc.logger.Errorw("failed to list notes", "caller_id", query.Caller.ID, "error", err)
		return nil, err
	}

	return &ListNotesResult{
		Notes:   dto.FromNotes(notes),
		Total:   total,
		Page:    pagination.Page,
		PerPage: pagination.PerPage,
	}, nil
}
