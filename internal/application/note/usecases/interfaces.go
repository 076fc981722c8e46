package usecases

import (
	"context"

	"careline/internal/application/note/dto"
)

type CreateNoteExecutor interface {
	Execute(ctx context.Context, cmd CreateNoteCommand) (*dto.NoteDTO, error)
}

type UpdateNoteExecutor interface {
	Execute(ctx context.Context, cmd UpdateNoteCommand) (*dto.NoteDTO, error)
}

type DeleteNoteExecutor interface {
	Execute(ctx context.Context, cmd DeleteNoteCommand) error
}

type GetNoteExecutor interface {
	Execute(ctx context.Context, query GetNoteQuery) (*dto.NoteDTO, error)
}

type ListNotesExecutor interface {
	Execute(ctx context.Context, query ListNotesQuery) (*ListNotesResult, error)
}
