package note

import "context"

type NoteRepository interface {
	Save(ctx context.Context, note *Note) error
	Update(ctx context.Context, note *Note) error
	Delete(ctx context.Context, noteID uint) error
	GetByID(ctx context.Context, noteID uint) (*Note, error)
	ListByCreator(ctx context.Context, creatorID uint, filter Filter) ([]*Note, int64, error)
}

// Filter carries pagination for list queries.
type Filter struct {
	Page    int
	PerPage int
}
