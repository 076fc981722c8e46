package usecases

import (
	"context"

	"careline/internal/domain/note"
	"careline/internal/shared/logger"
)

type mockNoteRepository struct {
	SaveFunc          func(ctx context.Context, n *note.Note) error
	UpdateFunc        func(ctx context.Context, n *note.Note) error
	DeleteFunc        func(ctx context.Context, noteID uint) error
	GetByIDFunc       func(ctx context.Context, noteID uint) (*note.Note, error)
	ListByCreatorFunc func(ctx context.Context, creatorID uint, filter note.Filter) ([]*note.Note, int64, error)
}

func (m *mockNoteRepository) Save(ctx context.Context, n *note.Note) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, n)
	}
	return nil
}

func (m *mockNoteRepository) Update(ctx context.Context, n *note.Note) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, n)
	}
	return nil
}

func (m *mockNoteRepository) Delete(ctx context.Context, noteID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, noteID)
	}
	return nil
}

func (m *mockNoteRepository) GetByID(ctx context.Context, noteID uint) (*note.Note, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, noteID)
	}
	return nil, nil
}

func (m *mockNoteRepository) ListByCreator(ctx context.Context, creatorID uint, filter note.Filter) ([]*note.Note, int64, error) {
	if m.ListByCreatorFunc != nil {
		return m.ListByCreatorFunc(ctx, creatorID, filter)
	}
	return nil, 0, nil
}

type mockLogger struct{}

func (mockLogger) Debug(msg string, args ...any)                   {}
func (mockLogger) Info(msg string, args ...any)                    {}
func (mockLogger) Warn(msg string, args ...any)                    {}
func (mockLogger) Error(msg string, args ...any)                   {}
func (m mockLogger) With(args ...any) logger.Interface             { return m }
func (m mockLogger) Named(name string) logger.Interface            { return m }
func (mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
