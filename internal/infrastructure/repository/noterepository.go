package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"careline/internal/domain/note"
	"careline/internal/infrastructure/persistence/mappers"
	"careline/internal/infrastructure/persistence/models"
	"careline/internal/shared/db"
	"careline/internal/shared/errors"
)

type NoteRepository struct {
	db     *gorm.DB
	mapper mappers.NoteMapper
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{
		db:     db,
		mapper: mappers.NewNoteMapper(),
	}
}

func (r *NoteRepository) Save(ctx context.Context, n *note.Note) error {
	model := r.mapper.ToModel(n)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}

	return n.SetID(model.ID)
}

func (r *NoteRepository) Update(ctx context.Context, n *note.Note) error {
	model := r.mapper.ToModel(n)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.NoteModel{}).
		Where("id = ?", model.ID).
		Select("content", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update note: %w", result.Error)
	}

	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, noteID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.NoteModel{}, noteID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete note: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("Note not found.")
	}

	return nil
}

func (r *NoteRepository) GetByID(ctx context.Context, noteID uint) (*note.Note, error) {
	var model models.NoteModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, noteID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Note not found.")
		}
		return nil, fmt.Errorf("failed to find note: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *NoteRepository) ListByCreator(ctx context.Context, creatorID uint, filter note.Filter) ([]*note.Note, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.NoteModel{}).Where("creator_id = ?", creatorID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notes: %w", err)
	}

	query = query.Order("created_at DESC")
	if filter.PerPage > 0 {
		offset := (filter.Page - 1) * filter.PerPage
		query = query.Limit(filter.PerPage).Offset(offset)
	}

	var noteModels []models.NoteModel
	if err := query.Find(&noteModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list notes: %w", err)
	}

	notes := make([]*note.Note, len(noteModels))
	for i, model := range noteModels {
		n, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		notes[i] = n
	}

	return notes, total, nil
}
