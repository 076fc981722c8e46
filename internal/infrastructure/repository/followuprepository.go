package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"careline/internal/domain/ticket"
	"careline/internal/infrastructure/persistence/mappers"
	"careline/internal/infrastructure/persistence/models"
	"careline/internal/shared/db"
	"careline/internal/shared/errors"
)

type FollowUpRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewFollowUpRepository(db *gorm.DB) *FollowUpRepository {
	return &FollowUpRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *FollowUpRepository) Save(ctx context.Context, f *ticket.FollowUp) error {
	model := r.mapper.FollowUpToModel(f)
	tx := db.GetTxFromContext(ctx, r.db)

	// A sequence collision surfaces here as a duplicate-key error on
	// idx_root_sequence; the caller retries with a fresh sequence.
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save follow-up: %w", err)
	}

	return f.SetID(model.ID)
}

func (r *FollowUpRepository) Update(ctx context.Context, f *ticket.FollowUp) error {
	model := r.mapper.FollowUpToModel(f)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketFollowUpModel{}).
		Where("id = ?", model.ID).
		Select("description", "attachment", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update follow-up: %w", result.Error)
	}

	return nil
}

func (r *FollowUpRepository) Delete(ctx context.Context, followUpID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TicketFollowUpModel{}, followUpID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete follow-up: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("Follow-up not found.")
	}

	return nil
}

func (r *FollowUpRepository) DeleteByRoot(ctx context.Context, rootID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("root_id = ?", rootID).
		Delete(&models.TicketFollowUpModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete follow-ups for ticket: %w", err)
	}

	return nil
}

func (r *FollowUpRepository) GetByID(ctx context.Context, followUpID uint) (*ticket.FollowUp, error) {
	var model models.TicketFollowUpModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, followUpID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Follow-up not found.")
		}
		return nil, fmt.Errorf("failed to find follow-up: %w", err)
	}

	return r.mapper.FollowUpToDomain(&model)
}

func (r *FollowUpRepository) ListByRoot(ctx context.Context, rootID uint, filter ticket.Filter) ([]*ticket.FollowUp, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketFollowUpModel{}).Where("root_id = ?", rootID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count follow-ups: %w", err)
	}

	query = query.Order("sequence_number DESC")
	if filter.PerPage > 0 {
		offset := (filter.Page - 1) * filter.PerPage
		query = query.Limit(filter.PerPage).Offset(offset)
	}

	var followUpModels []models.TicketFollowUpModel
	if err := query.Find(&followUpModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list follow-ups: %w", err)
	}

	followUps := make([]*ticket.FollowUp, len(followUpModels))
	for i, model := range followUpModels {
		f, err := r.mapper.FollowUpToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		followUps[i] = f
	}

	return followUps, total, nil
}

func (r *FollowUpRepository) AttachmentRefsByRoot(ctx context.Context, rootID uint) ([]string, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var refs []string
	if err := tx.
		Model(&models.TicketFollowUpModel{}).
		Where("root_id = ? AND attachment IS NOT NULL", rootID).
		Pluck("attachment", &refs).Error; err != nil {
		return nil, fmt.Errorf("failed to collect attachment refs: %w", err)
	}

	return refs, nil
}

func (r *FollowUpRepository) NextSequence(ctx context.Context, rootID uint) (int, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var maxSeq int
	if err := tx.
		Model(&models.TicketFollowUpModel{}).
		Where("root_id = ?", rootID).
		Select("COALESCE(MAX(sequence_number), 0)").
		Scan(&maxSeq).Error; err != nil {
		return 0, fmt.Errorf("failed to read max sequence number: %w", err)
	}

	return maxSeq + 1, nil
}
