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

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// Only content columns. Claim state goes through ClaimIfOpen exclusively,
	// so a stale in-memory snapshot can never reopen or reassign the ticket.
	// Select lists the columns so a nil attachment is written too.
	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("description", "attachment", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

// ClaimIfOpen closes the ticket and records the claiming med user in one
// guarded UPDATE. RowsAffected tells whether this caller won the race.
func (r *TicketRepository) ClaimIfOpen(ctx context.Context, ticketID, medUserID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ? AND is_open = ?", ticketID, true).
		Updates(map[string]interface{}{
			"is_open":          false,
			"opened_by_med_id": medUserID,
		})

	if result.Error != nil {
		return false, fmt.Errorf("failed to claim ticket: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TicketModel{}, ticketID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("Ticket not found.")
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Ticket not found.")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) ListByCreator(ctx context.Context, creatorID uint, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{}).Where("creator_id = ?", creatorID)
	return r.list(query, filter)
}

func (r *TicketRepository) ListOpen(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{}).Where("is_open = ?", true)
	return r.list(query, filter)
}

func (r *TicketRepository) ListClaimedBy(ctx context.Context, medUserID uint, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{}).Where("opened_by_med_id = ?", medUserID)
	return r.list(query, filter)
}

func (r *TicketRepository) list(query *gorm.DB, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	query = query.Order("created_at DESC")
	if filter.PerPage > 0 {
		offset := (filter.Page - 1) * filter.PerPage
		query = query.Limit(filter.PerPage).Offset(offset)
	}

	var ticketModels []models.TicketModel
	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		tickets[i] = t
	}

	return tickets, total, nil
}
