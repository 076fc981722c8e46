package usecases

import (
	"context"

	"careline/internal/application/ticket/dto"
	"careline/internal/domain/identity"
	"careline/internal/domain/ticket"
	"careline/internal/shared/errors"
	"careline/internal/shared/logger"
	"careline/internal/shared/utils"
)

type ListFollowUpsQuery struct {
	Caller   identity.Caller
	TicketID uint
	Page     int
	PerPage  int
}

// ListFollowUpsResult bundles one page of the thread (newest first) with the
// parent ticket's current state.
type ListFollowUpsResult struct {
	Thread  dto.ThreadDTO
	Total   int64
	Page    int
	PerPage int
}

type ListFollowUpsUseCase struct {
	ticketRepo   ticket.TicketRepository
	followUpRepo ticket.FollowUpRepository
	logger       logger.Interface
}

func NewListFollowUpsUseCase(
	ticketRepo ticket.TicketRepository,
	followUpRepo ticket.FollowUpRepository,
	logger logger.Interface,
) *ListFollowUpsUseCase {
	return &ListFollowUpsUseCase{
		ticketRepo:   ticketRepo,
		followUpRepo: followUpRepo,
		logger:       logger,
	}
}

func (uc *ListFollowUpsUseCase) Execute(ctx context.Context, query ListFollowUpsQuery) (*ListFollowUpsResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	if !t.CanBeViewedBy(query.Caller.ID) {
		uc.logger.Warnw("caller cannot view thread", "ticket_id", query.TicketID, "caller_id", query.Caller.ID)
		return nil, errors.NewForbiddenError("Access Denied")
	}

	pagination := utils.ValidatePagination(query.Page, query.PerPage)
	followUps, total, err := uc.followUpRepo.ListByRoot(ctx, query.TicketID, ticket.Filter{
		Page:    pagination.Page,
		PerPage: pagination.PerPage,
	})
	if err != nil {
		uc.logger.Errorw("failed to list follow-ups", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	return &ListFollowUpsResult{
		Thread: dto.ThreadDTO{
			Ticket:    dto.FromTicket(t),
			FollowUps: dto.FromFollowUps(followUps),
		},
		Total:   total,
		Page:    pagination.Page,
		PerPage: pagination.PerPage,
	}, nil
}
