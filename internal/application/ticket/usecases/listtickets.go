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

// ListScope selects which ticket collection a list query targets.
type ListScope string

const (
	// ScopeOwn lists the caller's own tickets (regular users).
	ScopeOwn ListScope = "own"
	// ScopeOpenQueue lists every unclaimed open ticket (med users).
	ScopeOpenQueue ListScope = "open"
	// ScopeClaimed lists tickets the calling med user has claimed.
	ScopeClaimed ListScope = "claimed"
)

type ListTicketsQuery struct {
	Caller  identity.Caller
	Scope   ListScope
	Page    int
	PerPage int
}

type ListTicketsResult struct {
	Tickets []dto.TicketDTO
	Total   int64
	Page    int
	PerPage int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PerPage)
	filter := ticket.Filter{Page: pagination.Page, PerPage: pagination.PerPage}

	var (
		tickets []*ticket.Ticket
		total   int64
		err     error
	)

	switch query.Scope {
	case ScopeOwn:
		if query.Caller.IsMedUser {
			return nil, errors.NewForbiddenError("Access Denied")
		}
		tickets, total, err = uc.ticketRepo.ListByCreator(ctx, query.Caller.ID, filter)
	case ScopeOpenQueue:
		if !query.Caller.CanWorkQueue() {
			return nil, errors.NewForbiddenError("Access Denied")
		}
		tickets, total, err = uc.ticketRepo.ListOpen(ctx, filter)
	case ScopeClaimed:
		if !query.Caller.CanWorkQueue() {
			return nil, errors.NewForbiddenError("Access Denied")
		}
		tickets, total, err = uc.ticketRepo.ListClaimedBy(ctx, query.Caller.ID, filter)
	default:
		return nil, errors.NewValidationError("unknown ticket list scope")
	}

	if err != nil {
		uc.logger.Errorw("failed to list tickets", "scope", query.Scope, "error", err)
		return nil, err
	}

	return &ListTicketsResult{
		Tickets: dto.FromTickets(tickets),
		Total:   total,
		Page:    pagination.Page,
		PerPage: pagination.PerPage,
	}, nil
}
