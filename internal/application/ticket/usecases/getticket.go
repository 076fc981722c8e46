package usecases

import (
	"context"

	"careline/internal/application/ticket/dto"
	"careline/internal/domain/identity"
	"careline/internal/domain/ticket"
	"careline/internal/shared/errors"
	"careline/internal/shared/logger"
)

type GetTicketQuery struct {
	Caller   identity.Caller
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	if !t.CanBeViewedBy(query.Caller.ID) {
		uc.logger.Warnw("caller cannot view ticket", "ticket_id", query.TicketID, "caller_id", query.Caller.ID)
		return nil, errors.NewForbiddenError("Access Denied")
	}

	result := dto.FromTicket(t)
	return &result, nil
}
