package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careline/internal/domain/identity"
	"careline/internal/domain/ticket"
	"careline/internal/shared/errors"
)

func threadFollowUp(t *testing.T, id uint, rootID, creatorID uint, isMed bool, seq int) *ticket.FollowUp {
	t.Helper()
	f, err := ticket.NewFollowUp(rootID, creatorID, isMed, "entry", nil)
	require.NoError(t, err)
	require.NoError(t, f.AssignSequenceNumber(seq))
	require.NoError(t, f.SetID(id))
	return f
}

func TestListFollowUpsUseCase_BundlesTicketWithThread(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return claimedTicket(t, 5, 1, 9), nil
		},
	}
	followUpRepo := &mockFollowUpRepository{
		ListByRootFunc: func(ctx context.Context, rootID uint, filter ticket.Filter) ([]*ticket.FollowUp, int64, error) {
			return []*ticket.FollowUp{
				threadFollowUp(t, 41, rootID, 9, true, 2),
				threadFollowUp(t, 40, rootID, 9, true, 1),
			}, 2, nil
		},
	}

	uc := NewListFollowUpsUseCase(ticketRepo, followUpRepo, mockLogger{})
	result, err := uc.Execute(context.Background(), ListFollowUpsQuery{
		Caller:   identity.Caller{ID: 1},
		TicketID: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(5), result.Thread.Ticket.ID)
	assert.False(t, result.Thread.Ticket.IsOpen)
	require.Len(t, result.Thread.FollowUps, 2)
	assert.Equal(t, 2, result.Thread.FollowUps[0].SequenceNumber)
	assert.Equal(t, int64(2), result.Total)
}

func TestListFollowUpsUseCase_VisibilityEnforced(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return claimedTicket(t, 5, 1, 9), nil
		},
	}
	listCalled := false
	followUpRepo := &mockFollowUpRepository{
		ListByRootFunc: func(ctx context.Context, rootID uint, filter ticket.Filter) ([]*ticket.FollowUp, int64, error) {
			listCalled = true
			return nil, 0, nil
		},
	}

	uc := NewListFollowUpsUseCase(ticketRepo, followUpRepo, mockLogger{})
	_, err := uc.Execute(context.Background(), ListFollowUpsQuery{
		Caller:   identity.Caller{ID: 2},
		TicketID: 5,
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
	assert.False(t, listCalled)
}

func TestDeleteFollowUpUseCase_OwnerDeletesWithAttachment(t *testing.T) {
	ref := "ticket_files/att_x_note.pdf"
	followUp, err := ticket.NewFollowUp(5, 1, false, "entry", &ref)
	require.NoError(t, err)
	require.NoError(t, followUp.AssignSequenceNumber(2))
	require.NoError(t, followUp.SetID(40))

	deletedID := uint(0)
	followUpRepo := &mockFollowUpRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.FollowUp, error) {
			return followUp, nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deletedID = id
			return nil
		},
	}
	fs := &mockFileStore{}

	uc := NewDeleteFollowUpUseCase(followUpRepo, fs, mockLogger{})
	err = uc.Execute(context.Background(), DeleteFollowUpCommand{
		Caller:     identity.Caller{ID: 1},
		FollowUpID: 40,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(40), deletedID)
	assert.Equal(t, []string{ref}, fs.deleted)
}

func TestDeleteFollowUpUseCase_NonOwnerForbidden(t *testing.T) {
	followUp, err := ticket.NewFollowUp(5, 1, false, "entry", nil)
	require.NoError(t, err)
	require.NoError(t, followUp.AssignSequenceNumber(1))

	deleteCalled := false
	followUpRepo := &mockFollowUpRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.FollowUp, error) {
			return followUp, nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deleteCalled = true
			return nil
		},
	}

	uc := NewDeleteFollowUpUseCase(followUpRepo, &mockFileStore{}, mockLogger{})
	err = uc.Execute(context.Background(), DeleteFollowUpCommand{
		Caller:     identity.Caller{ID: 9, IsMedUser: true},
		FollowUpID: 40,
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
	assert.False(t, deleteCalled)
}
