package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careline/internal/domain/identity"
	"careline/internal/domain/ticket"
	"careline/internal/shared/errors"
)

func TestUpdateTicketUseCase_PartialUpdateKeepsUnsetFields(t *testing.T) {
	var updated *ticket.Ticket
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return ticketWithAttachment(t, 5, 1, "ticket_files/old.png"), nil
		},
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			updated = tk
			return nil
		},
	}

	uc := NewUpdateTicketUseCase(ticketRepo, &mockFileStore{}, mockLogger{})
	newDesc := "updated description"
	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		Caller:      identity.Caller{ID: 1},
		TicketID:    5,
		Description: &newDesc,
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "updated description", updated.Description())
	// attachment untouched when the command leaves it nil
	require.NotNil(t, updated.Attachment())
	assert.Equal(t, "ticket_files/old.png", *updated.Attachment())
	assert.Equal(t, "updated description", result.Description)
}

func TestUpdateTicketUseCase_ReplacesAttachment(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return ticketWithAttachment(t, 5, 1, "ticket_files/old.png"), nil
		},
	}
	fs := &mockFileStore{}

	uc := NewUpdateTicketUseCase(ticketRepo, fs, mockLogger{})
	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		Caller:   identity.Caller{ID: 1},
		TicketID: 5,
		Attachment: &AttachmentUpload{
			Filename: "new.png",
			Content:  strings.NewReader("bytes"),
			Size:     5,
		},
	})

	require.NoError(t, err)
	require.NotNil(t, result.Attachment)
	assert.NotEqual(t, "ticket_files/old.png", *result.Attachment)
	assert.Equal(t, []string{"ticket_files/old.png"}, fs.deleted)
}

func TestUpdateTicketUseCase_FailedUpdateKeepsOldAttachment(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return ticketWithAttachment(t, 5, 1, "ticket_files/old.png"), nil
		},
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return errors.NewInternalError("db down")
		},
	}
	fs := &mockFileStore{}

	uc := NewUpdateTicketUseCase(ticketRepo, fs, mockLogger{})
	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		Caller:   identity.Caller{ID: 1},
		TicketID: 5,
		Attachment: &AttachmentUpload{
			Filename: "new.png",
			Content:  strings.NewReader("bytes"),
			Size:     5,
		},
	})

	require.Error(t, err)
	// The row still references the old file, so only the new bytes go.
	require.Len(t, fs.deleted, 1)
	assert.NotEqual(t, "ticket_files/old.png", fs.deleted[0])
	assert.Contains(t, fs.deleted[0], "new.png")
}

func TestUpdateTicketUseCase_OwnershipEnforced(t *testing.T) {
	tests := []struct {
		name   string
		caller identity.Caller
	}{
		{name: "other user", caller: identity.Caller{ID: 2}},
		{name: "assigned med user", caller: identity.Caller{ID: 9, IsMedUser: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updateCalled := false
			ticketRepo := &mockTicketRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
					return claimedTicket(t, 5, 1, 9), nil
				},
				UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
					updateCalled = true
					return nil
				},
			}

			uc := NewUpdateTicketUseCase(ticketRepo, &mockFileStore{}, mockLogger{})
			desc := "hijack"
			_, err := uc.Execute(context.Background(), UpdateTicketCommand{
				Caller:      tt.caller,
				TicketID:    5,
				Description: &desc,
			})

			require.Error(t, err)
			assert.True(t, errors.IsForbiddenError(err))
			assert.False(t, updateCalled)
		})
	}
}

func TestUpdateFollowUpUseCase_OwnerUpdatesDescription(t *testing.T) {
	followUp, err := ticket.NewFollowUp(5, 1, false, "original", nil)
	require.NoError(t, err)
	require.NoError(t, followUp.AssignSequenceNumber(2))
	require.NoError(t, followUp.SetID(40))

	var updated *ticket.FollowUp
	followUpRepo := &mockFollowUpRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.FollowUp, error) {
			return followUp, nil
		},
		UpdateFunc: func(ctx context.Context, f *ticket.FollowUp) error {
			updated = f
			return nil
		},
	}

	uc := NewUpdateFollowUpUseCase(followUpRepo, &mockFileStore{}, mockLogger{})
	desc := "corrected"
	result, err := uc.Execute(context.Background(), UpdateFollowUpCommand{
		Caller:      identity.Caller{ID: 1},
		FollowUpID:  40,
		Description: &desc,
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "corrected", updated.Description())
	// sequence number is immutable across edits
	assert.Equal(t, 2, result.SequenceNumber)
}

func TestUpdateFollowUpUseCase_NonOwnerForbidden(t *testing.T) {
	followUp, err := ticket.NewFollowUp(5, 1, false, "original", nil)
	require.NoError(t, err)
	require.NoError(t, followUp.AssignSequenceNumber(1))

	followUpRepo := &mockFollowUpRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.FollowUp, error) {
			return followUp, nil
		},
	}

	uc := NewUpdateFollowUpUseCase(followUpRepo, &mockFileStore{}, mockLogger{})
	desc := "not mine"
	_, err = uc.Execute(context.Background(), UpdateFollowUpCommand{
		Caller:      identity.Caller{ID: 9, IsMedUser: true},
		FollowUpID:  40,
		Description: &desc,
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}
