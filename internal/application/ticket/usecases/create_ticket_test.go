package usecases

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careline/internal/domain/identity"
	"careline/internal/domain/ticket"
	"careline/internal/shared/constants"
	"careline/internal/shared/errors"
)

func TestCreateTicketUseCase_Execute_Success(t *testing.T) {
	var savedTicket *ticket.Ticket
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			require.NoError(t, tk.SetID(100))
			savedTicket = tk
			return nil
		},
	}
	fs := &mockFileStore{}

	useCase := NewCreateTicketUseCase(mockRepo, fs, mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateTicketCommand{
		Caller:      identity.Caller{ID: 1, IsMedUser: false},
		Description: "cannot reach the clinic portal",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(100), result.ID)
	assert.Equal(t, uint(1), result.CreatorID)
	assert.True(t, result.IsOpen)
	assert.Nil(t, result.OpenedByMedID)

	require.NotNil(t, savedTicket)
	assert.True(t, savedTicket.IsOpen())
	assert.Nil(t, savedTicket.Attachment())
}

func TestCreateTicketUseCase_Execute_MedUserForbidden(t *testing.T) {
	saveCalled := false
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			saveCalled = true
			return nil
		},
	}

	useCase := NewCreateTicketUseCase(mockRepo, &mockFileStore{}, mockLogger{})
	_, err := useCase.Execute(context.Background(), CreateTicketCommand{
		Caller:      identity.Caller{ID: 9, IsMedUser: true},
		Description: "med users do not open tickets",
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
	assert.False(t, saveCalled)
}

func TestCreateTicketUseCase_Execute_SanitizesDescription(t *testing.T) {
	var savedTicket *ticket.Ticket
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			require.NoError(t, tk.SetID(1))
			savedTicket = tk
			return nil
		},
	}

	useCase := NewCreateTicketUseCase(mockRepo, &mockFileStore{}, mockLogger{})
	_, err := useCase.Execute(context.Background(), CreateTicketCommand{
		Caller:      identity.Caller{ID: 1},
		Description: "  <script>alert(1)</script>help me  ",
	})

	require.NoError(t, err)
	require.NotNil(t, savedTicket)
	assert.Equal(t, "help me", savedTicket.Description())
}

func TestCreateTicketUseCase_Execute_WithAttachment(t *testing.T) {
	var savedTicket *ticket.Ticket
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			require.NoError(t, tk.SetID(1))
			savedTicket = tk
			return nil
		},
	}

	useCase := NewCreateTicketUseCase(mockRepo, &mockFileStore{}, mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateTicketCommand{
		Caller:      identity.Caller{ID: 1},
		Description: "see attached scan",
		Attachment: &AttachmentUpload{
			Filename: "scan.png",
			Content:  strings.NewReader("pngbytes"),
			Size:     8,
		},
	})

	require.NoError(t, err)
	require.NotNil(t, result.Attachment)
	require.NotNil(t, savedTicket.Attachment())
	assert.True(t, strings.HasPrefix(*savedTicket.Attachment(), "ticket_files/"))
}

func TestCreateTicketUseCase_Execute_OversizedAttachment(t *testing.T) {
	saveCalled := false
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			saveCalled = true
			return nil
		},
	}
	putCalled := false
	fs := &mockFileStore{
		PutFunc: func(ctx context.Context, filename string, content io.Reader, size int64) (string, error) {
			putCalled = true
			return "", nil
		},
	}

	useCase := NewCreateTicketUseCase(mockRepo, fs, mockLogger{})
	_, err := useCase.Execute(context.Background(), CreateTicketCommand{
		Caller:      identity.Caller{ID: 1},
		Description: "huge file",
		Attachment: &AttachmentUpload{
			Filename: "dump.bin",
			Content:  strings.NewReader(""),
			Size:     constants.MaxAttachmentBytes + 1,
		},
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.False(t, saveCalled)
	assert.False(t, putCalled)
}

func TestCreateTicketUseCase_Execute_ConfiguredUploadLimitEnforced(t *testing.T) {
	putCalled := false
	fs := &mockFileStore{
		maxBytes: 100,
		PutFunc: func(ctx context.Context, filename string, content io.Reader, size int64) (string, error) {
			putCalled = true
			return "", nil
		},
	}

	useCase := NewCreateTicketUseCase(&mockTicketRepository{}, fs, mockLogger{})
	_, err := useCase.Execute(context.Background(), CreateTicketCommand{
		Caller:      identity.Caller{ID: 1},
		Description: "small cap",
		Attachment: &AttachmentUpload{
			Filename: "a.txt",
			Content:  strings.NewReader(""),
			Size:     101,
		},
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.False(t, putCalled, "store limit is checked before any write")
}

func TestCreateTicketUseCase_Execute_SaveFailureCleansUpFile(t *testing.T) {
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return errors.NewInternalError("db down")
		},
	}
	fs := &mockFileStore{}

	useCase := NewCreateTicketUseCase(mockRepo, fs, mockLogger{})
	_, err := useCase.Execute(context.Background(), CreateTicketCommand{
		Caller:      identity.Caller{ID: 1},
		Description: "desc",
		Attachment: &AttachmentUpload{
			Filename: "a.txt",
			Content:  strings.NewReader("x"),
			Size:     1,
		},
	})

	require.Error(t, err)
	assert.Len(t, fs.deleted, 1, "stored bytes are removed when the record save fails")
}
