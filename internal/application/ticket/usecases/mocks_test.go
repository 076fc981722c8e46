package usecases

import (
	"context"
	"io"

	"careline/internal/domain/ticket"
	"careline/internal/shared/constants"
	"careline/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc          func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc        func(ctx context.Context, t *ticket.Ticket) error
	ClaimIfOpenFunc   func(ctx context.Context, ticketID, medUserID uint) (bool, error)
	DeleteFunc        func(ctx context.Context, ticketID uint) error
	GetByIDFunc       func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListByCreatorFunc func(ctx context.Context, creatorID uint, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	ListOpenFunc      func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	ListClaimedByFunc func(ctx context.Context, medUserID uint, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) ClaimIfOpen(ctx context.Context, ticketID, medUserID uint) (bool, error) {
	if m.ClaimIfOpenFunc != nil {
		return m.ClaimIfOpenFunc(ctx, ticketID, medUserID)
	}
	return true, nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByCreator(ctx context.Context, creatorID uint, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListByCreatorFunc != nil {
		return m.ListByCreatorFunc(ctx, creatorID, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) ListOpen(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListOpenFunc != nil {
		return m.ListOpenFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) ListClaimedBy(ctx context.Context, medUserID uint, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListClaimedByFunc != nil {
		return m.ListClaimedByFunc(ctx, medUserID, filter)
	}
	return nil, 0, nil
}

type mockFollowUpRepository struct {
	SaveFunc                 func(ctx context.Context, f *ticket.FollowUp) error
	UpdateFunc               func(ctx context.Context, f *ticket.FollowUp) error
	DeleteFunc               func(ctx context.Context, followUpID uint) error
	DeleteByRootFunc         func(ctx context.Context, rootID uint) error
	GetByIDFunc              func(ctx context.Context, followUpID uint) (*ticket.FollowUp, error)
	ListByRootFunc           func(ctx context.Context, rootID uint, filter ticket.Filter) ([]*ticket.FollowUp, int64, error)
	AttachmentRefsByRootFunc func(ctx context.Context, rootID uint) ([]string, error)
	NextSequenceFunc         func(ctx context.Context, rootID uint) (int, error)
}

func (m *mockFollowUpRepository) Save(ctx context.Context, f *ticket.FollowUp) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, f)
	}
	return nil
}

func (m *mockFollowUpRepository) Update(ctx context.Context, f *ticket.FollowUp) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, f)
	}
	return nil
}

func (m *mockFollowUpRepository) Delete(ctx context.Context, followUpID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, followUpID)
	}
	return nil
}

func (m *mockFollowUpRepository) DeleteByRoot(ctx context.Context, rootID uint) error {
	if m.DeleteByRootFunc != nil {
		return m.DeleteByRootFunc(ctx, rootID)
	}
	return nil
}

func (m *mockFollowUpRepository) GetByID(ctx context.Context, followUpID uint) (*ticket.FollowUp, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, followUpID)
	}
	return nil, nil
}

func (m *mockFollowUpRepository) ListByRoot(ctx context.Context, rootID uint, filter ticket.Filter) ([]*ticket.FollowUp, int64, error) {
	if m.ListByRootFunc != nil {
		return m.ListByRootFunc(ctx, rootID, filter)
	}
	return nil, 0, nil
}

func (m *mockFollowUpRepository) AttachmentRefsByRoot(ctx context.Context, rootID uint) ([]string, error) {
	if m.AttachmentRefsByRootFunc != nil {
		return m.AttachmentRefsByRootFunc(ctx, rootID)
	}
	return nil, nil
}

func (m *mockFollowUpRepository) NextSequence(ctx context.Context, rootID uint) (int, error) {
	if m.NextSequenceFunc != nil {
		return m.NextSequenceFunc(ctx, rootID)
	}
	return 1, nil
}

type mockFileStore struct {
	PutFunc    func(ctx context.Context, filename string, content io.Reader, size int64) (string, error)
	DeleteFunc func(ctx context.Context, ref string) error
	maxBytes   int64

	deleted []string
}

func (m *mockFileStore) MaxUploadBytes() int64 {
	if m.maxBytes > 0 {
		return m.maxBytes
	}
	return constants.MaxAttachmentBytes
}

func (m *mockFileStore) Put(ctx context.Context, filename string, content io.Reader, size int64) (string, error) {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, filename, content, size)
	}
	return "ticket_files/" + filename, nil
}

func (m *mockFileStore) Delete(ctx context.Context, ref string) error {
	m.deleted = append(m.deleted, ref)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ref)
	}
	return nil
}

// passthroughTx satisfies Transactor without a database.
type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockLogger struct{}

func (mockLogger) Debug(msg string, args ...any)                      {}
func (mockLogger) Info(msg string, args ...any)                       {}
func (mockLogger) Warn(msg string, args ...any)                       {}
func (mockLogger) Error(msg string, args ...any)                      {}
func (m mockLogger) With(args ...any) logger.Interface                { return m }
func (m mockLogger) Named(name string) logger.Interface               { return m }
func (mockLogger) Debugw(msg string, keysAndValues ...interface{})    {}
func (mockLogger) Infow(msg string, keysAndValues ...interface{})     {}
func (mockLogger) Warnw(msg string, keysAndValues ...interface{})     {}
func (mockLogger) Errorw(msg string, keysAndValues ...interface{})    {}
