package usecases

import (
	"context"
	"io"

	"careline/internal/application/ticket/dto"
)

// Transactor runs a function inside a database transaction. Satisfied by
// db.TransactionManager; tests substitute a pass-through.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// FileStore is the attachment storage collaborator. Put streams the upload
// and returns an opaque reference; Delete is idempotent and tolerates
// references whose bytes are already gone. MaxUploadBytes is the configured
// per-file cap, checked before any write.
type FileStore interface {
	Put(ctx context.Context, filename string, content io.Reader, size int64) (string, error)
	Delete(ctx context.Context, ref string) error
	MaxUploadBytes() int64
}

// AttachmentUpload carries one incoming file. Size is the declared length in
// bytes; it is validated against the upload limit before any write.
type AttachmentUpload struct {
	Filename string
	Content  io.Reader
	Size     int64
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type CreateFollowUpExecutor interface {
	Execute(ctx context.Context, cmd CreateFollowUpCommand) (*dto.FollowUpDTO, error)
}

type UpdateFollowUpExecutor interface {
	Execute(ctx context.Context, cmd UpdateFollowUpCommand) (*dto.FollowUpDTO, error)
}

type DeleteFollowUpExecutor interface {
	Execute(ctx context.Context, cmd DeleteFollowUpCommand) error
}

type ListFollowUpsExecutor interface {
	Execute(ctx context.Context, query ListFollowUpsQuery) (*ListFollowUpsResult, error)
}
