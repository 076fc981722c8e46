package ticket

import "context"

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	// ClaimIfOpen atomically closes the ticket and records the claiming med
	// user, guarded by the current open state. It returns false when the
	// ticket was already claimed by a concurrent request.
	ClaimIfOpen(ctx context.Context, ticketID, medUserID uint) (bool, error)
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	ListByCreator(ctx context.Context, creatorID uint, filter Filter) ([]*Ticket, int64, error)
	ListOpen(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
	ListClaimedBy(ctx context.Context, medUserID uint, filter Filter) ([]*Ticket, int64, error)
}

type FollowUpRepository interface {
	// Save persists the follow-up. The sequence number must already be
	// assigned; the unique (root_id, sequence_number) index turns a
	// concurrent assignment race into a duplicate-key error.
	Save(ctx context.Context, followUp *FollowUp) error
	Update(ctx context.Context, followUp *FollowUp) error
	Delete(ctx context.Context, followUpID uint) error
	DeleteByRoot(ctx context.Context, rootID uint) error
	GetByID(ctx context.Context, followUpID uint) (*FollowUp, error)
	ListByRoot(ctx context.Context, rootID uint, filter Filter) ([]*FollowUp, int64, error)
	// AttachmentRefsByRoot returns the attachment references of every
	// follow-up under the root, for cascade file cleanup.
	AttachmentRefsByRoot(ctx context.Context, rootID uint) ([]string, error)
	// NextSequence returns MAX(sequence_number)+1 for the root. Call it in
	// the same transaction as Save so concurrent creations collide on the
	// unique index instead of double-assigning.
	NextSequence(ctx context.Context, rootID uint) (int, error)
}

// Filter carries pagination for list queries.
type Filter struct {
	Page    int
	PerPage int
}
