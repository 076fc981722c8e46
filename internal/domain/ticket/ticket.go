package ticket

import (
	"fmt"
	"time"
)

const maxDescriptionLength = 5000

// Ticket is a support request opened by a regular user. It stays open until
// the first med-user follow-up claims it; the claim closes the ticket and
// records the claiming med user. is_open == false always implies
// openedByMedID is set, and vice versa.
type Ticket struct {
	id            uint
	creatorID     uint
	description   string
	attachment    *string
	isOpen        bool
	openedByMedID *uint
	createdAt     time.Time
	updatedAt     time.Time
}

func NewTicket(creatorID uint, description string, attachment *string) (*Ticket, error) {
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}

	now := time.Now()
	return &Ticket{
		creatorID:   creatorID,
		description: description,
		attachment:  attachment,
		isOpen:      true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	creatorID uint,
	description string,
	attachment *string,
	isOpen bool,
	openedByMedID *uint,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if isOpen == (openedByMedID != nil) {
		return nil, fmt.Errorf("open state and claiming med user are inconsistent")
	}

	return &Ticket{
		id:            id,
		creatorID:     creatorID,
		description:   description,
		attachment:    attachment,
		isOpen:        isOpen,
		openedByMedID: openedByMedID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) CreatorID() uint {
	return t.creatorID
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Attachment() *string {
	return t.attachment
}

func (t *Ticket) IsOpen() bool {
	return t.isOpen
}

func (t *Ticket) OpenedByMedID() *uint {
	return t.openedByMedID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// UpdateDescription replaces the description. Empty input is rejected so a
// partial update can never blank the field by accident.
func (t *Ticket) UpdateDescription(description string) error {
	if len(description) == 0 {
		return fmt.Errorf("description is required")
	}
	if len(description) > maxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}

	t.description = description
	t.updatedAt = time.Now()
	return nil
}

// ReplaceAttachment swaps the attachment reference and returns the previous
// one so the caller can remove the orphaned bytes.
func (t *Ticket) ReplaceAttachment(ref string) (previous *string) {
	previous = t.attachment
	t.attachment = &ref
	t.updatedAt = time.Now()
	return previous
}

// Claim closes the ticket and records the claiming med user. The first
// med-user follow-up on an open ticket triggers this; a closed ticket can
// never be claimed again.
func (t *Ticket) Claim(medUserID uint) error {
	if medUserID == 0 {
		return fmt.Errorf("med user ID cannot be zero")
	}
	if !t.isOpen {
		return fmt.Errorf("ticket is already claimed")
	}

	t.isOpen = false
	t.openedByMedID = &medUserID
	t.updatedAt = time.Now()
	return nil
}

// IsOwnedBy reports whether the given user created the ticket.
func (t *Ticket) IsOwnedBy(userID uint) bool {
	return t.creatorID == userID
}

// IsAssignedTo reports whether the given med user claimed the ticket.
func (t *Ticket) IsAssignedTo(medUserID uint) bool {
	return t.openedByMedID != nil && *t.openedByMedID == medUserID
}

// CanBeViewedBy reports whether the thread is visible to the user: the
// creator and the assigned med user only.
func (t *Ticket) CanBeViewedBy(userID uint) bool {
	return t.IsOwnedBy(userID) || t.IsAssignedTo(userID)
}
