package ticket

import (
	"fmt"
	"time"
)

// FollowUp is one entry in a ticket's thread. Sequence numbers are assigned
// by the follow-up store at creation time, are contiguous from 1 within a
// root, and are never reassigned. Deleting a follow-up leaves a gap in the
// remaining thread rather than renumbering it.
type FollowUp struct {
	id             uint
	rootID         uint
	creatorID      uint
	isMedUser      bool
	sequenceNumber int
	description    string
	attachment     *string
	createdAt      time.Time
	updatedAt      time.Time
}

// NewFollowUp builds an unsaved follow-up. The sequence number is zero until
// the store assigns it.
func NewFollowUp(rootID, creatorID uint, isMedUser bool, description string, attachment *string) (*FollowUp, error) {
	if rootID == 0 {
		return nil, fmt.Errorf("root ticket ID is required")
	}
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
	return &FollowUp{
		rootID:      rootID,
		creatorID:   creatorID,
		isMedUser:   isMedUser,
		description: description,
		attachment:  attachment,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructFollowUp(
	id uint,
	rootID uint,
	creatorID uint,
	isMedUser bool,
	sequenceNumber int,
	description string,
	attachment *string,
	createdAt, updatedAt time.Time,
) (*FollowUp, error) {
	if id == 0 {
		return nil, fmt.Errorf("follow-up ID cannot be zero")
	}
	if rootID == 0 {
		return nil, fmt.Errorf("root ticket ID is required")
	}
	if sequenceNumber < 1 {
		return nil, fmt.Errorf("sequence number must be positive")
	}

	return &FollowUp{
		id:             id,
		rootID:         rootID,
		creatorID:      creatorID,
		isMedUser:      isMedUser,
		sequenceNumber: sequenceNumber,
		description:    description,
		attachment:     attachment,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (f *FollowUp) ID() uint {
	return f.id
}

func (f *FollowUp) RootID() uint {
	return f.rootID
}

func (f *FollowUp) CreatorID() uint {
	return f.creatorID
}

func (f *FollowUp) IsMedUser() bool {
	return f.isMedUser
}

func (f *FollowUp) SequenceNumber() int {
	return f.sequenceNumber
}

func (f *FollowUp) Description() string {
	return f.description
}

func (f *FollowUp) Attachment() *string {
	return f.attachment
}

func (f *FollowUp) CreatedAt() time.Time {
	return f.createdAt
}

func (f *FollowUp) UpdatedAt() time.Time {
	return f.updatedAt
}

func (f *FollowUp) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("follow-up ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("follow-up ID cannot be zero")
	}
	f.id = id
	return nil
}

// AssignSequenceNumber records the store-assigned position in the thread.
// It can only happen once.
func (f *FollowUp) AssignSequenceNumber(seq int) error {
	if f.sequenceNumber != 0 {
		return fmt.Errorf("sequence number is already assigned")
	}
	if seq < 1 {
		return fmt.Errorf("sequence number must be positive")
	}
	f.sequenceNumber = seq
	return nil
}

// UpdateDescription replaces the description text.
func (f *FollowUp) UpdateDescription(description string) error {
	if len(description) == 0 {
		return fmt.Errorf("description is required")
	}
	if len(description) > maxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}

	f.description = description
	f.updatedAt = time.Now()
	return nil
}

// ReplaceAttachment swaps the attachment reference and returns the previous
// one so the caller can remove the orphaned bytes.
func (f *FollowUp) ReplaceAttachment(ref string) (previous *string) {
	previous = f.attachment
	f.attachment = &ref
	f.updatedAt = time.Now()
	return previous
}

// IsOwnedBy reports whether the given user wrote the follow-up.
func (f *FollowUp) IsOwnedBy(userID uint) bool {
	return f.creatorID == userID
}
