// Package note holds the clinical note entity. Notes are private records a
// regular user keeps alongside their tickets; med users never see or touch
// them.
package note

import (
	"fmt"
	"time"
)

const maxContentLength = 5000

type Note struct {
	id        uint
	creatorID uint
	content   string
	createdAt time.Time
	updatedAt time.Time
}

func NewNote(creatorID uint, content string) (*Note, error) {
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content is required")
	}
	if len(content) > maxContentLength {
		return nil, fmt.Errorf("content exceeds maximum length of %d characters", maxContentLength)
	}

	now := time.Now()
	return &Note{
		creatorID: creatorID,
		content:   content,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructNote(id, creatorID uint, content string, createdAt, updatedAt time.Time) (*Note, error) {
	if id == 0 {
		return nil, fmt.Errorf("note ID cannot be zero")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	return &Note{
		id:        id,
		creatorID: creatorID,
		content:   content,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (n *Note) ID() uint {
	return n.id
}

func (n *Note) CreatorID() uint {
	return n.creatorID
}

func (n *Note) Content() string {
	return n.content
}

func (n *Note) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Note) UpdatedAt() time.Time {
	return n.updatedAt
}

func (n *Note) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("note ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("note ID cannot be zero")
	}
	n.id = id
	return nil
}

// UpdateContent replaces the note text. Empty input is rejected so a partial
// update can never blank the field by accident.
func (n *Note) UpdateContent(content string) error {
	if len(content) == 0 {
		return fmt.Errorf("content is required")
	}
	if len(content) > maxContentLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", maxContentLength)
	}

	n.content = content
	n.updatedAt = time.Now()
	return nil
}

// IsOwnedBy reports whether the given user wrote the note.
func (n *Note) IsOwnedBy(userID uint) bool {
	return n.creatorID == userID
}
