package dto

import (
	"time"

	"careline/internal/domain/note"
)

// NoteDTO is the application-level representation of a clinical note.
type NoteDTO struct {
	ID        uint      `json:"id"`
	CreatorID uint      `json:"creator_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromNote(n *note.Note) NoteDTO {
	return NoteDTO{
		ID:        n.ID(),
		CreatorID: n.CreatorID(),
		Content:   n.Content(),
		CreatedAt: n.CreatedAt(),
		UpdatedAt: n.UpdatedAt(),
	}
}

func FromNotes(notes []*note.Note) []NoteDTO {
	out := make([]NoteDTO, len(notes))
	for i, n := range notes {
		out[i] = FromNote(n)
	}
	return out
}
