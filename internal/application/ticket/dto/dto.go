package dto

import (
	"time"

	"careline/internal/domain/ticket"
)

// TicketDTO is the application-level representation of a ticket.
type TicketDTO struct {
	ID            uint      `json:"id"`
	CreatorID     uint      `json:"creator_id"`
	Description   string    `json:"description"`
	Attachment    *string   `json:"attachment,omitempty"`
	IsOpen        bool      `json:"is_open"`
	OpenedByMedID *uint     `json:"opened_by_med_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// FollowUpDTO is the application-level representation of a thread entry.
type FollowUpDTO struct {
	ID             uint      `json:"id"`
	Root           uint      `json:"root"`
	CreatorID      uint      `json:"creator_id"`
	IsMedUser      bool      `json:"is_med_user"`
	SequenceNumber int       `json:"sequence_number"`
	Description    string    `json:"description"`
	Attachment     *string   `json:"attachment,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ThreadDTO bundles a ticket with one page of its follow-ups, the shape the
// follow-up list endpoint returns.
type ThreadDTO struct {
	Ticket    TicketDTO     `json:"ticket_details"`
	FollowUps []FollowUpDTO `json:"followup_data"`
}

func FromTicket(t *ticket.Ticket) TicketDTO {
	return TicketDTO{
		ID:            t.ID(),
		CreatorID:     t.CreatorID(),
		Description:   t.Description(),
		Attachment:    t.Attachment(),
		IsOpen:        t.IsOpen(),
		OpenedByMedID: t.OpenedByMedID(),
		CreatedAt:     t.CreatedAt(),
		UpdatedAt:     t.UpdatedAt(),
	}
}

func FromTickets(tickets []*ticket.Ticket) []TicketDTO {
	out := make([]TicketDTO, len(tickets))
	for i, t := range tickets {
		out[i] = FromTicket(t)
	}
	return out
}

func FromFollowUp(f *ticket.FollowUp) FollowUpDTO {
	return FollowUpDTO{
		ID:             f.ID(),
		Root:           f.RootID(),
		CreatorID:      f.CreatorID(),
		IsMedUser:      f.IsMedUser(),
		SequenceNumber: f.SequenceNumber(),
		Description:    f.Description(),
		Attachment:     f.Attachment(),
		CreatedAt:      f.CreatedAt(),
		UpdatedAt:      f.UpdatedAt(),
	}
}

func FromFollowUps(followUps []*ticket.FollowUp) []FollowUpDTO {
	out := make([]FollowUpDTO, len(followUps))
	for i, f := range followUps {
		out[i] = FromFollowUp(f)
	}
	return out
}
