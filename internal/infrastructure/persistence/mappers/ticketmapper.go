package mappers

import (
	"time"

	"careline/internal/domain/ticket"
	"careline/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket domain entities and
// persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	// FollowUpToModel converts a follow-up domain entity to a persistence model.
	FollowUpToModel(f *ticket.FollowUp) *models.TicketFollowUpModel

	// FollowUpToDomain converts a follow-up persistence model to a domain entity.
	FollowUpToDomain(model *models.TicketFollowUpModel) (*ticket.FollowUp, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:            t.ID(),
		CreatorID:     t.CreatorID(),
		Description:   t.Description(),
		Attachment:    t.Attachment(),
		IsOpen:        t.IsOpen(),
		OpenedByMedID: t.OpenedByMedID(),
		CreatedAt:     t.CreatedAt().UnixMilli(),
		UpdatedAt:     t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	return ticket.ReconstructTicket(
		model.ID,
		model.CreatorID,
		model.Description,
		model.Attachment,
		model.IsOpen,
		model.OpenedByMedID,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) FollowUpToModel(f *ticket.FollowUp) *models.TicketFollowUpModel {
	return &models.TicketFollowUpModel{
		ID:             f.ID(),
		RootID:         f.RootID(),
		CreatorID:      f.CreatorID(),
		IsMedUser:      f.IsMedUser(),
		SequenceNumber: f.SequenceNumber(),
		Description:    f.Description(),
		Attachment:     f.Attachment(),
		CreatedAt:      f.CreatedAt().UnixMilli(),
		UpdatedAt:      f.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) FollowUpToDomain(model *models.TicketFollowUpModel) (*ticket.FollowUp, error) {
	return ticket.ReconstructFollowUp(
		model.ID,
		model.RootID,
		model.CreatorID,
		model.IsMedUser,
		model.SequenceNumber,
		model.Description,
		model.Attachment,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}

func convertMillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
