package mappers

import (
	"careline/internal/domain/note"
	"careline/internal/infrastructure/persistence/models"
)

// NoteMapper handles the conversion between note domain entities and
// persistence models.
type NoteMapper interface {
	ToModel(n *note.Note) *models.NoteModel
	ToDomain(model *models.NoteModel) (*note.Note, error)
}

type NoteMapperImpl struct{}

func NewNoteMapper() NoteMapper {
	return &NoteMapperImpl{}
}

func (m *NoteMapperImpl) ToModel(n *note.Note) *models.NoteModel {
	return &models.NoteModel{
		ID:        n.ID(),
		CreatorID: n.CreatorID(),
		Content:   n.Content(),
		CreatedAt: n.CreatedAt().UnixMilli(),
		UpdatedAt: n.UpdatedAt().UnixMilli(),
	}
}

func (m *NoteMapperImpl) ToDomain(model *models.NoteModel) (*note.Note, error) {
	return note.ReconstructNote(
		model.ID,
		model.CreatorID,
		model.Content,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}
