package models

type NoteModel struct {
	ID        uint   `gorm:"primaryKey"`
	CreatorID uint   `gorm:"not null;index"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (NoteModel) TableName() string {
	return "notes"
}
