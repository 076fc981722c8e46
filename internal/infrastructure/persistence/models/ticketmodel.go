package models

type TicketModel struct {
	ID            uint    `gorm:"primaryKey"`
	CreatorID     uint    `gorm:"not null;index"`
	Description   string  `gorm:"type:text;not null"`
	Attachment    *string `gorm:"size:255"`
	IsOpen        bool    `gorm:"not null;default:true;index"`
	OpenedByMedID *uint   `gorm:"index"`
	CreatedAt     int64   `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt     int64   `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TicketFollowUpModel struct {
	ID             uint    `gorm:"primaryKey"`
	RootID         uint    `gorm:"not null;index;uniqueIndex:idx_root_sequence,priority:1"`
	CreatorID      uint    `gorm:"not null;index"`
	IsMedUser      bool    `gorm:"not null;default:false"`
	SequenceNumber int     `gorm:"not null;uniqueIndex:idx_root_sequence,priority:2"`
	Description    string  `gorm:"type:text;not null"`
	Attachment     *string `gorm:"size:255"`
	CreatedAt      int64   `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt      int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketFollowUpModel) TableName() string {
	return "ticket_follow_ups"
}
