package model

import "github.com/google/uuid"

type Message struct {
	BaseModel
	Text       string     `gorm:"not null" json:"text" validate:"required"`
	SenderID   uuid.UUID  `gorm:"type:uuid;not null" json:"sender_id" validate:"uuid_required"`
	ReceiverID *uuid.UUID `gorm:"type:uuid" json:"receiver_id,omitempty"`
}
