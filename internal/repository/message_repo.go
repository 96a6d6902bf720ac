package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-shop-backend/internal/model"
	"go-shop-backend/pkg/apperr"
)

type MessageRepository interface {
	Create(message *model.Message) error
	FindByReceiver(receiverID uuid.UUID) ([]model.Message, error)
	Delete(id, senderID uuid.UUID) error
}

type messageRepo struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) MessageRepository {
	return &messageRepo{db}
}

func (r *messageRepo) Create(message *model.Message) error {
	return r.db.Create(message).Error
}

func (r *messageRepo) FindByReceiver(receiverID uuid.UUID) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.
		Where("receiver_id = ?", receiverID).
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}

func (r *messageRepo) Delete(id, senderID uuid.UUID) error {
	res := r.db.Delete(&model.Message{}, "id = ? AND sender_id = ?", id, senderID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("message %s not found", id)
	}
	return nil
}
