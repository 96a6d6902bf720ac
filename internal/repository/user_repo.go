package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-shop-backend/internal/model"
	"go-shop-backend/pkg/apperr"
)

type UserRepository interface {
	Create(user *model.User) error
	FindAll() ([]model.User, error)
	FindByID(id uuid.UUID) (*model.User, error)
	FindByPhone(phoneNumber string) (*model.User, error)
	Update(user *model.User) error
	UpdateWishlist(id uuid.UUID, wishlist []string) error
	Delete(id uuid.UUID) error
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db}
}

func (r *userRepo) Create(user *model.User) error {
	err := r.db.Create(user).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflictf("phone number %s already registered", user.PhoneNumber)
	}
	return err
}

func (r *userRepo) FindAll() ([]model.User, error) {
	var users []model.User
	err := r.db.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *userRepo) FindByID(id uuid.UUID) (*model.User, error) {
	var user model.User
	err := r.db.Preload("ShoppingCart.Items").First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFoundf("user %s not found", id)
	}
	return &user, err
}

func (r *userRepo) FindByPhone(phoneNumber string) (*model.User, error) {
	var user model.User
	err := r.db.Preload("ShoppingCart.Items").First(&user, "phone_number = ?", phoneNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFoundf("user with phone %s not found", phoneNumber)
	}
	return &user, err
}

func (r *userRepo) Update(user *model.User) error {
	return r.db.Save(user).Error
}

func (r *userRepo) UpdateWishlist(id uuid.UUID, wishlist []string) error {
	return r.db.Model(&model.User{}).
		Where("id = ?", id).
		Update("wishlist", wishlist).Error
}

func (r *userRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.User{}, "id = ?", id).Error
}
