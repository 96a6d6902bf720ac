package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-shop-backend/pkg/apperr"
)

// ReferenceRepository is the shared CRUD surface for lookup tables
// (categories, manufacturers, units, statuses, payment/delivery types).
type ReferenceRepository[T any] struct {
	db       *gorm.DB
	preloads []string
}

func NewReferenceRepo[T any](db *gorm.DB, preloads ...string) *ReferenceRepository[T] {
	return &ReferenceRepository[T]{db: db, preloads: preloads}
}

func (r *ReferenceRepository[T]) query() *gorm.DB {
	q := r.db
	for _, p := range r.preloads {
		q = q.Preload(p)
	}
	return q
}

func (r *ReferenceRepository[T]) FindAll() ([]T, error) {
	var entities []T
	err := r.query().Find(&entities).Error
	return entities, err
}

func (r *ReferenceRepository[T]) FindByID(id uuid.UUID) (*T, error) {
	var entity T
	err := r.query().First(&entity, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFoundf("record %s not found", id)
	}
	return &entity, err
}

func (r *ReferenceRepository[T]) Create(entity *T) error {
	err := r.db.Create(entity).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflictf("record already exists")
	}
	return err
}

func (r *ReferenceRepository[T]) Update(id uuid.UUID, entity *T) error {
	res := r.db.Model(new(T)).Where("id = ?", id).Updates(entity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("record %s not found", id)
	}
	return nil
}

func (r *ReferenceRepository[T]) Delete(id uuid.UUID) error {
	res := r.db.Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("record %s not found", id)
	}
	return nil
}
