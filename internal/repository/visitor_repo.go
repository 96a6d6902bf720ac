package repository

import (
	"time"

	"gorm.io/gorm"

	"go-shop-backend/internal/model"
)

// MonthlyVisitors is one month's aggregated visit count.
type MonthlyVisitors struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type VisitorRepository interface {
	Record(visitor *model.Visitor) error
	CountSince(since time.Time) (int64, error)
	FindAll() ([]model.Visitor, error)
	MonthlyCounts(year int) ([]MonthlyVisitors, error)
}

type visitorRepo struct {
	db *gorm.DB
}

func NewVisitorRepo(db *gorm.DB) VisitorRepository {
	return &visitorRepo{db}
}

func (r *visitorRepo) Record(visitor *model.Visitor) error {
	return r.db.Create(visitor).Error
}

func (r *visitorRepo) CountSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.Visitor{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}

func (r *visitorRepo) FindAll() ([]model.Visitor, error) {
	var visitors []model.Visitor
	err := r.db.Order("created_at DESC").Find(&visitors).Error
	return visitors, err
}

func (r *visitorRepo) MonthlyCounts(year int) ([]MonthlyVisitors, error) {
	var results []MonthlyVisitors

	rows, err := r.db.Model(&model.Visitor{}).
		Select("TO_CHAR(created_at, 'YYYY-MM') as month, COUNT(*) as count").
		Where("EXTRACT(YEAR FROM created_at) = ?", year).
		Group("TO_CHAR(created_at, 'YYYY-MM')").
		Order("month ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data MonthlyVisitors
		if err := rows.Scan(&data.Month, &data.Count); err != nil {
			return nil, err
		}
		results = append(results, data)
	}
	return results, rows.Err()
}
