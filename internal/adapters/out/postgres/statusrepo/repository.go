// Package statusrepo provides read access to the order status vocabulary.
// The composition root loads the vocabulary once at startup to build the
// status catalog every handler resolves against.
package statusrepo

import (
	"context"

	"shop/internal/core/domain/model/status"

	"gorm.io/gorm"
)

// StatusDTO represents the database structure for order statuses.
type StatusDTO struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"not null;uniqueIndex"`
}

// TableName specifies the database table name for status entities.
func (StatusDTO) TableName() string {
	return "statuses"
}

// GormStatusRepository implements StatusRepository using GORM.
type GormStatusRepository struct {
	db *gorm.DB
}

// NewGormStatusRepository creates a new GORM status repository.
func NewGormStatusRepository(db *gorm.DB) *GormStatusRepository {
	return &GormStatusRepository{db: db}
}

// GetAll returns every status sorted by id.
func (r *GormStatusRepository) GetAll(ctx context.Context) ([]status.Status, error) {
	var dtos []StatusDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	statuses := make([]status.Status, 0, len(dtos))
	for _, dto := range dtos {
		statuses = append(statuses, status.Status{ID: dto.ID, Name: dto.Name})
	}

	return statuses, nil
}
