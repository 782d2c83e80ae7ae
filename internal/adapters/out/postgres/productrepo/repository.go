// Package productrepo provides read access to the product catalog for order
// validation. Catalog management itself lives outside this service; orders
// only need to know which product ids exist and what they are called.
package productrepo

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductDTO represents the database structure for products.
type ProductDTO struct {
	ID         int             `gorm:"primaryKey"`
	Name       string          `gorm:"not null"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2)"`
	CategoryID int             `gorm:"index"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// CategoryDTO represents the database structure for product categories.
type CategoryDTO struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

// TableName specifies the database table name for category entities.
func (CategoryDTO) TableName() string {
	return "categories"
}

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// ExistingIDs returns the subset of the given product ids present in the
// catalog.
func (r *GormProductRepository) ExistingIDs(ctx context.Context, ids []int) ([]int, error) {
	if len(ids) == 0 {
		return []int{}, nil
	}

	existing := make([]int, 0, len(ids))
	err := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id IN ?", ids).
		Pluck("id", &existing).Error
	if err != nil {
		return nil, err
	}

	return existing, nil
}
