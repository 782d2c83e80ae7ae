// Package opinionrepo provides data transfer objects and mapping functions
// for opinion persistence.
package opinionrepo

import (
	"time"

	"shop/internal/core/domain/model/opinion"
)

// OpinionDTO represents the database structure for persisting opinions.
// The unique index on order_id enforces one opinion per order at the
// storage level.
type OpinionDTO struct {
	ID        int    `gorm:"primaryKey"`
	OrderID   int    `gorm:"uniqueIndex"`
	Rating    int    `gorm:"not null"`
	Content   string `gorm:"not null"`
	CreatedAt time.Time
}

// TableName specifies the database table name for opinion entities.
func (OpinionDTO) TableName() string {
	return "opinions"
}

// fromDomain converts an opinion to its database representation.
// The id and creation timestamp are left for the database to assign.
func fromDomain(aggregate *opinion.Opinion) OpinionDTO {
	return OpinionDTO{
		OrderID: aggregate.OrderID(),
		Rating:  aggregate.Rating(),
		Content: aggregate.Content(),
	}
}

// toDomain converts a database DTO to an opinion.
func toDomain(dto OpinionDTO) (*opinion.Opinion, error) {
	return opinion.RestoreOpinion(dto.ID, dto.OrderID, dto.Rating, dto.Content, dto.CreatedAt)
}
