// Package productrepo provides data transfer objects and mapping
// functions for catalog persistence.
package productrepo

import (
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting catalog
// products.
type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"index"`
	Description string
	Price       float64
	Stock       string
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID().Bytes(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price(),
		Stock:       p.Stock().String(),
		IsAvailable: p.IsAvailable(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	stock, err := product.StockStatusFromString(dto.Stock)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		dto.Name,
		dto.Description,
		dto.Price,
		stock,
		dto.IsAvailable,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
