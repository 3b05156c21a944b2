package model

import (
	domain "github.com/arogyasagar/storefront/internal/model"
)

// Catalog is the read-only view of the store the assistant tools query.
// Implementations must be safe for concurrent use.
type Catalog interface {
	SearchProducts(query, category string, max int) []domain.Product
	Product(id string) (domain.Product, bool)
	Doctors() []domain.Doctor
}

// ProductSummary is the compact product shape returned to the model.
type ProductSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    int     `json:"price"`
	Rating   float64 `json:"rating"`
	InStock  bool    `json:"in_stock"`
}

func Summarize(p domain.Product) ProductSummary {
	return ProductSummary{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Price:    p.Price,
		Rating:   p.Rating,
		InStock:  p.InStock,
	}
}

type DoctorSummary struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Specialty  string  `json:"specialty"`
	Experience int     `json:"experience_years"`
	Price      int     `json:"price"`
	Rating     float64 `json:"rating"`
	Available  bool    `json:"available"`
}
