package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/gosimple/slug"

	"github.com/dmaia/sweetshop/internal/core/serviceerrors"
)

const (
	ProductNameMinLen = 4
	ProductNameMaxLen = 40
	ProductMaxImages  = 3
	DefaultRating     = 5.0
	MaxRating         = 10.0
)

type Product struct {
	ID                ID
	Name              string
	Slug              string
	Price             float64
	PriceDiscount     *float64
	AverageRating     float64
	RatingsQuantity   int
	Description       string
	ProductImage      string
	Images            []string
	PurchaseLocations []Location
	ConfectionerID    ID
	Confectioner      *User
	Reviews           []Review
	CreationDate      time.Time
}

// Location is a purchase point on the globe. Coordinates are GeoJSON
// order: longitude first, then latitude.
type Location struct {
	Coordinates [2]float64
	Address     string
	Description string
	InStock     bool
}

func NewProduct(name, description, productImage string, price float64) *Product {
	p := &Product{
		Name:          name,
		Price:         price,
		Description:   description,
		ProductImage:  productImage,
		AverageRating: DefaultRating,
		CreationDate:  time.Now(),
	}
	p.Slug = slug.Make(name)
	return p
}

// Rename changes the product name and keeps the slug consistent with it.
func (p *Product) Rename(name string) {
	p.Name = name
	p.Slug = slug.Make(name)
}

// SetRating stores a rating quantized to one decimal place.
func (p *Product) SetRating(value float64) {
	p.AverageRating = math.Round(value*10) / 10
}

func (p *Product) Validate() error {
	if len(p.Name) < ProductNameMinLen || len(p.Name) > ProductNameMaxLen {
		return serviceerrors.NewInvalidRequestError(
			fmt.Sprintf("product name must be between %d and %d characters", ProductNameMinLen, ProductNameMaxLen))
	}
	if p.Price <= 0 {
		return serviceerrors.NewInvalidRequestError("product price must be positive")
	}
	if p.PriceDiscount != nil && *p.PriceDiscount >= p.Price {
		return serviceerrors.NewUnprocessableEntityError("discount price must be below the regular price")
	}
	if p.AverageRating < 0 || p.AverageRating > MaxRating {
		return serviceerrors.NewInvalidRequestError("rating must be between 0.0 and 10.0")
	}
	if p.RatingsQuantity < 0 {
		return serviceerrors.NewInvalidRequestError("ratings quantity must not be negative")
	}
	if p.Description == "" {
		return serviceerrors.NewInvalidRequestError("product description is required")
	}
	if p.ProductImage == "" {
		return serviceerrors.NewInvalidRequestError("product image is required")
	}
	if len(p.Images) > ProductMaxImages {
		return serviceerrors.NewInvalidRequestError(
			fmt.Sprintf("a product may carry at most %d secondary images", ProductMaxImages))
	}
	return nil
}

// ProductDistance is the distance-ranking projection: just the name and
// the computed distance from the reference point.
type ProductDistance struct {
	ID       ID
	Name     string
	Distance float64
}

// ConfectionerStats is one group of the product statistics aggregation.
type ConfectionerStats struct {
	Confectioner string
	NumProducts  int
	TotalRatings int
	AvgRating    float64
	AvgPrice     float64
	MinPrice     float64
	MaxPrice     float64
}
