package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dmaia/sweetshop/internal/core/domain"
	"github.com/dmaia/sweetshop/internal/core/dto"
	"github.com/dmaia/sweetshop/internal/core/listing"
	"github.com/dmaia/sweetshop/internal/core/logger"
	"github.com/dmaia/sweetshop/internal/core/port"
	"github.com/dmaia/sweetshop/internal/core/serviceerrors"
)

const productCacheTTL = 15 * time.Minute

type ProductService struct {
	products port.ProductPort
	cache    port.CachePort[domain.Product]
}

func NewProductService(products port.ProductPort, cache port.CachePort[domain.Product]) *ProductService {
	return &ProductService{products: products, cache: cache}
}

func (s *ProductService) cacheKey(id domain.ID) string {
	return fmt.Sprintf("product:%s", id)
}

func (s *ProductService) Create(ctx context.Context, request *dto.CreateProductRequest) (*domain.Product, error) {
	product := domain.NewProduct(request.Name, request.Description, request.ProductImage, request.Price)
	product.PriceDiscount = request.PriceDiscount
	product.Images = request.Images
	product.PurchaseLocations = toLocations(request.PurchaseLocations)

	if request.Confectioner != "" {
		if !domain.ValidateID(request.Confectioner) {
			return nil, serviceerrors.NewInvalidRequestError("invalid confectioner ID")
		}
		product.ConfectionerID = domain.ID(request.Confectioner)
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := s.products.Create(ctx, product, domain.NewProductCreatedEvent(product)); err != nil {
		logger.Error(ctx, "product: create failed", err, map[string]any{
			"name":  request.Name,
			"price": request.Price,
		})
		return nil, err
	}

	logger.Info(ctx, "Product created", map[string]any{"product_id": product.ID, "slug": product.Slug})
	return product, nil
}

func (s *ProductService) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	cached, err := s.cache.Get(ctx, s.cacheKey(id))
	if err != nil {
		logger.Error(ctx, "cache: get product failed", err, map[string]any{"product_id": id})
	}
	if cached != nil {
		return cached, nil
	}

	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, s.cacheKey(id), product, productCacheTTL); err != nil {
		logger.Error(ctx, "cache: set product failed", err, map[string]any{"product_id": id})
	}

	return product, nil
}

// List runs the generic listing flow over the raw request parameters.
func (s *ProductService) List(ctx context.Context, raw map[string]string) ([]*domain.Product, error) {
	params, err := listing.Parse(raw)
	if err != nil {
		return nil, err
	}
	return s.products.List(ctx, params)
}

// TopCheap is the curated alias listing: the five best-rated products,
// cheapest first among equals, trimmed to the fields the storefront shows.
func (s *ProductService) TopCheap(ctx context.Context) ([]*domain.Product, error) {
	return s.List(ctx, map[string]string{
		"limit":  "5",
		"sort":   "-averageRating,price",
		"fields": "name,price,averageRating",
	})
}

func (s *ProductService) Update(ctx context.Context, id domain.ID, request *dto.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if request.Name != "" {
		product.Rename(request.Name)
		fields["name"] = product.Name
		fields["slug"] = product.Slug
	}
	if request.Price != nil {
		product.Price = *request.Price
		fields["price"] = product.Price
	}
	if request.PriceDiscount != nil {
		product.PriceDiscount = request.PriceDiscount
		fields["priceDiscount"] = *request.PriceDiscount
	}
	if request.AverageRating != nil {
		product.SetRating(*request.AverageRating)
		fields["averageRating"] = product.AverageRating
	}
	if request.RatingsQuantity != nil {
		product.RatingsQuantity = *request.RatingsQuantity
		fields["ratingsQuantity"] = product.RatingsQuantity
	}
	if request.Description != nil {
		product.Description = *request.Description
		fields["description"] = product.Description
	}
	if request.ProductImage != nil {
		product.ProductImage = *request.ProductImage
		fields["productImage"] = product.ProductImage
	}
	if request.Images != nil {
		product.Images = request.Images
		fields["images"] = product.Images
	}
	if request.PurchaseLocations != nil {
		product.PurchaseLocations = toLocations(request.PurchaseLocations)
		fields["purchaseLocations"] = product.PurchaseLocations
	}

	if len(fields) == 0 {
		return product, nil
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := s.products.Update(ctx, id, fields, domain.NewProductUpdatedEvent(product)); err != nil {
		return nil, err
	}

	if err := s.cache.Del(ctx, s.cacheKey(id)); err != nil {
		logger.Error(ctx, "cache: invalidate product failed", err, map[string]any{"product_id": id})
	}

	logger.Info(ctx, "Product updated", map[string]any{"product_id": id})
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id domain.ID) error {
	if err := s.products.Delete(ctx, id, domain.NewProductDeletedEvent(id)); err != nil {
		return err
	}

	if err := s.cache.Del(ctx, s.cacheKey(id)); err != nil {
		logger.Error(ctx, "cache: invalidate product failed", err, map[string]any{"product_id": id})
	}

	logger.Info(ctx, "Product deleted", map[string]any{"product_id": id})
	return nil
}

// ProductsWithin resolves the radius search: the distance and center are
// validated here, before any query is built.
func (s *ProductService) ProductsWithin(ctx context.Context, distance, latlng, unit string) ([]*domain.Product, error) {
	dist, err := strconv.ParseFloat(distance, 64)
	if err != nil || dist < 0 {
		return nil, serviceerrors.NewInvalidRequestError("distance must be a non-negative number")
	}

	lat, lng, err := domain.ParseLatLng(latlng)
	if err != nil {
		return nil, err
	}

	return s.products.WithinRadius(ctx, lat, lng, domain.AngularRadius(dist, unit))
}

func (s *ProductService) Distances(ctx context.Context, latlng, unit string) ([]domain.ProductDistance, error) {
	lat, lng, err := domain.ParseLatLng(latlng)
	if err != nil {
		return nil, err
	}

	return s.products.DistancesFrom(ctx, lat, lng, domain.DistanceMultiplier(unit))
}

func (s *ProductService) Stats(ctx context.Context) ([]domain.ConfectionerStats, error) {
	return s.products.ConfectionerStats(ctx)
}

func toLocations(requests []dto.LocationRequest) []domain.Location {
	locations := make([]domain.Location, len(requests))
	for i, request := range requests {
		locations[i] = domain.Location{
			Coordinates: request.Coordinates,
			Address:     request.Address,
			Description: request.Description,
			InStock:     request.InStock,
		}
	}
	return locations
}
