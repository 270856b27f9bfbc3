package port

import (
	"context"

	"github.com/dmaia/sweetshop/internal/core/domain"
	"github.com/dmaia/sweetshop/internal/core/listing"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type ProductPort interface {
	Create(ctx context.Context, product *domain.Product, event domain.Event) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Product, error)
	List(ctx context.Context, params listing.Params) ([]*domain.Product, error)
	Update(ctx context.Context, id domain.ID, fields map[string]any, event domain.Event) error
	Delete(ctx context.Context, id domain.ID, event domain.Event) error

	WithinRadius(ctx context.Context, lat, lng, radius float64) ([]*domain.Product, error)
	DistancesFrom(ctx context.Context, lat, lng, multiplier float64) ([]domain.ProductDistance, error)
	ConfectionerStats(ctx context.Context) ([]domain.ConfectionerStats, error)
}
