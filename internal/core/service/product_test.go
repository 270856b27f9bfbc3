package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/dmaia/sweetshop/internal/core/domain"
	"github.com/dmaia/sweetshop/internal/core/dto"
	"github.com/dmaia/sweetshop/internal/core/listing"
	"github.com/dmaia/sweetshop/internal/core/port/mock"
	"github.com/dmaia/sweetshop/internal/core/serviceerrors"
)

func setupProductService(t *testing.T) (*ProductService, *mock.MockProductPort, *mock.MockCachePort[domain.Product]) {
	ctrl := gomock.NewController(t)
	productRepo := mock.NewMockProductPort(ctrl)
	cache := mock.NewMockCachePort[domain.Product](ctrl)
	svc := NewProductService(productRepo, cache)
	return svc, productRepo, cache
}

func floatPtr(v float64) *float64 { return &v }

func TestProductService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, productRepo, _ := setupProductService(t)
		req := &dto.CreateProductRequest{
			Name:         "Choco Cake",
			Description:  "Rich chocolate cake",
			ProductImage: "cover.jpeg",
			Price:        29.99,
		}

		productRepo.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *domain.Product, event domain.Event) error {
				if event.GetName() != domain.EventProductCreated {
					t.Fatalf("expected created event, got %q", event.GetName())
				}
				p.ID = domain.ID("aabbccddee112233aabbccdd")
				return nil
			})

		product, err := svc.Create(context.Background(), req)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if product.Name != req.Name {
			t.Fatalf("expected name %q, got %q", req.Name, product.Name)
		}
		if product.Slug != "choco-cake" {
			t.Fatalf("expected slug 'choco-cake', got %q", product.Slug)
		}
		if product.AverageRating != domain.DefaultRating {
			t.Fatalf("expected default rating %v, got %v", domain.DefaultRating, product.AverageRating)
		}
	})

	t.Run("rejects too short name without touching the repository", func(t *testing.T) {
		svc, _, _ := setupProductService(t)
		req := &dto.CreateProductRequest{
			Name:         "abc",
			Description:  "Too short",
			ProductImage: "cover.jpeg",
			Price:        10,
		}

		_, err := svc.Create(context.Background(), req)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})

	t.Run("rejects malformed confectioner reference", func(t *testing.T) {
		svc, _, _ := setupProductService(t)
		req := &dto.CreateProductRequest{
			Name:         "Valid Name",
			Description:  "Valid",
			ProductImage: "cover.jpeg",
			Price:        10,
			Confectioner: "not-a-hex-id",
		}

		_, err := svc.Create(context.Background(), req)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		svc, productRepo, _ := setupProductService(t)
		req := &dto.CreateProductRequest{
			Name:         "Choco Cake",
			Description:  "Rich chocolate cake",
			ProductImage: "cover.jpeg",
			Price:        29.99,
		}

		productRepo.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("insert failed"))

		product, err := svc.Create(context.Background(), req)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if product != nil {
			t.Fatal("expected nil product on error")
		}
	})
}

func TestProductService_GetByID(t *testing.T) {
	productID := domain.ID("aabbccddee112233aabbccdd")

	t.Run("cache hit skips the repository", func(t *testing.T) {
		svc, _, cache := setupProductService(t)
		cached := &domain.Product{ID: productID, Name: "Cached Cake"}

		cache.EXPECT().Get(gomock.Any(), "product:"+string(productID)).Return(cached, nil)

		product, err := svc.GetByID(context.Background(), productID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if product.Name != "Cached Cake" {
			t.Fatalf("expected cached product, got %q", product.Name)
		}
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		svc, productRepo, cache := setupProductService(t)
		expected := &domain.Product{ID: productID, Name: "Fresh Cake"}

		cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
		productRepo.EXPECT().GetByID(gomock.Any(), productID).Return(expected, nil)
		cache.EXPECT().Set(gomock.Any(), "product:"+string(productID), expected, productCacheTTL).Return(nil)

		product, err := svc.GetByID(context.Background(), productID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if product.ID != expected.ID {
			t.Fatalf("expected id %s, got %s", expected.ID, product.ID)
		}
	})

	t.Run("not found", func(t *testing.T) {
		svc, productRepo, cache := setupProductService(t)

		cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
		productRepo.EXPECT().GetByID(gomock.Any(), productID).
			Return(nil, serviceerrors.NewNotFoundError("product not found"))

		_, err := svc.GetByID(context.Background(), productID)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})
}

func TestProductService_List(t *testing.T) {
	t.Run("passes parsed params to the repository", func(t *testing.T) {
		svc, productRepo, _ := setupProductService(t)

		productRepo.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params listing.Params) ([]*domain.Product, error) {
				if params.Limit != 100 || params.Page != 1 {
					t.Fatalf("expected default pagination, got page=%d limit=%d", params.Page, params.Limit)
				}
				if len(params.Filters) != 1 || params.Filters[0].Field != "price" || params.Filters[0].Op != listing.OpGTE {
					t.Fatalf("unexpected filters: %+v", params.Filters)
				}
				return nil, nil
			})

		_, err := svc.List(context.Background(), map[string]string{"price[gte]": "200"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("rejects malformed parameters without touching the repository", func(t *testing.T) {
		svc, _, _ := setupProductService(t)

		_, err := svc.List(context.Background(), map[string]string{"price[between]": "1"})
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})
}

func TestProductService_TopCheap(t *testing.T) {
	svc, productRepo, _ := setupProductService(t)

	productRepo.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params listing.Params) ([]*domain.Product, error) {
			if params.Limit != 5 {
				t.Fatalf("expected limit 5, got %d", params.Limit)
			}
			want := []listing.SortKey{{Field: "averageRating", Desc: true}, {Field: "price"}}
			if len(params.Sort) != 2 || params.Sort[0] != want[0] || params.Sort[1] != want[1] {
				t.Fatalf("unexpected sort: %+v", params.Sort)
			}
			if len(params.Fields) != 3 {
				t.Fatalf("expected 3 projected fields, got %v", params.Fields)
			}
			return nil, nil
		})

	if _, err := svc.TopCheap(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestProductService_Update(t *testing.T) {
	productID := domain.ID("aabbccddee112233aabbccdd")
	stored := func() *domain.Product {
		return &domain.Product{
			ID:           productID,
			Name:         "Choco Cake",
			Slug:         "choco-cake",
			Price:        20,
			Description:  "Rich",
			ProductImage: "cover.jpeg",
		}
	}

	t.Run("rename keeps the slug consistent and invalidates the cache", func(t *testing.T) {
		svc, productRepo, cache := setupProductService(t)

		productRepo.EXPECT().GetByID(gomock.Any(), productID).Return(stored(), nil)
		productRepo.EXPECT().
			Update(gomock.Any(), productID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.ID, fields map[string]any, event domain.Event) error {
				if fields["name"] != "Berry Tart" || fields["slug"] != "berry-tart" {
					t.Fatalf("unexpected fields: %+v", fields)
				}
				if event.GetName() != domain.EventProductUpdated {
					t.Fatalf("expected updated event, got %q", event.GetName())
				}
				return nil
			})
		cache.EXPECT().Del(gomock.Any(), "product:"+string(productID)).Return(nil)

		product, err := svc.Update(context.Background(), productID, &dto.UpdateProductRequest{Name: "Berry Tart"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if product.Slug != "berry-tart" {
			t.Fatalf("expected slug 'berry-tart', got %q", product.Slug)
		}
	})

	t.Run("quantizes the rating to one decimal", func(t *testing.T) {
		svc, productRepo, cache := setupProductService(t)

		productRepo.EXPECT().GetByID(gomock.Any(), productID).Return(stored(), nil)
		productRepo.EXPECT().
			Update(gomock.Any(), productID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.ID, fields map[string]any, _ domain.Event) error {
				if fields["averageRating"] != 4.8 {
					t.Fatalf("expected rating 4.8, got %v", fields["averageRating"])
				}
				return nil
			})
		cache.EXPECT().Del(gomock.Any(), gomock.Any()).Return(nil)

		product, err := svc.Update(context.Background(), productID, &dto.UpdateProductRequest{
			AverageRating: floatPtr(4.76),
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if product.AverageRating != 4.8 {
			t.Fatalf("expected rating 4.8, got %v", product.AverageRating)
		}
	})

	t.Run("empty patch returns the product unchanged", func(t *testing.T) {
		svc, productRepo, _ := setupProductService(t)

		productRepo.EXPECT().GetByID(gomock.Any(), productID).Return(stored(), nil)

		product, err := svc.Update(context.Background(), productID, &dto.UpdateProductRequest{})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if product.Name != "Choco Cake" {
			t.Fatalf("expected unchanged product, got %q", product.Name)
		}
	})

	t.Run("rejects discount at or above the price", func(t *testing.T) {
		svc, productRepo, _ := setupProductService(t)

		productRepo.EXPECT().GetByID(gomock.Any(), productID).Return(stored(), nil)

		_, err := svc.Update(context.Background(), productID, &dto.UpdateProductRequest{
			PriceDiscount: floatPtr(20),
		})
		if !serviceerrors.IsOfKind(err, serviceerrors.KindUnprocessableEntity) {
			t.Fatalf("expected KindUnprocessableEntity, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		svc, productRepo, _ := setupProductService(t)

		productRepo.EXPECT().GetByID(gomock.Any(), productID).
			Return(nil, serviceerrors.NewNotFoundError("product not found"))

		_, err := svc.Update(context.Background(), productID, &dto.UpdateProductRequest{Name: "New Name"})
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})
}

func TestProductService_Delete(t *testing.T) {
	productID := domain.ID("aabbccddee112233aabbccdd")

	t.Run("deletes and invalidates the cache", func(t *testing.T) {
		svc, productRepo, cache := setupProductService(t)

		productRepo.EXPECT().
			Delete(gomock.Any(), productID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.ID, event domain.Event) error {
				if event.GetName() != domain.EventProductDeleted {
					t.Fatalf("expected deleted event, got %q", event.GetName())
				}
				return nil
			})
		cache.EXPECT().Del(gomock.Any(), "product:"+string(productID)).Return(nil)

		if err := svc.Delete(context.Background(), productID); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("repository error leaves the cache alone", func(t *testing.T) {
		svc, productRepo, _ := setupProductService(t)

		productRepo.EXPECT().
			Delete(gomock.Any(), productID, gomock.Any()).
			Return(serviceerrors.NewNotFoundError("product not found"))

		err := svc.Delete(context.Background(), productID)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})
}

func TestProductService_ProductsWithin(t *testing.T) {
	t.Run("converts the distance to an angular radius", func(t *testing.T) {
		svc, productRepo, _ := setupProductService(t)

		productRepo.EXPECT().
			WithinRadius(gomock.Any(), 34.1117, -118.1136, domain.AngularRadius(233, "mi")).
			Return(nil, nil)

		_, err := svc.ProductsWithin(context.Background(), "233", "34.1117,-118.1136", "mi")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("rejects malformed center before querying", func(t *testing.T) {
		svc, _, _ := setupProductService(t)

		_, err := svc.ProductsWithin(context.Background(), "233", "34.1117", "mi")
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})

	t.Run("rejects non-numeric distance", func(t *testing.T) {
		svc, _, _ := setupProductService(t)

		_, err := svc.ProductsWithin(context.Background(), "far", "34.1117,-118.1136", "mi")
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})
}

func TestProductService_Distances(t *testing.T) {
	t.Run("passes the unit multiplier through", func(t *testing.T) {
		svc, productRepo, _ := setupProductService(t)

		productRepo.EXPECT().
			DistancesFrom(gomock.Any(), 34.1117, -118.1136, domain.DistanceMultiplier("km")).
			Return([]domain.ProductDistance{{Name: "Near"}}, nil)

		distances, err := svc.Distances(context.Background(), "34.1117,-118.1136", "km")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(distances) != 1 {
			t.Fatalf("expected 1 distance, got %d", len(distances))
		}
	})

	t.Run("rejects malformed center", func(t *testing.T) {
		svc, _, _ := setupProductService(t)

		_, err := svc.Distances(context.Background(), "not,numbers", "km")
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})
}

func TestProductService_Stats(t *testing.T) {
	svc, productRepo, _ := setupProductService(t)

	productRepo.EXPECT().
		ConfectionerStats(gomock.Any()).
		Return([]domain.ConfectionerStats{{Confectioner: "AABB", NumProducts: 2}}, nil)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(stats) != 1 || stats[0].NumProducts != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
