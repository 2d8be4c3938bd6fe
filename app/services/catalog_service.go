package services

import (
	"context"
	"time"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/pkg/cache"
	"github.com/shashiranjanraj/vastra/pkg/logger"
)

const (
	cacheKeyAll     = "catalog:all"
	cacheKeyLatest  = "catalog:latest"
	cacheKeyPopular = "catalog:popular:women"

	catalogTTL = 5 * time.Minute

	latestCount  = 8
	popularCount = 4
)

// CatalogService manages the product catalog. Listings read through
// the cache when one is configured; writes invalidate every listing
// key so stale pages never outlive a mutation.
type CatalogService struct {
	products repositories.ProductStore
}

func NewCatalogService(products repositories.ProductStore) *CatalogService {
	return &CatalogService{products: products}
}

// Add assigns the next catalog id, stamps the creation time and
// persists the product.
func (s *CatalogService) Add(ctx context.Context, p *models.Product) error {
	id, err := s.products.NextID(ctx)
	if err != nil {
		return err
	}
	p.CatalogID = id
	p.Date = time.Now()
	p.Available = true

	if err := s.products.Create(ctx, p); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Remove deletes a product by catalog id. Removing an absent id
// succeeds.
func (s *CatalogService) Remove(ctx context.Context, catalogID int) error {
	if err := s.products.DeleteByCatalogID(ctx, catalogID); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// All returns the whole catalog in insertion order.
func (s *CatalogService) All(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if cache.Get(cacheKeyAll, &products) {
		return products, nil
	}

	products, err := s.products.All(ctx)
	if err != nil {
		return nil, err
	}
	s.remember(ctx, cacheKeyAll, products)
	return products, nil
}

// Latest returns the newest products in insertion order.
func (s *CatalogService) Latest(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if cache.Get(cacheKeyLatest, &products) {
		return products, nil
	}

	products, err := s.products.Latest(ctx, latestCount)
	if err != nil {
		return nil, err
	}
	s.remember(ctx, cacheKeyLatest, products)
	return products, nil
}

// PopularInWomen returns the first few products in the women category.
func (s *CatalogService) PopularInWomen(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if cache.Get(cacheKeyPopular, &products) {
		return products, nil
	}

	products, err := s.products.ByCategory(ctx, "women", popularCount)
	if err != nil {
		return nil, err
	}
	s.remember(ctx, cacheKeyPopular, products)
	return products, nil
}

func (s *CatalogService) remember(ctx context.Context, key string, products []models.Product) {
	if err := cache.Set(key, products, catalogTTL); err != nil {
		logger.WithCtx(ctx).Warn("catalog cache set failed", "key", key, "error", err)
	}
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if err := cache.Del(cacheKeyAll, cacheKeyLatest, cacheKeyPopular); err != nil {
		logger.WithCtx(ctx).Warn("catalog cache invalidation failed", "error", err)
	}
}
