package service

import (
	"context"
	"errors"

	"github.com/riteshp0/DinoKicks/internal/domain/model"
	"github.com/riteshp0/DinoKicks/internal/infra/repository/db"
	"github.com/riteshp0/DinoKicks/internal/pkg/apperr"
)

type ICatalogService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id int) (*model.Product, error)
	ListFeatured(ctx context.Context) ([]model.Product, error)
	ListByCollection(ctx context.Context, collection string) ([]model.Product, error)
	ListByCategory(ctx context.Context, category string) ([]model.Product, error)
}

type CatalogService struct {
	productRepo db.IProductRepository
}

func NewCatalogService(productRepo db.IProductRepository) *CatalogService {
	return &CatalogService{productRepo: productRepo}
}

func (c *CatalogService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := c.productRepo.GetAllProducts(ctx)
	if err != nil {
		return nil, apperr.Internal("error fetching products", err)
	}
	return emptyIfNil(products), nil
}

func (c *CatalogService) GetProduct(ctx context.Context, id int) (*model.Product, error) {
	product, err := c.productRepo.GetProductByID(ctx, id)
	if errors.Is(err, db.ErrProductNotFound) {
		return nil, apperr.NotFound("Product not found")
	}
	if err != nil {
		return nil, apperr.Internal("error fetching product", err)
	}
	return product, nil
}

func (c *CatalogService) ListFeatured(ctx context.Context) ([]model.Product, error) {
	products, err := c.productRepo.GetFeaturedProducts(ctx)
	if err != nil {
		return nil, apperr.Internal("error fetching featured products", err)
	}
	return emptyIfNil(products), nil
}

func (c *CatalogService) ListByCollection(ctx context.Context, collection string) ([]model.Product, error) {
	products, err := c.productRepo.GetProductsByCollection(ctx, collection)
	if err != nil {
		return nil, apperr.Internal("error fetching collection", err)
	}
	return emptyIfNil(products), nil
}

func (c *CatalogService) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	products, err := c.productRepo.GetProductsByCategory(ctx, category)
	if err != nil {
		return nil, apperr.Internal("error fetching category", err)
	}
	return emptyIfNil(products), nil
}

// 查無資料回空陣列不回null, 前端契約
func emptyIfNil(products []model.Product) []model.Product {
	if products == nil {
		return []model.Product{}
	}
	return products
}

var _ ICatalogService = (*CatalogService)(nil)
