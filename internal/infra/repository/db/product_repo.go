package db

import (
	"context"
	"errors"

	"github.com/riteshp0/DinoKicks/internal/domain/model"
	"gorm.io/gorm"
)

var (
	// ErrProductNotFound 商品不存在
	ErrProductNotFound = errors.New("product not found")
)

type IProductRepository interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	CreateProductsBatch(ctx context.Context, products []model.Product) error
	GetProductByID(ctx context.Context, id int) (*model.Product, error)
	GetProductsByIDs(ctx context.Context, ids []int) ([]model.Product, error)
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	GetFeaturedProducts(ctx context.Context) ([]model.Product, error)
	GetProductsByCollection(ctx context.Context, collection string) ([]model.Product, error)
	GetProductsByCategory(ctx context.Context, category string) ([]model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) error
	CountProducts(ctx context.Context) (int64, error)
	HardDeleteProduct(ctx context.Context, id int) error
}

type ProductRepo struct {
	db *DbDao
}

func NewProductRepo(db *DbDao) *ProductRepo {
	return &ProductRepo{db: db}
}

func (s *ProductRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Create(product).Error
}

// 批量創建商品 seed用
func (s *ProductRepo) CreateProductsBatch(ctx context.Context, products []model.Product) error {
	return s.db.WithContext(ctx).Create(&products).Error
}

func (s *ProductRepo) GetProductByID(ctx context.Context, id int) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetProductsByIDs 批次查詢, 避免逐項查商品的N+1
func (s *ProductRepo) GetProductsByIDs(ctx context.Context, ids []int) ([]model.Product, error) {
	var products []model.Product
	if len(ids) == 0 {
		return products, nil
	}
	err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error
	return products, err
}

func (s *ProductRepo) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := s.db.WithContext(ctx).Find(&products).Error
	return products, err
}

func (s *ProductRepo) GetFeaturedProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := s.db.WithContext(ctx).Where("is_featured = ?", true).Find(&products).Error
	return products, err
}

// 大小寫不敏感精確比對
func (s *ProductRepo) GetProductsByCollection(ctx context.Context, collection string) ([]model.Product, error) {
	var products []model.Product
	err := s.db.WithContext(ctx).Where("LOWER(collection) = LOWER(?)", collection).Find(&products).Error
	return products, err
}

func (s *ProductRepo) GetProductsByCategory(ctx context.Context, category string) ([]model.Product, error) {
	var products []model.Product
	err := s.db.WithContext(ctx).Where("LOWER(category) = LOWER(?)", category).Find(&products).Error
	return products, err
}

// Update - 更新商品
func (s *ProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Save(product).Error
}

func (s *ProductRepo) CountProducts(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&model.Product{}).Count(&total).Error
	return total, err
}

// Delete - 硬刪除商品
func (s *ProductRepo) HardDeleteProduct(ctx context.Context, id int) error {
	return s.db.WithContext(ctx).Unscoped().Delete(&model.Product{}, id).Error
}

var _ IProductRepository = (*ProductRepo)(nil)
