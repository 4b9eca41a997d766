package service

import (
	"context"
	"errors"

	"github.com/riteshp0/DinoKicks/internal/domain/model"
	"github.com/riteshp0/DinoKicks/internal/infra/repository/db"
	"github.com/riteshp0/DinoKicks/internal/pkg/apperr"
	"github.com/shopspring/decimal"
)

// 固定運費政策: 全站免運. 稅率固定8%, 不分地區
var (
	taxRate      = decimal.NewFromFloat(0.08)
	zeroShipping = decimal.Zero
)

type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

type ICartService interface {
	ResolveCart(ctx context.Context, sessionID string) (*model.Cart, error)
	ListItems(ctx context.Context, cartID int) ([]model.EnrichedCartItem, error)
	AddItem(ctx context.Context, cartID, productID, quantity int, color, size string) (*model.CartItem, error)
	SetQuantity(ctx context.Context, itemID, quantity int) (*model.CartItem, error)
	RemoveItem(ctx context.Context, itemID int) error
}

type CartService struct {
	cartRepo    db.ICartRepository
	productRepo db.IProductRepository
}

func NewCartService(cartRepo db.ICartRepository, productRepo db.IProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// ResolveCart 以session取購物車, 不存在就建立 (guest購物車不綁user)
func (c *CartService) ResolveCart(ctx context.Context, sessionID string) (*model.Cart, error) {
	if sessionID == "" {
		return nil, apperr.InvalidArgument("Session ID is required")
	}
	cart, err := c.cartRepo.FindOrCreateCart(ctx, sessionID)
	if err != nil {
		return nil, apperr.Internal("error fetching cart", err)
	}
	return cart, nil
}

// ListItems 讀取時join商品資訊, 一次IN查詢批次取回
// 購物車指向已刪除商品視為資料異常, 回 ProductMissing
func (c *CartService) ListItems(ctx context.Context, cartID int) ([]model.EnrichedCartItem, error) {
	items, err := c.cartRepo.GetCartItems(ctx, cartID)
	if err != nil {
		return nil, apperr.Internal("error fetching cart items", err)
	}

	productIDs := make([]int, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}
	products, err := c.productRepo.GetProductsByIDs(ctx, productIDs)
	if err != nil {
		return nil, apperr.Internal("error fetching cart products", err)
	}
	productMap := make(map[int]*model.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	enriched := make([]model.EnrichedCartItem, 0, len(items))
	for _, item := range items {
		product, ok := productMap[item.ProductID]
		if !ok {
			return nil, apperr.ProductMissing("cart item references a missing product")
		}
		enriched = append(enriched, model.EnrichedCartItem{CartItem: item, Product: product})
	}
	return enriched, nil
}

func (c *CartService) AddItem(ctx context.Context, cartID, productID, quantity int, color, size string) (*model.CartItem, error) {
	if quantity < 1 {
		return nil, apperr.InvalidArgument("Invalid quantity")
	}

	// 商品必須存在
	_, err := c.productRepo.GetProductByID(ctx, productID)
	if errors.Is(err, db.ErrProductNotFound) {
		return nil, apperr.NotFound("Product not found")
	}
	if err != nil {
		return nil, apperr.Internal("error fetching product", err)
	}

	item, err := c.cartRepo.UpsertCartItem(ctx, &model.CartItem{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
		Color:     color,
		Size:      size,
	})
	if err != nil {
		return nil, apperr.Internal("error adding item to cart", err)
	}
	return item, nil
}

func (c *CartService) SetQuantity(ctx context.Context, itemID, quantity int) (*model.CartItem, error) {
	if quantity < 1 {
		return nil, apperr.InvalidArgument("Invalid quantity")
	}
	item, err := c.cartRepo.UpdateCartItemQuantity(ctx, itemID, quantity)
	if errors.Is(err, db.ErrCartItemNotFound) {
		return nil, apperr.NotFound("Cart item not found")
	}
	if err != nil {
		return nil, apperr.Internal("error updating cart item", err)
	}
	return item, nil
}

func (c *CartService) RemoveItem(ctx context.Context, itemID int) error {
	err := c.cartRepo.DeleteCartItem(ctx, itemID)
	if errors.Is(err, db.ErrCartItemNotFound) {
		return apperr.NotFound("Cart item not found")
	}
	if err != nil {
		return apperr.Internal("error removing item from cart", err)
	}
	return nil
}

/*
ComputeTotals 計算購物車金額
subtotal = Σ(單價×數量), shipping固定0, tax = subtotal×8% 四捨五入到分
*/
func ComputeTotals(items []model.EnrichedCartItem) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	tax := subtotal.Mul(taxRate).Round(2)
	return Totals{
		Subtotal: subtotal,
		Shipping: zeroShipping,
		Tax:      tax,
		Total:    subtotal.Add(zeroShipping).Add(tax),
	}
}

var _ ICartService = (*CartService)(nil)
