package service

import (
	"context"
	"testing"

	"github.com/riteshp0/DinoKicks/internal/domain/model"
	"github.com/riteshp0/DinoKicks/internal/infra/repository/db"
	"github.com/riteshp0/DinoKicks/internal/pkg/apperr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// 未覆寫的方法留給嵌入的interface, 呼叫到會panic表示測試設定有誤
type fakeCartRepo struct {
	db.ICartRepository
	items []model.CartItem
}

func (f *fakeCartRepo) GetCartItems(ctx context.Context, cartID int) ([]model.CartItem, error) {
	return f.items, nil
}

type fakeProductRepo struct {
	db.IProductRepository
	products map[int]model.Product
}

func (f *fakeProductRepo) GetProductByID(ctx context.Context, id int) (*model.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, db.ErrProductNotFound
	}
	return &product, nil
}

func (f *fakeProductRepo) GetProductsByIDs(ctx context.Context, ids []int) ([]model.Product, error) {
	var result []model.Product
	for _, id := range ids {
		if product, ok := f.products[id]; ok {
			result = append(result, product)
		}
	}
	return result, nil
}

func enrichedItem(productID, quantity int, price string) model.EnrichedCartItem {
	return model.EnrichedCartItem{
		CartItem: model.CartItem{ProductID: productID, Quantity: quantity},
		Product:  &model.Product{ID: productID, Price: decimal.RequireFromString(price)},
	}
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	totals := ComputeTotals(nil)

	require.True(t, totals.Subtotal.IsZero())
	require.True(t, totals.Shipping.IsZero())
	require.True(t, totals.Tax.IsZero())
	require.True(t, totals.Total.IsZero())
}

func TestComputeTotals(t *testing.T) {
	items := []model.EnrichedCartItem{
		enrichedItem(1, 1, "129.99"),
		enrichedItem(2, 2, "149.99"),
	}

	totals := ComputeTotals(items)

	require.True(t, totals.Subtotal.Equal(decimal.RequireFromString("429.97")), "subtotal=%s", totals.Subtotal)
	require.True(t, totals.Shipping.IsZero())
	require.True(t, totals.Tax.Equal(decimal.RequireFromString("34.40")), "tax=%s", totals.Tax)
	require.True(t, totals.Total.Equal(decimal.RequireFromString("464.37")), "total=%s", totals.Total)
}

// 稅額四捨五入到分
func TestComputeTotalsTaxRounding(t *testing.T) {
	items := []model.EnrichedCartItem{enrichedItem(1, 1, "0.07")}

	totals := ComputeTotals(items)

	// 0.07 * 0.08 = 0.0056 -> 0.01
	require.True(t, totals.Tax.Equal(decimal.RequireFromString("0.01")), "tax=%s", totals.Tax)
	require.True(t, totals.Total.Equal(decimal.RequireFromString("0.08")), "total=%s", totals.Total)
}

func TestResolveCartRequiresSession(t *testing.T) {
	svc := NewCartService(&fakeCartRepo{}, &fakeProductRepo{})

	_, err := svc.ResolveCart(context.Background(), "")

	require.Equal(t, apperr.CodeInvalidArgument, apperr.CodeOf(err))
}

func TestAddItemRejectsZeroQuantity(t *testing.T) {
	svc := NewCartService(&fakeCartRepo{}, &fakeProductRepo{})

	_, err := svc.AddItem(context.Background(), 1, 1, 0, "#39FF14", "10")

	require.Equal(t, apperr.CodeInvalidArgument, apperr.CodeOf(err))
}

func TestAddItemProductNotFound(t *testing.T) {
	svc := NewCartService(&fakeCartRepo{}, &fakeProductRepo{products: map[int]model.Product{}})

	_, err := svc.AddItem(context.Background(), 1, 42, 1, "#39FF14", "10")

	require.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}

func TestSetQuantityRejectsZeroQuantity(t *testing.T) {
	svc := NewCartService(&fakeCartRepo{}, &fakeProductRepo{})

	_, err := svc.SetQuantity(context.Background(), 1, 0)

	require.Equal(t, apperr.CodeInvalidArgument, apperr.CodeOf(err))
}

func TestListItemsEnrichesProducts(t *testing.T) {
	cartRepo := &fakeCartRepo{items: []model.CartItem{
		{ID: 1, CartID: 7, ProductID: 1, Quantity: 2, Color: "#39FF14", Size: "10"},
	}}
	productRepo := &fakeProductRepo{products: map[int]model.Product{
		1: {ID: 1, Name: "T-Rex Trappers", Price: decimal.RequireFromString("129.99")},
	}}
	svc := NewCartService(cartRepo, productRepo)

	items, err := svc.ListItems(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "T-Rex Trappers", items[0].Product.Name)
}

// 購物車指向不存在的商品是資料異常, 不能默默略過
func TestListItemsProductMissing(t *testing.T) {
	cartRepo := &fakeCartRepo{items: []model.CartItem{
		{ID: 1, CartID: 7, ProductID: 42, Quantity: 1},
	}}
	svc := NewCartService(cartRepo, &fakeProductRepo{products: map[int]model.Product{}})

	_, err := svc.ListItems(context.Background(), 7)

	require.Equal(t, apperr.CodeProductMissing, apperr.CodeOf(err))
}
