package service

import (
	"context"
	"errors"
	"testing"

	"github.com/riteshp0/DinoKicks/internal/domain/model"
	"github.com/riteshp0/DinoKicks/internal/infra/repository/db"
	"github.com/riteshp0/DinoKicks/internal/pkg/apperr"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fakeOrderRepo struct {
	db.IOrderRepository
	created *model.Order
}

func (f *fakeOrderRepo) CreateOrderWithItems(ctx context.Context, order *model.Order) error {
	order.ID = 100
	f.created = order
	return nil
}

type fakeCartService struct {
	ICartService
	items []model.EnrichedCartItem
}

func (f *fakeCartService) ResolveCart(ctx context.Context, sessionID string) (*model.Cart, error) {
	if sessionID == "" {
		return nil, apperr.InvalidArgument("Session ID is required")
	}
	return &model.Cart{ID: 7, SessionID: sessionID}, nil
}

func (f *fakeCartService) ListItems(ctx context.Context, cartID int) ([]model.EnrichedCartItem, error) {
	return f.items, nil
}

type fakeOrderProducer struct {
	published []*model.Order
	err       error
}

func (f *fakeOrderProducer) OrderPlaced(ctx context.Context, order *model.Order) error {
	f.published = append(f.published, order)
	return f.err
}

func (f *fakeOrderProducer) Close() error { return nil }

func shippingAddress() *model.Address {
	return &model.Address{
		FirstName: "Rex", LastName: "King",
		Address: "1 Jungle Ave", City: "Laramie", State: "WY",
		ZipCode: "82070", Country: "US", Phone: "555-0199",
	}
}

func cartWithTwoItems() []model.EnrichedCartItem {
	return []model.EnrichedCartItem{
		{
			CartItem: model.CartItem{ID: 1, CartID: 7, ProductID: 1, Quantity: 1, Color: "#39FF14", Size: "10"},
			Product:  &model.Product{ID: 1, Price: decimal.RequireFromString("129.99")},
		},
		{
			CartItem: model.CartItem{ID: 2, CartID: 7, ProductID: 2, Quantity: 2, Color: "#FF5714", Size: "9"},
			Product:  &model.Product{ID: 2, Price: decimal.RequireFromString("149.99")},
		},
	}
}

func TestPlaceOrderRequiresShippingAddress(t *testing.T) {
	svc := NewOrderService(&fakeOrderRepo{}, &fakeCartService{}, nil, zerolog.Nop())

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{SessionID: "s1"})

	require.Equal(t, apperr.CodeInvalidArgument, apperr.CodeOf(err))
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	svc := NewOrderService(&fakeOrderRepo{}, &fakeCartService{}, nil, zerolog.Nop())

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		SessionID:       "s1",
		ShippingAddress: shippingAddress(),
	})

	require.Equal(t, apperr.CodeEmptyCart, apperr.CodeOf(err))
}

// 金額一律server端重算, 明細單價取自當下商品價格
func TestPlaceOrderComputesTotalsAndSnapshots(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewOrderService(repo, &fakeCartService{items: cartWithTwoItems()}, nil, zerolog.Nop())

	order, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		SessionID:       "s1",
		ShippingAddress: shippingAddress(),
		PaymentMethod:   "credit_card",
	})

	require.NoError(t, err)
	require.NotNil(t, repo.created)
	require.True(t, order.Total.Equal(decimal.RequireFromString("464.37")), "total=%s", order.Total)
	require.Equal(t, model.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 2)
	require.True(t, order.Items[0].Price.Equal(decimal.RequireFromString("129.99")))
	require.True(t, order.Items[1].Price.Equal(decimal.RequireFromString("149.99")))
}

// billing未填視為同shipping
func TestPlaceOrderBillingDefaultsToShipping(t *testing.T) {
	svc := NewOrderService(&fakeOrderRepo{}, &fakeCartService{items: cartWithTwoItems()}, nil, zerolog.Nop())

	order, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		SessionID:       "s1",
		ShippingAddress: shippingAddress(),
	})

	require.NoError(t, err)
	require.Equal(t, order.ShippingAddress, order.BillingAddress)
}

func TestPlaceOrderPublishesEvent(t *testing.T) {
	prod := &fakeOrderProducer{}
	svc := NewOrderService(&fakeOrderRepo{}, &fakeCartService{items: cartWithTwoItems()}, prod, zerolog.Nop())

	order, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		SessionID:       "s1",
		ShippingAddress: shippingAddress(),
	})

	require.NoError(t, err)
	require.Len(t, prod.published, 1)
	require.Equal(t, order.ID, prod.published[0].ID)
}

// 事件發布失敗不影響已成立的訂單
func TestPlaceOrderSucceedsWhenProducerFails(t *testing.T) {
	prod := &fakeOrderProducer{err: errors.New("broker down")}
	svc := NewOrderService(&fakeOrderRepo{}, &fakeCartService{items: cartWithTwoItems()}, prod, zerolog.Nop())

	order, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		SessionID:       "s1",
		ShippingAddress: shippingAddress(),
	})

	require.NoError(t, err)
	require.Equal(t, 100, order.ID)
}
