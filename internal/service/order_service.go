package service

import (
	"context"
	"errors"

	"github.com/riteshp0/DinoKicks/internal/domain/model"
	"github.com/riteshp0/DinoKicks/internal/infra/producer"
	"github.com/riteshp0/DinoKicks/internal/infra/repository/db"
	"github.com/riteshp0/DinoKicks/internal/pkg/apperr"
	"github.com/rs/zerolog"
)

type PlaceOrderInput struct {
	SessionID       string
	UserID          *string
	ShippingAddress *model.Address
	BillingAddress  *model.Address
	PaymentMethod   string
}

type IOrderService interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*model.Order, error)
	GetOrder(ctx context.Context, id int) (*model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	ListOrdersByUser(ctx context.Context, userID string) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id int, status string) error
}

type OrderService struct {
	orderRepo     db.IOrderRepository
	cartService   ICartService
	orderProducer producer.IOrderProducer
	logger        zerolog.Logger
}

// orderProducer 可為nil, 未接kafka時訂單照常成立
func NewOrderService(orderRepo db.IOrderRepository, cartService ICartService, orderProducer producer.IOrderProducer, logger zerolog.Logger) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		cartService:   cartService,
		orderProducer: orderProducer,
		logger:        logger,
	}
}

/*
PlaceOrder 結帳流程:
 1. 以session解析購物車, 空車拒絕
 2. 金額一律由server以當下商品價格重算, 不信任client送來的total
 3. 訂單與明細同一事務寫入, 全有或全無
 4. 不清空來源購物車, client下單成功後自行換新session

明細單價為下單當下快照, 商品後續調價不影響已成立訂單
*/
func (o *OrderService) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*model.Order, error) {
	if input.ShippingAddress == nil {
		return nil, apperr.InvalidArgument("Invalid order data")
	}

	cart, err := o.cartService.ResolveCart(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	items, err := o.cartService.ListItems(ctx, cart.ID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperr.EmptyCart("Cart is empty")
	}

	totals := ComputeTotals(items)

	// billing未填視為同shipping, 快照同一份地址
	billing := input.BillingAddress
	if billing == nil {
		billing = input.ShippingAddress
	}

	order := &model.Order{
		UserID:          input.UserID,
		Total:           totals.Total,
		Status:          model.OrderStatusPending,
		ShippingAddress: input.ShippingAddress,
		BillingAddress:  billing,
		PaymentMethod:   input.PaymentMethod,
	}
	for _, item := range items {
		order.Items = append(order.Items, model.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Product.Price,
			Color:     item.Color,
			Size:      item.Size,
		})
	}

	if err := o.orderRepo.CreateOrderWithItems(ctx, order); err != nil {
		return nil, apperr.Internal("error creating order", err)
	}

	// 事件發布失敗不影響已成立的訂單, 記log即可
	if o.orderProducer != nil {
		if err := o.orderProducer.OrderPlaced(ctx, order); err != nil {
			o.logger.Error().Err(err).Int("order_id", order.ID).Msg("failed to publish order placed event")
		}
	}

	return order, nil
}

func (o *OrderService) GetOrder(ctx context.Context, id int) (*model.Order, error) {
	order, err := o.orderRepo.GetOrderByID(ctx, id)
	if errors.Is(err, db.ErrOrderNotFound) {
		return nil, apperr.NotFound("Order not found")
	}
	if err != nil {
		return nil, apperr.Internal("error fetching order", err)
	}
	return order, nil
}

func (o *OrderService) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := o.orderRepo.GetAllOrders(ctx)
	if err != nil {
		return nil, apperr.Internal("error fetching orders", err)
	}
	return orders, nil
}

func (o *OrderService) ListOrdersByUser(ctx context.Context, userID string) ([]model.Order, error) {
	orders, err := o.orderRepo.GetOrdersByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("error fetching orders", err)
	}
	return orders, nil
}

func (o *OrderService) UpdateStatus(ctx context.Context, id int, status string) error {
	err := o.orderRepo.UpdateOrderStatus(ctx, id, status)
	if errors.Is(err, db.ErrOrderNotFound) {
		return apperr.NotFound("Order not found")
	}
	if err != nil {
		return apperr.Internal("error updating order status", err)
	}
	return nil
}

var _ IOrderService = (*OrderService)(nil)
