package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/riteshp0/DinoKicks/internal/api/dto"
	"github.com/riteshp0/DinoKicks/internal/pkg/api"
	"github.com/riteshp0/DinoKicks/internal/service"
	"github.com/riteshp0/DinoKicks/internal/util"
)

type OrderHandler struct {
	orderService service.IOrderService
}

func NewOrderHandler(orderService service.IOrderService) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{
		orderService: orderService,
	}
}

// @Summary place order from current session cart
// @Description 金額由server以購物車當下商品價格重算, 不接受client的total
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.PlaceOrderDTO true "checkout data"
// @Success 201 {object} model.Order "success"
// @Failure 400 {object} map[string]string "invalid body, missing session or empty cart"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /orders [post]
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID := util.GetSessionIDFromContext(ctx)
	if sessionID == "" {
		api.ErrorMessage(w, http.StatusBadRequest, "Session ID is required")
		return
	}

	var orderDTO dto.PlaceOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&orderDTO); err != nil {
		api.ErrorMessage(w, http.StatusBadRequest, "Invalid order data")
		return
	}

	order, err := h.orderService.PlaceOrder(ctx, service.PlaceOrderInput{
		SessionID:       sessionID,
		UserID:          orderDTO.UserID,
		ShippingAddress: orderDTO.ShippingAddress,
		BillingAddress:  orderDTO.BillingAddress,
		PaymentMethod:   orderDTO.PaymentMethod,
	})
	if err != nil {
		api.ErrorJSON(w, err, "Error creating order")
		return
	}
	api.SuccessJSON(w, http.StatusCreated, order)
}

// @Summary get order with items
// @Tags orders
// @Produce json
// @Param id path int true "order id"
// @Success 200 {object} model.Order "success"
// @Failure 400 {object} map[string]string "invalid id"
// @Failure 404 {object} map[string]string "not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		api.ErrorMessage(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), id)
	if err != nil {
		api.ErrorJSON(w, err, "Error fetching order")
		return
	}
	api.SuccessJSON(w, http.StatusOK, order)
}
