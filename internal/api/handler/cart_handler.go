package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/riteshp0/DinoKicks/internal/api/dto"
	"github.com/riteshp0/DinoKicks/internal/constants"
	"github.com/riteshp0/DinoKicks/internal/pkg/api"
	"github.com/riteshp0/DinoKicks/internal/service"
	"github.com/riteshp0/DinoKicks/internal/util"
)

type CartHandler struct {
	cartService service.ICartService
}

func NewCartHandler(cartService service.ICartService) *CartHandler {
	if cartService == nil {
		panic("cartService cannot be nil")
	}
	return &CartHandler{
		cartService: cartService,
	}
}

// @Summary resolve cart for current session
// @Description 未帶session header時核發新token並由 X-Session-ID 回應header回傳
// @Tags cart
// @Produce json
// @Success 200 {object} dto.CartResponse "success"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cart [get]
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID := util.GetSessionIDFromContext(ctx)
	if sessionID == "" {
		sessionID = uuid.NewString()
		w.Header().Set(constants.SessionHeader, sessionID)
	}

	cart, err := h.cartService.ResolveCart(ctx, sessionID)
	if err != nil {
		api.ErrorJSON(w, err, "Error fetching cart")
		return
	}

	items, err := h.cartService.ListItems(ctx, cart.ID)
	if err != nil {
		api.ErrorJSON(w, err, "Error fetching cart")
		return
	}

	api.SuccessJSON(w, http.StatusOK, dto.CartResponse{
		Cart:  cart,
		Items: items,
	})
}

// @Summary add item to cart
// @Description 同變體(product/color/size)已存在時合併數量
// @Tags cart
// @Accept json
// @Produce json
// @Param item body dto.AddCartItemDTO true "cart item"
// @Success 201 {object} model.CartItem "success"
// @Failure 400 {object} map[string]string "invalid body or session"
// @Failure 404 {object} map[string]string "product not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cart/items [post]
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID := util.GetSessionIDFromContext(ctx)
	if sessionID == "" {
		api.ErrorMessage(w, http.StatusBadRequest, "Session ID is required")
		return
	}

	var addDTO dto.AddCartItemDTO
	if err := json.NewDecoder(r.Body).Decode(&addDTO); err != nil {
		api.ErrorMessage(w, http.StatusBadRequest, "Invalid cart item data")
		return
	}
	if addDTO.ProductID == 0 || addDTO.Quantity < 1 || addDTO.Color == "" || addDTO.Size == "" {
		api.ErrorMessage(w, http.StatusBadRequest, "Invalid cart item data")
		return
	}

	cart, err := h.cartService.ResolveCart(ctx, sessionID)
	if err != nil {
		api.ErrorJSON(w, err, "Error adding item to cart")
		return
	}

	item, err := h.cartService.AddItem(ctx, cart.ID, addDTO.ProductID, addDTO.Quantity, addDTO.Color, addDTO.Size)
	if err != nil {
		api.ErrorJSON(w, err, "Error adding item to cart")
		return
	}
	api.SuccessJSON(w, http.StatusCreated, item)
}

// @Summary update cart item quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param id path int true "cart item id"
// @Param body body dto.UpdateCartItemDTO true "quantity"
// @Success 200 {object} model.CartItem "success"
// @Failure 400 {object} map[string]string "invalid quantity"
// @Failure 404 {object} map[string]string "not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cart/items/{id} [put]
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		api.ErrorMessage(w, http.StatusBadRequest, "Invalid cart item ID")
		return
	}

	var updateDTO dto.UpdateCartItemDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		api.ErrorMessage(w, http.StatusBadRequest, "Invalid quantity")
		return
	}

	item, err := h.cartService.SetQuantity(r.Context(), id, updateDTO.Quantity)
	if err != nil {
		api.ErrorJSON(w, err, "Error updating cart item")
		return
	}
	api.SuccessJSON(w, http.StatusOK, item)
}

// @Summary remove cart item
// @Tags cart
// @Param id path int true "cart item id"
// @Success 204 "no content"
// @Failure 404 {object} map[string]string "not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		api.ErrorMessage(w, http.StatusBadRequest, "Invalid cart item ID")
		return
	}

	if err := h.cartService.RemoveItem(r.Context(), id); err != nil {
		api.ErrorJSON(w, err, "Error removing item from cart")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
