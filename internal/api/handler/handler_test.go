package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/riteshp0/DinoKicks/internal/api"
	"github.com/riteshp0/DinoKicks/internal/api/handler"
	"github.com/riteshp0/DinoKicks/internal/api/router"
	"github.com/riteshp0/DinoKicks/internal/constants"
	"github.com/riteshp0/DinoKicks/internal/domain/model"
	"github.com/riteshp0/DinoKicks/internal/pkg/apperr"
	"github.com/riteshp0/DinoKicks/internal/service"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type stubCatalogService struct {
	service.ICatalogService
	product *model.Product
}

func (s *stubCatalogService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return []model.Product{}, nil
}

func (s *stubCatalogService) ListFeatured(ctx context.Context) ([]model.Product, error) {
	if s.product == nil {
		return []model.Product{}, nil
	}
	return []model.Product{*s.product}, nil
}

func (s *stubCatalogService) GetProduct(ctx context.Context, id int) (*model.Product, error) {
	if s.product == nil || s.product.ID != id {
		return nil, apperr.NotFound("Product not found")
	}
	return s.product, nil
}

type stubCartService struct {
	service.ICartService
	items []model.EnrichedCartItem
}

func (s *stubCartService) ResolveCart(ctx context.Context, sessionID string) (*model.Cart, error) {
	return &model.Cart{ID: 7, SessionID: sessionID}, nil
}

func (s *stubCartService) ListItems(ctx context.Context, cartID int) ([]model.EnrichedCartItem, error) {
	if s.items == nil {
		return []model.EnrichedCartItem{}, nil
	}
	return s.items, nil
}

func (s *stubCartService) AddItem(ctx context.Context, cartID, productID, quantity int, color, size string) (*model.CartItem, error) {
	return &model.CartItem{ID: 1, CartID: cartID, ProductID: productID, Quantity: quantity, Color: color, Size: size}, nil
}

func (s *stubCartService) RemoveItem(ctx context.Context, itemID int) error {
	return nil
}

type stubOrderService struct {
	service.IOrderService
}

func (s *stubOrderService) PlaceOrder(ctx context.Context, input service.PlaceOrderInput) (*model.Order, error) {
	return &model.Order{ID: 100, Total: decimal.RequireFromString("464.37"), Status: model.OrderStatusPending}, nil
}

type stubQuizService struct {
	service.IQuizService
	recommended *int
}

func (s *stubQuizService) Recommend(ctx context.Context, quizID int, optionIDs []int) (*int, error) {
	return s.recommended, nil
}

func newTestRouter(catalog service.ICatalogService, cart service.ICartService, order service.IOrderService, quiz service.IQuizService) *chi.Mux {
	server := api.NewServer(
		handler.NewProductHandler(catalog),
		handler.NewCartHandler(cart),
		handler.NewOrderHandler(order),
		handler.NewQuizHandler(quiz),
	)
	logger := zerolog.Nop()
	return router.SetupRouter(server, &logger)
}

func defaultRouter() *chi.Mux {
	product := &model.Product{ID: 1, Name: "T-Rex Trappers", Price: decimal.RequireFromString("129.99")}
	return newTestRouter(&stubCatalogService{product: product}, &stubCartService{}, &stubOrderService{}, &stubQuizService{})
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body["message"]
}

// 未帶session時核發新token, 由回應header回傳
func TestGetCartMintsSession(t *testing.T) {
	r := defaultRouter()
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cart", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get(constants.SessionHeader))

	var body struct {
		Cart  *model.Cart              `json:"cart"`
		Items []model.EnrichedCartItem `json:"items"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, rec.Header().Get(constants.SessionHeader), body.Cart.SessionID)
	require.NotNil(t, body.Items)
}

func TestGetCartKeepsExistingSession(t *testing.T) {
	r := defaultRouter()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set(constants.SessionHeader, "existing-session")

	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// 已有session就不再核發
	require.Empty(t, rec.Header().Get(constants.SessionHeader))
}

func TestAddItemRequiresSession(t *testing.T) {
	r := defaultRouter()
	rec := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"productId":1,"quantity":1,"color":"#39FF14","size":"10"}`)

	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/cart/items", body))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Session ID is required", decodeMessage(t, rec))
}

func TestAddItem(t *testing.T) {
	r := defaultRouter()
	rec := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"productId":1,"quantity":2,"color":"#39FF14","size":"10"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", body)
	req.Header.Set(constants.SessionHeader, "s1")

	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var item model.CartItem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&item))
	require.Equal(t, 2, item.Quantity)
}

func TestAddItemRejectsInvalidBody(t *testing.T) {
	r := defaultRouter()
	rec := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"productId":1,"quantity":0,"color":"#39FF14","size":"10"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", body)
	req.Header.Set(constants.SessionHeader, "s1")

	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Invalid cart item data", decodeMessage(t, rec))
}

func TestRemoveItemNoContent(t *testing.T) {
	r := defaultRouter()
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/cart/items/1", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGetProductInvalidID(t *testing.T) {
	r := defaultRouter()
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/abc", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Invalid product ID", decodeMessage(t, rec))
}

func TestGetProductNotFound(t *testing.T) {
	r := defaultRouter()
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/999", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Product not found", decodeMessage(t, rec))
}

// /products/featured 不能被 /{id} 吃掉
func TestFeaturedRouteNotShadowedByID(t *testing.T) {
	r := defaultRouter()
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/featured", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var products []model.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&products))
	require.Len(t, products, 1)
}

func TestPlaceOrderRequiresSession(t *testing.T) {
	r := defaultRouter()
	rec := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"shippingAddress":{"firstName":"Rex"}}`)

	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/orders", body))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Session ID is required", decodeMessage(t, rec))
}

func TestPlaceOrder(t *testing.T) {
	r := defaultRouter()
	rec := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"shippingAddress":{"firstName":"Rex"},"paymentMethod":"credit_card"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/orders", body)
	req.Header.Set(constants.SessionHeader, "s1")

	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var order model.Order
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&order))
	require.Equal(t, 100, order.ID)
}

func TestQuizRecommendation(t *testing.T) {
	recommended := 3
	r := newTestRouter(&stubCatalogService{}, &stubCartService{}, &stubOrderService{}, &stubQuizService{recommended: &recommended})
	rec := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"optionIds":[10,11,12]}`)

	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/quizzes/1/recommendation", body))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ProductID *int `json:"productId"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotNil(t, resp.ProductID)
	require.Equal(t, 3, *resp.ProductID)
}
