package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/riteshp0/DinoKicks/internal/pkg/api"
	"github.com/riteshp0/DinoKicks/internal/service"
)

type ProductHandler struct {
	catalogService service.ICatalogService
}

func NewProductHandler(catalogService service.ICatalogService) *ProductHandler {
	if catalogService == nil {
		panic("catalogService cannot be nil")
	}
	return &ProductHandler{
		catalogService: catalogService,
	}
}

// @Summary list all products
// @Tags products
// @Produce json
// @Success 200 {array} model.Product "success"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products [get]
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.ListProducts(r.Context())
	if err != nil {
		api.ErrorJSON(w, err, "Error fetching products")
		return
	}
	api.SuccessJSON(w, http.StatusOK, products)
}

// @Summary list featured products
// @Tags products
// @Produce json
// @Success 200 {array} model.Product "success"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products/featured [get]
func (h *ProductHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.ListFeatured(r.Context())
	if err != nil {
		api.ErrorJSON(w, err, "Error fetching featured products")
		return
	}
	api.SuccessJSON(w, http.StatusOK, products)
}

// @Summary get product by id
// @Tags products
// @Produce json
// @Param id path int true "product id"
// @Success 200 {object} model.Product "success"
// @Failure 400 {object} map[string]string "invalid id"
// @Failure 404 {object} map[string]string "not found"
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		api.ErrorMessage(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.catalogService.GetProduct(r.Context(), id)
	if err != nil {
		api.ErrorJSON(w, err, "Error fetching product")
		return
	}
	api.SuccessJSON(w, http.StatusOK, product)
}

// @Summary list products by collection
// @Tags products
// @Produce json
// @Param collection path string true "collection name"
// @Success 200 {array} model.Product "success"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /collections/{collection} [get]
func (h *ProductHandler) ListByCollection(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.ListByCollection(r.Context(), chi.URLParam(r, "collection"))
	if err != nil {
		api.ErrorJSON(w, err, "Error fetching collection")
		return
	}
	api.SuccessJSON(w, http.StatusOK, products)
}

// @Summary list products by category
// @Tags products
// @Produce json
// @Param category path string true "category name"
// @Success 200 {array} model.Product "success"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /categories/{category} [get]
func (h *ProductHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.ListByCategory(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		api.ErrorJSON(w, err, "Error fetching category")
		return
	}
	api.SuccessJSON(w, http.StatusOK, products)
}
