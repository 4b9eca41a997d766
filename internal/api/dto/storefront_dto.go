package dto

import (
	"github.com/riteshp0/DinoKicks/internal/domain/model"
)

type AddCartItemDTO struct {
	ProductID int    `json:"productId"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color"`
	Size      string `json:"size"`
}

type UpdateCartItemDTO struct {
	Quantity int `json:"quantity"`
}

// CartResponse GET /api/cart 的回應: 購物車本體加上join商品後的items
type CartResponse struct {
	Cart  *model.Cart              `json:"cart"`
	Items []model.EnrichedCartItem `json:"items"`
}

type PlaceOrderDTO struct {
	UserID          *string        `json:"userId"`
	ShippingAddress *model.Address `json:"shippingAddress"`
	BillingAddress  *model.Address `json:"billingAddress"`
	PaymentMethod   string         `json:"paymentMethod"`
}

type QuizAnswersDTO struct {
	OptionIDs []int `json:"optionIds"`
}

// RecommendationResponse productId為null表示無推薦
type RecommendationResponse struct {
	ProductID *int `json:"productId"`
}
