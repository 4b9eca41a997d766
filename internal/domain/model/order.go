package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending   = "pending"   // 待處理
	OrderStatusConfirmed = "confirmed" // 已確認
	OrderStatusShipped   = "shipped"   // 已出貨
	OrderStatusCancelled = "cancelled" // 已取消
)

// Address 下單時的地址快照, 以JSON存入orders
type Address struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

type Order struct {
	ID              int             `gorm:"primaryKey" json:"id"`
	UserID          *string         `gorm:"type:varchar(255)" json:"userId"`
	Total           decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"total"`
	Status          string          `gorm:"not null;type:varchar(50);default:pending" json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	ShippingAddress *Address        `gorm:"serializer:json" json:"shippingAddress"`
	BillingAddress  *Address        `gorm:"serializer:json" json:"billingAddress"`
	PaymentMethod   string          `gorm:"type:varchar(50)" json:"paymentMethod"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"` // 一對多，級聯刪除
}

// OrderItem.Price 為下單當下的單價快照, 與商品目錄後續調價脫鉤
type OrderItem struct {
	ID        int             `gorm:"primaryKey" json:"id"`
	OrderID   int             `gorm:"not null;index" json:"orderId"`
	ProductID int             `gorm:"not null" json:"productId"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	Color     string          `gorm:"not null;type:varchar(50)" json:"color"`
	Size      string          `gorm:"not null;type:varchar(20)" json:"size"`
}
