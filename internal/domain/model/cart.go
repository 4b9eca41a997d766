package model

import (
	"time"
)

type Cart struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	UserID    *string   `gorm:"type:varchar(255)" json:"userId"`
	SessionID string    `gorm:"not null;type:varchar(255);uniqueIndex" json:"sessionId"`
	CreatedAt time.Time `json:"createdAt"`
}

// 變體鍵 (cart_id, product_id, color, size) 唯一
// 同變體重複加入購物車必須合併數量, 不會產生新row
type CartItem struct {
	ID        int    `gorm:"primaryKey" json:"id"`
	CartID    int    `gorm:"not null;uniqueIndex:idx_cart_variant" json:"cartId"`
	ProductID int    `gorm:"not null;uniqueIndex:idx_cart_variant" json:"productId"`
	Quantity  int    `gorm:"not null" json:"quantity"`
	Color     string `gorm:"not null;type:varchar(50);uniqueIndex:idx_cart_variant" json:"color"`
	Size      string `gorm:"not null;type:varchar(20);uniqueIndex:idx_cart_variant" json:"size"`
}

// EnrichedCartItem 讀取時才join商品資訊
type EnrichedCartItem struct {
	CartItem
	Product *Product `json:"product"`
}
