package model

import (
	"github.com/shopspring/decimal"
)

func init() {
	// 前端契約使用數字型別的價格，不是字串
	decimal.MarshalJSONWithoutQuotes = true
}

const (
	BadgeHot     = "HOT!"
	BadgeNew     = "NEW"
	BadgeLimited = "LIMITED"
)

type Product struct {
	ID          int             `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"not null;type:varchar(100)" json:"name"`
	Description string          `gorm:"not null;type:text" json:"description"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	ImageURL    string          `gorm:"column:image_url;not null" json:"imageUrl"`
	ImageURLs   []string        `gorm:"column:image_urls;serializer:json" json:"imageUrls"`
	Category    string          `gorm:"not null;type:varchar(50);index" json:"category"`
	Collection  string          `gorm:"not null;type:varchar(100);index" json:"collection"`
	Colors      []string        `gorm:"serializer:json" json:"colors"`
	Sizes       []string        `gorm:"serializer:json" json:"sizes"`
	IsFeatured  bool            `gorm:"not null;default:false;index" json:"isFeatured"`
	Badge       string          `json:"badge"`
	DinoFacts   string          `gorm:"type:text" json:"dinoFacts"`
	Stock       int             `gorm:"not null;default:10" json:"stock"`
}
