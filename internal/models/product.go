package models

import "time"

// ProductModel is a storefront catalog entry pointing at an external
// affiliate offer.
type ProductModel struct {
	Base
	ProductName   string  `json:"product_name"   gorm:"not null"`
	Slug          string  `json:"slug"           gorm:"index"`
	Description   string  `json:"description"    gorm:"type:text"`
	Price         float64 `json:"price"          gorm:"not null"`
	Discount      float64 `json:"discount"       gorm:"default:0"`
	Badge         *string `json:"badge"`
	AffiliateLink string  `json:"affiliate_link" gorm:"type:text"`
	Category      string  `json:"category"       gorm:"index"`
	// ImageURL keeps the first image denormalized for legacy single-image reads.
	ImageURL   string `json:"image_url"   gorm:"type:text"`
	ClickCount int64  `json:"click_count" gorm:"default:0"`

	Images []ProductImageModel `json:"product_images,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (ProductModel) TableName() string { return "products" }

// ProductImageModel is one entry of a product's ordered image list.
type ProductImageModel struct {
	Base
	ProductID string `json:"-"          gorm:"type:uuid;index;not null"`
	ImageURL  string `json:"image_url"  gorm:"type:text;not null"`
	SortOrder int    `json:"sort_order" gorm:"not null"`
}

func (ProductImageModel) TableName() string { return "product_images" }

// ClickEventModel is the append-only log of affiliate click-throughs.
type ClickEventModel struct {
	Base
	ProductID string    `json:"product_id" gorm:"type:uuid;index;not null"`
	ClickedAt time.Time `json:"clicked_at" gorm:"index;not null"`
	IP        string    `json:"ip"`
	Referer   string    `json:"referer"    gorm:"type:text"`

	Product *ProductModel `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

func (ClickEventModel) TableName() string { return "click_tracking" }
