package product

import (
	"time"

	"github.com/promostack/storefront-core/internal/models"
)

// CreateProductDTO is the request body for creating a product. Only name and
// price are required; everything else defaults to empty/zero.
type CreateProductDTO struct {
	ProductName   string   `json:"product_name"`
	Description   string   `json:"description"`
	Price         *float64 `json:"price"`
	Discount      *float64 `json:"discount"`
	Badge         *string  `json:"badge"`
	AffiliateLink string   `json:"affiliate_link"`
	Category      string   `json:"category"`
	ImageURLs     []string `json:"image_urls"`
}

// UpdateProductDTO carries the full editable row; updates overwrite all
// editable fields unconditionally.
type UpdateProductDTO struct {
	ProductName   string   `json:"product_name"`
	Description   string   `json:"description"`
	Price         *float64 `json:"price"`
	Discount      *float64 `json:"discount"`
	Badge         *string  `json:"badge"`
	AffiliateLink string   `json:"affiliate_link"`
	Category      string   `json:"category"`
	ImageURLs     []string `json:"image_urls"`
}

// ListQuery holds query params for the public product list.
type ListQuery struct {
	Category string `form:"category"`
}

type productResponse struct {
	ID            string    `json:"id"`
	ProductName   string    `json:"product_name"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Discount      float64   `json:"discount"`
	Badge         *string   `json:"badge"`
	AffiliateLink string    `json:"affiliate_link"`
	Category      string    `json:"category"`
	ImageURL      string    `json:"image_url"`
	ImageURLs     []string  `json:"image_urls"`
	ClickCount    int64     `json:"click_count"`
	CreatedAt     time.Time `json:"created_at"`
}

func toResponse(p *models.ProductModel) productResponse {
	urls := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		urls = append(urls, img.ImageURL)
	}
	return productResponse{
		ID:            p.ID,
		ProductName:   p.ProductName,
		Slug:          p.Slug,
		Description:   p.Description,
		Price:         p.Price,
		Discount:      p.Discount,
		Badge:         p.Badge,
		AffiliateLink: p.AffiliateLink,
		Category:      p.Category,
		ImageURL:      p.ImageURL,
		ImageURLs:     urls,
		ClickCount:    p.ClickCount,
		CreatedAt:     p.CreatedAt,
	}
}

// buildImages turns an ordered URL list into image rows with a dense
// 1..N sort order. Blank entries are dropped without leaving gaps.
func buildImages(productID string, urls []string) []models.ProductImageModel {
	rows := make([]models.ProductImageModel, 0, len(urls))
	order := 0
	for _, u := range urls {
		if u == "" {
			continue
		}
		order++
		rows = append(rows, models.ProductImageModel{
			ProductID: productID,
			ImageURL:  u,
			SortOrder: order,
		})
	}
	return rows
}

// firstImage returns the leading URL for the denormalized image_url column.
func firstImage(urls []string) string {
	for _, u := range urls {
		if u != "" {
			return u
		}
	}
	return ""
}
