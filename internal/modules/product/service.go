package product

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/promostack/storefront-core/internal/database"
	"github.com/promostack/storefront-core/internal/models"
	"github.com/promostack/storefront-core/internal/pkg/apperr"
	pkgredis "github.com/promostack/storefront-core/internal/pkg/redis"
	"github.com/promostack/storefront-core/internal/pkg/slug"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles product business logic.
type Service struct {
	db     *gorm.DB
	rc     *pkgredis.Client
	logger *zap.Logger
}

func NewService(db *gorm.DB, rc *pkgredis.Client, logger *zap.Logger) *Service {
	return &Service{db: db, rc: rc, logger: logger}
}

// List returns products for the storefront, newest first, with images
// preloaded in display order. Category filters by the flat category slug.
func (s *Service) List(q ListQuery) ([]models.ProductModel, error) {
	tx := s.db.Model(&models.ProductModel{}).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Order("created_at DESC")

	if q.Category != "" && q.Category != "all" {
		tx = tx.Where("category = ?", q.Category)
	}

	var products []models.ProductModel
	if err := tx.Find(&products).Error; err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "list products", err)
	}
	return products, nil
}

// GetByIdentifier fetches a product by ID first, then falls back to slug.
// Unknown identifiers return a NotFound error, never a server failure.
func (s *Service) GetByIdentifier(identifier string) (*models.ProductModel, error) {
	preload := func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }

	var p models.ProductModel
	err := s.db.Preload("Images", preload).First(&p, "id = ?", identifier).Error
	if err == nil {
		return &p, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) && !database.IsUUIDSyntaxErr(err) {
		return nil, apperr.Wrap(apperr.Persistence, "get product", err)
	}

	err = s.db.Preload("Images", preload).First(&p, "slug = ?", identifier).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "product not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "get product", err)
	}
	return &p, nil
}

// Create validates name and price, then inserts the row plus its ordered
// image list. Nothing is written when validation fails.
func (s *Service) Create(dto *CreateProductDTO) (*models.ProductModel, error) {
	if err := validateNameAndPrice(dto.ProductName, dto.Price); err != nil {
		return nil, err
	}

	p := models.ProductModel{
		ProductName:   strings.TrimSpace(dto.ProductName),
		Slug:          slug.Slugify(dto.ProductName),
		Description:   dto.Description,
		Price:         *dto.Price,
		Badge:         normalizeBadge(dto.Badge),
		AffiliateLink: dto.AffiliateLink,
		Category:      dto.Category,
		ImageURL:      firstImage(dto.ImageURLs),
		ClickCount:    0,
	}
	if dto.Discount != nil {
		p.Discount = *dto.Discount
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		images := buildImages(p.ID, dto.ImageURLs)
		if len(images) > 0 {
			if err := tx.Create(&images).Error; err != nil {
				return err
			}
			p.Images = images
		}
		return nil
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "create product", err)
	}
	return &p, nil
}

// Update overwrites all editable fields and replaces the image list. The
// delete+reinsert of images runs in one transaction.
func (s *Service) Update(id string, dto *UpdateProductDTO) (*models.ProductModel, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperr.New(apperr.Validation, "product id is required")
	}
	if err := validateNameAndPrice(dto.ProductName, dto.Price); err != nil {
		return nil, err
	}

	var p models.ProductModel
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || database.IsUUIDSyntaxErr(err) {
			return nil, apperr.New(apperr.NotFound, "product not found")
		}
		return nil, apperr.Wrap(apperr.Persistence, "get product", err)
	}

	discount := float64(0)
	if dto.Discount != nil {
		discount = *dto.Discount
	}
	updates := map[string]interface{}{
		"product_name":   strings.TrimSpace(dto.ProductName),
		"slug":           slug.Slugify(dto.ProductName),
		"description":    dto.Description,
		"price":          *dto.Price,
		"discount":       discount,
		"badge":          normalizeBadge(dto.Badge),
		"affiliate_link": dto.AffiliateLink,
		"category":       dto.Category,
		"image_url":      firstImage(dto.ImageURLs),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&p).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("product_id = ?", p.ID).Delete(&models.ProductImageModel{}).Error; err != nil {
			return err
		}
		images := buildImages(p.ID, dto.ImageURLs)
		if len(images) > 0 {
			if err := tx.Create(&images).Error; err != nil {
				return err
			}
		}
		p.Images = images
		return nil
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "update product", err)
	}
	return &p, nil
}

// Delete removes a product along with its images and click log.
func (s *Service) Delete(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("product_id = ?", id).Delete(&models.ProductImageModel{}).Error; err != nil {
			return apperr.Wrap(apperr.Persistence, "delete product images", err)
		}
		if err := tx.Unscoped().Where("product_id = ?", id).Delete(&models.ClickEventModel{}).Error; err != nil {
			return apperr.Wrap(apperr.Persistence, "delete click log", err)
		}
		res := tx.Unscoped().Delete(&models.ProductModel{}, "id = ?", id)
		if res.Error != nil {
			return apperr.Wrap(apperr.Persistence, "delete product", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.New(apperr.NotFound, "product not found")
		}
		return nil
	})
}

// TrackClick appends a click event and bumps the denormalized counter in a
// single transaction, so the log and the counter cannot drift. Failures are
// logged and swallowed; the caller always sees success. Repeat clicks from
// the same IP within a day are deduplicated via Redis when available.
func (s *Service) TrackClick(ctx context.Context, productID, ip, referer string) {
	if s.rc != nil && ip != "" {
		key := fmt.Sprintf("storefront:click:%s:%s:%s", productID, time.Now().Format("2006-01-02"), ip)
		set, err := s.rc.SetNX(ctx, key, 1, 24*time.Hour)
		if err == nil && !set {
			return
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		event := models.ClickEventModel{
			ProductID: productID,
			ClickedAt: time.Now(),
			IP:        ip,
			Referer:   referer,
		}
		if err := tx.Create(&event).Error; err != nil {
			return err
		}
		res := tx.Model(&models.ProductModel{}).
			Where("id = ?", productID).
			UpdateColumn("click_count", gorm.Expr("click_count + 1"))
		return counterUpdateErr(res.RowsAffected, res.Error)
	})
	if err != nil {
		s.logger.Warn("click tracking failed",
			zap.String("product_id", productID),
			zap.Error(err),
		)
	}
}

var errUnknownProduct = errors.New("product does not exist")

// counterUpdateErr fails the click transaction when the counter update
// touched no row, so unknown product IDs cannot leave orphan events.
func counterUpdateErr(rowsAffected int64, err error) error {
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return errUnknownProduct
	}
	return nil
}

func validateNameAndPrice(name string, price *float64) error {
	if strings.TrimSpace(name) == "" {
		return apperr.New(apperr.Validation, "product name is required")
	}
	if price == nil {
		return apperr.New(apperr.Validation, "price is required")
	}
	return nil
}

func normalizeBadge(badge *string) *string {
	if badge == nil || strings.TrimSpace(*badge) == "" {
		return nil
	}
	return badge
}

