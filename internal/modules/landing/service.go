package landing

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/promostack/storefront-core/internal/database"
	"github.com/promostack/storefront-core/internal/models"
	"github.com/promostack/storefront-core/internal/pkg/apperr"
	"github.com/promostack/storefront-core/internal/pkg/pagination"
	"github.com/promostack/storefront-core/internal/pkg/response"
	"github.com/promostack/storefront-core/internal/pkg/slug"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// isMissingPage covers both a genuine miss and a non-UUID page ID, which
// Postgres rejects with a uuid syntax error rather than an empty result.
func isMissingPage(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || database.IsUUIDSyntaxErr(err)
}

// Create stores a new landing page for userID. Pages always start
// unpublished; the slug is derived from the product name.
func (s *Service) Create(userID string, dto *CreatePageDTO) (*PageResponse, error) {
	if strings.TrimSpace(dto.ProductName) == "" {
		return nil, apperr.New(apperr.Validation, "product name is required")
	}

	page := models.LandingPageModel{
		UserID:      userID,
		Slug:        slug.Slugify(dto.ProductName),
		IsPublished: false,
	}
	dto.PageFields.apply(&page)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&page).Error; err != nil {
			return err
		}
		if rows := buildFeatures(page.ID, dto.Features); len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		if rows := buildTestimonials(page.ID, dto.Testimonials); len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		if rows := buildFAQs(page.ID, dto.FAQs); len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "create landing page", err)
	}
	return s.loadResponse(context.Background(), &page)
}

// Update overwrites the parent copy fields and replaces every child
// collection with the submitted arrays, all inside one transaction. A
// page can only be updated by its owner.
func (s *Service) Update(userID, pageID string, dto *UpdatePageDTO) (*PageResponse, error) {
	var page models.LandingPageModel
	if err := s.db.Where("id = ? AND user_id = ?", pageID, userID).First(&page).Error; err != nil {
		if isMissingPage(err) {
			return nil, apperr.New(apperr.NotFound, "landing page not found")
		}
		return nil, apperr.Wrap(apperr.Persistence, "load landing page", err)
	}
	if strings.TrimSpace(dto.ProductName) == "" {
		return nil, apperr.New(apperr.Validation, "product name is required")
	}

	dto.PageFields.apply(&page)
	page.Slug = slug.Slugify(dto.ProductName)
	page.IsPublished = dto.IsPublished

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&page).Error; err != nil {
			return err
		}
		for _, model := range []any{
			&models.FeatureModel{}, &models.TestimonialModel{}, &models.FAQModel{},
		} {
			if err := tx.Unscoped().Where("landing_page_id = ?", page.ID).Delete(model).Error; err != nil {
				return err
			}
		}
		if rows := buildFeatures(page.ID, dto.Features); len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		if rows := buildTestimonials(page.ID, dto.Testimonials); len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		if rows := buildFAQs(page.ID, dto.FAQs); len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "update landing page", err)
	}
	return s.loadResponse(context.Background(), &page)
}

// Delete removes an owned page and its children.
func (s *Service) Delete(userID, pageID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var page models.LandingPageModel
		if err := tx.Where("id = ? AND user_id = ?", pageID, userID).First(&page).Error; err != nil {
			if isMissingPage(err) {
				return apperr.New(apperr.NotFound, "landing page not found")
			}
			return apperr.Wrap(apperr.Persistence, "load landing page", err)
		}
		for _, model := range []any{
			&models.FeatureModel{}, &models.TestimonialModel{}, &models.FAQModel{},
		} {
			if err := tx.Unscoped().Where("landing_page_id = ?", page.ID).Delete(model).Error; err != nil {
				return apperr.Wrap(apperr.Persistence, "delete landing page children", err)
			}
		}
		if err := tx.Unscoped().Delete(&page).Error; err != nil {
			return apperr.Wrap(apperr.Persistence, "delete landing page", err)
		}
		return nil
	})
}

// ListByOwner returns one page of the user's pages, newest first,
// without children.
func (s *Service) ListByOwner(userID string, q pagination.Query) ([]models.LandingPageModel, response.Pagination, error) {
	pages := []models.LandingPageModel{}
	query := s.db.Model(&models.LandingPageModel{}).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	meta, err := pagination.Paginate(query, q, &pages)
	if err != nil {
		return nil, meta, apperr.Wrap(apperr.Persistence, "list landing pages", err)
	}
	return pages, meta, nil
}

// GetForEdit loads an owned page with its children for the editor.
func (s *Service) GetForEdit(ctx context.Context, userID, pageID string) (*PageResponse, error) {
	var page models.LandingPageModel
	if err := s.db.Where("id = ? AND user_id = ?", pageID, userID).First(&page).Error; err != nil {
		if isMissingPage(err) {
			return nil, apperr.New(apperr.NotFound, "landing page not found")
		}
		return nil, apperr.Wrap(apperr.Persistence, "load landing page", err)
	}
	return s.loadResponse(ctx, &page)
}

// GetBySlug serves the public page. Unpublished pages are invisible.
func (s *Service) GetBySlug(ctx context.Context, pageSlug string) (*PageResponse, error) {
	var page models.LandingPageModel
	err := s.db.Where("slug = ? AND is_published = ?", pageSlug, true).First(&page).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "landing page not found")
		}
		return nil, apperr.Wrap(apperr.Persistence, "load landing page", err)
	}
	return s.loadResponse(ctx, &page)
}

// loadResponse fetches the three child collections concurrently, each
// ordered by display_order.
func (s *Service) loadResponse(ctx context.Context, page *models.LandingPageModel) (*PageResponse, error) {
	resp := &PageResponse{
		LandingPageModel: *page,
		Features:         []models.FeatureModel{},
		Testimonials:     []models.TestimonialModel{},
		FAQs:             []models.FAQModel{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Where("landing_page_id = ?", page.ID).
			Order("display_order ASC").
			Find(&resp.Features).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Where("landing_page_id = ?", page.ID).
			Order("display_order ASC").
			Find(&resp.Testimonials).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Where("landing_page_id = ?", page.ID).
			Order("display_order ASC").
			Find(&resp.FAQs).Error
	})
	if err := g.Wait(); err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "load landing page sections", err)
	}
	return resp, nil
}
