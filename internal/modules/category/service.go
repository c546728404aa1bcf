package category

import (
	"strings"

	"github.com/promostack/storefront-core/internal/models"
	"github.com/promostack/storefront-core/internal/pkg/apperr"
	"github.com/promostack/storefront-core/internal/pkg/slug"
	"gorm.io/gorm"
)

// Service handles category reads and writes.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns all categories ordered by name.
func (s *Service) List() ([]models.CategoryModel, error) {
	var cats []models.CategoryModel
	if err := s.db.Order("name ASC").Find(&cats).Error; err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "list categories", err)
	}
	return cats, nil
}

// Create inserts a category with a derived slug. An empty name is silently
// ignored and returns (nil, nil), matching the original form behavior.
func (s *Service) Create(name string) (*models.CategoryModel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	cat := models.CategoryModel{Name: name, Slug: slug.Slugify(name)}

	var count int64
	err := s.db.Model(&models.CategoryModel{}).Where("slug = ? OR name = ?", cat.Slug, cat.Name).Count(&count).Error
	if dupErr := duplicateCheck(count, err); dupErr != nil {
		return nil, dupErr
	}

	if err := s.db.Create(&cat).Error; err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "create category", err)
	}
	return &cat, nil
}

// duplicateCheck folds the pre-insert lookup into one verdict. A failed
// query blocks the insert rather than reading as "no duplicate".
func duplicateCheck(count int64, err error) error {
	if err != nil {
		return apperr.Wrap(apperr.Persistence, "check category", err)
	}
	if count > 0 {
		return apperr.New(apperr.Conflict, "category name or slug already exists")
	}
	return nil
}
