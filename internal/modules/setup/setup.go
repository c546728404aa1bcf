package setup

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/promostack/storefront-core/internal/database"
	"github.com/promostack/storefront-core/internal/models"
	"github.com/promostack/storefront-core/internal/pkg/apperr"
	"github.com/promostack/storefront-core/internal/pkg/response"
	"github.com/promostack/storefront-core/internal/pkg/slug"
)

type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// IsInitialized reports whether any account exists yet.
func (s *Service) IsInitialized() (bool, error) {
	var count int64
	if err := s.db.Model(&models.UserModel{}).Count(&count).Error; err != nil {
		return false, apperr.Wrap(apperr.Persistence, "count users", err)
	}
	return count > 0, nil
}

// Initialize runs schema migration and seeds starter products into an
// empty catalog. Safe to call repeatedly.
func (s *Service) Initialize() error {
	if err := database.Migrate(s.db); err != nil {
		return apperr.Wrap(apperr.Persistence, "migrate schema", err)
	}

	var count int64
	if err := s.db.Model(&models.ProductModel{}).Count(&count).Error; err != nil {
		return apperr.Wrap(apperr.Persistence, "count products", err)
	}
	if count > 0 {
		return nil
	}

	seeds := starterProducts()
	if err := s.db.Create(&seeds).Error; err != nil {
		return apperr.Wrap(apperr.Persistence, "seed products", err)
	}
	s.logger.Info("seeded starter catalog", zap.Int("products", len(seeds)))
	return nil
}

func starterProducts() []models.ProductModel {
	seeds := []struct {
		name, description, link, image string
		price                          float64
	}{
		{
			name:        "Premium Wireless Headphones",
			description: "Experience crystal-clear audio with our premium wireless headphones featuring noise cancellation and 30-hour battery life.",
			price:       199.99,
			link:        "https://example.com/headphones?ref=affiliate123",
			image:       "/premium-wireless-headphones.png",
		},
		{
			name:        "Smart Fitness Tracker",
			description: "Track your health and fitness goals with this advanced smartwatch featuring heart rate monitoring and GPS.",
			price:       149.99,
			link:        "https://example.com/fitness-tracker?ref=affiliate123",
			image:       "static/images/fitness-tracker.png",
		},
		{
			name:        "Ergonomic Office Chair",
			description: "Improve your productivity with this ergonomic office chair designed for all-day comfort and proper posture.",
			price:       299.99,
			link:        "https://example.com/office-chair?ref=affiliate123",
			image:       "/ergonomic-office-chair.png",
		},
	}

	products := make([]models.ProductModel, len(seeds))
	for i, seed := range seeds {
		products[i] = models.ProductModel{
			ProductName:   seed.name,
			Slug:          slug.Slugify(seed.name),
			Description:   seed.description,
			Price:         seed.price,
			AffiliateLink: seed.link,
			ImageURL:      seed.image,
			Images: []models.ProductImageModel{
				{ImageURL: seed.image, SortOrder: 1},
			},
		}
	}
	return products
}

// Handler handles setup HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/setup", h.status)
	rg.POST("/setup", h.initialize)
}

// status GET /setup
func (h *Handler) status(c *gin.Context) {
	initialized, err := h.svc.IsInitialized()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"isInit": initialized})
}

// initialize POST /setup
func (h *Handler) initialize(c *gin.Context) {
	if err := h.svc.Initialize(); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"isInit": true})
}
