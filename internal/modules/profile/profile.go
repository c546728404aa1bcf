package profile

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/promostack/storefront-core/internal/middleware"
	"github.com/promostack/storefront-core/internal/models"
	"github.com/promostack/storefront-core/internal/pkg/apperr"
	"github.com/promostack/storefront-core/internal/pkg/response"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Overview is the account dashboard payload.
type Overview struct {
	User         userInfo                  `json:"user"`
	ProductCount int64                     `json:"product_count"`
	LandingPages []models.LandingPageModel `json:"landing_pages"`
}

type userInfo struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Get assembles the user record, catalog size and the user's pages.
func (s *Service) Get(ctx context.Context, userID string) (*Overview, error) {
	var user models.UserModel
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "user not found")
		}
		return nil, apperr.Wrap(apperr.Persistence, "load user", err)
	}

	overview := &Overview{
		User: userInfo{
			ID:     user.ID,
			Email:  user.Email,
			Name:   user.Name,
			Avatar: user.Avatar,
		},
		LandingPages: []models.LandingPageModel{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&models.ProductModel{}).Count(&overview.ProductCount).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&overview.LandingPages).Error
	})
	if err := g.Wait(); err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "load profile", err)
	}
	return overview, nil
}

// Handler handles profile HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/profile", authMW, h.get)
}

// get GET /profile
func (h *Handler) get(c *gin.Context) {
	overview, err := h.svc.Get(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, overview)
}
