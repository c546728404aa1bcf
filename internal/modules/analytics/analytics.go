package analytics

import (
	"context"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/promostack/storefront-core/internal/models"
	"github.com/promostack/storefront-core/internal/pkg/apperr"
	"github.com/promostack/storefront-core/internal/pkg/response"
)

const recentClickLimit = 5

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// ProductClicks is one row of the click leaderboard.
type ProductClicks struct {
	ID          string  `json:"id"`
	ProductName string  `json:"product_name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	ClickCount  int64   `json:"click_count"`
}

// RecentClick is one entry of the live click feed.
type RecentClick struct {
	ProductName string `json:"product_name"`
	ClickedAt   string `json:"clicked_at"`
	Referer     string `json:"referer"`
}

// Dashboard is the admin analytics payload.
type Dashboard struct {
	TotalProducts int64           `json:"total_products"`
	TotalValue    float64         `json:"total_value"`
	TotalClicks   int64           `json:"total_clicks"`
	TopProduct    *ProductClicks  `json:"top_product"`
	Products      []ProductClicks `json:"products"`
	RecentClicks  []RecentClick   `json:"recent_clicks"`
}

// Dashboard aggregates the leaderboard, totals and the recent click feed.
// The independent queries run concurrently.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	dash := &Dashboard{
		Products:     []ProductClicks{},
		RecentClicks: []RecentClick{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&models.ProductModel{}).
			Select("id", "product_name", "category", "price", "click_count").
			Order("click_count DESC").
			Find(&dash.Products).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&models.ClickEventModel{}).Count(&dash.TotalClicks).Error
	})
	g.Go(func() error {
		var events []models.ClickEventModel
		err := s.db.WithContext(gctx).
			Preload("Product").
			Order("clicked_at DESC").
			Limit(recentClickLimit).
			Find(&events).Error
		if err != nil {
			return err
		}
		for _, ev := range events {
			name := "(deleted product)"
			if ev.Product != nil {
				name = ev.Product.ProductName
			}
			dash.RecentClicks = append(dash.RecentClicks, RecentClick{
				ProductName: name,
				ClickedAt:   ev.ClickedAt.Format("2006-01-02 15:04:05"),
				Referer:     ev.Referer,
			})
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "load analytics", err)
	}

	dash.TotalProducts = int64(len(dash.Products))
	for _, p := range dash.Products {
		dash.TotalValue += p.Price
	}
	if len(dash.Products) > 0 {
		top := dash.Products[0]
		dash.TopProduct = &top
	}
	return dash, nil
}

// Handler handles analytics HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.dashboard)
}

// dashboard GET /admin/dashboard
func (h *Handler) dashboard(c *gin.Context) {
	dash, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dash)
}
