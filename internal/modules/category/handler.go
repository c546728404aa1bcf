package category

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/promostack/storefront-core/internal/models"
	"github.com/promostack/storefront-core/internal/pkg/response"
)

// Handler handles category HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the public list endpoint; RegisterAdminRoutes mounts
// the write endpoints behind the admin gate.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories", h.list)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories", h.list)
	rg.POST("/categories", h.create)
}

type categoryItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type createCategoryDTO struct {
	Name string `json:"name"`
}

// list GET /categories — always responds 200; failures carry an error field
// next to an empty list so storefront dropdowns degrade gracefully.
func (h *Handler) list(c *gin.Context) {
	cats, err := h.svc.List()
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"categories": []categoryItem{}, "error": err.Error()})
		return
	}

	items := make([]categoryItem, len(cats))
	for i, cat := range cats {
		items[i] = toItem(&cat)
	}
	c.JSON(http.StatusOK, gin.H{"categories": items})
}

// create POST /admin/categories
func (h *Handler) create(c *gin.Context) {
	var dto createCategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cat, err := h.svc.Create(dto.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	if cat == nil {
		// Empty name is a no-op, not an error.
		response.NoContent(c)
		return
	}
	response.Created(c, toItem(cat))
}

func toItem(cat *models.CategoryModel) categoryItem {
	return categoryItem{ID: cat.ID, Name: cat.Name, Slug: cat.Slug}
}
