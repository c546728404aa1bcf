package landing

import (
	"github.com/gin-gonic/gin"

	"github.com/promostack/storefront-core/internal/middleware"
	"github.com/promostack/storefront-core/internal/pkg/pagination"
	"github.com/promostack/storefront-core/internal/pkg/response"
)

// Handler handles landing page HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the public page endpoint and the authoring
// endpoints, which any signed-in owner may use.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	pages := rg.Group("/pages")
	pages.GET("/:slug", h.getBySlug)
	pages.POST("", authMW, h.create)
	pages.GET("/:slug/edit", authMW, h.getForEdit)
	pages.PUT("/:slug", authMW, h.update)
	pages.DELETE("/:slug", authMW, h.remove)
}

// RegisterAdminRoutes mounts the console listing.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/pages", h.list)
}

// getBySlug GET /pages/:slug
func (h *Handler) getBySlug(c *gin.Context) {
	page, err := h.svc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, page)
}

// list GET /admin/pages?page=&size=
func (h *Handler) list(c *gin.Context) {
	pages, meta, err := h.svc.ListByOwner(middleware.CurrentUserID(c), pagination.FromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paged(c, pages, meta)
}

// create POST /pages
func (h *Handler) create(c *gin.Context) {
	var dto CreatePageDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	page, err := h.svc.Create(middleware.CurrentUserID(c), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, page)
}

// getForEdit GET /pages/:id/edit
func (h *Handler) getForEdit(c *gin.Context) {
	page, err := h.svc.GetForEdit(c.Request.Context(), middleware.CurrentUserID(c), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, page)
}

// update PUT /pages/:id
func (h *Handler) update(c *gin.Context) {
	var dto UpdatePageDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	page, err := h.svc.Update(middleware.CurrentUserID(c), c.Param("slug"), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, page)
}

// remove DELETE /pages/:id
func (h *Handler) remove(c *gin.Context) {
	if err := h.svc.Delete(middleware.CurrentUserID(c), c.Param("slug")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
