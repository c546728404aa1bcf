package product

import (
	"github.com/gin-gonic/gin"
	"github.com/promostack/storefront-core/internal/pkg/response"
)

// Handler handles product HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the public storefront endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	products.GET("", h.list)
	products.GET("/:identifier", h.getByIdentifier)
	products.POST("/:identifier/click", h.click)
}

// RegisterAdminRoutes mounts the write endpoints behind the admin gate.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	products.POST("", h.create)
	products.PUT("/:identifier", h.update)
	products.DELETE("/:identifier", h.delete)
}

// list GET /products?category=
func (h *Handler) list(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	products, err := h.svc.List(q)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]productResponse, len(products))
	for i, p := range products {
		items[i] = toResponse(&p)
	}
	response.OK(c, items)
}

// getByIdentifier GET /products/:identifier — id or slug
func (h *Handler) getByIdentifier(c *gin.Context) {
	p, err := h.svc.GetByIdentifier(c.Param("identifier"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toResponse(p))
}

// click POST /products/:identifier/click — always succeeds
func (h *Handler) click(c *gin.Context) {
	h.svc.TrackClick(c.Request.Context(), c.Param("identifier"), c.ClientIP(), c.GetHeader("Referer"))
	response.OK(c, gin.H{"success": true})
}

// create POST /admin/products
func (h *Handler) create(c *gin.Context) {
	var dto CreateProductDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	p, err := h.svc.Create(&dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toResponse(p))
}

// update PUT /admin/products/:identifier
func (h *Handler) update(c *gin.Context) {
	var dto UpdateProductDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	p, err := h.svc.Update(c.Param("identifier"), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toResponse(p))
}

// delete DELETE /admin/products/:identifier
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("identifier")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
