package settings

import (
	"github.com/gin-gonic/gin"

	"github.com/promostack/storefront-core/internal/pkg/apperr"
	"github.com/promostack/storefront-core/internal/pkg/response"
)

// Handler exposes the admin allow-list for console editing.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/settings/admin-emails", h.getAdminEmails)
	rg.PUT("/settings/admin-emails", h.setAdminEmails)
}

type adminEmailsDTO struct {
	Emails []string `json:"emails"`
}

// getAdminEmails GET /admin/settings/admin-emails
func (h *Handler) getAdminEmails(c *gin.Context) {
	emails, err := h.svc.AdminEmails()
	if err != nil {
		response.Error(c, apperr.Wrap(apperr.Persistence, "load admin emails", err))
		return
	}
	response.OK(c, gin.H{"emails": emails})
}

// setAdminEmails PUT /admin/settings/admin-emails
func (h *Handler) setAdminEmails(c *gin.Context) {
	var dto adminEmailsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if len(NormalizeEmails(dto.Emails)) == 0 {
		// An empty allow-list would lock every admin out.
		response.UnprocessableEntity(c, "at least one admin email is required")
		return
	}

	if err := h.svc.SetAdminEmails(dto.Emails); err != nil {
		response.Error(c, apperr.Wrap(apperr.Persistence, "save admin emails", err))
		return
	}
	emails, _ := h.svc.AdminEmails()
	response.OK(c, gin.H{"emails": emails})
}
