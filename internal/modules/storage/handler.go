package storage

import (
	"github.com/gin-gonic/gin"

	"github.com/promostack/storefront-core/internal/pkg/response"
)

// Handler handles image upload HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/images/upload", authMW, h.upload)
}

// upload POST /images/upload — multipart form with a single "file" part.
func (h *Handler) upload(c *gin.Context) {
	if h.svc == nil {
		response.UnprocessableEntity(c, "image storage is not configured")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file field is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "unreadable upload")
		return
	}
	defer file.Close()

	url, err := h.svc.Upload(
		c.Request.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"url": url})
}
