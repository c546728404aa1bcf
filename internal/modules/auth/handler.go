package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/promostack/storefront-core/internal/middleware"
	"github.com/promostack/storefront-core/internal/pkg/response"
)

// Handler handles authentication HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts sign-up and login publicly; sign-out and the
// code exchange issuer require a valid session.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	grp := rg.Group("/auth")
	grp.POST("/sign-up", h.signUp)
	grp.POST("/login", h.login)
	grp.POST("/sign-out", authMW, h.signOut)
	grp.POST("/exchange-code", authMW, h.issueExchangeCode)
}

type credentialsDTO struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

type userInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// signUp POST /auth/sign-up
func (h *Handler) signUp(c *gin.Context) {
	var dto credentialsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.svc.SignUp(dto.Email, dto.Password, dto.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, userInfo{ID: user.ID, Email: user.Email, Name: user.Name})
}

// login POST /auth/login
func (h *Handler) login(c *gin.Context) {
	var dto credentialsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	token, user, err := h.svc.Login(dto.Email, dto.Password, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{
		"token": token,
		"user":  userInfo{ID: user.ID, Email: user.Email, Name: user.Name},
	})
}

// signOut POST /auth/sign-out
func (h *Handler) signOut(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	sessionID := middleware.CurrentSessionID(c)
	if err := h.svc.SignOut(userID, sessionID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// issueExchangeCode POST /auth/exchange-code
func (h *Handler) issueExchangeCode(c *gin.Context) {
	token, ok := middleware.CurrentToken(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	code, err := h.svc.IssueExchangeCode(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"code": code})
}
