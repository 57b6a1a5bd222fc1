package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/venstudio/studio-backend/internal/auth"
)

type signInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type signInResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

// AuthHandler exposes sign-in and sign-out.
type AuthHandler struct {
	svc *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	user, sess, err := h.svc.SignIn(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}
	if err != nil {
		writeError(c, "users", "sign-in", err)
		return
	}
	c.JSON(http.StatusOK, signInResponse{Token: sess.Token, User: user})
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" || token == header {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing bearer token"})
		return
	}
	if err := h.svc.SignOut(c.Request.Context(), token); err != nil {
		writeError(c, "sessions", "sign-out", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/sign-in", h.SignIn)
	rg.POST("/auth/sign-out", h.SignOut)
}
