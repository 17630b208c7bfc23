package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/dental-admin/internal/config"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/middleware"
)

const sessionTTL = 12 * time.Hour

type AuthHandler struct {
	config *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{config: cfg}
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login trades the clinic passcode for a session token. With no passcode
// configured every login succeeds and the token is empty.
func (h *AuthHandler) Login(c *gin.Context) {
	if !h.config.AuthEnabled() {
		c.JSON(http.StatusOK, gin.H{"token": "", "authEnabled": false})
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Password is required.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.config.AdminPasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Wrong password.")
		return
	}

	token, expires, err := h.generateToken()
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not start a session.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":       token,
		"expiresAt":   expires,
		"authEnabled": true,
	})
}

// Session reports who the request is authenticated as.
func (h *AuthHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"operator":    c.GetString(middleware.ContextOperator),
		"authEnabled": h.config.AuthEnabled(),
	})
}

func (h *AuthHandler) generateToken() (string, time.Time, error) {
	now := time.Now()
	expires := now.Add(sessionTTL)

	claims := jwt.RegisteredClaims{
		Subject:   "operator",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.config.JWTSecret))
	return signed, expires, err
}
