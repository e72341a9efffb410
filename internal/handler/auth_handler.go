package handler

import (
	"net/http"

	"github.com/Baaaki/gigflow/internal/middleware"
	"github.com/Baaaki/gigflow/internal/models"
	"github.com/Baaaki/gigflow/internal/service"
	"github.com/Baaaki/gigflow/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, "Register", err)
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, "Register", err)
		return
	}

	h.setTokenCookie(c, token)

	logger.Log.Info("Registration completed",
		zap.String("user_id", user.ID.String()),
		zap.String("ip", c.ClientIP()),
	)

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user.Summary(),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, "Login", err)
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, "Login", err)
		return
	}

	h.setTokenCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user.Summary(),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearTokenCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authService.CurrentUser(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		respondError(c, "Current user", err)
		return
	}
	c.JSON(http.StatusOK, userResponse(user))
}

// setTokenCookie stores the session token in an HttpOnly cookie. Production
// serves the frontend from another origin over HTTPS, which needs Secure with
// SameSite=None; elsewhere Lax keeps plain-HTTP development working.
func (h *AuthHandler) setTokenCookie(c *gin.Context, token string) {
	isProduction := h.authService.IsProduction()
	if isProduction {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(
		middleware.TokenCookieName,
		token,
		int(h.authService.TokenTTL().Seconds()),
		"/",
		"",
		isProduction,
		true,
	)
}

func (h *AuthHandler) clearTokenCookie(c *gin.Context) {
	isProduction := h.authService.IsProduction()
	if isProduction {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(middleware.TokenCookieName, "", -1, "/", "", isProduction, true)
}

func userResponse(u *models.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"created_at": u.CreatedAt,
	}
}
