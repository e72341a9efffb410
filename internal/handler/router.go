package handler

import (
	"time"

	"github.com/Baaaki/gigflow/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RouterConfig collects everything the HTTP surface is built from.
type RouterConfig struct {
	Auth   *AuthHandler
	Gigs   *GigHandler
	Bids   *BidHandler
	Health *HealthHandler

	JWTSecret    string
	IsProduction bool
	CORSOrigins  []string

	// Optional; nil disables rate limiting
	APILimiter  *middleware.RateLimiter
	AuthLimiter *middleware.RateLimiter
}

// SetupRouter configures all routes and middleware.
func SetupRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.HSTSMiddleware(cfg.IsProduction))
	// cors.New panics on an empty origin list; no origins means same-origin only
	if len(cfg.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	if cfg.Health != nil {
		router.GET("/api/health", cfg.Health.Health)
	}

	api := router.Group("/api")
	if cfg.APILimiter != nil {
		api.Use(cfg.APILimiter.Middleware())
	}
	requireAuth := middleware.AuthMiddleware(cfg.JWTSecret)

	auth := api.Group("/auth")
	if cfg.AuthLimiter != nil {
		auth.Use(cfg.AuthLimiter.Middleware())
	}
	{
		auth.POST("/register", cfg.Auth.Register)
		auth.POST("/login", cfg.Auth.Login)
		auth.POST("/logout", cfg.Auth.Logout)
		auth.GET("/me", requireAuth, cfg.Auth.Me)
	}

	gigs := api.Group("/gigs")
	{
		gigs.GET("", cfg.Gigs.ListOpenGigs)
		gigs.GET("/my-gigs", requireAuth, cfg.Gigs.ListMyGigs)
		gigs.GET("/:id", cfg.Gigs.GetGig)
		gigs.GET("/:id/history", requireAuth, cfg.Gigs.GigHistory)
		gigs.POST("", requireAuth, cfg.Gigs.CreateGig)
	}

	bids := api.Group("/bids", requireAuth)
	{
		bids.POST("", cfg.Bids.SubmitBid)
		bids.GET("/my-bids", cfg.Bids.ListMyBids)
		bids.GET("/:id", cfg.Bids.ListBidsForGig)
		bids.PATCH("/:id/hire", cfg.Bids.HireBid)
		bids.PATCH("/:id/reject", cfg.Bids.RejectBid)
		bids.PATCH("/:id/withdraw", cfg.Bids.WithdrawBid)
	}

	return router
}
