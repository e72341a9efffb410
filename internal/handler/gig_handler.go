package handler

import (
	"context"
	"net/http"

	"github.com/Baaaki/gigflow/internal/journal"
	"github.com/Baaaki/gigflow/internal/middleware"
	"github.com/Baaaki/gigflow/internal/models"
	"github.com/Baaaki/gigflow/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock_services_test.go -package=handler_test github.com/Baaaki/gigflow/internal/handler GigService,BidService

// GigService is the gig side of the API, implemented by *service.GigService.
type GigService interface {
	CreateGig(ctx context.Context, actorID uuid.UUID, input service.CreateGigInput) (*models.Gig, error)
	ListOpenGigs(ctx context.Context, search string) ([]service.GigView, error)
	ListMyGigs(ctx context.Context, ownerID uuid.UUID) ([]models.Gig, error)
	GetGigByID(ctx context.Context, id uuid.UUID) (*service.GigView, error)
	GigHistory(ctx context.Context, gigID, actorID uuid.UUID) ([]journal.Entry, error)
}

type GigHandler struct {
	gigs GigService
}

func NewGigHandler(gigs GigService) *GigHandler {
	return &GigHandler{gigs: gigs}
}

type CreateGigRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Budget      float64 `json:"budget" binding:"required,gt=0"`
}

func (h *GigHandler) ListOpenGigs(c *gin.Context) {
	gigs, err := h.gigs.ListOpenGigs(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, "List open gigs", err)
		return
	}
	c.JSON(http.StatusOK, gigs)
}

func (h *GigHandler) CreateGig(c *gin.Context) {
	var req CreateGigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, "Create gig", err)
		return
	}

	gig, err := h.gigs.CreateGig(c.Request.Context(), middleware.ActorID(c), service.CreateGigInput{
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
	})
	if err != nil {
		respondError(c, "Create gig", err)
		return
	}
	c.JSON(http.StatusCreated, gig)
}

func (h *GigHandler) ListMyGigs(c *gin.Context) {
	gigs, err := h.gigs.ListMyGigs(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		respondError(c, "List my gigs", err)
		return
	}
	c.JSON(http.StatusOK, gigs)
}

func (h *GigHandler) GetGig(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	gig, err := h.gigs.GetGigByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Get gig", err)
		return
	}
	c.JSON(http.StatusOK, gig)
}

func (h *GigHandler) GigHistory(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	entries, err := h.gigs.GigHistory(c.Request.Context(), id, middleware.ActorID(c))
	if err != nil {
		respondError(c, "Gig history", err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
