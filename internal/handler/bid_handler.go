package handler

import (
	"context"
	"net/http"

	"github.com/Baaaki/gigflow/internal/middleware"
	"github.com/Baaaki/gigflow/internal/models"
	"github.com/Baaaki/gigflow/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BidService is the bid lifecycle, implemented by *service.BidService.
type BidService interface {
	SubmitBid(ctx context.Context, actorID uuid.UUID, input service.SubmitBidInput) (*models.Bid, error)
	HireBid(ctx context.Context, bidID, actorID uuid.UUID) error
	RejectBid(ctx context.Context, bidID, actorID uuid.UUID) error
	WithdrawBid(ctx context.Context, bidID, actorID uuid.UUID) error
	ListMyBids(ctx context.Context, freelancerID uuid.UUID) ([]service.BidWithGig, error)
	ListBidsForGig(ctx context.Context, gigID, actorID uuid.UUID) ([]service.BidWithFreelancer, error)
}

type BidHandler struct {
	bids BidService
}

func NewBidHandler(bids BidService) *BidHandler {
	return &BidHandler{bids: bids}
}

type SubmitBidRequest struct {
	GigID   string  `json:"gigId" binding:"required"`
	Message string  `json:"message" binding:"required"`
	Price   float64 `json:"price" binding:"required,gt=0"`
}

func (h *BidHandler) SubmitBid(c *gin.Context) {
	var req SubmitBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, "Submit bid", err)
		return
	}

	gigID, err := uuid.Parse(req.GigID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gigId"})
		return
	}

	bid, err := h.bids.SubmitBid(c.Request.Context(), middleware.ActorID(c), service.SubmitBidInput{
		GigID:   gigID,
		Message: req.Message,
		Price:   req.Price,
	})
	if err != nil {
		respondError(c, "Submit bid", err)
		return
	}
	c.JSON(http.StatusCreated, bid)
}

func (h *BidHandler) ListMyBids(c *gin.Context) {
	bids, err := h.bids.ListMyBids(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		respondError(c, "List my bids", err)
		return
	}
	c.JSON(http.StatusOK, bids)
}

func (h *BidHandler) ListBidsForGig(c *gin.Context) {
	gigID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	bids, err := h.bids.ListBidsForGig(c.Request.Context(), gigID, middleware.ActorID(c))
	if err != nil {
		respondError(c, "List bids for gig", err)
		return
	}
	c.JSON(http.StatusOK, bids)
}

func (h *BidHandler) HireBid(c *gin.Context) {
	h.transition(c, "Hire bid", h.bids.HireBid, "Bid hired successfully")
}

func (h *BidHandler) RejectBid(c *gin.Context) {
	h.transition(c, "Reject bid", h.bids.RejectBid, "Bid rejected successfully")
}

func (h *BidHandler) WithdrawBid(c *gin.Context) {
	h.transition(c, "Withdraw bid", h.bids.WithdrawBid, "Bid withdrawn successfully")
}

// transition runs a lifecycle operation on the bid named by the :id path parameter.
func (h *BidHandler) transition(c *gin.Context, op string, fn func(ctx context.Context, bidID, actorID uuid.UUID) error, confirmation string) {
	bidID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := fn(c.Request.Context(), bidID, middleware.ActorID(c)); err != nil {
		respondError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": confirmation})
}
