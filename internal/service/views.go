package service

import (
	"github.com/Baaaki/gigflow/internal/models"
	"github.com/google/uuid"
)

// GigView is a gig enriched with its owner's public profile.
type GigView struct {
	models.Gig
	Owner *models.UserSummary `json:"owner"`
}

// GigSummary is the slice of a gig shown next to a freelancer's bid.
type GigSummary struct {
	ID          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Budget      float64          `json:"budget"`
	Status      models.GigStatus `json:"status"`
}

// BidWithGig is a bid as listed to its freelancer.
type BidWithGig struct {
	models.Bid
	Gig *GigSummary `json:"gig"`
}

// BidWithFreelancer is a bid as listed on a gig's bid board.
type BidWithFreelancer struct {
	models.Bid
	Freelancer *models.UserSummary `json:"freelancer"`
}

func summarizeGig(g *models.Gig) *GigSummary {
	if g == nil {
		return nil
	}
	return &GigSummary{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		Budget:      g.Budget,
		Status:      g.Status,
	}
}

func summarizeUser(u *models.User) *models.UserSummary {
	if u == nil {
		return nil
	}
	s := u.Summary()
	return &s
}
