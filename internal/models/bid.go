package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BidStatus string

const (
	BidStatusPending   BidStatus = "pending"
	BidStatusHired     BidStatus = "hired"
	BidStatusRejected  BidStatus = "rejected"
	BidStatusWithdrawn BidStatus = "withdrawn"
)

// IsTerminal reports whether no lifecycle transition leaves this status.
func (s BidStatus) IsTerminal() bool {
	return s != BidStatusPending
}

// Bid is a freelancer's offer on a gig. One bid per (gig, freelancer) pair.
type Bid struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	GigID        uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_bids_gig_freelancer;index" json:"gig_id"`
	FreelancerID uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_bids_gig_freelancer;index" json:"freelancer_id"`
	Message      string    `gorm:"type:text;not null" json:"message"`
	Price        float64   `gorm:"not null" json:"price"`
	Status       BidStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Foreign Key Relationships
	Gig        Gig  `gorm:"foreignKey:GigID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Freelancer User `gorm:"foreignKey:FreelancerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (b *Bid) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Status == "" {
		b.Status = BidStatusPending
	}
	return nil
}
