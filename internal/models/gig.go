package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GigStatus string

const (
	GigStatusOpen     GigStatus = "open"
	GigStatusAssigned GigStatus = "assigned"
)

type Gig struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Budget      float64   `gorm:"not null" json:"budget"`
	OwnerID     uuid.UUID `gorm:"type:char(36);not null;index" json:"owner_id"`
	Status      GigStatus `gorm:"type:varchar(20);not null;default:'open';index" json:"status"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Foreign Key Relationship
	Owner User `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (g *Gig) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.Status == "" {
		g.Status = GigStatusOpen
	}
	return nil
}

func (g *Gig) IsOpen() bool {
	return g.Status == GigStatusOpen
}
