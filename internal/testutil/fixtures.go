package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Baaaki/gigflow/internal/models"
	"github.com/Baaaki/gigflow/internal/utils"
	"gorm.io/gorm"
)

const DefaultPassword = "Test123456"

// CreateTestUser inserts a user with an argon2id-hashed DefaultPassword.
func CreateTestUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()

	hash, err := utils.HashPassword(DefaultPassword)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := db.WithContext(context.Background()).Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user %s: %v", email, err)
	}
	return user
}

// CreateTestGig inserts an open gig owned by owner.
func CreateTestGig(t *testing.T, db *gorm.DB, owner *models.User, title string, budget float64) *models.Gig {
	t.Helper()

	gig := &models.Gig{
		Title:       title,
		Description: fmt.Sprintf("Description for %s", title),
		Budget:      budget,
		OwnerID:     owner.ID,
		Status:      models.GigStatusOpen,
	}
	if err := db.Omit("Owner").Create(gig).Error; err != nil {
		t.Fatalf("Failed to create test gig %q: %v", title, err)
	}
	return gig
}

// CreateTestBid inserts a bid directly, bypassing lifecycle checks.
func CreateTestBid(t *testing.T, db *gorm.DB, gig *models.Gig, freelancer *models.User, price float64, status models.BidStatus) *models.Bid {
	t.Helper()

	bid := &models.Bid{
		GigID:        gig.ID,
		FreelancerID: freelancer.ID,
		Message:      fmt.Sprintf("%s can do it", freelancer.Name),
		Price:        price,
		Status:       status,
	}
	if err := db.Omit("Gig", "Freelancer").Create(bid).Error; err != nil {
		t.Fatalf("Failed to create test bid: %v", err)
	}
	return bid
}

// SetCreatedAt overrides a row's creation time for ordering tests.
func SetCreatedAt(t *testing.T, db *gorm.DB, model interface{}, id interface{}, at time.Time) {
	t.Helper()

	if err := db.Model(model).Where("id = ?", id).UpdateColumn("created_at", at).Error; err != nil {
		t.Fatalf("Failed to set created_at: %v", err)
	}
}

// ReloadGig reads the gig's current row.
func ReloadGig(t *testing.T, db *gorm.DB, gig *models.Gig) *models.Gig {
	t.Helper()

	var fresh models.Gig
	if err := db.First(&fresh, "id = ?", gig.ID).Error; err != nil {
		t.Fatalf("Failed to reload gig: %v", err)
	}
	return &fresh
}

// ReloadBid reads the bid's current row.
func ReloadBid(t *testing.T, db *gorm.DB, bid *models.Bid) *models.Bid {
	t.Helper()

	var fresh models.Bid
	if err := db.First(&fresh, "id = ?", bid.ID).Error; err != nil {
		t.Fatalf("Failed to reload bid: %v", err)
	}
	return &fresh
}
