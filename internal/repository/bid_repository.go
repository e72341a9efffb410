package repository

import (
	"context"
	"errors"

	"github.com/Baaaki/gigflow/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BidRepository struct {
	db *gorm.DB
}

func NewBidRepository(db *gorm.DB) *BidRepository {
	return &BidRepository{db: db}
}

func (r *BidRepository) CreateBid(ctx context.Context, bid *models.Bid) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(bid).Error
}

// GetBidByID returns nil, nil when the bid does not exist.
func (r *BidRepository) GetBidByID(ctx context.Context, id uuid.UUID) (*models.Bid, error) {
	var bid models.Bid
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&bid).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bid, nil
}

// GetBidByGigAndFreelancer returns nil, nil when the freelancer has not bid on the gig.
func (r *BidRepository) GetBidByGigAndFreelancer(ctx context.Context, gigID, freelancerID uuid.UUID) (*models.Bid, error) {
	var bid models.Bid
	err := r.db.WithContext(ctx).
		Where("gig_id = ? AND freelancer_id = ?", gigID, freelancerID).
		First(&bid).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bid, nil
}

func (r *BidRepository) ListBidsByFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]models.Bid, error) {
	var bids []models.Bid
	err := r.db.WithContext(ctx).
		Where("freelancer_id = ?", freelancerID).
		Order("created_at DESC").
		Find(&bids).Error
	return bids, err
}

func (r *BidRepository) ListBidsByGig(ctx context.Context, gigID uuid.UUID) ([]models.Bid, error) {
	var bids []models.Bid
	err := r.db.WithContext(ctx).
		Where("gig_id = ?", gigID).
		Order("created_at DESC").
		Find(&bids).Error
	return bids, err
}

// TransitionBid changes a bid's status only if it is still in the from status.
// Returns false when the bid has moved on in the meantime.
func (r *BidRepository) TransitionBid(ctx context.Context, id uuid.UUID, from, to models.BidStatus) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Bid{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// SetBidStatus overwrites a bid's status unconditionally.
func (r *BidRepository) SetBidStatus(ctx context.Context, id uuid.UUID, to models.BidStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Bid{}).
		Where("id = ?", id).
		Update("status", to).Error
}

// RejectSiblingBids rejects every bid on the gig except keepID.
func (r *BidRepository) RejectSiblingBids(ctx context.Context, gigID, keepID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Bid{}).
		Where("gig_id = ? AND id <> ?", gigID, keepID).
		Update("status", models.BidStatusRejected)
	return res.RowsAffected, res.Error
}
