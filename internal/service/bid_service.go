package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Baaaki/gigflow/internal/cache"
	"github.com/Baaaki/gigflow/internal/journal"
	"github.com/Baaaki/gigflow/internal/models"
	"github.com/Baaaki/gigflow/internal/policy"
	"github.com/Baaaki/gigflow/internal/repository"
	"github.com/Baaaki/gigflow/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SubmitBidInput struct {
	GigID   uuid.UUID
	Message string
	Price   float64
}

// BidService runs the bid lifecycle. Every transition is one store transaction:
// preconditions are checked and writes are made on the same unit of work, and
// any failure rolls all of it back.
type BidService struct {
	store   *repository.Store
	cache   cache.GigCache
	journal Journal
}

func NewBidService(store *repository.Store, gigCache cache.GigCache, j Journal) *BidService {
	if gigCache == nil {
		gigCache = cache.NopGigCache{}
	}
	return &BidService{
		store:   store,
		cache:   gigCache,
		journal: j,
	}
}

// SubmitBid creates a pending bid on an open gig.
func (s *BidService) SubmitBid(ctx context.Context, actorID uuid.UUID, input SubmitBidInput) (*models.Bid, error) {
	if actorID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, validationError("message is required")
	}
	if input.Price <= 0 {
		return nil, validationError("price must be greater than zero")
	}

	bid := &models.Bid{
		ID:           uuid.New(),
		GigID:        input.GigID,
		FreelancerID: actorID,
		Message:      message,
		Price:        input.Price,
		Status:       models.BidStatusPending,
	}

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		// Shared lock: concurrent bids proceed, a hire on this gig waits for them.
		gig, err := tx.Gigs().GetGigByIDForShare(ctx, input.GigID)
		if err != nil {
			return err
		}
		if gig == nil || !gig.IsOpen() {
			return ErrGigNotAvailable
		}

		existing, err := tx.Bids().GetBidByGigAndFreelancer(ctx, input.GigID, actorID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrDuplicateBid
		}

		if !policy.CanBidOnGig(actorID, gig) {
			return ErrSelfBidForbidden
		}

		if err := tx.Bids().CreateBid(ctx, bid); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateBid
			}
			return err
		}
		return nil
	})
	if err != nil {
		if isDomainError(err) {
			logger.Log.Warn("Bid submission rejected",
				zap.String("gig_id", input.GigID.String()),
				zap.String("freelancer_id", actorID.String()),
				zap.Error(err),
			)
		}
		return nil, settle("Submit bid", err,
			zap.String("gig_id", input.GigID.String()),
			zap.String("freelancer_id", actorID.String()),
		)
	}

	record(s.journal, journal.Entry{
		Event:   journal.EventBidSubmitted,
		GigID:   bid.GigID.String(),
		BidID:   bid.ID.String(),
		ActorID: actorID.String(),
		Status:  string(bid.Status),
	})

	logger.Log.Info("Bid submitted",
		zap.String("bid_id", bid.ID.String()),
		zap.String("gig_id", bid.GigID.String()),
		zap.String("freelancer_id", actorID.String()),
		zap.Float64("price", bid.Price),
	)

	return bid, nil
}

// HireBid hires one bid, assigns its gig and rejects every other bid on the gig.
// Concurrent hires on the same gig serialize on the gig's status: the gig row is
// locked and the open→assigned write only succeeds while the gig is still open,
// so exactly one caller wins and the rest get ErrGigNotOpen.
func (s *BidService) HireBid(ctx context.Context, bidID, actorID uuid.UUID) error {
	if actorID == uuid.Nil {
		return ErrUnauthenticated
	}
	start := time.Now()

	var (
		gigID    uuid.UUID
		rejected []uuid.UUID
	)

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		bid, err := tx.Bids().GetBidByID(ctx, bidID)
		if err != nil {
			return err
		}
		if bid == nil {
			return ErrBidNotFound
		}

		gig, err := tx.Gigs().GetGigByIDForUpdate(ctx, bid.GigID)
		if err != nil {
			return err
		}
		if !policy.IsGigOwner(actorID, gig) {
			return ErrForbidden
		}
		if !gig.IsOpen() {
			return ErrGigNotOpen
		}
		if bid.Status.IsTerminal() {
			return ErrBidNotPending
		}

		assigned, err := tx.Gigs().AssignGig(ctx, gig.ID)
		if err != nil {
			return err
		}
		if !assigned {
			return ErrGigNotOpen
		}

		hired, err := tx.Bids().TransitionBid(ctx, bid.ID, models.BidStatusPending, models.BidStatusHired)
		if err != nil {
			return err
		}
		if !hired {
			// Withdrawn between our read and the write
			return ErrBidNotPending
		}

		siblings, err := tx.Bids().ListBidsByGig(ctx, gig.ID)
		if err != nil {
			return err
		}
		if _, err := tx.Bids().RejectSiblingBids(ctx, gig.ID, bid.ID); err != nil {
			return err
		}

		gigID = gig.ID
		for _, sibling := range siblings {
			if sibling.ID != bid.ID {
				rejected = append(rejected, sibling.ID)
			}
		}
		return nil
	})
	if err != nil {
		if isDomainError(err) {
			logger.Log.Warn("Hire rejected",
				zap.String("bid_id", bidID.String()),
				zap.String("actor_id", actorID.String()),
				zap.Error(err),
			)
		}
		return settle("Hire bid", err,
			zap.String("bid_id", bidID.String()),
			zap.String("actor_id", actorID.String()),
		)
	}

	invalidateOpenGigs(ctx, s.cache)

	entries := []journal.Entry{
		{Event: journal.EventBidHired, GigID: gigID.String(), BidID: bidID.String(), ActorID: actorID.String(), Status: string(models.BidStatusHired)},
		{Event: journal.EventGigAssigned, GigID: gigID.String(), ActorID: actorID.String(), Status: string(models.GigStatusAssigned)},
	}
	for _, id := range rejected {
		entries = append(entries, journal.Entry{
			Event:   journal.EventBidRejected,
			GigID:   gigID.String(),
			BidID:   id.String(),
			ActorID: actorID.String(),
			Status:  string(models.BidStatusRejected),
		})
	}
	record(s.journal, entries...)

	logger.Log.Info("Bid hired",
		zap.String("bid_id", bidID.String()),
		zap.String("gig_id", gigID.String()),
		zap.String("owner_id", actorID.String()),
		zap.Int("rejected_siblings", len(rejected)),
		zap.Duration("duration", time.Since(start)),
	)

	return nil
}

// RejectBid rejects a single bid. Only the gig owner may reject. There is no
// guard on the bid or gig status; rejecting a bid that is no longer pending is
// allowed but logged.
func (s *BidService) RejectBid(ctx context.Context, bidID, actorID uuid.UUID) error {
	if actorID == uuid.Nil {
		return ErrUnauthenticated
	}

	var bid *models.Bid
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		bid, err = tx.Bids().GetBidByID(ctx, bidID)
		if err != nil {
			return err
		}
		if bid == nil {
			return ErrBidNotFound
		}

		gig, err := tx.Gigs().GetGigByID(ctx, bid.GigID)
		if err != nil {
			return err
		}
		if !policy.IsGigOwner(actorID, gig) {
			return ErrForbidden
		}

		return tx.Bids().SetBidStatus(ctx, bid.ID, models.BidStatusRejected)
	})
	if err != nil {
		return settle("Reject bid", err,
			zap.String("bid_id", bidID.String()),
			zap.String("actor_id", actorID.String()),
		)
	}

	if bid.Status != models.BidStatusPending {
		logger.Log.Warn("Rejected a bid that was not pending",
			zap.String("bid_id", bid.ID.String()),
			zap.String("previous_status", string(bid.Status)),
		)
	}

	record(s.journal, journal.Entry{
		Event:   journal.EventBidRejected,
		GigID:   bid.GigID.String(),
		BidID:   bid.ID.String(),
		ActorID: actorID.String(),
		Status:  string(models.BidStatusRejected),
	})

	logger.Log.Info("Bid rejected",
		zap.String("bid_id", bid.ID.String()),
		zap.String("gig_id", bid.GigID.String()),
	)
	return nil
}

// WithdrawBid lets a freelancer take back a bid that is still pending.
func (s *BidService) WithdrawBid(ctx context.Context, bidID, actorID uuid.UUID) error {
	if actorID == uuid.Nil {
		return ErrUnauthenticated
	}

	var bid *models.Bid
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		bid, err = tx.Bids().GetBidByID(ctx, bidID)
		if err != nil {
			return err
		}
		if bid == nil {
			return ErrBidNotFound
		}
		if !policy.IsBidOwner(actorID, bid) {
			return ErrForbidden
		}
		if bid.Status.IsTerminal() {
			return ErrBidAlreadyDecided
		}

		withdrawn, err := tx.Bids().TransitionBid(ctx, bid.ID, models.BidStatusPending, models.BidStatusWithdrawn)
		if err != nil {
			return err
		}
		if !withdrawn {
			return ErrBidAlreadyDecided
		}
		return nil
	})
	if err != nil {
		return settle("Withdraw bid", err,
			zap.String("bid_id", bidID.String()),
			zap.String("actor_id", actorID.String()),
		)
	}

	record(s.journal, journal.Entry{
		Event:   journal.EventBidWithdrawn,
		GigID:   bid.GigID.String(),
		BidID:   bid.ID.String(),
		ActorID: actorID.String(),
		Status:  string(models.BidStatusWithdrawn),
	})

	logger.Log.Info("Bid withdrawn",
		zap.String("bid_id", bid.ID.String()),
		zap.String("freelancer_id", actorID.String()),
	)
	return nil
}

// ListMyBids returns the freelancer's bids newest first with their gigs attached.
func (s *BidService) ListMyBids(ctx context.Context, freelancerID uuid.UUID) ([]BidWithGig, error) {
	if freelancerID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	bids, err := s.store.Bids().ListBidsByFreelancer(ctx, freelancerID)
	if err != nil {
		return nil, settle("List my bids", err, zap.String("freelancer_id", freelancerID.String()))
	}

	gigIDs := make([]uuid.UUID, 0, len(bids))
	for _, b := range bids {
		gigIDs = append(gigIDs, b.GigID)
	}
	gigs, err := s.store.Gigs().GetGigsByIDs(ctx, gigIDs)
	if err != nil {
		return nil, settle("Load bid gigs", err, zap.String("freelancer_id", freelancerID.String()))
	}

	result := make([]BidWithGig, 0, len(bids))
	for _, b := range bids {
		result = append(result, BidWithGig{Bid: b, Gig: summarizeGig(gigs[b.GigID])})
	}
	return result, nil
}

// ListBidsForGig returns a gig's bids newest first with freelancer profiles
// attached. Visible to the gig owner and to freelancers who bid on the gig.
func (s *BidService) ListBidsForGig(ctx context.Context, gigID, actorID uuid.UUID) ([]BidWithFreelancer, error) {
	if actorID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	gig, err := s.store.Gigs().GetGigByID(ctx, gigID)
	if err != nil {
		return nil, settle("Get gig for bids", err, zap.String("gig_id", gigID.String()))
	}
	if gig == nil {
		return nil, ErrGigNotFound
	}

	hasBid := false
	if !policy.IsGigOwner(actorID, gig) {
		own, err := s.store.Bids().GetBidByGigAndFreelancer(ctx, gigID, actorID)
		if err != nil {
			return nil, settle("Check own bid", err, zap.String("gig_id", gigID.String()))
		}
		hasBid = own != nil
	}
	if !policy.CanViewGigBids(actorID, gig, hasBid) {
		return nil, ErrForbidden
	}

	bids, err := s.store.Bids().ListBidsByGig(ctx, gigID)
	if err != nil {
		return nil, settle("List bids for gig", err, zap.String("gig_id", gigID.String()))
	}

	freelancerIDs := make([]uuid.UUID, 0, len(bids))
	for _, b := range bids {
		freelancerIDs = append(freelancerIDs, b.FreelancerID)
	}
	freelancers, err := s.store.Users().GetUsersByIDs(ctx, freelancerIDs)
	if err != nil {
		return nil, settle("Load bid freelancers", err, zap.String("gig_id", gigID.String()))
	}

	result := make([]BidWithFreelancer, 0, len(bids))
	for _, b := range bids {
		result = append(result, BidWithFreelancer{Bid: b, Freelancer: summarizeUser(freelancers[b.FreelancerID])})
	}
	return result, nil
}
