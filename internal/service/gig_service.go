package service

import (
	"context"
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
)

type CreateGigInput struct {
	Title       string
	Description string
	Budget      float64
}

// GigService serves gig creation and the gig side of the query surface.
type GigService struct {
	store   *repository.Store
	cache   cache.GigCache
	journal Journal
}

func NewGigService(store *repository.Store, gigCache cache.GigCache, j Journal) *GigService {
	if gigCache == nil {
		gigCache = cache.NopGigCache{}
	}
	return &GigService{
		store:   store,
		cache:   gigCache,
		journal: j,
	}
}

func (s *GigService) CreateGig(ctx context.Context, actorID uuid.UUID, input CreateGigInput) (*models.Gig, error) {
	if actorID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" {
		return nil, validationError("title and description are required")
	}
	if len(title) > 200 {
		return nil, validationError("title must be at most 200 characters")
	}
	if input.Budget <= 0 {
		return nil, validationError("budget must be greater than zero")
	}

	gig := &models.Gig{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Budget:      input.Budget,
		OwnerID:     actorID,
		Status:      models.GigStatusOpen,
	}

	if err := s.store.Gigs().CreateGig(ctx, gig); err != nil {
		return nil, settle("Create gig", err, zap.String("owner_id", actorID.String()))
	}

	invalidateOpenGigs(ctx, s.cache)

	logger.Log.Info("Gig created",
		zap.String("gig_id", gig.ID.String()),
		zap.String("owner_id", actorID.String()),
		zap.Float64("budget", gig.Budget),
	)

	return gig, nil
}

// ListOpenGigs returns open gigs newest first, optionally filtered by a
// case-insensitive title substring, each with its owner attached.
func (s *GigService) ListOpenGigs(ctx context.Context, search string) ([]GigView, error) {
	start := time.Now()

	lookup, err := s.cache.GetOpenGigs(ctx, search)
	if err != nil {
		logger.Log.Warn("Open gig cache read failed, falling back to database",
			zap.Error(err),
		)
	}

	gigs := lookup.Gigs
	if !lookup.Found {
		gigs, err = s.store.Gigs().ListOpenGigs(ctx, search)
		if err != nil {
			return nil, settle("List open gigs", err, zap.String("search", search))
		}
		if err := s.cache.SetOpenGigs(ctx, search, lookup.Version, gigs); err != nil {
			logger.Log.Warn("Failed to cache open gigs",
				zap.Error(err),
			)
		}
	}

	views, err := s.withOwners(ctx, gigs)
	if err != nil {
		return nil, err
	}

	logger.Log.Debug("Listed open gigs",
		zap.String("search", search),
		zap.Int("count", len(views)),
		zap.Bool("cache_hit", lookup.Found),
		zap.Duration("duration", time.Since(start)),
	)

	return views, nil
}

func (s *GigService) ListMyGigs(ctx context.Context, ownerID uuid.UUID) ([]models.Gig, error) {
	if ownerID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	gigs, err := s.store.Gigs().ListGigsByOwner(ctx, ownerID)
	if err != nil {
		return nil, settle("List my gigs", err, zap.String("owner_id", ownerID.String()))
	}
	return gigs, nil
}

func (s *GigService) GetGigByID(ctx context.Context, id uuid.UUID) (*GigView, error) {
	gig, err := s.store.Gigs().GetGigByID(ctx, id)
	if err != nil {
		return nil, settle("Get gig", err, zap.String("gig_id", id.String()))
	}
	if gig == nil {
		return nil, ErrGigNotFound
	}

	views, err := s.withOwners(ctx, []models.Gig{*gig})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// GigHistory returns the journal of a gig's lifecycle transitions. Owner only.
func (s *GigService) GigHistory(ctx context.Context, gigID, actorID uuid.UUID) ([]journal.Entry, error) {
	if actorID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	gig, err := s.store.Gigs().GetGigByID(ctx, gigID)
	if err != nil {
		return nil, settle("Get gig history", err, zap.String("gig_id", gigID.String()))
	}
	if gig == nil {
		return nil, ErrGigNotFound
	}
	if !policy.IsGigOwner(actorID, gig) {
		return nil, ErrForbidden
	}

	if s.journal == nil {
		return []journal.Entry{}, nil
	}
	entries, err := s.journal.EntriesForGig(gigID.String())
	if err != nil {
		return nil, settle("Read gig journal", err, zap.String("gig_id", gigID.String()))
	}
	return entries, nil
}

// withOwners attaches owner summaries in one follow-up fetch.
func (s *GigService) withOwners(ctx context.Context, gigs []models.Gig) ([]GigView, error) {
	ownerIDs := make([]uuid.UUID, 0, len(gigs))
	seen := make(map[uuid.UUID]struct{}, len(gigs))
	for _, g := range gigs {
		if _, ok := seen[g.OwnerID]; !ok {
			seen[g.OwnerID] = struct{}{}
			ownerIDs = append(ownerIDs, g.OwnerID)
		}
	}

	owners, err := s.store.Users().GetUsersByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, settle("Load gig owners", err)
	}

	views := make([]GigView, 0, len(gigs))
	for _, g := range gigs {
		views = append(views, GigView{Gig: g, Owner: summarizeUser(owners[g.OwnerID])})
	}
	return views, nil
}
