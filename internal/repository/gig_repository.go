package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/Baaaki/gigflow/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// likeEscaper escapes LIKE wildcards; '!' is used as the escape character
// because it needs no quoting on postgres, mysql or sqlite.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

type GigRepository struct {
	db *gorm.DB
}

func NewGigRepository(db *gorm.DB) *GigRepository {
	return &GigRepository{db: db}
}

func (r *GigRepository) CreateGig(ctx context.Context, gig *models.Gig) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(gig).Error
}

// GetGigByID returns nil, nil when the gig does not exist.
func (r *GigRepository) GetGigByID(ctx context.Context, id uuid.UUID) (*models.Gig, error) {
	return r.first(r.db.WithContext(ctx), id)
}

// GetGigByIDForUpdate reads the gig with a row lock (SELECT ... FOR UPDATE).
// Only meaningful inside a transaction; drivers without row locks ignore the clause.
func (r *GigRepository) GetGigByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Gig, error) {
	return r.first(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// GetGigByIDForShare reads the gig with a shared row lock: concurrent readers
// proceed, but a holder of GetGigByIDForUpdate waits for them and vice versa.
func (r *GigRepository) GetGigByIDForShare(ctx context.Context, id uuid.UUID) (*models.Gig, error) {
	return r.first(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "SHARE"}), id)
}

func (r *GigRepository) first(db *gorm.DB, id uuid.UUID) (*models.Gig, error) {
	var gig models.Gig
	err := db.Where("id = ?", id).First(&gig).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &gig, nil
}

// ListOpenGigs returns open gigs newest first, optionally filtered by a
// case-insensitive substring of the title.
func (r *GigRepository) ListOpenGigs(ctx context.Context, search string) ([]models.Gig, error) {
	var gigs []models.Gig
	query := r.db.WithContext(ctx).Where("status = ?", models.GigStatusOpen)

	if search = strings.TrimSpace(search); search != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
		query = query.Where("LOWER(title) LIKE ? ESCAPE '!'", pattern)
	}

	err := query.Order("created_at DESC").Find(&gigs).Error
	return gigs, err
}

func (r *GigRepository) ListGigsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Gig, error) {
	var gigs []models.Gig
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&gigs).Error
	return gigs, err
}

func (r *GigRepository) GetGigsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Gig, error) {
	result := make(map[uuid.UUID]*models.Gig, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var gigs []*models.Gig
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&gigs).Error; err != nil {
		return nil, err
	}
	for _, g := range gigs {
		result[g.ID] = g
	}
	return result, nil
}

// AssignGig moves a gig from open to assigned. The update is conditional on the
// current status, so it reports false when another caller already assigned it.
func (r *GigRepository) AssignGig(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Gig{}).
		Where("id = ? AND status = ?", id, models.GigStatusOpen).
		Update("status", models.GigStatusAssigned)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
