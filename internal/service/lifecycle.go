package service

import (
	"context"
	"errors"

	"github.com/Baaaki/gigflow/internal/cache"
	"github.com/Baaaki/gigflow/internal/journal"
	"github.com/Baaaki/gigflow/pkg/logger"
	"go.uber.org/zap"
)

// Journal records committed lifecycle transitions.
type Journal interface {
	Append(entries ...journal.Entry) error
	EntriesForGig(gigID string) ([]journal.Entry, error)
}

// isDomainError reports whether err is one of the categories callers act on.
// Anything else is a store or programming failure and is reported as ErrInternal.
func isDomainError(err error) bool {
	for _, category := range []error{
		ErrUnauthenticated,
		ErrForbidden,
		ErrNotFound,
		ErrInvalidOperation,
		ErrDuplicateBid,
		ErrSelfBidForbidden,
		ErrValidation,
		ErrInternal,
	} {
		if errors.Is(err, category) {
			return true
		}
	}
	return false
}

// settle passes domain errors through and hides everything else behind ErrInternal
// after logging it.
func settle(op string, err error, fields ...zap.Field) error {
	if err == nil || isDomainError(err) {
		return err
	}
	logger.Log.Error(op+" failed", append(fields, zap.Error(err))...)
	return ErrInternal
}

// record appends to the journal after a commit. The transition is already
// durable in the store, so a journal failure is only logged.
func record(j Journal, entries ...journal.Entry) {
	if j == nil {
		return
	}
	if err := j.Append(entries...); err != nil {
		logger.Log.Error("Failed to append lifecycle journal",
			zap.Int("entries", len(entries)),
			zap.Error(err),
		)
	}
}

func invalidateOpenGigs(ctx context.Context, c cache.GigCache) {
	if err := c.InvalidateOpenGigs(ctx); err != nil {
		logger.Log.Warn("Failed to invalidate open gig cache",
			zap.Error(err),
		)
	}
}
