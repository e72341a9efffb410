package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store groups the repositories over one database handle. A Store created by
// Transaction is a unit of work: every repository it hands out runs on the same
// transaction.
type Store struct {
	db    *gorm.DB
	users *UserRepository
	gigs  *GigRepository
	bids  *BidRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:    db,
		users: NewUserRepository(db),
		gigs:  NewGigRepository(db),
		bids:  NewBidRepository(db),
	}
}

func (s *Store) Users() *UserRepository { return s.users }
func (s *Store) Gigs() *GigRepository   { return s.gigs }
func (s *Store) Bids() *BidRepository   { return s.bids }

// Transaction runs fn inside a database transaction. The transaction commits
// only if fn returns nil; an error or panic rolls back every write made through
// the Store passed to fn.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
