// Package journal keeps an append-only, fsynced record of committed bid
// lifecycle transitions. It is the audit trail for gigs and bids: entries are
// never rewritten or removed.
package journal

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Baaaki/gigflow/pkg/logger"
	"go.uber.org/zap"
)

type Event string

const (
	EventBidSubmitted Event = "bid_submitted"
	EventBidHired     Event = "bid_hired"
	EventBidRejected  Event = "bid_rejected"
	EventBidWithdrawn Event = "bid_withdrawn"
	EventGigAssigned  Event = "gig_assigned"
)

// Entry is one committed transition.
type Entry struct {
	Event     Event     `json:"event"`
	GigID     string    `json:"gig_id"`
	BidID     string    `json:"bid_id,omitempty"`
	ActorID   string    `json:"actor_id"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Journal manages the journal file
type Journal struct {
	filePath string
	file     *os.File
	mu       sync.Mutex
}

// Open opens (or creates) the journal at filePath.
func Open(filePath string) (*Journal, error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	return &Journal{
		filePath: filePath,
		file:     file,
	}, nil
}

// Append writes entries as JSON lines and syncs them to disk before returning.
func (j *Journal) Append(entries ...Entry) error {
	if len(entries) == 0 {
		return nil
	}

	start := time.Now()
	j.mu.Lock()
	defer j.mu.Unlock()

	buf := make([]byte, 0, 256*len(entries))
	for _, entry := range entries {
		if entry.Timestamp.IsZero() {
			entry.Timestamp = time.Now().UTC()
		}
		data, err := json.Marshal(entry)
		if err != nil {
			logger.Log.Error("Journal: failed to marshal entry",
				zap.String("event", string(entry.Event)),
				zap.String("bid_id", entry.BidID),
				zap.Error(err),
			)
			return err
		}
		buf = append(buf, data...)
		buf = append(buf, '\n')
	}

	if _, err := j.file.Write(buf); err != nil {
		logger.Log.Error("Journal: failed to write to file",
			zap.String("file_path", j.filePath),
			zap.Error(err),
		)
		return err
	}

	if err := j.file.Sync(); err != nil {
		logger.Log.Error("Journal: failed to sync to disk",
			zap.String("file_path", j.filePath),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Debug("Journal: entries written and synced",
		zap.Int("count", len(entries)),
		zap.Duration("duration", time.Since(start)),
	)

	return nil
}

// EntriesForGig returns the entries of one gig in write order.
func (j *Journal) EntriesForGig(gigID string) ([]Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.readUnsafe(func(e Entry) bool { return e.GigID == gigID })
}

// readUnsafe scans the file without locking; callers hold j.mu.
// Lines that fail to decode (a torn final write) are skipped.
func (j *Journal) readUnsafe(keep func(Entry) bool) ([]Entry, error) {
	file, err := os.Open(j.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, err
	}
	defer file.Close()

	entries := []Entry{}
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		var entry Entry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			continue
		}
		if keep(entry) {
			entries = append(entries, entry)
		}
	}

	return entries, scanner.Err()
}

// Close closes the journal file
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.file.Close()
}
