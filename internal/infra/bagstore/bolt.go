package bagstore

import (
	"encoding/json"
	"log/slog"
	"time"

	"glisten-lounge/internal/domain/bag"
	"glisten-lounge/internal/infra"
	"glisten-lounge/internal/pkg/clock"

	bolt "go.etcd.io/bbolt"
)

const (
	// bucketBag holds one record per session: a JSON array of bag line items.
	// The name is kept from the original client-side storage key so exported
	// records stay recognizable.
	bucketBag = "glisten_bag"
	// bucketMeta tracks last-touch times (RFC3339) for the sweep job.
	bucketMeta = "glisten_bag_meta"
)

// BoltStore persists session bags in a local bbolt file. Every mutation is
// write-through: the full collection is re-serialized and written before the
// call returns.
type BoltStore struct {
	db     *bolt.DB
	clock  clock.Clock
	logger *slog.Logger
}

func Open(path string, clk clock.Clock, logger *slog.Logger) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to open bag store", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(bucketBag)); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists([]byte(bucketMeta))
		return err
	})
	if err != nil {
		db.Close()
		return nil, infra.WrapRepoErr("failed to initialize bag store buckets", err)
	}

	return &BoltStore{db: db, clock: clk, logger: logger}, nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Items restores the session's bag. A missing record means an empty bag; so
// does a malformed one: a bag that fails to decode is not worth failing a
// page load over, it is logged and dropped.
func (s *BoltStore) Items(sessionID string) (bag.Items, error) {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(bucketBag)).Get([]byte(sessionID)); v != nil {
			raw = make([]byte, len(v))
			copy(raw, v)
		}
		return nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read bag", err)
	}

	if raw == nil {
		return bag.Items{}, nil
	}

	var items bag.Items
	if err := json.Unmarshal(raw, &items); err != nil {
		s.logger.Debug("discarding malformed bag record",
			"session_id", sessionID,
			"error", err)
		return bag.Items{}, nil
	}
	return items, nil
}

func (s *BoltStore) Put(sessionID string, items bag.Items) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return infra.WrapRepoErr("failed to encode bag", err)
	}

	touched := s.clock.Now().UTC().Format(time.RFC3339)
	err = s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket([]byte(bucketBag)).Put([]byte(sessionID), raw); err != nil {
			return err
		}
		return tx.Bucket([]byte(bucketMeta)).Put([]byte(sessionID), []byte(touched))
	})
	if err != nil {
		return infra.WrapRepoErr("failed to write bag", err)
	}
	return nil
}

// Clear removes the persisted record entirely rather than writing an empty
// array, so a cleared session is indistinguishable from a fresh one.
func (s *BoltStore) Clear(sessionID string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket([]byte(bucketBag)).Delete([]byte(sessionID)); err != nil {
			return err
		}
		return tx.Bucket([]byte(bucketMeta)).Delete([]byte(sessionID))
	})
	if err != nil {
		return infra.WrapRepoErr("failed to clear bag", err)
	}
	return nil
}

// SweepStale deletes bags whose last touch is older than ttl and reports how
// many were removed. Records with unreadable timestamps are treated as stale.
func (s *BoltStore) SweepStale(ttl time.Duration) (int, error) {
	cutoff := s.clock.Now().UTC().Add(-ttl)
	swept := 0

	err := s.db.Update(func(tx *bolt.Tx) error {
		bags := tx.Bucket([]byte(bucketBag))
		meta := tx.Bucket([]byte(bucketMeta))

		var stale [][]byte
		cur := bags.Cursor()
		for k, _ := cur.First(); k != nil; k, _ = cur.Next() {
			touched, err := time.Parse(time.RFC3339, string(meta.Get(k)))
			if err != nil || touched.Before(cutoff) {
				key := make([]byte, len(k))
				copy(key, k)
				stale = append(stale, key)
			}
		}

		for _, k := range stale {
			if err := bags.Delete(k); err != nil {
				return err
			}
			if err := meta.Delete(k); err != nil {
				return err
			}
			swept++
		}
		return nil
	})
	if err != nil {
		return swept, infra.WrapRepoErr("failed to sweep stale bags", err)
	}
	return swept, nil
}
