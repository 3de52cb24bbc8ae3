package store

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"notelint/internal/port"
)

var bucketResults = []byte("results")

// BoltCacheStore persists result-cache entries in a bbolt database so cached
// results survive between CLI invocations. The corpus index itself is never
// persisted; it is rebuilt from scratch on every scan.
type BoltCacheStore struct {
	db *bbolt.DB
}

func NewBoltCacheStore(path string) (*BoltCacheStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketResults)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltCacheStore{db: db}, nil
}

func (s *BoltCacheStore) PutEntry(e port.CachedEntry) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(e)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketResults).Put([]byte(e.Path), data)
	})
}

func (s *BoltCacheStore) ListEntries() ([]port.CachedEntry, error) {
	var entries []port.CachedEntry
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketResults).ForEach(func(k, v []byte) error {
			var e port.CachedEntry
			if err := json.Unmarshal(v, &e); err != nil {
				// A corrupt entry is not worth failing the load over.
				return nil
			}
			entries = append(entries, e)
			return nil
		})
	})
	return entries, err
}

func (s *BoltCacheStore) DeleteEntry(path string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketResults).Delete([]byte(path))
	})
}

func (s *BoltCacheStore) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketResults); err != nil {
			return err
		}
		_, err := tx.CreateBucket(bucketResults)
		return err
	})
}

func (s *BoltCacheStore) Count() (int, error) {
	count := 0
	err := s.db.View(func(tx *bbolt.Tx) error {
		count = tx.Bucket(bucketResults).Stats().KeyN
		return nil
	})
	return count, err
}

func (s *BoltCacheStore) Close() error {
	return s.db.Close()
}
