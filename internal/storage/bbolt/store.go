package bbolt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/louisbranch/jambot/internal/storage"
	"github.com/louisbranch/jambot/internal/team/domain"
	"go.etcd.io/bbolt"
)

const (
	ownershipBucket = "ownership"
	themeBucket     = "theme"
)

// Store provides a BoltDB-backed implementation of the storage interfaces.
type Store struct {
	db *bbolt.DB
}

// Open opens a BoltDB-backed store at the provided path. A missing file is
// created, so a fresh deployment starts with an empty store. A file whose
// content is not a usable database is moved aside and replaced with an empty
// store rather than keeping the process from starting; environmental
// failures, such as another process holding the file lock, are returned
// as-is so a healthy database is never quarantined.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	store, err := open(cleanPath)
	if err == nil {
		return store, nil
	}
	if !isCorrupt(err) {
		return nil, err
	}

	quarantine := cleanPath + ".corrupt"
	if renameErr := os.Rename(cleanPath, quarantine); renameErr != nil {
		return nil, err
	}
	log.Printf("state file %s is unreadable (%v), moved to %s and starting empty", cleanPath, err, quarantine)

	return open(cleanPath)
}

// isCorrupt reports whether an open failure means the file content is not a
// valid database. Lock timeouts and other I/O errors do not qualify.
func isCorrupt(err error) bool {
	return errors.Is(err, bbolt.ErrInvalid) ||
		errors.Is(err, bbolt.ErrChecksum) ||
		errors.Is(err, bbolt.ErrVersionMismatch)
}

func open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	store := &Store{db: db}
	if err := store.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying BoltDB database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// PutOwnership inserts an ownership record. It fails with
// storage.ErrOwnershipExists when the owner already holds a record; the
// check and the write happen in a single update transaction.
func (s *Store) PutOwnership(ctx context.Context, record domain.OwnershipRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	if record.Owner == 0 {
		return fmt.Errorf("record owner is required")
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal ownership record: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(ownershipBucket))
		if bucket == nil {
			return fmt.Errorf("ownership bucket is missing")
		}
		key := ownerKey(record.Owner)
		if bucket.Get(key) != nil {
			return storage.ErrOwnershipExists
		}
		return bucket.Put(key, payload)
	})
}

// GetOwnership fetches the ownership record for an owner.
func (s *Store) GetOwnership(ctx context.Context, owner snowflake.ID) (domain.OwnershipRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.OwnershipRecord{}, err
	}
	if s == nil || s.db == nil {
		return domain.OwnershipRecord{}, fmt.Errorf("storage is not configured")
	}

	var record domain.OwnershipRecord
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(ownershipBucket))
		if bucket == nil {
			return fmt.Errorf("ownership bucket is missing")
		}
		payload := bucket.Get(ownerKey(owner))
		if payload == nil {
			return storage.ErrNotFound
		}
		if err := json.Unmarshal(payload, &record); err != nil {
			return fmt.Errorf("unmarshal ownership record: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.OwnershipRecord{}, err
	}

	return record, nil
}

// DeleteOwnership removes the ownership record for an owner. Deleting an
// absent record fails with storage.ErrNotFound.
func (s *Store) DeleteOwnership(ctx context.Context, owner snowflake.ID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(ownershipBucket))
		if bucket == nil {
			return fmt.Errorf("ownership bucket is missing")
		}
		key := ownerKey(owner)
		if bucket.Get(key) == nil {
			return storage.ErrNotFound
		}
		return bucket.Delete(key)
	})
}

// PutTheme stores a theme idea for a user, overwriting any previous
// submission. It reports whether a previous submission existed.
func (s *Store) PutTheme(ctx context.Context, user snowflake.ID, idea string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if s == nil || s.db == nil {
		return false, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(idea) == "" {
		return false, fmt.Errorf("theme idea is required")
	}

	var replaced bool
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(themeBucket))
		if bucket == nil {
			return fmt.Errorf("theme bucket is missing")
		}
		key := ownerKey(user)
		replaced = bucket.Get(key) != nil
		return bucket.Put(key, []byte(idea))
	})
	if err != nil {
		return false, err
	}

	return replaced, nil
}

func (s *Store) ensureBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range []string{ownershipBucket, themeBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

func ownerKey(id snowflake.ID) []byte {
	return []byte(id.String())
}
