package storage

import (
	"context"
	"errors"

	"github.com/disgoorg/snowflake/v2"
	"github.com/louisbranch/jambot/internal/team/domain"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// ErrOwnershipExists indicates the owner already holds a channel set.
var ErrOwnershipExists = errors.New("ownership record already exists")

// OwnershipStore persists team channel ownership records.
//
// PutOwnership is a compare-and-insert: it must fail with ErrOwnershipExists
// when a record for the same owner is already present, atomically with the
// write. A mutation is committed only once it has reached durable storage.
type OwnershipStore interface {
	PutOwnership(ctx context.Context, record domain.OwnershipRecord) error
	GetOwnership(ctx context.Context, owner snowflake.ID) (domain.OwnershipRecord, error)
	DeleteOwnership(ctx context.Context, owner snowflake.ID) error
}

// ThemeStore persists theme-idea submissions, one per user. The running
// process only writes ideas; organizers read the collected set straight from
// the database file.
//
// PutTheme overwrites any previous submission and reports whether one
// existed.
type ThemeStore interface {
	PutTheme(ctx context.Context, user snowflake.ID, idea string) (replaced bool, err error)
}
