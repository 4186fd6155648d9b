// Package theme collects jam theme ideas submitted over direct messages.
//
// Each user gets one idea; a later submission silently replaces the earlier
// one and the caller is told so it can word the reply accordingly.
package theme

import (
	"context"
	"fmt"

	"github.com/disgoorg/snowflake/v2"
	"github.com/louisbranch/jambot/internal/storage"
)

// Result reports what a submission did.
type Result int

const (
	// Submitted means this was the user's first idea.
	Submitted Result = iota
	// Replaced means the submission overwrote an earlier idea.
	Replaced
)

// Service records theme-idea submissions.
type Service struct {
	store storage.ThemeStore
}

// New creates a Service over the given store.
func New(store storage.ThemeStore) *Service {
	return &Service{store: store}
}

// Submit stores a user's theme idea, overwriting any previous one. The idea
// is persisted before the result is reported.
func (s *Service) Submit(ctx context.Context, user snowflake.ID, idea string) (Result, error) {
	replaced, err := s.store.PutTheme(ctx, user, idea)
	if err != nil {
		return Submitted, fmt.Errorf("save theme idea: %w", err)
	}
	if replaced {
		return Replaced, nil
	}
	return Submitted, nil
}
