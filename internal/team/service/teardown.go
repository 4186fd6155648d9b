package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/disgoorg/snowflake/v2"
	"github.com/louisbranch/jambot/internal/storage"
	"github.com/louisbranch/jambot/internal/team/domain"
)

// ParseTargetUser parses the teardown target from command tokens. It
// requires exactly one numeric token and performs no store or remote access,
// so malformed input is rejected before any side effect. A missing token is
// reported separately from a malformed one.
func ParseTargetUser(tokens []string) (snowflake.ID, error) {
	if len(tokens) == 0 {
		return 0, ErrMissingUserID
	}
	if len(tokens) != 1 {
		return 0, ErrInvalidUserID
	}
	id, err := snowflake.Parse(tokens[0])
	if err != nil {
		return 0, ErrInvalidUserID
	}
	return id, nil
}

// TearDown deletes the channel set owned by target. The category deletion
// cascades to the child channels on the remote side; the ownership record is
// removed only after the deletion is confirmed, so a failed deletion leaves
// the command safely retryable.
func (s *Service) TearDown(ctx context.Context, target snowflake.ID) (domain.OwnershipRecord, error) {
	record, err := s.store.GetOwnership(ctx, target)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.OwnershipRecord{}, ErrNoChannelSet
		}
		return domain.OwnershipRecord{}, fmt.Errorf("look up ownership: %w", err)
	}

	if err := s.channels.DeleteChannel(ctx, record.CategoryID); err != nil {
		return domain.OwnershipRecord{}, &DeletionFailedError{Record: record, Cause: err}
	}

	if err := s.store.DeleteOwnership(ctx, target); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return domain.OwnershipRecord{}, fmt.Errorf("remove ownership record: %w", err)
	}

	return record, nil
}
