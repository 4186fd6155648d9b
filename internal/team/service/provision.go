package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/disgoorg/snowflake/v2"
	"github.com/louisbranch/jambot/internal/discord"
	"github.com/louisbranch/jambot/internal/storage"
	"github.com/louisbranch/jambot/internal/team/domain"
)

// ProvisionRequest describes one team channel provisioning attempt.
type ProvisionRequest struct {
	Requester  snowflake.ID
	GuildID    snowflake.ID
	NameTokens []string
}

// ProvisionedChannelSet is the ephemeral result of a successful provision.
// Durable identity lives only in the ownership record.
type ProvisionedChannelSet struct {
	DisplayName   string
	CategoryID    snowflake.ID
	TextChannelID snowflake.ID
}

// Provision creates the category, text, and voice channels for a team and
// commits the ownership record once all three exist.
//
// The sequence is fail-fast without rollback: when a later creation fails,
// earlier channels are not retracted and no record is written. The returned
// error carries the category id and display name so the caller can log them
// for manual reconciliation.
func (s *Service) Provision(ctx context.Context, req ProvisionRequest) (ProvisionedChannelSet, error) {
	existing, err := s.store.GetOwnership(ctx, req.Requester)
	if err == nil {
		return ProvisionedChannelSet{}, &AlreadyOwnedError{Existing: existing}
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return ProvisionedChannelSet{}, fmt.Errorf("check ownership: %w", err)
	}

	if len(req.NameTokens) == 0 {
		return ProvisionedChannelSet{}, ErrNoName
	}
	displayName, err := domain.SanitizeName(req.NameTokens)
	switch {
	case errors.Is(err, domain.ErrEmptyName):
		return ProvisionedChannelSet{}, ErrNoName
	case errors.Is(err, domain.ErrForbiddenCharacter):
		return ProvisionedChannelSet{}, ErrInvalidName
	case err != nil:
		return ProvisionedChannelSet{}, err
	}

	// Channel names and the topic keep the raw name; the escaped form is
	// only for the persisted record and messages echoed back into chat.
	rawName := domain.JoinName(req.NameTokens)

	category, err := s.channels.CreateCategory(ctx, req.GuildID, "Team: "+rawName)
	if err != nil {
		return ProvisionedChannelSet{}, &CreationFailedError{Step: StepCategory, DisplayName: displayName, Cause: err}
	}
	if category.Kind != discord.KindCategory {
		return ProvisionedChannelSet{}, &TypeMismatchError{Step: StepCategory, Got: category.Kind, ChannelID: category.ID, DisplayName: displayName}
	}

	topic := fmt.Sprintf("Work on and playtesting of the game %s.", rawName)
	text, err := s.channels.CreateTextChannel(ctx, req.GuildID, category.ID, rawName, topic)
	if err != nil {
		return ProvisionedChannelSet{}, &CreationFailedError{Step: StepText, DisplayName: displayName, CategoryID: category.ID, Cause: err}
	}
	if text.Kind != discord.KindText {
		return ProvisionedChannelSet{}, &TypeMismatchError{Step: StepText, Got: text.Kind, ChannelID: text.ID, DisplayName: displayName}
	}

	voice, err := s.channels.CreateVoiceChannel(ctx, req.GuildID, category.ID, rawName)
	if err != nil {
		return ProvisionedChannelSet{}, &CreationFailedError{Step: StepVoice, DisplayName: displayName, CategoryID: category.ID, Cause: err}
	}
	if voice.Kind != discord.KindVoice {
		return ProvisionedChannelSet{}, &TypeMismatchError{Step: StepVoice, Got: voice.Kind, ChannelID: voice.ID, DisplayName: displayName}
	}

	record := domain.OwnershipRecord{
		Owner:       req.Requester,
		DisplayName: displayName,
		CategoryID:  category.ID,
	}
	if err := s.store.PutOwnership(ctx, record); err != nil {
		if errors.Is(err, storage.ErrOwnershipExists) {
			// Lost a race with a concurrent provision for the same user. The
			// channels created above are orphaned; the caller logs the
			// category id for manual cleanup.
			if existing, getErr := s.store.GetOwnership(ctx, req.Requester); getErr == nil {
				return ProvisionedChannelSet{}, &AlreadyOwnedError{Existing: existing}
			}
		}
		return ProvisionedChannelSet{}, fmt.Errorf("commit ownership record: %w", err)
	}

	return ProvisionedChannelSet{
		DisplayName:   displayName,
		CategoryID:    category.ID,
		TextChannelID: text.ID,
	}, nil
}
