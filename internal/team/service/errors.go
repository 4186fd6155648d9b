package service

import (
	"errors"
	"fmt"

	"github.com/disgoorg/snowflake/v2"
	"github.com/louisbranch/jambot/internal/discord"
	"github.com/louisbranch/jambot/internal/team/domain"
)

var (
	// ErrNoName indicates no game name tokens were supplied.
	ErrNoName = errors.New("no game name supplied")
	// ErrInvalidName indicates the game name contains a backtick.
	ErrInvalidName = errors.New("game name contains a forbidden character")
	// ErrMissingUserID indicates no teardown target was supplied.
	ErrMissingUserID = errors.New("no target user id supplied")
	// ErrInvalidUserID indicates the teardown target was not a single
	// numeric token.
	ErrInvalidUserID = errors.New("target user id is invalid")
	// ErrNoChannelSet indicates the teardown target owns no channel set.
	ErrNoChannelSet = errors.New("user owns no team channel set")
)

// CreationStep identifies which remote creation call an error belongs to.
type CreationStep int

const (
	// StepCategory is the category creation call.
	StepCategory CreationStep = iota
	// StepText is the text channel creation call.
	StepText
	// StepVoice is the voice channel creation call.
	StepVoice
)

// String renders the step as the resource kind it requested.
func (s CreationStep) String() string {
	switch s {
	case StepCategory:
		return "category"
	case StepText:
		return "text channel"
	case StepVoice:
		return "voice channel"
	default:
		return "unknown step"
	}
}

// AlreadyOwnedError reports that the requester already owns a channel set.
// It carries the existing record so callers can point the user at it without
// a separate store lookup.
type AlreadyOwnedError struct {
	Existing domain.OwnershipRecord
}

func (e *AlreadyOwnedError) Error() string {
	return fmt.Sprintf("user %s already owns the channel set for %q", e.Existing.Owner, e.Existing.DisplayName)
}

// CreationFailedError reports a failed remote creation call. DisplayName and
// CategoryID identify resources created before the failure; they are not
// retracted, so an operator needs them to reconcile manually.
type CreationFailedError struct {
	Step        CreationStep
	DisplayName string
	// CategoryID is zero when the category creation itself failed.
	CategoryID snowflake.ID
	Cause      error
}

func (e *CreationFailedError) Error() string {
	return fmt.Sprintf("%s creation failed for %q: %v", e.Step, e.DisplayName, e.Cause)
}

func (e *CreationFailedError) Unwrap() error { return e.Cause }

// TypeMismatchError reports that a creation call succeeded but the platform
// returned a resource of an unexpected kind. It is not retryable: the
// request was well-formed and the remote service misbehaved.
type TypeMismatchError struct {
	Step        CreationStep
	Got         discord.ChannelKind
	ChannelID   snowflake.ID
	DisplayName string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("asked for a %s for %q but got a %s (channel %s)", e.Step, e.DisplayName, e.Got, e.ChannelID)
}

// DeletionFailedError reports a failed remote deletion during teardown. The
// ownership record is left in place so the command can be retried.
type DeletionFailedError struct {
	Record domain.OwnershipRecord
	Cause  error
}

func (e *DeletionFailedError) Error() string {
	return fmt.Sprintf("deleting category %s for %q failed: %v", e.Record.CategoryID, e.Record.DisplayName, e.Cause)
}

func (e *DeletionFailedError) Unwrap() error { return e.Cause }
