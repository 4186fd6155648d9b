package service

import (
	"errors"
	"fmt"

	"github.com/louisbranch/jambot/internal/team/domain"
)

// Rendering is a pure mapping from outcome values to the single user-facing
// reply each command produces. Remote causes are never included here; the
// command handler logs them.

// RenderProvisioned announces the freshly created channel set.
func RenderProvisioned(set ProvisionedChannelSet) string {
	return fmt.Sprintf("Channels created for your game %s here: <#%s>", set.DisplayName, set.TextChannelID)
}

// RenderProvisionError maps a provisioning failure to its reply.
func RenderProvisionError(err error) string {
	var (
		already  *AlreadyOwnedError
		mismatch *TypeMismatchError
		failed   *CreationFailedError
	)
	switch {
	case errors.As(err, &already):
		return fmt.Sprintf("You have already created channels for your game %s here: <#%s>",
			already.Existing.DisplayName, already.Existing.CategoryID)
	case errors.Is(err, ErrNoName):
		return "You need to specify a game name."
	case errors.Is(err, ErrInvalidName):
		return "Game names cannot contain the character `"
	case errors.As(err, &mismatch):
		return fmt.Sprintf("I asked Discord for a %s but got something else. 🤔", mismatch.Step)
	case errors.As(err, &failed):
		switch failed.Step {
		case StepCategory:
			return "Category creation failed, details logged."
		case StepText:
			return "Text channel creation failed, details logged."
		default:
			return "Voice channel creation failed, details logged."
		}
	default:
		return "Something went wrong, details logged."
	}
}

// RenderProvisionDenied explains the role requirement for provisioning. It
// names the role and when it becomes obtainable without revealing anything
// about existing channel sets.
func RenderProvisionDenied() string {
	return "Oo, you found a secret command. 😉\n" +
		"You will be able to use this command once you have been assigned the **" + RoleJammer + "** role.\n" +
		"You will be able to get this role once the jam has started. The details on how to do so will be " +
		"made available at that point."
}

// RenderTornDown announces a successful teardown.
func RenderTornDown(record domain.OwnershipRecord) string {
	return fmt.Sprintf("Removed the team channels for game %s.", record.DisplayName)
}

// RenderTearDownError maps a teardown failure to its reply.
func RenderTearDownError(err error) string {
	var deletion *DeletionFailedError
	switch {
	case errors.Is(err, ErrMissingUserID):
		return "You forgot to provide a user id."
	case errors.Is(err, ErrInvalidUserID):
		return "That user id is invalid."
	case errors.Is(err, ErrNoChannelSet):
		return "That user does not have any team channels."
	case errors.As(err, &deletion):
		return "Removing the team channels failed, details logged."
	default:
		return "Something went wrong, details logged."
	}
}

// RenderTearDownDenied is the terse refusal for non-organizers.
func RenderTearDownDenied() string {
	return "WAT"
}
