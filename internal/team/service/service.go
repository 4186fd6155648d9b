// Package service orchestrates team channel provisioning and teardown.
//
// Provisioning creates a category with a text and a voice channel under it
// and commits an ownership record only after all three remote creations
// succeed. Teardown deletes the category (the platform cascades to the
// children) and removes the record only after the deletion is confirmed.
// All failures are returned as values; rendering to user-facing strings is a
// separate pure mapping so the command handler stays the only layer that
// talks to the chat surface.
package service

import (
	"github.com/louisbranch/jambot/internal/discord"
	"github.com/louisbranch/jambot/internal/storage"
)

// Service owns the team channel workflows.
type Service struct {
	store    storage.OwnershipStore
	channels discord.ChannelManager
	roles    discord.RoleDirectory
}

// New creates a Service over the given store and platform collaborators.
func New(store storage.OwnershipStore, channels discord.ChannelManager, roles discord.RoleDirectory) *Service {
	return &Service{
		store:    store,
		channels: channels,
		roles:    roles,
	}
}
