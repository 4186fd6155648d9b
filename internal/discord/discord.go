// Package discord defines the narrow interfaces the bot consumes from the
// chat platform, plus their disgo-backed implementation.
//
// The core never imports the disgo client directly; it depends on these
// interfaces so provisioning and teardown logic can be exercised against
// fakes.
package discord

import (
	"context"

	"github.com/disgoorg/snowflake/v2"
)

// ChannelKind identifies the kind of a remote channel resource.
type ChannelKind int

const (
	// KindUnknown covers channel kinds this bot never requests.
	KindUnknown ChannelKind = iota
	// KindCategory is a grouping channel other channels can be parented under.
	KindCategory
	// KindText is a text channel.
	KindText
	// KindVoice is a voice channel.
	KindVoice
)

// String renders the channel kind for logs and anomaly messages.
func (k ChannelKind) String() string {
	switch k {
	case KindCategory:
		return "category"
	case KindText:
		return "text channel"
	case KindVoice:
		return "voice channel"
	default:
		return "unknown channel kind"
	}
}

// Channel is a remote channel resource as reported by the platform. Kind
// carries the remote-reported kind verbatim so callers can detect the
// platform returning something other than what was requested.
type Channel struct {
	ID   snowflake.ID
	Kind ChannelKind
	Name string
}

// Role is a named permission group within a guild.
type Role struct {
	ID   snowflake.ID
	Name string
}

// ChannelManager creates and deletes guild channels.
type ChannelManager interface {
	CreateCategory(ctx context.Context, guildID snowflake.ID, name string) (Channel, error)
	CreateTextChannel(ctx context.Context, guildID, parentID snowflake.ID, name, topic string) (Channel, error)
	CreateVoiceChannel(ctx context.Context, guildID, parentID snowflake.ID, name string) (Channel, error)
	// DeleteChannel deletes a channel; deleting a category cascades to its
	// children on the remote side.
	DeleteChannel(ctx context.Context, channelID snowflake.ID) error
}

// RoleDirectory answers role-membership questions and manages role grants.
type RoleDirectory interface {
	HasRole(ctx context.Context, guildID, userID snowflake.ID, roleName string) (bool, error)
	// FindRole resolves a guild role by case-insensitive name.
	FindRole(ctx context.Context, guildID snowflake.ID, name string) (Role, bool, error)
	AddRole(ctx context.Context, guildID, userID, roleID snowflake.ID) error
	RemoveRole(ctx context.Context, guildID, userID, roleID snowflake.ID) error
}

// Messenger sends a message to a channel.
type Messenger interface {
	Send(ctx context.Context, channelID snowflake.ID, content string) error
}
