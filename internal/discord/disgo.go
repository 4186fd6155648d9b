package discord

import (
	"context"
	"fmt"
	"slices"
	"strings"

	disgo "github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
)

// Client adapts a disgo REST client to the bot's collaborator interfaces.
type Client struct {
	rest rest.Rest
}

// NewClient wraps a disgo REST client.
func NewClient(r rest.Rest) *Client {
	return &Client{rest: r}
}

var _ ChannelManager = (*Client)(nil)
var _ RoleDirectory = (*Client)(nil)
var _ Messenger = (*Client)(nil)

// CreateCategory creates a category channel in the guild.
func (c *Client) CreateCategory(ctx context.Context, guildID snowflake.ID, name string) (Channel, error) {
	ch, err := c.rest.CreateGuildChannel(guildID, disgo.GuildCategoryChannelCreate{
		Name: name,
	}, rest.WithCtx(ctx))
	if err != nil {
		return Channel{}, fmt.Errorf("create category: %w", err)
	}
	return fromGuildChannel(ch), nil
}

// CreateTextChannel creates a text channel parented under parentID.
func (c *Client) CreateTextChannel(ctx context.Context, guildID, parentID snowflake.ID, name, topic string) (Channel, error) {
	ch, err := c.rest.CreateGuildChannel(guildID, disgo.GuildTextChannelCreate{
		Name:     name,
		Topic:    topic,
		ParentID: parentID,
	}, rest.WithCtx(ctx))
	if err != nil {
		return Channel{}, fmt.Errorf("create text channel: %w", err)
	}
	return fromGuildChannel(ch), nil
}

// CreateVoiceChannel creates a voice channel parented under parentID.
func (c *Client) CreateVoiceChannel(ctx context.Context, guildID, parentID snowflake.ID, name string) (Channel, error) {
	ch, err := c.rest.CreateGuildChannel(guildID, disgo.GuildVoiceChannelCreate{
		Name:     name,
		ParentID: parentID,
	}, rest.WithCtx(ctx))
	if err != nil {
		return Channel{}, fmt.Errorf("create voice channel: %w", err)
	}
	return fromGuildChannel(ch), nil
}

// DeleteChannel deletes a channel by id.
func (c *Client) DeleteChannel(ctx context.Context, channelID snowflake.ID) error {
	if err := c.rest.DeleteChannel(channelID, rest.WithCtx(ctx)); err != nil {
		return fmt.Errorf("delete channel: %w", err)
	}
	return nil
}

// HasRole reports whether the user holds the named role in the guild.
func (c *Client) HasRole(ctx context.Context, guildID, userID snowflake.ID, roleName string) (bool, error) {
	role, ok, err := c.FindRole(ctx, guildID, roleName)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	member, err := c.rest.GetMember(guildID, userID, rest.WithCtx(ctx))
	if err != nil {
		return false, fmt.Errorf("get member: %w", err)
	}
	return slices.Contains(member.RoleIDs, role.ID), nil
}

// FindRole resolves a guild role by case-insensitive name.
func (c *Client) FindRole(ctx context.Context, guildID snowflake.ID, name string) (Role, bool, error) {
	roles, err := c.rest.GetRoles(guildID, rest.WithCtx(ctx))
	if err != nil {
		return Role{}, false, fmt.Errorf("get roles: %w", err)
	}
	for _, role := range roles {
		if strings.EqualFold(role.Name, name) {
			return Role{ID: role.ID, Name: role.Name}, true, nil
		}
	}
	return Role{}, false, nil
}

// AddRole grants a role to a guild member.
func (c *Client) AddRole(ctx context.Context, guildID, userID, roleID snowflake.ID) error {
	if err := c.rest.AddMemberRole(guildID, userID, roleID, rest.WithCtx(ctx)); err != nil {
		return fmt.Errorf("add member role: %w", err)
	}
	return nil
}

// RemoveRole removes a role from a guild member.
func (c *Client) RemoveRole(ctx context.Context, guildID, userID, roleID snowflake.ID) error {
	if err := c.rest.RemoveMemberRole(guildID, userID, roleID, rest.WithCtx(ctx)); err != nil {
		return fmt.Errorf("remove member role: %w", err)
	}
	return nil
}

// Send posts a plain message to a channel.
func (c *Client) Send(ctx context.Context, channelID snowflake.ID, content string) error {
	_, err := c.rest.CreateMessage(channelID, disgo.MessageCreate{
		Content: content,
	}, rest.WithCtx(ctx))
	if err != nil {
		return fmt.Errorf("create message: %w", err)
	}
	return nil
}

func fromGuildChannel(ch disgo.GuildChannel) Channel {
	return Channel{
		ID:   ch.ID(),
		Kind: kindOf(ch.Type()),
		Name: ch.Name(),
	}
}

func kindOf(t disgo.ChannelType) ChannelKind {
	switch t {
	case disgo.ChannelTypeGuildCategory:
		return KindCategory
	case disgo.ChannelTypeGuildText:
		return KindText
	case disgo.ChannelTypeGuildVoice:
		return KindVoice
	default:
		return KindUnknown
	}
}
