package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/snowflake/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/jambot/internal/discord"
	"github.com/louisbranch/jambot/internal/team/service"
	"github.com/louisbranch/jambot/internal/theme"
)

// DefaultPrefix marks guild messages as commands.
const DefaultPrefix = "~"

// Message is the subset of an inbound chat message the router needs. Keeping
// it a plain struct lets tests drive the router without a gateway.
type Message struct {
	ChannelID   snowflake.ID
	GuildID     snowflake.ID // zero for direct messages
	AuthorID    snowflake.ID
	AuthorIsBot bool
	Content     string
	MentionsBot bool
}

// Handler routes inbound messages to the team, theme, and role workflows.
// It is the only layer that renders errors into replies and logs remote
// causes.
type Handler struct {
	teams  *service.Service
	themes *theme.Service
	roles  discord.RoleDirectory
	sender discord.Messenger
	prefix string
	tracer trace.Tracer
}

// NewHandler creates a message handler.
func NewHandler(teams *service.Service, themes *theme.Service, roles discord.RoleDirectory, sender discord.Messenger, prefix string) *Handler {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Handler{
		teams:  teams,
		themes: themes,
		roles:  roles,
		sender: sender,
		prefix: prefix,
		tracer: otel.Tracer("github.com/louisbranch/jambot/internal/bot"),
	}
}

// OnMessageCreate adapts a gateway event into the router.
func (h *Handler) OnMessageCreate(e *events.MessageCreate) {
	msg := Message{
		ChannelID:   e.ChannelID,
		AuthorID:    e.Message.Author.ID,
		AuthorIsBot: e.Message.Author.Bot,
		Content:     e.Message.Content,
	}
	if e.GuildID != nil {
		msg.GuildID = *e.GuildID
	}
	botID := e.Client().ApplicationID()
	if msg.AuthorID == botID {
		return
	}
	for _, mention := range e.Message.Mentions {
		if mention.ID == botID {
			msg.MentionsBot = true
			break
		}
	}
	h.Handle(context.Background(), msg)
}

// Handle routes one inbound message. Direct messages are theme-idea
// submissions; guild messages go through the command tokenizer.
func (h *Handler) Handle(ctx context.Context, msg Message) {
	if msg.AuthorIsBot {
		return
	}
	if msg.GuildID == 0 {
		h.handleThemeIdea(ctx, msg)
		return
	}
	h.handleCommand(ctx, msg)
}

func (h *Handler) handleCommand(ctx context.Context, msg Message) {
	words := strings.Fields(msg.Content)
	if len(words) == 0 {
		return
	}
	command, rest := words[0], words[1:]

	ctx, span := h.tracer.Start(ctx, "bot.command",
		trace.WithAttributes(attribute.String("bot.command", command)))
	defer span.End()

	switch command {
	case h.prefix + "help":
		h.reply(ctx, msg, h.helpText())
	case h.prefix + "create_channels":
		h.handleCreateChannels(ctx, msg, rest)
	case h.prefix + "remove_channels":
		h.handleRemoveChannels(ctx, msg, rest)
	case h.prefix + "role":
		h.handleGiveRole(ctx, msg, rest)
	case h.prefix + "leave":
		h.handleLeaveRole(ctx, msg, rest)
	default:
		if strings.HasPrefix(command, h.prefix) {
			h.reply(ctx, msg, "Unrecognised command")
			h.reply(ctx, msg, h.helpText())
			return
		}
		// Not a command and probably not for us.
		if msg.MentionsBot {
			h.reply(ctx, msg, h.helpText())
		}
	}
}

func (h *Handler) handleCreateChannels(ctx context.Context, msg Message, tokens []string) {
	allowed, err := h.teams.CanProvision(ctx, msg.GuildID, msg.AuthorID)
	if err != nil {
		log.Printf("role lookup failed for user %s: %v", msg.AuthorID, err)
		h.reply(ctx, msg, "Something went wrong, details logged.")
		return
	}
	if !allowed {
		h.reply(ctx, msg, service.RenderProvisionDenied())
		return
	}

	set, err := h.teams.Provision(ctx, service.ProvisionRequest{
		Requester:  msg.AuthorID,
		GuildID:    msg.GuildID,
		NameTokens: tokens,
	})
	if err != nil {
		h.logProvisionFailure(msg.AuthorID, err)
		h.reply(ctx, msg, service.RenderProvisionError(err))
		return
	}

	log.Printf("created channels for user %s, game %q, category %s", msg.AuthorID, set.DisplayName, set.CategoryID)
	h.reply(ctx, msg, service.RenderProvisioned(set))
}

// logProvisionFailure records identifying detail (category id, display name)
// so an operator can reconcile orphaned channels by hand.
func (h *Handler) logProvisionFailure(user snowflake.ID, err error) {
	var (
		failed   *service.CreationFailedError
		mismatch *service.TypeMismatchError
	)
	switch {
	case errors.As(err, &failed):
		log.Printf("channel creation failed for user %s, game %q, category %s: %v",
			user, failed.DisplayName, failed.CategoryID, failed.Cause)
	case errors.As(err, &mismatch):
		log.Printf("remote returned a %s where a %s was requested for user %s, game %q, channel %s",
			mismatch.Got, mismatch.Step, user, mismatch.DisplayName, mismatch.ChannelID)
	default:
		log.Printf("channel creation rejected for user %s: %v", user, err)
	}
}

func (h *Handler) handleRemoveChannels(ctx context.Context, msg Message, tokens []string) {
	allowed, err := h.teams.CanTearDown(ctx, msg.GuildID, msg.AuthorID)
	if err != nil {
		log.Printf("role lookup failed for user %s: %v", msg.AuthorID, err)
		h.reply(ctx, msg, "Something went wrong, details logged.")
		return
	}
	if !allowed {
		h.reply(ctx, msg, service.RenderTearDownDenied())
		return
	}

	target, err := service.ParseTargetUser(tokens)
	if err != nil {
		h.reply(ctx, msg, service.RenderTearDownError(err))
		return
	}

	record, err := h.teams.TearDown(ctx, target)
	if err != nil {
		var deletion *service.DeletionFailedError
		if errors.As(err, &deletion) {
			log.Printf("deleting category %s for game %q failed: %v",
				deletion.Record.CategoryID, deletion.Record.DisplayName, deletion.Cause)
		}
		h.reply(ctx, msg, service.RenderTearDownError(err))
		return
	}

	log.Printf("removed the channels for team %q", record.DisplayName)
	h.reply(ctx, msg, service.RenderTornDown(record))
}

func (h *Handler) handleThemeIdea(ctx context.Context, msg Message) {
	if len(strings.Fields(msg.Content)) != 1 {
		h.send(ctx, msg.ChannelID, "Theme ideas should only be a single word")
		return
	}

	result, err := h.themes.Submit(ctx, msg.AuthorID, msg.Content)
	if err != nil {
		log.Printf("saving theme idea for user %s failed: %v", msg.AuthorID, err)
		h.send(ctx, msg.ChannelID, "Saving your idea failed, try again later.")
		return
	}

	switch result {
	case theme.Replaced:
		h.send(ctx, msg.ChannelID, "You can only send one idea. We replaced your old submission")
	default:
		h.send(ctx, msg.ChannelID, "Theme idea registered, thanks!")
	}
}

const availableRolesReply = "You need to specify a valid role.\n" +
	"Available roles are:```Programmer\n2D Artist\n3D Artist\nSound Designer\nMusician\nBoard Games```"

func (h *Handler) handleGiveRole(ctx context.Context, msg Message, tokens []string) {
	role, ok := h.resolveRole(ctx, msg, tokens)
	if !ok {
		return
	}
	if err := h.roles.AddRole(ctx, msg.GuildID, msg.AuthorID, role.ID); err != nil {
		log.Printf("couldn't assign role %q to %s: %v", role.Name, msg.AuthorID, err)
		h.reply(ctx, msg, "Something went wrong.")
		return
	}
	log.Printf("new role %q assigned to %s", role.Name, msg.AuthorID)
	h.reply(ctx, msg, "New role assigned.")
}

func (h *Handler) handleLeaveRole(ctx context.Context, msg Message, tokens []string) {
	role, ok := h.resolveRole(ctx, msg, tokens)
	if !ok {
		return
	}
	if err := h.roles.RemoveRole(ctx, msg.GuildID, msg.AuthorID, role.ID); err != nil {
		log.Printf("couldn't remove role %q from %s: %v", role.Name, msg.AuthorID, err)
		h.reply(ctx, msg, "Something went wrong.")
		return
	}
	log.Printf("%s left the role %q", msg.AuthorID, role.Name)
	h.reply(ctx, msg, "Role removed.")
}

func (h *Handler) resolveRole(ctx context.Context, msg Message, tokens []string) (discord.Role, bool) {
	if len(tokens) == 0 {
		h.reply(ctx, msg, availableRolesReply)
		return discord.Role{}, false
	}
	role, found, err := h.roles.FindRole(ctx, msg.GuildID, strings.Join(tokens, " "))
	if err != nil {
		log.Printf("role lookup failed in guild %s: %v", msg.GuildID, err)
		h.reply(ctx, msg, "Something went wrong.")
		return discord.Role{}, false
	}
	if !found {
		h.reply(ctx, msg, availableRolesReply)
		return discord.Role{}, false
	}
	return role, true
}

func (h *Handler) helpText() string {
	return "Talk to me in a PM to submit theme ideas.\n\n" +
		"You can also ask for team channels by sending `" + h.prefix + "create_channels <game name>`\n\n" +
		"Get a new role with `" + h.prefix + "role <role name>`\n" +
		"and leave a role with `" + h.prefix + "leave <role name>`"
}

// reply addresses the author in their channel.
func (h *Handler) reply(ctx context.Context, msg Message, content string) {
	h.send(ctx, msg.ChannelID, fmt.Sprintf("<@%s> %s", msg.AuthorID, content))
}

func (h *Handler) send(ctx context.Context, channelID snowflake.ID, content string) {
	if err := h.sender.Send(ctx, channelID, content); err != nil {
		log.Printf("sending reply to channel %s failed: %v", channelID, err)
	}
}
