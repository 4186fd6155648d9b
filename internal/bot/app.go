// Package bot wires the gateway, the durable store, and the command
// handlers into a running process.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/disgoorg/disgo"
	disgobot "github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"

	"github.com/louisbranch/jambot/internal/discord"
	bboltstore "github.com/louisbranch/jambot/internal/storage/bbolt"
	"github.com/louisbranch/jambot/internal/team/service"
	"github.com/louisbranch/jambot/internal/theme"
)

// Config holds what Run needs to start the bot.
type Config struct {
	Token     string
	StatePath string
	Prefix    string
}

// Run opens the state store and the gateway connection, then serves events
// until the context is cancelled.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Token == "" {
		return errors.New("discord token is required")
	}

	store, err := bboltstore.Open(cfg.StatePath)
	if err != nil {
		return fmt.Errorf("open state store: %w", err)
	}
	defer store.Close()

	// The handler is assigned before OpenGateway, so the listener never
	// observes it nil.
	var handler *Handler
	client, err := disgo.New(cfg.Token,
		disgobot.WithGatewayConfigOpts(gateway.WithIntents(
			gateway.IntentGuildMessages,
			gateway.IntentDirectMessages,
			gateway.IntentMessageContent,
		)),
		disgobot.WithEventListenerFunc(func(e *events.MessageCreate) {
			handler.OnMessageCreate(e)
		}),
	)
	if err != nil {
		return fmt.Errorf("build discord client: %w", err)
	}
	defer client.Close(context.Background())

	api := discord.NewClient(client.Rest())
	teams := service.New(store, api, api)
	themes := theme.New(store)
	handler = NewHandler(teams, themes, api, api, cfg.Prefix)

	if err := client.OpenGateway(ctx); err != nil {
		return fmt.Errorf("open gateway: %w", err)
	}
	log.Printf("gateway connected, state store at %s", cfg.StatePath)

	<-ctx.Done()
	return nil
}
