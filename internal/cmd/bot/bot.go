// Package bot parses bot command flags and composes the process entrypoint.
package bot

import (
	"context"
	"flag"
	"fmt"

	botapp "github.com/louisbranch/jambot/internal/bot"
	entrypoint "github.com/louisbranch/jambot/internal/platform/cmd"
)

// Config holds bot command configuration.
type Config struct {
	Token     string `env:"JAMBOT_DISCORD_TOKEN"`
	StatePath string `env:"JAMBOT_STATE_PATH"     envDefault:"jambot.db"`
	Prefix    string `env:"JAMBOT_COMMAND_PREFIX" envDefault:"~"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Token, "token", cfg.Token, "discord bot token")
	fs.StringVar(&cfg.StatePath, "state-path", cfg.StatePath, "path of the durable state database")
	fs.StringVar(&cfg.Prefix, "prefix", cfg.Prefix, "command prefix")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the bot and serves gateway events until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceBot, func(context.Context) error {
		if err := botapp.Run(ctx, botapp.Config{
			Token:     cfg.Token,
			StatePath: cfg.StatePath,
			Prefix:    cfg.Prefix,
		}); err != nil {
			return fmt.Errorf("serve bot: %w", err)
		}
		return nil
	})
}
