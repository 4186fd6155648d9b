package bot

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("bot", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.StatePath != "jambot.db" {
		t.Fatalf("expected default state path, got %q", cfg.StatePath)
	}
	if cfg.Prefix != "~" {
		t.Fatalf("expected default prefix, got %q", cfg.Prefix)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("JAMBOT_DISCORD_TOKEN", "env-token")
	t.Setenv("JAMBOT_STATE_PATH", "env-state.db")
	t.Setenv("JAMBOT_COMMAND_PREFIX", "!")

	fs := flag.NewFlagSet("bot", flag.ContinueOnError)
	args := []string{
		"-state-path", "flag-state.db",
	}
	cfg, err := ParseConfig(fs, args)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Token != "env-token" {
		t.Fatalf("expected env token, got %q", cfg.Token)
	}
	if cfg.StatePath != "flag-state.db" {
		t.Fatalf("expected flag state path, got %q", cfg.StatePath)
	}
	if cfg.Prefix != "!" {
		t.Fatalf("expected env prefix, got %q", cfg.Prefix)
	}
}
