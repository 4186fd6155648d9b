// Package main starts the game-jam bot and handles termination.
//
// The process is a gateway adapter around team channel provisioning, theme
// idea collection, and role self-service; durable state lives in a local
// BoltDB file.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	botcmd "github.com/louisbranch/jambot/internal/cmd/bot"
	"github.com/louisbranch/jambot/internal/platform/config"
)

func main() {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg, err := botcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[JAMBOT] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := botcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
