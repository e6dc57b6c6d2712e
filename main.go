package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"userbot/bot"
	"userbot/commands"
	"userbot/commands/helper"
	"userbot/config"
	"userbot/utils"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	cfg.ApplyLogLevel()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	helper.DocsLink = cfg.DocsURL

	b, err := bot.NewBot(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	dispatcher := commands.NewDispatcher(b, utils.NewRateLimiter(cfg.RateLimit))
	helper.Register(dispatcher.Registry)
	b.Client.AddHandler(dispatcher.HandleMessage)

	if err := b.Client.Open(); err != nil {
		log.Fatalf("Failed to open Discord session: %v", err)
	}

	log.WithFields(log.Fields{
		"prefix":   b.ActivePrefix(),
		"commands": len(dispatcher.Registry.Enabled),
	}).Info("Bot is running. Press CTRL-C to exit.")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	s := <-sig
	log.Infof("Received signal %s, shutting down", s)
}
