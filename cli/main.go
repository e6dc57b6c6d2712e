package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"userbot/bot"
	"userbot/commands"
	"userbot/commands/helper"
	"userbot/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "userbotctl",
	Short: "Userbot CLI - Inspect and manage the userbot offline",
	Long: `A CLI tool for the userbot that works without a Discord connection.
Show or change the persisted prefix, list the registered commands, or run
commands from a local console.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetOutput(cmd.ErrOrStderr())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "optional YAML config file")

	rootCmd.AddCommand(prefixCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(consoleCmd)
}

// openStore loads the config and opens the persisted store it points at.
func openStore() (*config.Config, config.Store, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	cfg.ApplyLogLevel()

	store, err := config.Open(cfg.ConfigStore)
	if err != nil {
		return nil, nil, err
	}
	return cfg, store, nil
}

// offlineBot builds a session-less bot with the builtin commands registered.
func offlineBot() (*bot.Bot, *commands.Dispatcher, error) {
	cfg, store, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	helper.DocsLink = cfg.DocsURL

	b := bot.New(nil, cfg, store)
	d := commands.NewDispatcher(b, nil)
	helper.Register(d.Registry)
	return b, d, nil
}
