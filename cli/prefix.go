package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"userbot/config"
)

var prefixCmd = &cobra.Command{
	Use:   "prefix",
	Short: "Show or change the persisted command prefix",
}

var prefixShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active prefix",
	Args:  cobra.NoArgs,
	RunE:  runPrefixShow,
}

var prefixSetCmd = &cobra.Command{
	Use:   "set <prefix>",
	Short: "Persist a new prefix",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrefixSet,
}

var prefixResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop the prefix override",
	Args:  cobra.NoArgs,
	RunE:  runPrefixReset,
}

func init() {
	prefixCmd.AddCommand(prefixShowCmd)
	prefixCmd.AddCommand(prefixSetCmd)
	prefixCmd.AddCommand(prefixResetCmd)
}

func runPrefixShow(cmd *cobra.Command, args []string) error {
	_, store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if p, ok := config.Prefix(store); ok {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s (default)\n", config.DefaultPrefix)
	}
	return nil
}

func runPrefixSet(cmd *cobra.Command, args []string) error {
	prefix := strings.TrimSpace(args[0])
	if prefix == "" {
		return fmt.Errorf("a prefix can't be blank")
	}

	_, store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	store.Set(config.UserbotSection, config.PrefixKey, prefix)
	if err := store.Save(); err != nil {
		return fmt.Errorf("failed to save prefix: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Prefix set to %s\n", prefix)
	return nil
}

func runPrefixReset(cmd *cobra.Command, args []string) error {
	_, store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if !store.Delete(config.UserbotSection, config.PrefixKey) {
		fmt.Fprintln(cmd.OutOrStdout(), "There is no prefix set as a default!")
		return nil
	}
	if err := store.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Prefix reset to %s\n", config.DefaultPrefix)
	return nil
}
