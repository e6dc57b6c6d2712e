package main

import (
	"bufio"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"userbot/commands"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Run commands from standard input",
	Long: `Read one message per line and dispatch it as the bot would, printing
the answers. Prefix changes are persisted to the configured store.`,
	Args: cobra.NoArgs,
	RunE: runConsole,
}

var consoleAuthor string

func init() {
	consoleCmd.Flags().StringVarP(&consoleAuthor, "as", "a", "", "author ID to dispatch as (defaults to the first owner)")
}

func runConsole(cmd *cobra.Command, args []string) error {
	b, d, err := offlineBot()
	if err != nil {
		return err
	}
	defer b.Close()

	author := consoleAuthor
	if author == "" {
		author = firstOwner(b.Owners)
	}

	out := cmd.OutOrStdout()
	r := &commands.WriterResponder{W: out}
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if d.Dispatch(line, author, r) == 0 {
			fmt.Fprintf(out, "No command matched (prefix is %s)\n", b.ActivePrefix())
		}
	}
	return scanner.Err()
}

func firstOwner(owners map[string]bool) string {
	ids := make([]string, 0, len(owners))
	for id := range owners {
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return "console"
	}
	sort.Strings(ids)
	return ids[0]
}
