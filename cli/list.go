package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"userbot/commands"
	"userbot/commands/helper"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered commands",
	Long:  `Display the enabled and disabled commands, or the members of one category.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var (
	listDisabled   bool
	filterCategory string
)

func init() {
	listCmd.Flags().BoolVarP(&listDisabled, "disabled", "d", false, "List only disabled commands")
	listCmd.Flags().StringVarP(&filterCategory, "category", "g", "", "Filter by category")
}

func runList(cmd *cobra.Command, args []string) error {
	b, d, err := offlineBot()
	if err != nil {
		return err
	}
	defer b.Close()

	out := cmd.OutOrStdout()
	reg := d.Registry

	if filterCategory != "" {
		names, ok := reg.Categories.Names(filterCategory)
		if !ok {
			return fmt.Errorf("category '%s' not found", filterCategory)
		}
		fmt.Fprintf(out, "%s: %s\n", strings.ToLower(filterCategory), commands.QuoteJoin(names, ", "))
		return nil
	}

	if listDisabled {
		fmt.Fprintln(out, helper.DisabledText(reg))
		return nil
	}

	fmt.Fprintln(out, helper.EnabledText(reg))
	fmt.Fprintln(out)
	fmt.Fprintln(out, helper.DisabledText(reg))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Categories: %s\n", strings.Join(reg.Categories.Labels(), ", "))
	return nil
}
