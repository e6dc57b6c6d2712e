package commands

import (
	"regexp"
	"strings"
)

// AliasSeparator joins aliases for display.
const AliasSeparator = " | "

var splitExp = regexp.MustCompile(`\||/`)

// SplitAliases splits a composite command name into its aliases.
func SplitAliases(name string) []string {
	return splitExp.Split(name, -1)
}

// DisplayName renders a composite name with readable separators.
func DisplayName(name string) string {
	return strings.Join(SplitAliases(name), AliasSeparator)
}

// SolveCommands normalizes a command mapping. The first result is keyed by the
// display form of every name ("afk | sleep"), the second by every single alias
// of composite names ("afk", "sleep"). Both point at the same descriptors.
func SolveCommands(commands map[string]*CommandDescriptor) (map[string]*CommandDescriptor, map[string]*CommandDescriptor) {
	solved := make(map[string]*CommandDescriptor, len(commands))
	aliases := make(map[string]*CommandDescriptor)

	for name, cmd := range commands {
		parts := SplitAliases(name)
		if len(parts) == 1 {
			solved[name] = cmd
			continue
		}
		for _, p := range parts {
			aliases[p] = cmd
		}
		solved[strings.Join(parts, AliasSeparator)] = cmd
	}

	return solved, aliases
}
