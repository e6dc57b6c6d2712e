package helper

import (
	"userbot/commands"
)

// Enabled lists the enabled commands.
func Enabled(e *commands.Event) error {
	return e.Answer(EnabledText(e.Registry))
}

// Disabled lists the disabled commands.
func Disabled(e *commands.Event) error {
	return e.Answer(DisabledText(e.Registry))
}

func EnabledText(reg *commands.Registry) string {
	solved, _ := commands.SolveCommands(reg.Enabled)
	return "**Enabled commands:**" + commands.FormatChunks(commands.SortedNames(solved), commands.ChunkSize)
}

func DisabledText(reg *commands.Registry) string {
	solved, _ := commands.SolveCommands(reg.Disabled)
	if len(solved) == 0 {
		return "`There are no disabled commands currently.`"
	}
	return "**Disabled commands:**" + commands.FormatChunks(commands.SortedNames(solved), commands.ChunkSize)
}
