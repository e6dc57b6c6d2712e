package helper

import (
	"errors"
	"fmt"
	"strings"

	"userbot/commands"
)

// Disable disables an enabled command by name or alias. Builtins are refused.
func Disable(e *commands.Event) error {
	m, err := e.Registry.Disable(e.Invocation.Name)
	switch {
	case errors.Is(err, commands.ErrEmptyName):
		return e.Answer("`Disable what? The void?`")
	case errors.Is(err, commands.ErrNotFound):
		return e.Answer("`Couldn't find the specified command.`")
	case errors.Is(err, commands.ErrBuiltin):
		return e.Answer("`Cannot disable a builtin command.`")
	case errors.Is(err, commands.ErrConflict):
		return e.Answer("`Another command is already registered under that name.`")
	case err != nil:
		return err
	}

	names := strings.Join(m.Names, ", ")
	return e.Answer(
		fmt.Sprintf("`Successfully disabled %s`", names),
		commands.LogRecord{Source: "disable", Text: "Disabled command(s): " + names},
	)
}
