package helper

import (
	"errors"
	"fmt"
	"strings"

	"userbot/commands"
)

// Enable re-enables a disabled command by name or alias.
func Enable(e *commands.Event) error {
	m, err := e.Registry.Enable(e.Invocation.Name)
	switch {
	case errors.Is(err, commands.ErrEmptyName):
		return e.Answer("`Enable what? The void?`")
	case errors.Is(err, commands.ErrNotFound):
		return e.Answer("`Couldn't find the specified command. Perhaps it's not disabled?`")
	case errors.Is(err, commands.ErrConflict):
		return e.Answer("`Another command is already registered under that name.`")
	case err != nil:
		return err
	}

	names := strings.Join(m.Names, ", ")
	return e.Answer(
		fmt.Sprintf("`Successfully enabled %s`", names),
		commands.LogRecord{Source: "enable", Text: "Enabled command(s): " + names},
	)
}
