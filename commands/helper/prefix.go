package helper

import (
	"fmt"
	"strings"

	"userbot/commands"
	"userbot/config"
)

// SetPrefix changes the prefix and persists it.
func SetPrefix(e *commands.Event) error {
	prefix := strings.TrimSpace(e.Invocation.Name)
	if prefix == "" {
		return e.Answer("`A prefix can't be blank.`")
	}

	old := e.Bot.Prefix
	e.Bot.Prefix = prefix
	e.Bot.Store.Set(config.UserbotSection, config.PrefixKey, prefix)

	var err error
	if old == "" {
		err = e.Answer(
			fmt.Sprintf("`Successfully changed the prefix to `**%s**`. To revert this, do `**resetprefix**", prefix),
			commands.LogRecord{Source: "setprefix", Text: "Prefix changed to " + prefix},
		)
	} else {
		err = e.Answer(
			fmt.Sprintf("`Successfully changed the prefix to `**%[1]s**`. To revert this, do `**%[1]ssetprefix %[2]s**", prefix, old),
			commands.LogRecord{Source: "setprefix", Text: fmt.Sprintf("Prefix changed to %s from %s", prefix, old)},
		)
	}

	if saveErr := e.Bot.Store.Save(); saveErr != nil {
		return fmt.Errorf("failed to save prefix: %w", saveErr)
	}
	return err
}

// ResetPrefix drops the prefix override, if there is one.
func ResetPrefix(e *commands.Event) error {
	if _, ok := config.Prefix(e.Bot.Store); !ok {
		return e.Answer("`There is no prefix set as a default!`")
	}

	e.Bot.Store.Delete(config.UserbotSection, config.PrefixKey)
	e.Bot.Prefix = ""
	err := e.Answer(
		"`Successfully reset your prefix to the default ones!`",
		commands.LogRecord{Source: "resetprefix", Text: "Successfully reset your prefix"},
	)

	if saveErr := e.Bot.Store.Save(); saveErr != nil {
		return fmt.Errorf("failed to save prefix: %w", saveErr)
	}
	return err
}
