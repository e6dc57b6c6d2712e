package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"userbot/bot"
	"userbot/config"
)

// Modifier is the optional detail switch of an invocation (help foo dev).
type Modifier int

const (
	ModifierNone Modifier = iota
	ModifierDev
	ModifierDetails
	ModifierInfo
)

// ParseModifier maps dev, details and info to their modifier.
func ParseModifier(s string) Modifier {
	switch strings.ToLower(s) {
	case "dev":
		return ModifierDev
	case "details":
		return ModifierDetails
	case "info":
		return ModifierInfo
	}
	return ModifierNone
}

func (m Modifier) String() string {
	switch m {
	case ModifierDev:
		return "dev"
	case ModifierDetails:
		return "details"
	case ModifierInfo:
		return "info"
	}
	return ""
}

// Invocation is the typed form of a matched command: the first capture group
// is the name argument, the second the modifier.
type Invocation struct {
	Name     string
	Modifier Modifier
	// Matches are the raw submatches, Matches[0] being the whole match.
	Matches []string
}

// NewInvocation builds an invocation from regexp submatches.
func NewInvocation(matches []string) Invocation {
	inv := Invocation{Matches: matches}
	if len(matches) > 1 {
		inv.Name = matches[1]
	}
	if len(matches) > 2 {
		inv.Modifier = ParseModifier(matches[2])
	}
	return inv
}

// Responder delivers answers back to where the command came from.
type Responder interface {
	Respond(text string) error
}

// ChannelResponder answers in a Discord channel.
type ChannelResponder struct {
	Session   *discordgo.Session
	ChannelID string
}

func (r *ChannelResponder) Respond(text string) error {
	if _, err := r.Session.ChannelMessageSend(r.ChannelID, text); err != nil {
		return fmt.Errorf("failed to send answer: %w", err)
	}
	return nil
}

// WriterResponder answers on a writer, one answer per block.
type WriterResponder struct {
	W io.Writer
}

func (r *WriterResponder) Respond(text string) error {
	_, err := fmt.Fprintln(r.W, text)
	return err
}

// LogRecord is a line for the bot's log, attached to an answer.
type LogRecord struct {
	Source string
	Text   string
}

// Event is what a command handler receives.
type Event struct {
	ID         string
	Bot        *bot.Bot
	Registry   *Registry
	Command    *CommandDescriptor
	Invocation Invocation
	AuthorID   string
	// Message is nil when the event did not come from Discord.
	Message *discordgo.MessageCreate

	responder Responder
}

// NewEvent is used by transports and tests to build an event by hand.
func NewEvent(b *bot.Bot, reg *Registry, inv Invocation, r Responder) *Event {
	return &Event{Bot: b, Registry: reg, Invocation: inv, responder: r}
}

// Answer sends text back and records every log record.
func (e *Event) Answer(text string, records ...LogRecord) error {
	err := e.responder.Respond(text)
	for _, rec := range records {
		log.WithFields(log.Fields{
			"source":     rec.Source,
			"invocation": e.ID,
		}).Info(rec.Text)
		if e.Bot != nil {
			e.Bot.SendLog(rec.Source, rec.Text)
		}
	}
	return err
}

// Prefix returns the prefix currently in effect.
func (e *Event) Prefix() string {
	if e.Bot == nil {
		return config.DefaultPrefix
	}
	return e.Bot.ActivePrefix()
}
