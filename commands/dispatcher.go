package commands

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"userbot/bot"
	"userbot/utils"
)

type attachment struct {
	cmd   *CommandDescriptor
	token *HandlerToken
}

// Dispatcher routes incoming messages to the attached command handlers. It owns
// the Registry whose enable and disable calls attach and detach handlers here.
type Dispatcher struct {
	Bot      *bot.Bot
	Registry *Registry

	limiter  *utils.RateLimiter
	attached []attachment
}

// NewDispatcher creates a dispatcher with an empty registry.
func NewDispatcher(b *bot.Bot, limiter *utils.RateLimiter) *Dispatcher {
	d := &Dispatcher{Bot: b, limiter: limiter}
	d.Registry = NewRegistry(d)
	return d
}

// Attach adds one handler of cmd. Attaching twice makes it fire twice.
func (d *Dispatcher) Attach(cmd *CommandDescriptor, token *HandlerToken) {
	d.attached = append(d.attached, attachment{cmd: cmd, token: token})
}

// Detach removes one previously attached handler of cmd.
func (d *Dispatcher) Detach(cmd *CommandDescriptor, token *HandlerToken) {
	for i, a := range d.attached {
		if a.cmd == cmd && a.token == token {
			d.attached = append(d.attached[:i], d.attached[i+1:]...)
			return
		}
	}
	log.WithField("command", cmd.Name).Warn("Detach of a handler that is not attached")
}

// Attached returns how many handlers of cmd are attached.
func (d *Dispatcher) Attached(cmd *CommandDescriptor) int {
	n := 0
	for _, a := range d.attached {
		if a.cmd == cmd {
			n++
		}
	}
	return n
}

// HandleMessage is the discordgo message handler.
func (d *Dispatcher) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil {
		return
	}
	if s.State != nil && s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	d.dispatch(m.Content, m.Author.ID, &ChannelResponder{Session: s, ChannelID: m.ChannelID}, m)
}

// Dispatch runs every attached handler matching text and returns how many ran.
func (d *Dispatcher) Dispatch(text, authorID string, r Responder) int {
	return d.dispatch(text, authorID, r, nil)
}

func (d *Dispatcher) dispatch(text, authorID string, r Responder, msg *discordgo.MessageCreate) int {
	prefix := d.Bot.ActivePrefix()

	// handlers may attach or detach while we iterate
	attached := make([]attachment, len(d.attached))
	copy(attached, d.attached)

	ran := 0
	for _, a := range attached {
		body := text
		if !a.token.DisablePrefix {
			if !strings.HasPrefix(text, prefix) {
				continue
			}
			body = text[len(prefix):]
		}

		matches := matchStart(a.token.Pattern, body)
		if matches == nil {
			continue
		}
		if a.token.Outgoing && !d.Bot.IsOwner(authorID) {
			continue
		}
		ran++

		if !d.limiter.Allow(authorID, a.cmd.Name) {
			wait := d.limiter.RetryAfter(authorID, a.cmd.Name).Round(time.Second)
			if err := r.Respond(fmt.Sprintf("`Slow down! Try again in %s.`", wait)); err != nil {
				log.WithError(err).Warn("Failed to send rate limit notice")
			}
			continue
		}

		e := &Event{
			ID:         uuid.NewString(),
			Bot:        d.Bot,
			Registry:   d.Registry,
			Command:    a.cmd,
			Invocation: NewInvocation(matches),
			AuthorID:   authorID,
			Message:    msg,
			responder:  r,
		}
		logger := log.WithFields(log.Fields{
			"command":    a.cmd.Name,
			"invocation": e.ID,
			"author":     authorID,
		})
		logger.Debug("Running command")

		if err := a.cmd.Func(e); err != nil {
			logger.WithError(err).Error("Command failed")
		}
	}
	return ran
}

// matchStart returns the submatches of re anchored at the start of s, or nil.
func matchStart(re *regexp.Regexp, s string) []string {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil || loc[0] != 0 {
		return nil
	}
	matches := make([]string, len(loc)/2)
	for i := range matches {
		if loc[2*i] >= 0 {
			matches[i] = s[loc[2*i]:loc[2*i+1]]
		}
	}
	return matches
}
