package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"userbot/config"
	"userbot/utils"
)

// Bot is the host client: the Discord session, the persisted configuration
// and the active command prefix.
type Bot struct {
	Client *discordgo.Session
	Config *config.Config
	Store  config.Store
	// Prefix is the active override; empty means config.DefaultPrefix.
	Prefix string
	Owners map[string]bool
}

// NewBot opens the config store and prepares (but does not open) the session.
func NewBot(cfg *config.Config) (*Bot, error) {
	store, err := config.Open(cfg.ConfigStore)
	if err != nil {
		return nil, err
	}

	client, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	client.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages | discordgo.IntentsMessageContent
	// Handlers run one after another; the command registry is not locked.
	client.SyncEvents = true

	return New(client, cfg, store), nil
}

// New wires an existing session (nil for offline use) and store.
func New(client *discordgo.Session, cfg *config.Config, store config.Store) *Bot {
	if cfg == nil {
		cfg = &config.Config{}
	}
	b := &Bot{
		Client: client,
		Config: cfg,
		Store:  store,
		Owners: utils.ParseOwnerIDs(cfg.OwnerIDs),
	}
	if store != nil {
		if p, ok := config.Prefix(store); ok {
			b.Prefix = p
		}
	}
	return b
}

// ActivePrefix returns the prefix commands must start with.
func (b *Bot) ActivePrefix() string {
	if b.Prefix == "" {
		return config.DefaultPrefix
	}
	return b.Prefix
}

// IsOwner reports whether userID may run owner-only commands. With no owners
// configured every author is accepted.
func (b *Bot) IsOwner(userID string) bool {
	if len(b.Owners) == 0 {
		return true
	}
	return b.Owners[userID]
}

// SendLog posts a log record to the configured log channel, if any.
func (b *Bot) SendLog(source, text string) {
	if b.Client == nil || b.Config.LogChannelID == "" {
		return
	}
	msg := fmt.Sprintf("**%s**\n%s", source, text)
	if _, err := b.Client.ChannelMessageSend(b.Config.LogChannelID, msg); err != nil {
		log.WithError(err).WithField("source", source).Warn("Failed to forward log record")
	}
}

// Close releases the session and the store.
func (b *Bot) Close() error {
	if b.Client != nil {
		b.Client.Close()
	}
	if b.Store != nil {
		return b.Store.Close()
	}
	return nil
}
