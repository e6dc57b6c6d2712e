package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DefaultPrefix is used whenever no prefix override is configured.
const DefaultPrefix = "."

// Config holds the process settings of the bot
type Config struct {
	DiscordToken string `mapstructure:"DISCORD_TOKEN"`
	// ConfigStore selects the persisted store, see Open.
	ConfigStore  string `mapstructure:"CONFIG_STORE"`
	OwnerIDs     string `mapstructure:"OWNER_IDS"`
	LogChannelID string `mapstructure:"LOG_CHANNEL_ID"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`
	RateLimit    int    `mapstructure:"RATE_LIMIT"`
	DocsURL      string `mapstructure:"DOCS_URL"`
}

var keys = []string{
	"DISCORD_TOKEN",
	"CONFIG_STORE",
	"OWNER_IDS",
	"LOG_CHANNEL_ID",
	"LOG_LEVEL",
	"RATE_LIMIT",
	"DOCS_URL",
}

// Load reads .env, an optional YAML file and the environment, in that order of
// precedence from lowest to highest.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, falling back to system environment variables")
	}

	v := viper.New()
	v.SetDefault("CONFIG_STORE", "ini:config.ini")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RATE_LIMIT", 15)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.AutomaticEnv()
	// Unmarshal only sees keys viper knows about, AutomaticEnv alone is lazy.
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", k, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.ConfigStore = strings.TrimSpace(cfg.ConfigStore)

	return &cfg, nil
}

// Validate checks the settings needed to connect to Discord.
func (c *Config) Validate() error {
	if c.DiscordToken == "" {
		return fmt.Errorf("DISCORD_TOKEN is not set")
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("RATE_LIMIT must not be negative, got %d", c.RateLimit)
	}
	return nil
}

// ApplyLogLevel sets the global logrus level, keeping info when the value is unknown.
func (c *Config) ApplyLogLevel() {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		log.Warnf("Unknown LOG_LEVEL %q, using info", c.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
