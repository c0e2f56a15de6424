package config

import (
	"errors"
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	BackendFile  = "file"
	BackendMySQL = "mysql"

	// DiscordMessageLimit is the largest content Discord accepts in one message.
	DiscordMessageLimit = 2000
)

type Config struct {
	Dictionaries DictionariesConfig `mapstructure:"dictionaries"`
	Discord      DiscordConfig      `mapstructure:"discord"`
	Formatter    FormatterConfig    `mapstructure:"formatter"`
	Database     DatabaseConfig     `mapstructure:"database"`
}

type DictionariesConfig struct {
	Backend            string `mapstructure:"backend" validate:"oneof=file mysql"`
	NamesFile          string `mapstructure:"names_file" validate:"required,dictfile"`
	ParentheticalsFile string `mapstructure:"parentheticals_file" validate:"required,dictfile"`
}

type DiscordConfig struct {
	WebhookURL     string `mapstructure:"webhook_url" validate:"omitempty,url"`
	SettingsFile   string `mapstructure:"settings_file"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=0"`
	MessageLimit   int    `mapstructure:"message_limit" validate:"gte=0,lte=2000"`
}

// FormatterConfig selects where parenthetical terms are emphasised besides entry lines.
type FormatterConfig struct {
	EmphasizeHeaderParentheses       bool `mapstructure:"emphasize_header_parentheses"`
	EmphasizeContinuationParentheses bool `mapstructure:"emphasize_continuation_parentheses"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("lottery-translator")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/lottery-translator")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("dictionaries.backend", BackendFile)
	v.SetDefault("dictionaries.names_file", "dictionary.json")
	v.SetDefault("dictionaries.parentheticals_file", "paren_dictionary.json")
	v.SetDefault("discord.settings_file", "webhook.json")
	v.SetDefault("discord.timeout_seconds", 10)
	v.SetDefault("discord.message_limit", DiscordMessageLimit)
	v.SetDefault("formatter.emphasize_header_parentheses", false)
	v.SetDefault("formatter.emphasize_continuation_parentheses", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "lottery")
	v.SetDefault("database.username", "user")

	// The webhook is a secret, so it may come from the environment instead of the file
	if err := v.BindEnv("discord.webhook_url", "DISCORD_WEBHOOK_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind DISCORD_WEBHOOK_URL environment variable: %w", err)
	}
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
