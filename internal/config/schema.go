package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config is the top-level guidectl configuration.
type Config struct {
	BooksDir  string       `mapstructure:"books_dir" yaml:"books_dir"`
	NamesFile string       `mapstructure:"names_file" yaml:"names_file,omitempty"`
	LangFile  string       `mapstructure:"lang_file" yaml:"lang_file,omitempty"`
	Log       LogConfig    `mapstructure:"log" yaml:"log"`
	Search    SearchConfig `mapstructure:"search" yaml:"search"`
	Watch     WatchConfig  `mapstructure:"watch" yaml:"watch"`
}

// LogConfig controls the application logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn warning error"`
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=pretty json"`
}

// SearchConfig holds search defaults.
type SearchConfig struct {
	Limit int `mapstructure:"limit" yaml:"limit" validate:"min=1,max=1000"`
}

// WatchConfig tunes the library watcher.
type WatchConfig struct {
	SettleDelay time.Duration `mapstructure:"settle_delay" yaml:"settle_delay" validate:"min=0"`
}

var validate = validator.New()

// Validate checks field ranges and enumerations.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %s=%s", strings.ToLower(fe.Namespace()), fe.Tag(), fe.Param()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// HasNames reports whether a name fixture is configured.
func (c *Config) HasNames() bool {
	return c.NamesFile != ""
}

// HasLang reports whether a lang file is configured.
func (c *Config) HasLang() bool {
	return c.LangFile != ""
}
