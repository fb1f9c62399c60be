package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of all environment variables read by Load.
const EnvPrefix = "GQLFMT"

type Config struct {
	// IndentWidth is the number of spaces per nesting level.
	IndentWidth int `split_words:"true"`
	// Verbose enables debug logging in the command line tool.
	Verbose bool
}

func Default() *Config {
	return &Config{
		IndentWidth: 2,
	}
}

// Load returns the default configuration overridden by GQLFMT_INDENT_WIDTH and
// GQLFMT_VERBOSE.
func Load() (*Config, error) {
	c := Default()
	if err := envconfig.Process(EnvPrefix, c); err != nil {
		return nil, err
	}
	if c.IndentWidth < 1 {
		return nil, fmt.Errorf("config: %s_INDENT_WIDTH must be at least 1, got %d", EnvPrefix, c.IndentWidth)
	}
	return c, nil
}
