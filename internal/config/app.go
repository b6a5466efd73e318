package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/sandevgo/shellkit/pkg/log"
)

type AppConfig struct {
	// Prompt shown before each input line.
	Prompt string `env:"SHELLKIT_PROMPT" envDefault:"> "`

	// Greeting printed once at startup. GreetingFile, when set, takes
	// precedence and loads the greeting from a text file.
	Greeting     string `env:"SHELLKIT_GREETING" envDefault:"Welcome to shellkit. Type 'help' to list commands."`
	GreetingFile string `env:"SHELLKIT_GREETING_FILE"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse app config")
	}
	return c
}

// ResolveGreeting returns the greeting text, reading GreetingFile when set.
func (c *AppConfig) ResolveGreeting() (string, error) {
	if c.GreetingFile == "" {
		return c.Greeting, nil
	}
	data, err := os.ReadFile(c.GreetingFile)
	if err != nil {
		return "", fmt.Errorf("read greeting file: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
