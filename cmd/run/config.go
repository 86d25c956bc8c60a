package main

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds run command configuration. Environment variables provide
// defaults; flags override them.
type Config struct {
	Engine  string `env:"SCRIPT_RUN_ENGINE"  envDefault:"js"`
	History string `env:"SCRIPT_RUN_HISTORY"`
	Debug   bool   `env:"SCRIPT_RUN_DEBUG"`

	// Flag-only settings.
	Script      string
	Interactive bool
	ShowLast    int
}

// ParseConfig parses environment variables and then flags into a Config.
// The returned slice holds the positional arguments left after flag parsing.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, []string, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, nil, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Engine, "engine", cfg.Engine, "script engine kind (js or lua)")
	fs.StringVar(&cfg.Script, "e", "", "script source to run")
	fs.StringVar(&cfg.History, "history", cfg.History, "path to the execution history database")
	fs.IntVar(&cfg.ShowLast, "last", 0, "print the last N history entries and exit")
	fs.BoolVar(&cfg.Interactive, "i", false, "interactive mode with TUI")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return Config{}, nil, err
	}

	return cfg, fs.Args(), nil
}
