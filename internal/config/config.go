// Package config loads arena configuration from HCL files.
package config

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/hanabiforbots/internal/bot"
	"github.com/lox/hanabiforbots/internal/game"
	"github.com/lox/hanabiforbots/internal/variant"
)

// Config is the root of an arena configuration file
type Config struct {
	Arena   ArenaSettings  `hcl:"arena,block"`
	Lineups []LineupConfig `hcl:"lineup,block"`
}

// ArenaSettings contains the arena-level configuration. Seed is a pointer
// so an explicit seed of zero is distinguishable from no seed at all; with
// no seed the CLI picks a random one and logs it for replay.
type ArenaSettings struct {
	Players  int    `hcl:"players,optional"`
	Games    int    `hcl:"games,optional"`
	Seed     *int64 `hcl:"seed,optional"`
	Workers  int    `hcl:"workers,optional"`
	Timeout  string `hcl:"timeout,optional"`
	Variant  string `hcl:"variant,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// LineupConfig names a seating of bots: a single name fills every seat, or
// one name per seat
type LineupConfig struct {
	Name string   `hcl:"name,label"`
	Bots []string `hcl:"bots"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	c := &Config{}
	applyDefaults(c)
	return c
}

// Load reads an arena configuration file. A missing file yields the
// defaults, so running without any configuration works out of the box.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	applyDefaults(&config)
	return &config, nil
}

// applyDefaults fills in zero values after decoding
func applyDefaults(c *Config) {
	if c.Arena.Players == 0 {
		c.Arena.Players = 3
	}
	if c.Arena.Games == 0 {
		c.Arena.Games = 100
	}
	if c.Arena.Workers == 0 {
		c.Arena.Workers = runtime.NumCPU()
	}
	if c.Arena.Timeout == "" {
		c.Arena.Timeout = "10s"
	}
	if c.Arena.Variant == "" {
		c.Arena.Variant = variant.Duck{}.Name()
	}
	if c.Arena.LogLevel == "" {
		c.Arena.LogLevel = "info"
	}
}

// Validate checks the configuration against the bot and variant registries
func (c *Config) Validate() error {
	if c.Arena.Players < game.MinPlayers || c.Arena.Players > game.MaxPlayers {
		return fmt.Errorf("players must be between %d and %d, got %d",
			game.MinPlayers, game.MaxPlayers, c.Arena.Players)
	}
	if c.Arena.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Arena.Games)
	}
	if c.Arena.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Arena.Workers)
	}
	if _, err := time.ParseDuration(c.Arena.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	if _, err := variant.Get(c.Arena.Variant); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.Arena.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q", c.Arena.LogLevel)
	}

	seen := make(map[string]bool)
	for _, l := range c.Lineups {
		if seen[l.Name] {
			return fmt.Errorf("duplicate lineup name %q", l.Name)
		}
		seen[l.Name] = true

		if len(l.Bots) != 1 && len(l.Bots) != c.Arena.Players {
			return fmt.Errorf("lineup %q: needs one bot or one per seat, got %d bots for %d players",
				l.Name, len(l.Bots), c.Arena.Players)
		}
		for _, name := range l.Bots {
			if _, err := bot.Get(name); err != nil {
				return fmt.Errorf("lineup %q: %w", l.Name, err)
			}
		}
	}
	return nil
}

// TimeoutDuration returns the parsed per-game timeout
func (c *Config) TimeoutDuration() (time.Duration, error) {
	return time.ParseDuration(c.Arena.Timeout)
}
