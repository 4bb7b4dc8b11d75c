// Package config loads the bridge's TOML configuration.
package config

import (
	"os"
	"slices"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/wippyai/rtc-bridge/bridge"
	"github.com/wippyai/rtc-bridge/errors"
	"github.com/wippyai/rtc-bridge/plugin"
	"github.com/wippyai/rtc-bridge/rtc"
)

const (
	DefaultListen          = "127.0.0.1:7400"
	DefaultPath            = "/rtc"
	DefaultMaxMessageBytes = 1 << 20
	DefaultTickInterval    = 2 * time.Second
	DefaultLogLevel        = "info"
)

// Config is the content of a bridge.toml file.
type Config struct {
	Engine Engine `toml:"engine"`
	Bridge Bridge `toml:"bridge"`
	Events Events `toml:"events"`
	Server Server `toml:"server"`
	Log    Log    `toml:"log"`
}

// Engine configures the native engine created on attach.
type Engine struct {
	AppID      string         `toml:"app_id"`
	Parameters map[string]any `toml:"parameters"`
}

// Bridge configures channel naming.
type Bridge struct {
	Namespace string `toml:"namespace"`
}

// Events holds the initial value of each event switch.
type Events struct {
	Switches map[string]bool `toml:"switches"`
}

// Server configures the WebSocket host transport.
type Server struct {
	Listen          string   `toml:"listen"`
	Path            string   `toml:"path"`
	MaxMessageBytes int64    `toml:"max_message_bytes"`
	TickInterval    Duration `toml:"tick_interval"`
}

// Log configures the process logger.
type Log struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

// Duration is a time.Duration written as a string like "2s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads and validates the file at path. Keys it does not know are
// rejected so typos surface at startup.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "cannot read "+path)
	}
	c, err := Parse(data)
	if err != nil {
		if e, ok := err.(*errors.Error); ok && e.Detail == "" {
			e.Detail = path
		}
		return nil, err
	}
	return c, nil
}

// Parse decodes a configuration document.
func Parse(data []byte) (*Config, error) {
	var c Config
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Path(undecoded[0].String()).
			Detail("unknown key %q", undecoded[0].String()).
			Build()
	}

	c.applyDefaults()
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Engine.Parameters == nil {
		c.Engine.Parameters = map[string]any{}
	}
	if c.Events.Switches == nil {
		c.Events.Switches = map[string]bool{}
	}
	if c.Server.Listen == "" {
		c.Server.Listen = DefaultListen
	}
	if c.Server.Path == "" {
		c.Server.Path = DefaultPath
	}
	if c.Server.MaxMessageBytes == 0 {
		c.Server.MaxMessageBytes = DefaultMaxMessageBytes
	}
	if c.Server.TickInterval.Duration == 0 {
		c.Server.TickInterval.Duration = DefaultTickInterval
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

func (c *Config) validate() error {
	for key := range c.Events.Switches {
		s := bridge.Switch(key)
		if !slices.Contains(bridge.EngineSwitches, s) && !slices.Contains(bridge.RoomSwitches, s) {
			return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
				Path("events", "switches", key).
				Detail("unknown event switch %q", key).
				Build()
		}
	}
	if c.Server.MaxMessageBytes < 0 {
		return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Path("server", "max_message_bytes").
			Value(c.Server.MaxMessageBytes).
			Detail("must not be negative").
			Build()
	}
	if c.Server.Path[0] != '/' {
		return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Path("server", "path").
			Value(c.Server.Path).
			Detail("must start with /").
			Build()
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Path("log", "level").
			Value(c.Log.Level).
			Detail("unknown log level %q", c.Log.Level).
			Build()
	}
	return nil
}

// Plugin returns the controller configuration.
func (c *Config) Plugin() plugin.Config {
	return plugin.Config{
		Namespace: c.Bridge.Namespace,
		Engine: rtc.EngineConfig{
			AppID:      c.Engine.AppID,
			Parameters: c.Engine.Parameters,
		},
		Switches: c.Events.Switches,
	}
}
