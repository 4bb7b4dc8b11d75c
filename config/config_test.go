package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/wippyai/rtc-bridge/errors"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.Server.Listen != DefaultListen {
		t.Errorf("Listen = %q", c.Server.Listen)
	}
	if c.Server.Path != DefaultPath {
		t.Errorf("Path = %q", c.Server.Path)
	}
	if c.Server.TickInterval.Duration != DefaultTickInterval {
		t.Errorf("TickInterval = %v", c.Server.TickInterval)
	}
	if c.Bridge.Namespace != "" {
		t.Errorf("Namespace = %q, want empty", c.Bridge.Namespace)
	}
	if c.Log.Level != "info" {
		t.Errorf("Level = %q", c.Log.Level)
	}
}

func TestLoad(t *testing.T) {
	doc := `
[engine]
app_id = "app-1"

[engine.parameters]
rtc.audio_mode = "low_latency"
retries = 3

[bridge]
namespace = "com.example/"

[events.switches]
enableSysStats = true
enableRoomStats = false

[server]
listen = ":9000"
max_message_bytes = 4096
tick_interval = "500ms"

[log]
level = "debug"
development = true
`
	path := filepath.Join(t.TempDir(), "bridge.toml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Engine.AppID != "app-1" {
		t.Errorf("AppID = %q", c.Engine.AppID)
	}
	if c.Engine.Parameters["retries"] != int64(3) {
		t.Errorf("retries = %#v", c.Engine.Parameters["retries"])
	}
	if c.Server.Listen != ":9000" || c.Server.MaxMessageBytes != 4096 {
		t.Errorf("server = %+v", c.Server)
	}
	if c.Server.Path != DefaultPath {
		t.Errorf("Path default not applied: %q", c.Server.Path)
	}
	if c.Server.TickInterval.Duration != 500*time.Millisecond {
		t.Errorf("TickInterval = %v", c.Server.TickInterval)
	}
	if !c.Log.Development || c.Log.Level != "debug" {
		t.Errorf("log = %+v", c.Log)
	}

	pc := c.Plugin()
	if pc.Namespace != "com.example/" {
		t.Errorf("plugin namespace = %q", pc.Namespace)
	}
	if !pc.Switches["enableSysStats"] || pc.Switches["enableRoomStats"] {
		t.Errorf("plugin switches = %v", pc.Switches)
	}
	if pc.Engine.AppID != "app-1" {
		t.Errorf("plugin app id = %q", pc.Engine.AppID)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"syntax", "[engine\napp_id = 1"},
		{"unknown key", "[server]\nport = 80"},
		{"unknown switch", "[events.switches]\nenableEverything = true"},
		{"negative size", "[server]\nmax_message_bytes = -1"},
		{"relative path", "[server]\npath = \"rtc\""},
		{"bad level", "[log]\nlevel = \"loud\""},
		{"bad duration", "[server]\ntick_interval = \"soon\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			var e *errors.Error
			if !stderrors.As(err, &e) {
				t.Fatalf("expected *errors.Error, got %T", err)
			}
			if e.Phase != errors.PhaseConfig || e.Kind != errors.KindInvalidInput {
				t.Errorf("got %s/%s", e.Phase, e.Kind)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !stderrors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist cause, got %v", err)
	}
}
