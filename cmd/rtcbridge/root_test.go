package main

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/wippyai/rtc-bridge/config"
	"github.com/wippyai/rtc-bridge/rtc/simengine"
)

func TestVersionCmd(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), simengine.DefaultVersion) {
		t.Errorf("output = %q", out.String())
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Log
		wantErr bool
	}{
		{"production", config.Log{Level: "info"}, false},
		{"development", config.Log{Level: "debug", Development: true}, false},
		{"bad level", config.Log{Level: "loud"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := newLogger(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if l != nil && l.Core().Enabled(zapcore.DebugLevel) != (tt.cfg.Level == "debug") {
				t.Errorf("debug enabled mismatch for level %s", tt.cfg.Level)
			}
		})
	}
}
