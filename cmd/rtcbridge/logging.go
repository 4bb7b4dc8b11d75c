package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/rtc-bridge/bridge"
	"github.com/wippyai/rtc-bridge/config"
	"github.com/wippyai/rtc-bridge/host"
	"github.com/wippyai/rtc-bridge/host/wshost"
	"github.com/wippyai/rtc-bridge/plugin"
	"github.com/wippyai/rtc-bridge/registry"
)

// newLogger builds the process logger. An empty output list keeps zap's
// defaults (stderr).
func newLogger(cfg config.Log, outputs ...string) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	if len(outputs) > 0 {
		zc.OutputPaths = outputs
		zc.ErrorOutputPaths = outputs
	}
	return zc.Build()
}

// installLogger hands l to every package that logs.
func installLogger(l *zap.Logger) {
	registry.SetLogger(l.Named("registry"))
	bridge.SetLogger(l.Named("bridge"))
	plugin.SetLogger(l.Named("plugin"))
	host.SetLogger(l.Named("host"))
	wshost.SetLogger(l.Named("wshost"))
}
