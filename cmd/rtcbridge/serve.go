package main

import (
	"context"
	stderrors "errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/rtc-bridge/config"
	"github.com/wippyai/rtc-bridge/host/wshost"
	"github.com/wippyai/rtc-bridge/plugin"
	"github.com/wippyai/rtc-bridge/registry"
	"github.com/wippyai/rtc-bridge/rtc/simengine"
)

const shutdownTimeout = 5 * time.Second

func serveCmd() *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the bridge over WebSocket",
		Long: `Start the bridge with the simulated engine and accept host connections
over WebSocket. Each message is one CBOR frame.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Server.Listen = listen
			}
			return runServe(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (overrides server.listen)")
	return cmd
}

func runServe(ctx context.Context, cfg *config.Config) error {
	log, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer log.Sync()
	installLogger(log)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := wshost.New(wshost.Options{MaxMessageBytes: cfg.Server.MaxMessageBytes})
	ctrl := plugin.New(simengine.NewFactory(), srv, cfg.Plugin())
	if _, err := ctrl.Attach(ctx); err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle(cfg.Server.Path, srv)
	httpSrv := &http.Server{
		Addr:              cfg.Server.Listen,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()
	go tickLoop(ctx, ctrl, cfg.Server.TickInterval.Duration)

	log.Info("serving",
		zap.String("listen", cfg.Server.Listen),
		zap.String("path", cfg.Server.Path),
		zap.String("namespace", cfg.Bridge.Namespace))

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !stderrors.Is(err, http.ErrServerClosed) {
			ctrl.Detach(context.Background())
			return err
		}
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	srv.Close()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http shutdown", zap.Error(err))
	}
	return ctrl.Detach(shutdownCtx)
}

// ticker is implemented by natives that report periodic statistics.
type ticker interface {
	Tick()
}

func tickNatives(ctrl *plugin.Controller) {
	ctrl.Each(func(inst *registry.Instance) bool {
		if t, ok := inst.Native.(ticker); ok {
			t.Tick()
		}
		return true
	})
}

func tickLoop(ctx context.Context, ctrl *plugin.Controller, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			tickNatives(ctrl)
		}
	}
}
