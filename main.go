package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/lucky-picker/cliparse"
	"github.com/danielhkuo/lucky-picker/kv"
	"github.com/danielhkuo/lucky-picker/logging"
	"github.com/danielhkuo/lucky-picker/middleware"
	"github.com/danielhkuo/lucky-picker/router"
	"github.com/danielhkuo/lucky-picker/store"
	"github.com/danielhkuo/lucky-picker/wheel"
)

// stdRNG draws from the auto-seeded global source
type stdRNG struct{}

func (stdRNG) IntN(n int) int   { return rand.IntN(n) }
func (stdRNG) Float64() float64 { return rand.Float64() }

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	logger, closeLog, err := logging.New(cfg)
	if err != nil {
		slog.Error("Error configuring logger", "error", err)
		os.Exit(1)
	}
	defer closeLog()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Open the key-value backend
	kvs, closeKV, err := kv.Open(ctx, cfg)
	if err != nil {
		slog.Error("storage open failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer closeKV()
	slog.Info("Storage ready", "type", cfg.DatabaseType)

	st := store.Open(ctx, kvs)

	wh := wheel.New(stdRNG{})
	wh.SetDuration(st.Settings().SpinDuration)
	defer wh.Close()

	// Keep the wheel in step with the duration setting
	cancelSub := st.Subscribe(func(ev store.Event) {
		if ev.Kind == store.SettingsChanged {
			wh.SetDuration(st.Settings().SpinDuration)
		}
	})
	defer cancelSub()

	// Create router
	mux := router.NewRouter(st, wh, cfg)
	if cfg.APIKey == "" {
		slog.Warn("No API key configured, write routes are open")
	}

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	go func() {
		// Wait for Ctrl-C signal
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed")
	}
}
