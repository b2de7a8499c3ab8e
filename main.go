package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/covid-charts/cliparse"
	"github.com/danielhkuo/covid-charts/dataset"
	"github.com/danielhkuo/covid-charts/middleware"
	"github.com/danielhkuo/covid-charts/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Level(),
	})))

	// Load both datasets once; nothing is served without them
	data, err := dataset.Load(cfg.NationalDataPath, cfg.StatesDataPath)
	if err != nil {
		slog.Error("dataset load failed", "error", err)
		os.Exit(1)
	}

	// Create router
	mux := router.NewRouter(data, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigin)(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
