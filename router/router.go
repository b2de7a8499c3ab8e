// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/covid-charts/cliparse"
	"github.com/danielhkuo/covid-charts/dataset"
	"github.com/danielhkuo/covid-charts/handlers"
	"github.com/danielhkuo/covid-charts/middleware"
)

func NewRouter(data *dataset.Dataset, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	chartHandler := handlers.NewChartHandler(data)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Navigation
	mux.HandleFunc("GET /states", middleware.WithLogging(chartHandler.ListStates))

	// National scope
	mux.HandleFunc("GET /national", middleware.WithLogging(chartHandler.GetNationalSummary))
	mux.HandleFunc("GET /national/{metric}", middleware.WithLogging(chartHandler.GetNationalChart))

	// State scope
	mux.HandleFunc("GET /states/{state}", middleware.WithLogging(chartHandler.GetStateSummary))
	mux.HandleFunc("GET /states/{state}/{metric}", middleware.WithLogging(chartHandler.GetStateChart))

	if cfg.StaticDir != "" {
		mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))
	}

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("covid-charts API v1"))
	})

	return mux
}
