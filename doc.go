// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the covid-charts API server.

covid-charts serves cumulative COVID-19 case and death series for the
United States and for individual states, ready for charting.

# Starting the Server

With the default dataset locations (data/us.csv, data/us-states.csv):

	go run .

Or with flags:

	go run . -p 3318 -national /srv/us.csv -states /srv/us-states.csv

# Configuration

All settings are optional:

  - PORT (-p): Server port (default: 3318)
  - NATIONAL_DATA_PATH (-national): National CSV
  - STATES_DATA_PATH (-states): Per-state CSV
  - STATIC_DIR (-static): Directory served under /static/
  - CORS_ORIGIN (-cors-origin): Allowed origin
  - LOG_LEVEL (-log-level): debug, info, warn, error

A .env file in the working directory is read if present.

# Startup

Both CSV files are loaded exactly once. If either is missing or malformed
the process exits before listening. There is no reload: restart the process
to pick up new data.

# Architecture

  - dataset: CSV loading and the read-only Dataset holder
  - timeseries: state listing, filtering, chart projection, totals
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain and response types
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
