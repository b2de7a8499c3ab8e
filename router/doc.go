// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the chart API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(data, cfg)

# Endpoints

Health:

	GET /health

Navigation:

	GET /states - Sorted list of known states

National:

	GET /national          - Latest cases and deaths totals
	GET /national/{metric} - Chart series (cases or deaths)

State:

	GET /states/{state}          - Latest totals for one state
	GET /states/{state}/{metric} - Chart series for one state

Static files (only when cfg.StaticDir is set):

	GET /static/...

All data routes are wrapped with middleware.WithLogging. The dataset is
shared read-only across requests.
*/
package router
