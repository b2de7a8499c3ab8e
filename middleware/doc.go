// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Each request gets an ID (reused from X-Request-ID when present) that is
returned in the X-Request-ID response header and attached to the log lines.
Completion is logged at info with status and duration_ms.

# CORS Middleware

Enable cross-origin reads for the chart frontend:

	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigin)(mux),
	}

Only GET and OPTIONS are allowed; the API is read-only.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "no data for state")

# Client IP Extraction

	ip := middleware.GetClientIP(r)
*/
package middleware
