// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain and response types shared by the pipeline and the API.

# Domain Types

  - DailyRecord: one dataset row (date, optional state, cumulative cases and deaths)
  - StateTable: per-state rows, one per (state, date)
  - NationalTable: national rows, one per date
  - ChartPoint / ChartSeries: (date, count) pairs ordered by date

Tables are built once at startup and are read-only afterwards.

# Response Types

  - StatesResponse: states
  - ChartResponse: scope, state, metric, points, total, total_formatted
  - SummaryResponse: scope, state, last_updated, cases and deaths totals
  - ErrorResponse: error, message

# Constants

Metrics:

	MetricCases  = "cases"
	MetricDeaths = "deaths"

Scopes:

	ScopeNational = "national"
	ScopeState    = "state"

Dates are formatted with DateLayout (YYYY-MM-DD).
*/
package models
