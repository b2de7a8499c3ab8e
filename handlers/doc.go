// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the chart API.

ChartHandler serves read-only views over a *dataset.Dataset that was loaded
once at startup:

	chartHandler := handlers.NewChartHandler(data)

# Endpoints

	GET /states                   → ListStates
	GET /national                 → GetNationalSummary
	GET /national/{metric}        → GetNationalChart
	GET /states/{state}           → GetStateSummary
	GET /states/{state}/{metric}  → GetStateChart

{metric} is cases or deaths. {state} is matched exactly (case-sensitive).

# Status Codes

  - 400: unknown metric
  - 404: no rows for the requested scope
  - 500: unexpected projection failure (logged)
*/
package handlers
