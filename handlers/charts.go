// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/covid-charts/dataset"
	"github.com/danielhkuo/covid-charts/middleware"
	"github.com/danielhkuo/covid-charts/models"
	"github.com/danielhkuo/covid-charts/timeseries"
)

type ChartHandler struct {
	data *dataset.Dataset
}

func NewChartHandler(data *dataset.Dataset) *ChartHandler {
	return &ChartHandler{data: data}
}

// ListStates handles GET /states
func (h *ChartHandler) ListStates(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.StatesResponse{
		States: h.data.StateNames(),
	})
}

// GetNationalChart handles GET /national/{metric}
func (h *ChartHandler) GetNationalChart(w http.ResponseWriter, r *http.Request) {
	metric, err := models.ParseMetric(r.PathValue("metric"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "metric must be cases or deaths")
		return
	}

	h.writeChart(w, models.ScopeNational, "", h.data.National(), metric)
}

// GetStateChart handles GET /states/{state}/{metric}
// The state name is matched exactly as it appears in the dataset
func (h *ChartHandler) GetStateChart(w http.ResponseWriter, r *http.Request) {
	state := r.PathValue("state")
	if state == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "state is required")
		return
	}

	metric, err := models.ParseMetric(r.PathValue("metric"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "metric must be cases or deaths")
		return
	}

	rows := timeseries.RowsForState(h.data.States(), state)
	h.writeChart(w, models.ScopeState, state, rows, metric)
}

// GetNationalSummary handles GET /national
// Returns both totals and the date of the latest row
func (h *ChartHandler) GetNationalSummary(w http.ResponseWriter, r *http.Request) {
	h.writeSummary(w, models.ScopeNational, "", h.data.National())
}

// GetStateSummary handles GET /states/{state}
func (h *ChartHandler) GetStateSummary(w http.ResponseWriter, r *http.Request) {
	state := r.PathValue("state")
	if state == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "state is required")
		return
	}

	rows := timeseries.RowsForState(h.data.States(), state)
	h.writeSummary(w, models.ScopeState, state, rows)
}

func (h *ChartHandler) writeChart(w http.ResponseWriter, scope models.Scope, state string, rows []models.DailyRecord, metric models.Metric) {
	series, err := timeseries.Project(rows, metric)
	if errors.Is(err, timeseries.ErrEmptySeries) {
		middleware.ErrorResponse(w, http.StatusNotFound, noDataMessage(scope, state))
		return
	}
	if err != nil {
		slog.Error("failed to project series", "scope", scope, "state", state, "metric", metric, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Projection failed")
		return
	}

	total, err := timeseries.Total(series)
	if err != nil {
		slog.Error("failed to compute total", "scope", scope, "state", state, "metric", metric, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Projection failed")
		return
	}

	points := make([]models.PointResponse, len(series))
	for i, p := range series {
		points[i] = models.PointResponse{
			Date:  p.Date.Format(models.DateLayout),
			Count: p.Count,
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.ChartResponse{
		Scope:          scope,
		State:          state,
		Metric:         metric,
		Points:         points,
		Total:          total,
		TotalFormatted: timeseries.FormatTotal(total),
	})
}

func (h *ChartHandler) writeSummary(w http.ResponseWriter, scope models.Scope, state string, rows []models.DailyRecord) {
	cases, err := timeseries.Project(rows, models.MetricCases)
	if errors.Is(err, timeseries.ErrEmptySeries) {
		middleware.ErrorResponse(w, http.StatusNotFound, noDataMessage(scope, state))
		return
	}
	if err != nil {
		slog.Error("failed to project cases", "scope", scope, "state", state, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Projection failed")
		return
	}

	deaths, err := timeseries.Project(rows, models.MetricDeaths)
	if err != nil {
		slog.Error("failed to project deaths", "scope", scope, "state", state, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Projection failed")
		return
	}

	// Both series are non-empty here
	casesTotal, _ := timeseries.Total(cases)
	deathsTotal, _ := timeseries.Total(deaths)

	middleware.JSONResponse(w, http.StatusOK, models.SummaryResponse{
		Scope:           scope,
		State:           state,
		LastUpdated:     cases[len(cases)-1].Date.Format(models.DateLayout),
		CasesTotal:      casesTotal,
		CasesFormatted:  timeseries.FormatTotal(casesTotal),
		DeathsTotal:     deathsTotal,
		DeathsFormatted: timeseries.FormatTotal(deathsTotal),
	})
}

func noDataMessage(scope models.Scope, state string) string {
	if scope == models.ScopeState {
		return "No data for state " + state
	}
	return "No national data"
}
