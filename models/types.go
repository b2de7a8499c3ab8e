package models

import (
	"errors"
	"strings"
	"time"
)

// Metric constants
const (
	MetricCases  Metric = "cases"
	MetricDeaths Metric = "deaths"
)

// Scope constants
const (
	ScopeNational Scope = "national"
	ScopeState    Scope = "state"
)

// DateLayout is the calendar date format used in the datasets and in responses
const DateLayout = "2006-01-02"

var ErrUnknownMetric = errors.New("unknown metric")

// Metric selects which cumulative count is charted
type Metric string

// ParseMetric accepts "cases" or "deaths" (case-insensitive)
func ParseMetric(s string) (Metric, error) {
	switch m := Metric(strings.ToLower(strings.TrimSpace(s))); m {
	case MetricCases, MetricDeaths:
		return m, nil
	}
	return "", ErrUnknownMetric
}

// Scope is either the whole nation or a single named state
type Scope string

// Domain types

// DailyRecord is one row of either dataset. Counts are cumulative as of Date.
// State is empty for national rows.
type DailyRecord struct {
	Date   time.Time
	State  string
	Cases  int64
	Deaths int64
}

// StateTable holds per-state rows, one per (state, date)
type StateTable []DailyRecord

// NationalTable holds national rows, one per date
type NationalTable []DailyRecord

type ChartPoint struct {
	Date  time.Time
	Count int64
}

// ChartSeries is ordered by date ascending and covers one metric and one scope
type ChartSeries []ChartPoint

// Response types

type StatesResponse struct {
	States []string `json:"states"`
}

type PointResponse struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type ChartResponse struct {
	Scope          Scope           `json:"scope"`
	State          string          `json:"state,omitempty"`
	Metric         Metric          `json:"metric"`
	Points         []PointResponse `json:"points"`
	Total          int64           `json:"total"`
	TotalFormatted string          `json:"total_formatted"`
}

type SummaryResponse struct {
	Scope           Scope  `json:"scope"`
	State           string `json:"state,omitempty"`
	LastUpdated     string `json:"last_updated"`
	CasesTotal      int64  `json:"cases_total"`
	CasesFormatted  string `json:"cases_formatted"`
	DeathsTotal     int64  `json:"deaths_total"`
	DeathsFormatted string `json:"deaths_formatted"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
