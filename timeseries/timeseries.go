// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package timeseries

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/covid-charts/models"
)

var (
	ErrEmptySeries   = errors.New("empty series")
	ErrUnknownMetric = models.ErrUnknownMetric
)

// ListStates returns the distinct state names in the table, sorted ascending.
// Rows with an empty state are skipped.
func ListStates(table models.StateTable) []string {
	seen := make(map[string]struct{})
	states := []string{}
	for _, rec := range table {
		if rec.State == "" {
			continue
		}
		if _, ok := seen[rec.State]; ok {
			continue
		}
		seen[rec.State] = struct{}{}
		states = append(states, rec.State)
	}
	sort.Strings(states)
	return states
}

// RowsForState returns the rows whose state matches exactly, in table order.
// An unknown state yields an empty slice.
func RowsForState(table models.StateTable, state string) []models.DailyRecord {
	rows := []models.DailyRecord{}
	for _, rec := range table {
		if rec.State == state {
			rows = append(rows, rec)
		}
	}
	return rows
}

// Project maps records to (date, count) pairs for the given metric.
// Input order is preserved; the loader guarantees chronological order.
func Project(records []models.DailyRecord, metric models.Metric) (models.ChartSeries, error) {
	if len(records) == 0 {
		return nil, ErrEmptySeries
	}

	var pick func(models.DailyRecord) int64
	switch metric {
	case models.MetricCases:
		pick = func(r models.DailyRecord) int64 { return r.Cases }
	case models.MetricDeaths:
		pick = func(r models.DailyRecord) int64 { return r.Deaths }
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}

	series := make(models.ChartSeries, len(records))
	for i, rec := range records {
		series[i] = models.ChartPoint{Date: rec.Date, Count: pick(rec)}
	}
	return series, nil
}

// Total returns the most recent cumulative count, i.e. the last point.
func Total(series models.ChartSeries) (int64, error) {
	if len(series) == 0 {
		return 0, ErrEmptySeries
	}
	return series[len(series)-1].Count, nil
}

// FormatTotal formats a count with thousands separators: 1234567 -> "1,234,567"
func FormatTotal(n int64) string {
	return humanize.Comma(n)
}
