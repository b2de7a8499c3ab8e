// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package timeseries turns loaded dataset rows into chart series and totals.

All functions are pure and safe to call concurrently over shared tables.

	rows := timeseries.RowsForState(data.States(), "Texas")
	series, err := timeseries.Project(rows, models.MetricCases)
	if errors.Is(err, timeseries.ErrEmptySeries) {
		// no data for this state
	}
	total, _ := timeseries.Total(series)
	label := timeseries.FormatTotal(total) // "1,234,567"

Counts in the datasets are cumulative, so the total to date is the last point
of the series rather than a sum.
*/
package timeseries
