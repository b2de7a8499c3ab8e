// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package dataset loads the national and per-state CSV files once at startup.

# File Format

Both files have a header row. Columns are matched by name, in any order;
extra columns such as fips are ignored.

	date,state,fips,cases,deaths     (per-state)
	date,cases,deaths                (national)

Dates are YYYY-MM-DD. Counts are cumulative non-negative integers.

# Loading

	data, err := dataset.Load(cfg.NationalDataPath, cfg.StatesDataPath)
	if err != nil {
		// fatal: do not serve requests
	}

A load either returns a complete table or a *LoadError; rows are never
partially populated. Tables are stable-sorted by date after parsing, so the
last row for any state is its most recent cumulative count.

# Errors

LoadError carries the path and, when known, the line number. It wraps
ErrMissingColumn, ErrMalformedRow, or the underlying file error:

	var le *dataset.LoadError
	if errors.As(err, &le) {
		slog.Error("bad dataset", "path", le.Path, "line", le.Line)
	}
*/
package dataset
