// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/covid-charts/models"
)

var (
	ErrMissingColumn = errors.New("missing column")
	ErrMalformedRow  = errors.New("malformed row")
)

// LoadError reports why a dataset file could not be loaded.
// Line is 0 when the failure is not tied to a specific row.
type LoadError struct {
	Path string
	Line int
	Err  error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("load %s: line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadStateTable reads a per-state CSV with at least date, state, cases, deaths columns.
func LoadStateTable(path string) (models.StateTable, error) {
	rows, err := loadFile(path, true)
	if err != nil {
		return nil, err
	}
	return models.StateTable(rows), nil
}

// LoadNationalTable reads a national CSV with at least date, cases, deaths columns.
func LoadNationalTable(path string) (models.NationalTable, error) {
	rows, err := loadFile(path, false)
	if err != nil {
		return nil, err
	}
	return models.NationalTable(rows), nil
}

func loadFile(path string, withState bool) ([]models.DailyRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	rows, err := parse(f, withState)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
			return nil, le
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	return rows, nil
}

// columns maps the required fields to their header positions
type columns struct {
	date, state, cases, deaths int
}

func parse(r io.Reader, withState bool) ([]models.DailyRecord, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &LoadError{Line: 1, Err: fmt.Errorf("%w: empty file, no header", ErrMissingColumn)}
	}
	if err != nil {
		return nil, csvError(err)
	}

	cols, err := locateColumns(header, withState)
	if err != nil {
		return nil, &LoadError{Line: 1, Err: err}
	}

	rows := []models.DailyRecord{}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvError(err)
		}

		line, _ := cr.FieldPos(0)
		rec, err := parseRecord(record, cols, withState)
		if err != nil {
			return nil, &LoadError{Line: line, Err: err}
		}
		rows = append(rows, rec)
	}

	// Chronological order is what makes the last row the running total.
	// Stable keeps source order among rows that share a date.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})

	return rows, nil
}

func locateColumns(header []string, withState bool) (columns, error) {
	cols := columns{date: -1, state: -1, cases: -1, deaths: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))) {
		case "date":
			cols.date = i
		case "state":
			cols.state = i
		case "cases":
			cols.cases = i
		case "deaths":
			cols.deaths = i
		}
	}

	switch {
	case cols.date < 0:
		return columns{}, fmt.Errorf("%w: date", ErrMissingColumn)
	case cols.cases < 0:
		return columns{}, fmt.Errorf("%w: cases", ErrMissingColumn)
	case cols.deaths < 0:
		return columns{}, fmt.Errorf("%w: deaths", ErrMissingColumn)
	case withState && cols.state < 0:
		return columns{}, fmt.Errorf("%w: state", ErrMissingColumn)
	}
	return cols, nil
}

func parseRecord(record []string, cols columns, withState bool) (models.DailyRecord, error) {
	var rec models.DailyRecord

	date, err := time.Parse(models.DateLayout, strings.TrimSpace(record[cols.date]))
	if err != nil {
		return rec, fmt.Errorf("%w: date %q", ErrMalformedRow, record[cols.date])
	}
	rec.Date = date

	if rec.Cases, err = parseCount(record[cols.cases]); err != nil {
		return rec, fmt.Errorf("%w: cases: %v", ErrMalformedRow, err)
	}
	if rec.Deaths, err = parseCount(record[cols.deaths]); err != nil {
		return rec, fmt.Errorf("%w: deaths: %v", ErrMalformedRow, err)
	}

	if withState {
		rec.State = record[cols.state]
		if strings.TrimSpace(rec.State) == "" {
			return rec, fmt.Errorf("%w: empty state", ErrMalformedRow)
		}
	}

	return rec, nil
}

func parseCount(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count: %d", n)
	}
	return n, nil
}

func csvError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &LoadError{Line: pe.Line, Err: fmt.Errorf("%w: %v", ErrMalformedRow, pe.Err)}
	}
	return err
}
