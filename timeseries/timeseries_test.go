// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package timeseries

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/danielhkuo/covid-charts/models"
)

func day(s string) time.Time {
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func stateRow(state, date string, cases, deaths int64) models.DailyRecord {
	return models.DailyRecord{Date: day(date), State: state, Cases: cases, Deaths: deaths}
}

func sampleStateTable() models.StateTable {
	return models.StateTable{
		stateRow("Washington", "2020-01-21", 1, 0),
		stateRow("Washington", "2020-01-22", 1, 0),
		stateRow("Illinois", "2020-01-24", 1, 0),
		stateRow("Washington", "2020-01-24", 1, 0),
		stateRow("California", "2020-01-25", 1, 0),
		stateRow("Illinois", "2020-01-25", 1, 0),
		stateRow("Washington", "2020-01-25", 1, 0),
		stateRow("California", "2020-01-26", 2, 0),
		stateRow("Washington", "2020-03-01", 18, 6),
	}
}

func TestListStates(t *testing.T) {
	tests := []struct {
		name     string
		table    models.StateTable
		expected []string
	}{
		{
			name: "duplicates collapsed and sorted",
			table: models.StateTable{
				stateRow("Texas", "2020-03-01", 1, 0),
				stateRow("Alabama", "2020-03-01", 1, 0),
				stateRow("Texas", "2020-03-02", 2, 0),
			},
			expected: []string{"Alabama", "Texas"},
		},
		{
			name:     "empty table",
			table:    models.StateTable{},
			expected: []string{},
		},
		{
			name:     "nil table",
			table:    nil,
			expected: []string{},
		},
		{
			name: "empty state name skipped",
			table: models.StateTable{
				stateRow("", "2020-03-01", 1, 0),
				stateRow("Ohio", "2020-03-01", 1, 0),
			},
			expected: []string{"Ohio"},
		},
		{
			name: "ordinal ordering is case-sensitive",
			table: models.StateTable{
				stateRow("alaska", "2020-03-01", 1, 0),
				stateRow("Wyoming", "2020-03-01", 1, 0),
				stateRow("Alaska", "2020-03-01", 1, 0),
			},
			expected: []string{"Alaska", "Wyoming", "alaska"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ListStates(tt.table)
			if got == nil {
				t.Fatal("Expected non-nil slice")
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestListStates_OrderIndependent(t *testing.T) {
	table := sampleStateTable()
	expected := ListStates(table)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append(models.StateTable(nil), table...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := ListStates(shuffled)
		if !reflect.DeepEqual(got, expected) {
			t.Fatalf("Permutation %d: expected %v, got %v", i, expected, got)
		}
	}

	// Idempotent
	if again := ListStates(table); !reflect.DeepEqual(again, expected) {
		t.Errorf("Expected repeated call to return %v, got %v", expected, again)
	}
}

func TestRowsForState(t *testing.T) {
	table := sampleStateTable()

	for _, state := range ListStates(table) {
		t.Run(state, func(t *testing.T) {
			rows := RowsForState(table, state)

			want := 0
			for _, rec := range table {
				if rec.State == state {
					want++
				}
			}
			if len(rows) != want {
				t.Errorf("Expected %d rows, got %d", want, len(rows))
			}
			for i, rec := range rows {
				if rec.State != state {
					t.Errorf("Row %d: expected state %q, got %q", i, state, rec.State)
				}
				if i > 0 && rec.Date.Before(rows[i-1].Date) {
					t.Errorf("Row %d: table order not preserved", i)
				}
			}
		})
	}
}

func TestRowsForState_Unknown(t *testing.T) {
	table := sampleStateTable()

	for _, state := range []string{"Atlantis", "washington", "Washington ", ""} {
		rows := RowsForState(table, state)
		if rows == nil {
			t.Fatalf("Expected non-nil slice for %q", state)
		}
		if len(rows) != 0 {
			t.Errorf("Expected no rows for %q, got %d", state, len(rows))
		}
		for _, listed := range ListStates(table) {
			if listed == state {
				t.Errorf("ListStates should not contain %q", state)
			}
		}
	}
}

func TestProject(t *testing.T) {
	rows := []models.DailyRecord{
		{Date: day("2020-01-22"), Cases: 1, Deaths: 0},
		{Date: day("2020-01-23"), Cases: 1, Deaths: 0},
		{Date: day("2020-01-24"), Cases: 2, Deaths: 0},
	}

	series, err := Project(rows, models.MetricCases)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}

	expected := models.ChartSeries{
		{Date: day("2020-01-22"), Count: 1},
		{Date: day("2020-01-23"), Count: 1},
		{Date: day("2020-01-24"), Count: 2},
	}
	if !reflect.DeepEqual(series, expected) {
		t.Errorf("Expected %v, got %v", expected, series)
	}

	total, err := Total(series)
	if err != nil {
		t.Fatalf("Total failed: %v", err)
	}
	if total != 2 {
		t.Errorf("Expected total 2, got %d", total)
	}
}

func TestProject_PreservesLengthAndOrder(t *testing.T) {
	rows := RowsForState(sampleStateTable(), "Washington")

	for _, metric := range []models.Metric{models.MetricCases, models.MetricDeaths} {
		t.Run(string(metric), func(t *testing.T) {
			series, err := Project(rows, metric)
			if err != nil {
				t.Fatalf("Project failed: %v", err)
			}
			if len(series) != len(rows) {
				t.Fatalf("Expected %d points, got %d", len(rows), len(series))
			}
			for i := range rows {
				if !series[i].Date.Equal(rows[i].Date) {
					t.Errorf("Point %d: expected date %v, got %v", i, rows[i].Date, series[i].Date)
				}
			}

			total, err := Total(series)
			if err != nil {
				t.Fatalf("Total failed: %v", err)
			}
			last := rows[len(rows)-1]
			want := last.Cases
			if metric == models.MetricDeaths {
				want = last.Deaths
			}
			if total != want {
				t.Errorf("Expected total %d, got %d", want, total)
			}
		})
	}
}

func TestProject_Errors(t *testing.T) {
	tests := []struct {
		name    string
		records []models.DailyRecord
		metric  models.Metric
		wantErr error
	}{
		{"nil input", nil, models.MetricCases, ErrEmptySeries},
		{"empty input", []models.DailyRecord{}, models.MetricDeaths, ErrEmptySeries},
		{"unknown metric", []models.DailyRecord{{Date: day("2020-01-22"), Cases: 1}}, models.Metric("recovered"), ErrUnknownMetric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series, err := Project(tt.records, tt.metric)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
			if series != nil {
				t.Errorf("Expected nil series, got %v", series)
			}
		})
	}
}

func TestTotal_Empty(t *testing.T) {
	if _, err := Total(nil); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("Expected ErrEmptySeries for nil series, got %v", err)
	}
	if _, err := Total(models.ChartSeries{}); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("Expected ErrEmptySeries for empty series, got %v", err)
	}
}

func TestFormatTotal(t *testing.T) {
	tests := []struct {
		in       int64
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{28999811, "28,999,811"},
	}

	for _, tt := range tests {
		if got := FormatTotal(tt.in); got != tt.expected {
			t.Errorf("FormatTotal(%d): expected %q, got %q", tt.in, tt.expected, got)
		}
	}
}
