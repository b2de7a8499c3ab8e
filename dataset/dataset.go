// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dataset

import (
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/covid-charts/models"
	"github.com/danielhkuo/covid-charts/timeseries"
)

// Dataset holds both tables and the derived state index.
// It is read-only after construction and safe for concurrent use.
type Dataset struct {
	national models.NationalTable
	states   models.StateTable
	index    []string
}

// New wraps already-loaded tables. The caller must not modify them afterwards.
func New(national models.NationalTable, states models.StateTable) *Dataset {
	return &Dataset{
		national: national,
		states:   states,
		index:    timeseries.ListStates(states),
	}
}

// Load reads both files in parallel. Either failure fails the whole load.
func Load(nationalPath, statesPath string) (*Dataset, error) {
	var (
		national models.NationalTable
		states   models.StateTable
		g        errgroup.Group
	)

	start := time.Now()

	g.Go(func() error {
		t, err := LoadNationalTable(nationalPath)
		if err != nil {
			return err
		}
		national = t
		return nil
	})
	g.Go(func() error {
		t, err := LoadStateTable(statesPath)
		if err != nil {
			return err
		}
		states = t
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	d := New(national, states)
	slog.Info("dataset loaded",
		"national_rows", len(national),
		"state_rows", len(states),
		"states", len(d.index),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return d, nil
}

func (d *Dataset) National() models.NationalTable {
	return d.national
}

func (d *Dataset) States() models.StateTable {
	return d.states
}

// StateNames returns a copy of the sorted state index
func (d *Dataset) StateNames() []string {
	names := make([]string, len(d.index))
	copy(names, d.index)
	return names
}

// HasState reports whether name appears in the state index (exact match)
func (d *Dataset) HasState(name string) bool {
	i := sort.SearchStrings(d.index, name)
	return i < len(d.index) && d.index[i] == name
}
