// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/covid-charts/cliparse"
	"github.com/danielhkuo/covid-charts/dataset"
	"github.com/danielhkuo/covid-charts/models"
)

// NationalCSV mirrors the first days of the national dataset
const NationalCSV = `date,cases,deaths
2020-01-21,1,0
2020-01-22,1,0
2020-01-23,1,0
2020-01-24,2,0
2020-03-01,89,2
2020-03-02,106,6
`

// StatesCSV mirrors the first days of the per-state dataset
const StatesCSV = `date,state,fips,cases,deaths
2020-01-21,Washington,53,1,0
2020-01-22,Washington,53,1,0
2020-01-24,Illinois,17,1,0
2020-01-24,Washington,53,1,0
2020-01-25,California,06,1,0
2020-01-25,Illinois,17,1,0
2020-03-01,California,06,33,0
2020-03-01,New York,36,1,0
2020-03-01,Washington,53,18,6
2020-03-02,Washington,53,27,9
`

// Date parses a YYYY-MM-DD date or fails the test
func Date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		t.Fatalf("Invalid test date %q: %v", s, err)
	}
	return d
}

// WriteCSV writes content into a temp dir and returns its path
func WriteCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// SetupTestDataset loads NationalCSV and StatesCSV through the real loader
func SetupTestDataset(t *testing.T) *dataset.Dataset {
	t.Helper()

	data, err := dataset.Load(
		WriteCSV(t, "us.csv", NationalCSV),
		WriteCSV(t, "us-states.csv", StatesCSV),
	)
	if err != nil {
		t.Fatalf("Failed to load test dataset: %v", err)
	}
	return data
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:             3318,
		NationalDataPath: "testdata/us.csv",
		StatesDataPath:   "testdata/us-states.csv",
		LogLevel:         "info",
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, headers map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
