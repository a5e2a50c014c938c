// Package indec parses INDEC-style CSV series exports into the index tables
// the dashboard dataset carries (inflation index, exchange rate). It is an
// offline preparation helper: the engine itself only ever reads the tables
// already embedded in the dataset.
package indec

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mrassano/veedor"
	"github.com/mrassano/veedor/month"
)

// Series holds the data from an INDEC series CSV file.
type Series struct {
	Label  string
	IDBank string
	Values *veedor.IndexTable
}

// ParseSeries reads the semicolon-separated INDEC export format:
// two header lines (label, series id), then one "YYYY-MM;value" row per
// month. Empty value cells are skipped; the series can be sparse.
func ParseSeries(r io.Reader) (*Series, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) < 3 {
		return nil, fmt.Errorf("not enough records in csv to parse series")
	}

	series := &Series{Values: &veedor.IndexTable{}}
	if len(records[0]) > 1 {
		series.Label = records[0][1]
	}
	if len(records[1]) > 1 {
		series.IDBank = records[1][1]
	}

	for i := 2; i < len(records); i++ {
		row := records[i]
		if len(row) < 2 || strings.TrimSpace(row[1]) == "" {
			continue
		}
		on, err := parseMonth(row[0])
		if err != nil {
			return nil, err
		}
		val, err := strconv.ParseFloat(normalizeDecimal(row[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse value %q for month %q: %w", row[1], row[0], err)
		}
		if val <= 0 {
			return nil, fmt.Errorf("non-positive index value %v at %s", val, on)
		}
		series.Values.Append(on, val)
	}
	return series, nil
}

// parseMonth accepts the "YYYY-MM" form used by monthly exports.
func parseMonth(s string) (month.Month, error) {
	on, err := month.Parse(strings.TrimSpace(s))
	if err != nil {
		return month.Month{}, fmt.Errorf("unrecognized indec month: %w", err)
	}
	return on, nil
}

// normalizeDecimal turns the locale comma separator into a dot.
func normalizeDecimal(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
}
