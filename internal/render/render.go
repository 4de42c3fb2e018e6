// Package render projects ensemble reports into the canonical tabular
// form consumed by CSV output and display layers.
package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/heliostack/dcsim/internal/ensemble"
)

// Columns is the canonical raw-table column order. Every rendered table
// (raw, best row, Pareto) uses it.
var Columns = []string{
	"timestamp",
	"latitude",
	"longitude",
	"system_spec",
	"solar_capacity_mw",
	"storage_power_mw",
	"generator_capacity_mw",
	"levelized_cost",
	"renewable_fraction",
	"status",
}

const timestampLayout = "2006-01-02 15:04:05"

// RawTable renders the result table with header, honoring the report's
// row limit. Row order is table order; rendering never reorders.
func RawTable(report *ensemble.Report) [][]string {
	rows := report.Rows()
	out := make([][]string, 0, len(rows)+1)
	out = append(out, Columns)
	for _, res := range rows {
		out = append(out, row(report.GeneratedAt, res))
	}
	return out
}

// BestRow renders the single best case with header, or nil when the run
// produced no successful case.
func BestRow(report *ensemble.Report) [][]string {
	if report.Best == nil {
		return nil
	}
	return [][]string{Columns, row(report.GeneratedAt, *report.Best)}
}

// ParetoTable renders the frontier with header, in ascending cost order.
func ParetoTable(report *ensemble.Report) [][]string {
	out := make([][]string, 0, len(report.Pareto)+1)
	out = append(out, Columns)
	for _, p := range report.Pareto {
		out = append(out, row(report.GeneratedAt, p.Result))
	}
	return out
}

// WriteCSV writes a rendered table as CSV.
func WriteCSV(w io.Writer, table [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(table); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// row projects one result into the canonical column order. Objective
// fields render empty unless the case succeeded.
func row(ts time.Time, res ensemble.EvaluationResult) []string {
	spec, cost, renewable := "", "", ""
	if res.Succeeded() {
		spec = res.SystemSpec
		cost = strconv.FormatFloat(res.LevelizedCost, 'f', 4, 64)
		renewable = strconv.FormatFloat(res.RenewableFraction, 'f', 6, 64)
	}
	return []string{
		ts.Format(timestampLayout),
		strconv.FormatFloat(res.Latitude, 'f', -1, 64),
		strconv.FormatFloat(res.Longitude, 'f', -1, 64),
		spec,
		strconv.Itoa(res.SolarCapacityMW),
		strconv.Itoa(res.StoragePowerMW),
		strconv.Itoa(res.GeneratorCapacityMW),
		cost,
		renewable,
		string(res.Status),
	}
}
