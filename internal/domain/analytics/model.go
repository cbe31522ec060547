package analytics

import "github.com/oculareg/oculareg/pkg/civil"

// SeriesPoint is one BCVA measurement on the dashboard time series.
type SeriesPoint struct {
	Date civil.Date `json:"date"`
	BCVA float64    `json:"bcva"`
}

// InjectionGroup is the mean BCVA over all visits with the same
// injection count.
type InjectionGroup struct {
	Injections int     `json:"injections"`
	AvgBCVA    float64 `json:"avg_bcva"`
}

// FlagCounts holds the two counts of a paired boolean-flag aggregation,
// in the order the flags appear in the projection.
type FlagCounts struct {
	First  int
	Second int
}

// CountRecord is one entry of a two-element count response.
type CountRecord struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// ExportRow is one line of the tabular PDF export.
type ExportRow struct {
	Date       civil.Date
	BCVA       float64
	Injections int
	Age        int
	Diagnosis  string
}
