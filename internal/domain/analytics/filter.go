package analytics

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/oculareg/oculareg/internal/platform/errs"
	"github.com/oculareg/oculareg/pkg/civil"
)

// RawFilter carries the filter fields exactly as supplied by the caller.
type RawFilter struct {
	Diagnosis string
	MinAge    string
	MaxAge    string
	StartDate string
	EndDate   string
}

// FilterSpec is the normalized form shared by every analytics query and
// the PDF export. A nil field applies no constraint; there are no
// sentinel values. Diagnosis is kept verbatim so it matches stored
// values exactly.
type FilterSpec struct {
	Diagnosis *string
	MinAge    *int
	MaxAge    *int
	StartDate *civil.Date
	EndDate   *civil.Date
}

// NormalizeFilter converts raw inputs into a FilterSpec. Empty strings
// become absent fields. Values that do not parse as their declared type,
// and inverted ranges, are rejected before any query runs.
func NormalizeFilter(raw RawFilter) (FilterSpec, error) {
	var f FilterSpec

	if raw.Diagnosis != "" {
		d := raw.Diagnosis
		f.Diagnosis = &d
	}
	if raw.MinAge != "" {
		n, err := strconv.Atoi(raw.MinAge)
		if err != nil {
			return FilterSpec{}, errs.Validationf("min_age", "must be an integer, got %q", raw.MinAge)
		}
		f.MinAge = &n
	}
	if raw.MaxAge != "" {
		n, err := strconv.Atoi(raw.MaxAge)
		if err != nil {
			return FilterSpec{}, errs.Validationf("max_age", "must be an integer, got %q", raw.MaxAge)
		}
		f.MaxAge = &n
	}
	if raw.StartDate != "" {
		d, err := civil.ParseDate(raw.StartDate)
		if err != nil {
			return FilterSpec{}, errs.Validationf("start_date", "%v", err)
		}
		f.StartDate = &d
	}
	if raw.EndDate != "" {
		d, err := civil.ParseDate(raw.EndDate)
		if err != nil {
			return FilterSpec{}, errs.Validationf("end_date", "%v", err)
		}
		f.EndDate = &d
	}

	if f.MinAge != nil && f.MaxAge != nil && *f.MinAge > *f.MaxAge {
		return FilterSpec{}, errs.Validationf("min_age", "must not exceed max_age (%d > %d)", *f.MinAge, *f.MaxAge)
	}
	if f.StartDate != nil && f.EndDate != nil && f.StartDate.After(*f.EndDate) {
		return FilterSpec{}, errs.Validationf("start_date", "must not be after end_date (%s > %s)", f.StartDate, f.EndDate)
	}

	return f, nil
}

// FilterFromContext normalizes the standard filter query parameters of
// an analytics or export request.
func FilterFromContext(c echo.Context) (FilterSpec, error) {
	return NormalizeFilter(RawFilter{
		Diagnosis: c.QueryParam("diagnosis"),
		MinAge:    c.QueryParam("min_age"),
		MaxAge:    c.QueryParam("max_age"),
		StartDate: c.QueryParam("start_date"),
		EndDate:   c.QueryParam("end_date"),
	})
}

// Description renders the filter for display on the exported report.
func (f FilterSpec) Description() string {
	orElse := func(s, fallback string) string {
		if s == "" {
			return fallback
		}
		return s
	}

	diagnosis := "All"
	if f.Diagnosis != nil {
		diagnosis = *f.Diagnosis
	}
	minAge, maxAge := "NA", "NA"
	if f.MinAge != nil {
		minAge = strconv.Itoa(*f.MinAge)
	}
	if f.MaxAge != nil {
		maxAge = strconv.Itoa(*f.MaxAge)
	}
	start, end := "", ""
	if f.StartDate != nil {
		start = f.StartDate.String()
	}
	if f.EndDate != nil {
		end = f.EndDate.String()
	}

	return fmt.Sprintf("Diagnosis: %s, Age: %s-%s, Date: %s-%s",
		diagnosis, minAge, maxAge, orElse(start, "NA"), orElse(end, "NA"))
}
