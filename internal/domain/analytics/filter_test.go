package analytics

import (
	"testing"

	"github.com/oculareg/oculareg/internal/platform/errs"
)

func TestNormalizeFilterEmptyIsAbsent(t *testing.T) {
	f, err := NormalizeFilter(RawFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Diagnosis != nil || f.MinAge != nil || f.MaxAge != nil || f.StartDate != nil || f.EndDate != nil {
		t.Fatalf("expected all fields absent, got %+v", f)
	}
}

func TestNormalizeFilterFull(t *testing.T) {
	f, err := NormalizeFilter(RawFilter{
		Diagnosis: "wet AMD",
		MinAge:    "50",
		MaxAge:    "80",
		StartDate: "2024-01-01",
		EndDate:   "2024-12-31",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Diagnosis == nil || *f.Diagnosis != "wet AMD" {
		t.Errorf("diagnosis not preserved verbatim: %v", f.Diagnosis)
	}
	if f.MinAge == nil || *f.MinAge != 50 {
		t.Errorf("min_age = %v, want 50", f.MinAge)
	}
	if f.MaxAge == nil || *f.MaxAge != 80 {
		t.Errorf("max_age = %v, want 80", f.MaxAge)
	}
	if f.StartDate == nil || f.StartDate.String() != "2024-01-01" {
		t.Errorf("start_date = %v, want 2024-01-01", f.StartDate)
	}
	if f.EndDate == nil || f.EndDate.String() != "2024-12-31" {
		t.Errorf("end_date = %v, want 2024-12-31", f.EndDate)
	}
}

func TestNormalizeFilterRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		raw  RawFilter
	}{
		{"non-numeric min_age", RawFilter{MinAge: "abc"}},
		{"non-numeric max_age", RawFilter{MaxAge: "7.5"}},
		{"malformed start_date", RawFilter{StartDate: "01/02/2024"}},
		{"malformed end_date", RawFilter{EndDate: "2024-13-40"}},
		{"inverted age range", RawFilter{MinAge: "80", MaxAge: "50"}},
		{"inverted date range", RawFilter{StartDate: "2024-06-01", EndDate: "2024-01-01"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NormalizeFilter(tc.raw)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errs.IsValidation(err) {
				t.Fatalf("expected validation error, got %T: %v", err, err)
			}
		})
	}
}

func TestNormalizeFilterEqualBoundsAllowed(t *testing.T) {
	f, err := NormalizeFilter(RawFilter{MinAge: "65", MaxAge: "65", StartDate: "2024-03-01", EndDate: "2024-03-01"})
	if err != nil {
		t.Fatalf("equal bounds should be accepted: %v", err)
	}
	if *f.MinAge != 65 || *f.MaxAge != 65 {
		t.Errorf("ages = %d-%d, want 65-65", *f.MinAge, *f.MaxAge)
	}
}

func TestFilterDescription(t *testing.T) {
	cases := []struct {
		name string
		raw  RawFilter
		want string
	}{
		{"empty", RawFilter{}, "Diagnosis: All, Age: NA-NA, Date: NA-NA"},
		{
			"full",
			RawFilter{Diagnosis: "DME", MinAge: "50", MaxAge: "80", StartDate: "2024-01-01", EndDate: "2024-12-31"},
			"Diagnosis: DME, Age: 50-80, Date: 2024-01-01-2024-12-31",
		},
		{"diagnosis only", RawFilter{Diagnosis: "RVO"}, "Diagnosis: RVO, Age: NA-NA, Date: NA-NA"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := NormalizeFilter(tc.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := f.Description(); got != tc.want {
				t.Errorf("Description() = %q, want %q", got, tc.want)
			}
		})
	}
}
