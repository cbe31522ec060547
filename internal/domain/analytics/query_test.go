package analytics

import (
	"strings"
	"testing"

	"github.com/oculareg/oculareg/pkg/civil"
)

func ptrStr(s string) *string { return &s }
func ptrInt(n int) *int       { return &n }
func ptrDate(s string) *civil.Date {
	d, err := civil.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return &d
}

func TestBuildQueryNoFilter(t *testing.T) {
	sql, args := BuildQuery(MetricBCVASeries, FilterSpec{})
	if len(args) != 0 {
		t.Fatalf("expected no bound args, got %v", args)
	}
	if strings.Contains(sql, " AND ") {
		t.Errorf("unfiltered query must carry no predicates: %s", sql)
	}
	if !strings.Contains(sql, "WHERE 1=1") {
		t.Errorf("missing base where clause: %s", sql)
	}
	if !strings.Contains(sql, "ORDER BY v.visit_date") {
		t.Errorf("series must be date ordered: %s", sql)
	}
}

func TestBuildQueryAllFilters(t *testing.T) {
	f := FilterSpec{
		Diagnosis: ptrStr("wet AMD"),
		MinAge:    ptrInt(50),
		MaxAge:    ptrInt(80),
		StartDate: ptrDate("2024-01-01"),
		EndDate:   ptrDate("2024-12-31"),
	}
	sql, args := BuildQuery(MetricBCVASeries, f)

	wantClauses := []string{
		"p.diagnosis = $1",
		"p.age >= $2",
		"p.age <= $3",
		"v.visit_date >= $4",
		"v.visit_date <= $5",
	}
	for _, c := range wantClauses {
		if !strings.Contains(sql, c) {
			t.Errorf("missing clause %q in %s", c, sql)
		}
	}
	if len(args) != 5 {
		t.Fatalf("expected 5 bound args, got %d: %v", len(args), args)
	}
	if args[0] != "wet AMD" || args[1] != 50 || args[2] != 80 {
		t.Errorf("unexpected arg order: %v", args)
	}
}

func TestBuildQueryPartialFilterReindexes(t *testing.T) {
	// Only max_age and end_date present: indexes must run $1, $2 with no
	// gaps regardless of which fields are absent.
	f := FilterSpec{MaxAge: ptrInt(70), EndDate: ptrDate("2024-06-30")}
	sql, args := BuildQuery(MetricFluidCounts, f)

	if !strings.Contains(sql, "p.age <= $1") {
		t.Errorf("expected max_age bound to $1: %s", sql)
	}
	if !strings.Contains(sql, "v.visit_date <= $2") {
		t.Errorf("expected end_date bound to $2: %s", sql)
	}
	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %v", args)
	}
}

func TestBuildQueryMetricShapes(t *testing.T) {
	cases := []struct {
		metric Metric
		want   []string
	}{
		{MetricBCVASeries, []string{"SELECT v.visit_date, v.bcva", "ORDER BY v.visit_date"}},
		{MetricInjectionAverage, []string{"AVG(v.bcva)", "GROUP BY v.injections", "ORDER BY v.injections"}},
		{MetricFluidCounts, []string{"CASE WHEN v.irf THEN 1", "CASE WHEN v.srf THEN 1", "COALESCE"}},
		{MetricLesionCounts, []string{"CASE WHEN v.hard_exudates THEN 1", "CASE WHEN v.hrf THEN 1", "COALESCE"}},
		{MetricExportRows, []string{"v.visit_date, v.bcva, v.injections, p.age, p.diagnosis", "ORDER BY v.visit_date"}},
	}
	for _, tc := range cases {
		t.Run(tc.metric.String(), func(t *testing.T) {
			sql, _ := BuildQuery(tc.metric, FilterSpec{})
			for _, w := range tc.want {
				if !strings.Contains(sql, w) {
					t.Errorf("missing %q in %s", w, sql)
				}
			}
			if !strings.Contains(sql, "JOIN patients p ON v.patient_id = p.id") {
				t.Errorf("every metric runs over the visits/patients join: %s", sql)
			}
		})
	}
}

func TestBuildQueryFilterIdenticalAcrossMetrics(t *testing.T) {
	// The same filter must translate to the same predicates and args no
	// matter which metric runs over it.
	f := FilterSpec{Diagnosis: ptrStr("DME"), MinAge: ptrInt(60)}
	baseSQL, baseArgs := BuildQuery(MetricBCVASeries, f)
	baseWhere := baseSQL[strings.Index(baseSQL, "WHERE 1=1"):]
	baseWhere = strings.SplitN(baseWhere, " ORDER BY", 2)[0]

	for _, m := range []Metric{MetricInjectionAverage, MetricFluidCounts, MetricLesionCounts, MetricExportRows} {
		sql, args := BuildQuery(m, f)
		if !strings.Contains(sql, baseWhere) {
			t.Errorf("%s: where clause differs, want %q in %s", m, baseWhere, sql)
		}
		if len(args) != len(baseArgs) {
			t.Errorf("%s: arg count %d, want %d", m, len(args), len(baseArgs))
		}
	}
}
