package analytics

import "fmt"

// Metric selects which projection or aggregation a query applies over
// the visits/patients join.
type Metric int

const (
	MetricBCVASeries Metric = iota
	MetricInjectionAverage
	MetricFluidCounts
	MetricLesionCounts
	MetricExportRows
)

func (m Metric) String() string {
	switch m {
	case MetricBCVASeries:
		return "bcva_series"
	case MetricInjectionAverage:
		return "injection_average"
	case MetricFluidCounts:
		return "fluid_counts"
	case MetricLesionCounts:
		return "lesion_counts"
	case MetricExportRows:
		return "export_rows"
	default:
		return "unknown"
	}
}

// visitQuery accumulates conjunctive predicates over the joined
// visits/patients tables, tracking positional parameter indexes so every
// filter value is bound rather than interpolated.
type visitQuery struct {
	where string
	args  []interface{}
	idx   int
}

func newVisitQuery() *visitQuery {
	return &visitQuery{idx: 1}
}

func (q *visitQuery) add(clause string, arg interface{}) {
	q.where += fmt.Sprintf(" AND "+clause, q.idx)
	q.args = append(q.args, arg)
	q.idx++
}

func (q *visitQuery) applyFilter(f FilterSpec) {
	if f.Diagnosis != nil {
		q.add("p.diagnosis = $%d", *f.Diagnosis)
	}
	if f.MinAge != nil {
		q.add("p.age >= $%d", *f.MinAge)
	}
	if f.MaxAge != nil {
		q.add("p.age <= $%d", *f.MaxAge)
	}
	if f.StartDate != nil {
		q.add("v.visit_date >= $%d", *f.StartDate)
	}
	if f.EndDate != nil {
		q.add("v.visit_date <= $%d", *f.EndDate)
	}
}

const joinClause = `FROM visits v JOIN patients p ON v.patient_id = p.id WHERE 1=1`

// BuildQuery constructs the single parameterized statement for a metric
// under a filter. Every present filter field contributes exactly one
// comparison; absent fields contribute nothing.
func BuildQuery(m Metric, f FilterSpec) (string, []interface{}) {
	q := newVisitQuery()
	q.applyFilter(f)

	var sql string
	switch m {
	case MetricBCVASeries:
		sql = `SELECT v.visit_date, v.bcva ` + joinClause + q.where +
			` ORDER BY v.visit_date`
	case MetricInjectionAverage:
		sql = `SELECT v.injections, AVG(v.bcva) ` + joinClause + q.where +
			` GROUP BY v.injections ORDER BY v.injections`
	case MetricFluidCounts:
		sql = `SELECT COALESCE(SUM(CASE WHEN v.irf THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN v.srf THEN 1 ELSE 0 END), 0) ` + joinClause + q.where
	case MetricLesionCounts:
		sql = `SELECT COALESCE(SUM(CASE WHEN v.hard_exudates THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN v.hrf THEN 1 ELSE 0 END), 0) ` + joinClause + q.where
	case MetricExportRows:
		// Ordering added for deterministic exports; the dashboard series
		// over the same join orders the same way.
		sql = `SELECT v.visit_date, v.bcva, v.injections, p.age, p.diagnosis ` + joinClause + q.where +
			` ORDER BY v.visit_date`
	}

	return sql, q.args
}
