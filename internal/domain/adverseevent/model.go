package adverseevent

import (
	"time"

	"github.com/oculareg/oculareg/pkg/civil"
)

// AdverseEvent maps to the adverse_events table.
type AdverseEvent struct {
	ID           int64      `db:"id" json:"id"`
	PatientID    int64      `db:"patient_id" json:"patient_id"`
	VisitID      int64      `db:"visit_id" json:"visit_id"`
	Description  string     `db:"description" json:"description"`
	Severity     string     `db:"severity" json:"severity"`
	DateReported civil.Date `db:"date_reported" json:"date_reported"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}
