package visit

import (
	"time"

	"github.com/oculareg/oculareg/pkg/civil"
)

// Visit maps to the visits table. Each row is one clinic visit with the
// visual acuity score, injection count, and fluid/lesion findings
// recorded that day.
type Visit struct {
	ID           int64      `db:"id" json:"id"`
	PatientID    int64      `db:"patient_id" json:"patient_id"`
	VisitDate    civil.Date `db:"visit_date" json:"visit_date"`
	BCVA         float64    `db:"bcva" json:"bcva"`
	Injections   int        `db:"injections" json:"injections"`
	IRF          bool       `db:"irf" json:"irf"`
	SRF          bool       `db:"srf" json:"srf"`
	HardExudates bool       `db:"hard_exudates" json:"hard_exudates"`
	HRF          bool       `db:"hrf" json:"hrf"`
	Molecule     string     `db:"molecule" json:"molecule"`
	Regimen      string     `db:"regimen" json:"regimen"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}
