package patient

import "time"

// Patient maps to the patients table. This is the canonical schema:
// baseline clinical observations (BCVA, fluid flags) are recorded on
// visits, never on the patient row.
type Patient struct {
	ID            int64     `db:"id" json:"id"`
	Age           int       `db:"age" json:"age"`
	Gender        string    `db:"gender" json:"gender"`
	Diagnosis     string    `db:"diagnosis" json:"diagnosis"`
	CoMorbidities string    `db:"co_morbidities" json:"co_morbidities"`
	Medications   string    `db:"medications" json:"medications"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// Filter restricts a patient listing. Nil fields apply no constraint.
type Filter struct {
	Diagnosis *string
	MinAge    *int
	MaxAge    *int
}
