package adverseevent

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oculareg/oculareg/internal/platform/errs"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const eventCols = `id, patient_id, visit_id, description, severity, date_reported, created_at`

func (r *repoPG) Create(ctx context.Context, ev *AdverseEvent) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO adverse_events (patient_id, visit_id, description, severity, date_reported)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		ev.PatientID, ev.VisitID, ev.Description, ev.Severity, ev.DateReported,
	).Scan(&ev.ID, &ev.CreatedAt)
	return errs.Query("insert adverse event", err)
}

// ListByPatient returns every adverse event recorded for the patient.
func (r *repoPG) ListByPatient(ctx context.Context, patientID int64) ([]*AdverseEvent, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+eventCols+` FROM adverse_events WHERE patient_id = $1 ORDER BY date_reported`,
		patientID)
	if err != nil {
		return nil, errs.Query("select adverse events", err)
	}
	defer rows.Close()

	var events []*AdverseEvent
	for rows.Next() {
		var ev AdverseEvent
		if err := rows.Scan(&ev.ID, &ev.PatientID, &ev.VisitID, &ev.Description,
			&ev.Severity, &ev.DateReported, &ev.CreatedAt); err != nil {
			return nil, errs.Query("scan adverse event", err)
		}
		events = append(events, &ev)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Query("iterate adverse events", err)
	}
	return events, nil
}
