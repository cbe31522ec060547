package visit

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oculareg/oculareg/internal/platform/errs"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const visitCols = `id, patient_id, visit_date, bcva, injections, irf, srf,
	hard_exudates, hrf, molecule, regimen, created_at`

func (r *repoPG) Create(ctx context.Context, v *Visit) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO visits (patient_id, visit_date, bcva, injections, irf, srf,
			hard_exudates, hrf, molecule, regimen)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`,
		v.PatientID, v.VisitDate, v.BCVA, v.Injections, v.IRF, v.SRF,
		v.HardExudates, v.HRF, v.Molecule, v.Regimen,
	).Scan(&v.ID, &v.CreatedAt)
	return errs.Query("insert visit", err)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Visit, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+visitCols+` FROM visits WHERE id = $1`, id)
	v, err := scanVisit(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, errs.Query("select visit", err)
	}
	return v, nil
}

// ListByPatient returns every visit for the patient in date order.
func (r *repoPG) ListByPatient(ctx context.Context, patientID int64) ([]*Visit, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+visitCols+` FROM visits WHERE patient_id = $1 ORDER BY visit_date`,
		patientID)
	if err != nil {
		return nil, errs.Query("select visits", err)
	}
	defer rows.Close()

	var visits []*Visit
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, errs.Query("scan visit", err)
		}
		visits = append(visits, v)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Query("iterate visits", err)
	}
	return visits, nil
}

func scanVisit(row pgx.Row) (*Visit, error) {
	var v Visit
	err := row.Scan(&v.ID, &v.PatientID, &v.VisitDate, &v.BCVA, &v.Injections,
		&v.IRF, &v.SRF, &v.HardExudates, &v.HRF, &v.Molecule, &v.Regimen, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
