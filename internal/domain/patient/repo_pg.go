package patient

import (
	"context"
	"errors"
	"fmt"

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

const patientCols = `id, age, gender, diagnosis, co_morbidities, medications, created_at`

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO patients (age, gender, diagnosis, co_morbidities, medications)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		p.Age, p.Gender, p.Diagnosis, p.CoMorbidities, p.Medications,
	).Scan(&p.ID, &p.CreatedAt)
	return errs.Query("insert patient", err)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Patient, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+patientCols+` FROM patients WHERE id = $1`, id)
	p, err := scanPatient(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, errs.Query("select patient", err)
	}
	return p, nil
}

// List returns every patient record; the listing endpoint is unbounded.
func (r *repoPG) List(ctx context.Context) ([]*Patient, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+patientCols+` FROM patients ORDER BY id`)
	if err != nil {
		return nil, errs.Query("select patients", err)
	}
	defer rows.Close()
	return collectPatients(rows)
}

func (r *repoPG) Filter(ctx context.Context, f Filter) ([]*Patient, error) {
	where := ""
	args := []interface{}{}
	idx := 1

	if f.Diagnosis != nil {
		where += fmt.Sprintf(" AND diagnosis = $%d", idx)
		args = append(args, *f.Diagnosis)
		idx++
	}
	if f.MinAge != nil {
		where += fmt.Sprintf(" AND age >= $%d", idx)
		args = append(args, *f.MinAge)
		idx++
	}
	if f.MaxAge != nil {
		where += fmt.Sprintf(" AND age <= $%d", idx)
		args = append(args, *f.MaxAge)
		idx++
	}

	sql := `SELECT ` + patientCols + ` FROM patients WHERE 1=1` + where + ` ORDER BY id`
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, errs.Query("select patients", err)
	}
	defer rows.Close()
	return collectPatients(rows)
}

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.Age, &p.Gender, &p.Diagnosis, &p.CoMorbidities, &p.Medications, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectPatients(rows pgx.Rows) ([]*Patient, error) {
	var patients []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, errs.Query("scan patient", err)
		}
		patients = append(patients, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Query("iterate patients", err)
	}
	return patients, nil
}
