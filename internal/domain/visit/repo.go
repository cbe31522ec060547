package visit

import "context"

type Repository interface {
	Create(ctx context.Context, v *Visit) error
	GetByID(ctx context.Context, id int64) (*Visit, error)
	ListByPatient(ctx context.Context, patientID int64) ([]*Visit, error)
}
