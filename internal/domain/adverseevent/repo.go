package adverseevent

import "context"

type Repository interface {
	Create(ctx context.Context, ev *AdverseEvent) error
	ListByPatient(ctx context.Context, patientID int64) ([]*AdverseEvent, error)
}
