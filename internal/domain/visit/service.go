package visit

import (
	"context"

	"github.com/oculareg/oculareg/internal/platform/errs"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateVisit validates and stores a visit. Visits are append-only:
// there is no update or delete path.
func (s *Service) CreateVisit(ctx context.Context, v *Visit) error {
	if v.PatientID <= 0 {
		return errs.Validationf("patient_id", "is required")
	}
	if v.VisitDate.IsZero() {
		return errs.Validationf("visit_date", "is required")
	}
	if v.Injections < 0 {
		return errs.Validationf("injections", "must be non-negative, got %d", v.Injections)
	}
	return s.repo.Create(ctx, v)
}

func (s *Service) GetVisit(ctx context.Context, id int64) (*Visit, error) {
	return s.repo.GetByID(ctx, id)
}

// ListVisitsByPatient returns every visit recorded for the patient.
func (s *Service) ListVisitsByPatient(ctx context.Context, patientID int64) ([]*Visit, error) {
	return s.repo.ListByPatient(ctx, patientID)
}
