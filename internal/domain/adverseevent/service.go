package adverseevent

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

func (s *Service) CreateAdverseEvent(ctx context.Context, ev *AdverseEvent) error {
	if ev.PatientID <= 0 {
		return errs.Validationf("patient_id", "is required")
	}
	if ev.VisitID <= 0 {
		return errs.Validationf("visit_id", "is required")
	}
	if ev.Description == "" {
		return errs.Validationf("description", "is required")
	}
	if ev.DateReported.IsZero() {
		return errs.Validationf("date_reported", "is required")
	}
	return s.repo.Create(ctx, ev)
}

// ListByPatient returns every adverse event recorded for the patient.
func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*AdverseEvent, error) {
	return s.repo.ListByPatient(ctx, patientID)
}
