package patient

import (
	"context"
	"strconv"

	"github.com/oculareg/oculareg/internal/platform/errs"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if p.Age < 0 {
		return errs.Validationf("age", "must be non-negative, got %d", p.Age)
	}
	if p.Gender == "" {
		return errs.Validationf("gender", "is required")
	}
	if p.Diagnosis == "" {
		return errs.Validationf("diagnosis", "is required")
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) GetPatient(ctx context.Context, id int64) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

// ListPatients returns every stored patient record.
func (s *Service) ListPatients(ctx context.Context) ([]*Patient, error) {
	return s.repo.List(ctx)
}

// FilterPatients returns every record matching the filter.
func (s *Service) FilterPatients(ctx context.Context, f Filter) ([]*Patient, error) {
	if f.MinAge != nil && f.MaxAge != nil && *f.MinAge > *f.MaxAge {
		return nil, errs.Validationf("min_age", "must not exceed max_age (%d > %d)", *f.MinAge, *f.MaxAge)
	}
	return s.repo.Filter(ctx, f)
}

// ParseFilter turns raw query parameters into a Filter. Empty strings
// mean "no constraint"; supplied values must parse as their type.
func ParseFilter(diagnosis, minAge, maxAge string) (Filter, error) {
	var f Filter
	if diagnosis != "" {
		f.Diagnosis = &diagnosis
	}
	if minAge != "" {
		n, err := strconv.Atoi(minAge)
		if err != nil {
			return Filter{}, errs.Validationf("min_age", "must be an integer, got %q", minAge)
		}
		f.MinAge = &n
	}
	if maxAge != "" {
		n, err := strconv.Atoi(maxAge)
		if err != nil {
			return Filter{}, errs.Validationf("max_age", "must be an integer, got %q", maxAge)
		}
		f.MaxAge = &n
	}
	return f, nil
}
