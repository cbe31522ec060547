package analytics

import "context"

// Service shapes repository output into the stable response forms the
// dashboard and export consume.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) BCVASeries(ctx context.Context, f FilterSpec) ([]SeriesPoint, error) {
	points, err := s.repo.BCVASeries(ctx, f)
	if err != nil {
		return nil, err
	}
	if points == nil {
		points = []SeriesPoint{}
	}
	return points, nil
}

func (s *Service) InjectionAverages(ctx context.Context, f FilterSpec) ([]InjectionGroup, error) {
	groups, err := s.repo.InjectionAverages(ctx, f)
	if err != nil {
		return nil, err
	}
	if groups == nil {
		groups = []InjectionGroup{}
	}
	return groups, nil
}

// FluidCounts always returns exactly two records, IRF then SRF. Zero
// matching visits yields zero counts, never null.
func (s *Service) FluidCounts(ctx context.Context, f FilterSpec) ([]CountRecord, error) {
	c, err := s.repo.FluidCounts(ctx, f)
	if err != nil {
		return nil, err
	}
	return []CountRecord{
		{Type: "IRF", Count: c.First},
		{Type: "SRF", Count: c.Second},
	}, nil
}

// LesionCounts always returns exactly two records, Hard Exudates then HRF.
func (s *Service) LesionCounts(ctx context.Context, f FilterSpec) ([]CountRecord, error) {
	c, err := s.repo.LesionCounts(ctx, f)
	if err != nil {
		return nil, err
	}
	return []CountRecord{
		{Type: "Hard Exudates", Count: c.First},
		{Type: "HRF", Count: c.Second},
	}, nil
}

func (s *Service) ExportRows(ctx context.Context, f FilterSpec) ([]ExportRow, error) {
	return s.repo.ExportRows(ctx, f)
}
