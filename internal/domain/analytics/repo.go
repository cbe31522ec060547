package analytics

import "context"

// Repository executes the metric queries. All methods are read-only.
type Repository interface {
	BCVASeries(ctx context.Context, f FilterSpec) ([]SeriesPoint, error)
	InjectionAverages(ctx context.Context, f FilterSpec) ([]InjectionGroup, error)
	FluidCounts(ctx context.Context, f FilterSpec) (FlagCounts, error)
	LesionCounts(ctx context.Context, f FilterSpec) (FlagCounts, error)
	ExportRows(ctx context.Context, f FilterSpec) ([]ExportRow, error)
}
