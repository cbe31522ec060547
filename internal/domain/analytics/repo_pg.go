package analytics

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

func (r *repoPG) BCVASeries(ctx context.Context, f FilterSpec) ([]SeriesPoint, error) {
	sql, args := BuildQuery(MetricBCVASeries, f)
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, errs.Query("bcva series", err)
	}
	defer rows.Close()

	var points []SeriesPoint
	for rows.Next() {
		var p SeriesPoint
		if err := rows.Scan(&p.Date, &p.BCVA); err != nil {
			return nil, errs.Query("scan bcva series", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Query("iterate bcva series", err)
	}
	return points, nil
}

func (r *repoPG) InjectionAverages(ctx context.Context, f FilterSpec) ([]InjectionGroup, error) {
	sql, args := BuildQuery(MetricInjectionAverage, f)
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, errs.Query("injection averages", err)
	}
	defer rows.Close()

	var groups []InjectionGroup
	for rows.Next() {
		var g InjectionGroup
		if err := rows.Scan(&g.Injections, &g.AvgBCVA); err != nil {
			return nil, errs.Query("scan injection averages", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Query("iterate injection averages", err)
	}
	return groups, nil
}

func (r *repoPG) FluidCounts(ctx context.Context, f FilterSpec) (FlagCounts, error) {
	return r.flagCounts(ctx, MetricFluidCounts, f)
}

func (r *repoPG) LesionCounts(ctx context.Context, f FilterSpec) (FlagCounts, error) {
	return r.flagCounts(ctx, MetricLesionCounts, f)
}

func (r *repoPG) flagCounts(ctx context.Context, m Metric, f FilterSpec) (FlagCounts, error) {
	sql, args := BuildQuery(m, f)
	var c FlagCounts
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&c.First, &c.Second); err != nil {
		return FlagCounts{}, errs.Query(m.String(), err)
	}
	return c, nil
}

func (r *repoPG) ExportRows(ctx context.Context, f FilterSpec) ([]ExportRow, error) {
	sql, args := BuildQuery(MetricExportRows, f)
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, errs.Query("export rows", err)
	}
	defer rows.Close()

	var result []ExportRow
	for rows.Next() {
		var row ExportRow
		if err := rows.Scan(&row.Date, &row.BCVA, &row.Injections, &row.Age, &row.Diagnosis); err != nil {
			return nil, errs.Query("scan export row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Query("iterate export rows", err)
	}
	return result, nil
}
