package usecase

import (
	"context"
	"time"

	"sais/domain"
	"sais/metrics"
	"sais/services/registry/export"

	"golang.org/x/sync/errgroup"
)

type reportUseCase struct {
	repo    domain.ReportRepo
	metrics *metrics.Metrics
	now     func() time.Time
	TimeOut time.Duration
}

func NewReportUseCase(repo domain.ReportRepo, m *metrics.Metrics, to time.Duration) domain.ReportUseCase {
	return &reportUseCase{
		repo:    repo,
		metrics: m,
		now:     time.Now,
		TimeOut: to,
	}
}

func (ru *reportUseCase) Summary(ctx context.Context) (*domain.ReportSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()

	var (
		counts    *domain.StatusCounts
		byProgram []domain.NamedCount
		byOfficer []domain.NamedCount
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		counts, err = ru.repo.StatusCounts(gctx)
		return err
	})
	g.Go(func() (err error) {
		byProgram, err = ru.repo.CountByProgram(gctx)
		return err
	})
	g.Go(func() (err error) {
		byOfficer, err = ru.repo.CountByOfficer(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if byProgram == nil {
		byProgram = []domain.NamedCount{}
	}
	if byOfficer == nil {
		byOfficer = []domain.NamedCount{}
	}
	return &domain.ReportSummary{
		StatusCounts: *counts,
		Pending:      counts.Total - counts.Approved,
		ByProgram:    byProgram,
		ByOfficer:    byOfficer,
	}, nil
}

func (ru *reportUseCase) Applications(ctx context.Context, filter domain.ReportFilter) ([]domain.ReportRow, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()

	return ru.repo.Rows(ctx, filter)
}

func (ru *reportUseCase) Export(ctx context.Context, format domain.ExportFormat, filter domain.ReportFilter) (*domain.ExportFile, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()

	rows, err := ru.repo.Rows(ctx, filter)
	if err != nil {
		return nil, err
	}
	now := ru.now()
	body, err := export.Render(format, rows, now)
	if err != nil {
		return nil, domain.NewInternalError("export report", err)
	}

	ru.metrics.IncExports(string(format))
	return &domain.ExportFile{
		FileName:    export.FileName(format, now),
		ContentType: export.ContentType(format),
		Body:        body,
	}, nil
}
