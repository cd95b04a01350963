package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/stride/internal/app"
	"github.com/alexanderramin/stride/internal/domain"
	"github.com/google/uuid"
)

var (
	_ app.ReportUseCase    = (*reportService)(nil)
	_ app.CalculateUseCase = (*reportService)(nil)
)

type reportService struct {
	observer UseCaseObserver
	newRunID func() string
}

func NewReportService(observers ...UseCaseObserver) ReportService {
	return &reportService{
		observer: useCaseObserverOrNoop(observers),
		newRunID: func() string { return uuid.New().String() },
	}
}

func (s *reportService) Report(ctx context.Context, req app.ReportRequest) (resp *app.ReportResponse, err error) {
	startedAt := time.Now().UTC()
	runID := s.newRunID()
	fields := map[string]any{
		"run_id":   runID,
		"packages": len(req.Packages),
	}
	defer func() {
		if resp != nil {
			fields["failed"] = resp.FailedCount()
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "report",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if len(req.Packages) == 0 {
		return nil, &app.ReportError{Code: app.ReportErrEmptyRequest, Message: "no packages to report on"}
	}

	resp = &app.ReportResponse{
		RunID:   runID,
		Entries: make([]app.ReportEntry, 0, len(req.Packages)),
	}
	for i, pkg := range req.Packages {
		if err = ctx.Err(); err != nil {
			return resp, err
		}

		entry := app.ReportEntry{Index: i, Package: pkg}
		summary, calcErr := summarise(pkg)
		if calcErr != nil {
			entry.Err = calcErr
		} else {
			entry.Summary = &summary
		}
		resp.Entries = append(resp.Entries, entry)

		if calcErr != nil && req.FailFast {
			return resp, fmt.Errorf("package #%d (%s): %w", i+1, pkg.Code, calcErr)
		}
	}
	return resp, nil
}

func (s *reportService) Calculate(ctx context.Context, pkg domain.Package) (summary domain.Summary, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "calculate",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"code": pkg.Code, "values": len(pkg.Values)},
		})
	}()

	return summarise(pkg)
}

func summarise(pkg domain.Package) (domain.Summary, error) {
	workout, err := domain.ReadPackage(pkg.Code, pkg.Values)
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.BuildSummary(workout)
}
