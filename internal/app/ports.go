package app

import (
	"context"

	"github.com/alexanderramin/stride/internal/domain"
)

type ReportUseCase interface {
	Report(ctx context.Context, req ReportRequest) (*ReportResponse, error)
}

type CalculateUseCase interface {
	Calculate(ctx context.Context, pkg domain.Package) (domain.Summary, error)
}
