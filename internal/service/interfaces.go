package service

import (
	"context"

	"github.com/alexanderramin/stride/internal/contract"
	"github.com/alexanderramin/stride/internal/domain"
)

type ReportService interface {
	Report(ctx context.Context, req contract.ReportRequest) (*contract.ReportResponse, error)
	Calculate(ctx context.Context, pkg domain.Package) (domain.Summary, error)
}

type ImportService interface {
	LoadPackages(ctx context.Context, filePath string) ([]domain.Package, error)
}
