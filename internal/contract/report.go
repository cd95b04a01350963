package contract

import (
	"github.com/alexanderramin/stride/internal/app"
	"github.com/alexanderramin/stride/internal/domain"
)

type ReportRequest = app.ReportRequest

func NewReportRequest(packages []domain.Package) ReportRequest {
	return app.NewReportRequest(packages)
}

type ReportEntry = app.ReportEntry

type ReportResponse = app.ReportResponse

type ReportErrorCode = app.ReportErrorCode

const (
	ReportErrEmptyRequest ReportErrorCode = app.ReportErrEmptyRequest
)

type ReportError = app.ReportError
