package app

import "github.com/alexanderramin/stride/internal/domain"

type ReportRequest struct {
	Packages []domain.Package
	// FailFast stops at the first package that cannot be summarised.
	FailFast bool
}

// NewReportRequest returns a request over the given packages, or over the
// sample packages when none are given.
func NewReportRequest(packages []domain.Package) ReportRequest {
	if len(packages) == 0 {
		packages = domain.SamplePackages()
	}
	return ReportRequest{Packages: packages}
}

type ReportEntry struct {
	Index   int
	Package domain.Package
	Summary *domain.Summary
	Err     error
}

// Failed reports whether the package produced no summary.
func (e ReportEntry) Failed() bool {
	return e.Err != nil
}

type ReportResponse struct {
	RunID   string
	Entries []ReportEntry
}

// FailedCount returns the number of entries that carry an error.
func (r *ReportResponse) FailedCount() int {
	n := 0
	for _, e := range r.Entries {
		if e.Failed() {
			n++
		}
	}
	return n
}

type ReportErrorCode string

const (
	ReportErrEmptyRequest ReportErrorCode = "EMPTY_REQUEST"
)

type ReportError struct {
	Code    ReportErrorCode
	Message string
}

func (e *ReportError) Error() string {
	return string(e.Code) + ": " + e.Message
}
