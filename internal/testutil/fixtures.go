package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/alexanderramin/stride/internal/domain"
)

var testLabelCounter atomic.Int64

// Package options
type PackageOption func(*domain.Package)

func WithValues(values ...float64) PackageOption {
	return func(p *domain.Package) {
		p.Values = values
	}
}

func WithLabel(label string) PackageOption {
	return func(p *domain.Package) {
		p.Label = label
	}
}

func WithAutoLabel() PackageOption {
	return func(p *domain.Package) {
		p.Label = fmt.Sprintf("%s-%02d", p.Code, testLabelCounter.Add(1))
	}
}

// NewTestPackage returns the reference reading for code, or an empty
// package when code is not one of the reference activities.
func NewTestPackage(code string, opts ...PackageOption) domain.Package {
	p := domain.Package{Code: code}
	for _, sample := range domain.SamplePackages() {
		if sample.Code == code {
			p.Values = append([]float64(nil), sample.Values...)
		}
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// WritePackageFile writes content to name inside a per-test temp dir and
// returns its path.
func WritePackageFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing package file: %v", err)
	}
	return path
}
