package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/stride/internal/domain"
	"github.com/alexanderramin/stride/internal/importer"
)

type importService struct {
	observer UseCaseObserver
}

func NewImportService(observers ...UseCaseObserver) ImportService {
	return &importService{observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) LoadPackages(ctx context.Context, filePath string) (packages []domain.Package, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-packages",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"file": filePath, "packages": len(packages)},
		})
	}()

	file, err := importer.LoadPackageFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading package file: %w", err)
	}
	return s.convert(file)
}

func (s *importService) convert(file *importer.PackageFile) ([]domain.Package, error) {
	if errs := importer.ValidatePackageFile(file); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	packages, err := importer.Convert(file)
	if err != nil {
		return nil, fmt.Errorf("converting package file: %w", err)
	}
	return packages, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("package file validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
