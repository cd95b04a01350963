package importer

import (
	"fmt"

	"github.com/alexanderramin/stride/internal/domain"
)

// Convert transforms a validated PackageFile into domain packages.
// Call ValidatePackageFile first; Convert assumes the file is valid.
func Convert(file *PackageFile) ([]domain.Package, error) {
	packages := make([]domain.Package, 0, len(file.Packages))
	for i, p := range file.Packages {
		values := p.Values
		if len(p.Fields) > 0 {
			var err error
			values, err = orderFields(p)
			if err != nil {
				return nil, fmt.Errorf("packages[%d]: %w", i, err)
			}
		}
		packages = append(packages, domain.Package{
			Code:   p.Code,
			Values: append([]float64(nil), values...),
			Label:  domain.CoalesceStr(p.Label, fmt.Sprintf("#%d", i+1)),
		})
	}
	return packages, nil
}

func orderFields(p PackageImport) ([]float64, error) {
	code, err := domain.ParseActivityCode(p.Code)
	if err != nil {
		return nil, err
	}
	names := code.Fields()
	values := make([]float64, 0, len(names))
	for _, name := range names {
		v, ok := p.Fields[name]
		if !ok {
			return nil, fmt.Errorf("missing field %q", name)
		}
		values = append(values, v)
	}
	return values, nil
}
