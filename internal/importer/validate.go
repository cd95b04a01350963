package importer

import (
	"fmt"
	"math"
	"sort"

	"github.com/alexanderramin/stride/internal/domain"
)

// ValidatePackageFile checks the file structure before conversion.
// Returns a slice of all validation errors found. Activity codes and
// value counts are left to the dispatcher so they fail per package.
func ValidatePackageFile(file *PackageFile) []error {
	if len(file.Packages) == 0 {
		return []error{fmt.Errorf("packages: at least one package is required")}
	}

	var errs []error
	for i, p := range file.Packages {
		errs = append(errs, validatePackage(fmt.Sprintf("packages[%d]", i), p)...)
	}
	return errs
}

func validatePackage(prefix string, p PackageImport) []error {
	var errs []error

	if p.Code == "" {
		errs = append(errs, fmt.Errorf("%s.code is required", prefix))
	}

	switch {
	case len(p.Values) == 0 && len(p.Fields) == 0:
		errs = append(errs, fmt.Errorf("%s: one of values or fields is required", prefix))
	case len(p.Values) > 0 && len(p.Fields) > 0:
		errs = append(errs, fmt.Errorf("%s: values and fields are mutually exclusive", prefix))
	}

	for i, v := range p.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s.values[%d]: must be a finite number", prefix, i))
		}
	}

	if len(p.Fields) > 0 {
		errs = append(errs, validateFields(prefix, p)...)
	}

	return errs
}

func validateFields(prefix string, p PackageImport) []error {
	code, err := domain.ParseActivityCode(p.Code)
	if err != nil {
		return []error{fmt.Errorf("%s.fields: named fields need a known activity code: %w", prefix, err)}
	}

	var errs []error
	known := make(map[string]bool)
	for _, name := range code.Fields() {
		known[name] = true
		if _, ok := p.Fields[name]; !ok {
			errs = append(errs, fmt.Errorf("%s.fields.%s is required for %s", prefix, name, code))
		}
	}

	names := make([]string, 0, len(p.Fields))
	for name := range p.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !known[name] {
			errs = append(errs, fmt.Errorf("%s.fields.%s: unknown field for %s", prefix, name, code))
			continue
		}
		if v := p.Fields[name]; math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s.fields.%s: must be a finite number", prefix, name))
		}
	}
	return errs
}
