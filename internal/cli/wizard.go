package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/stride/internal/cli/formatter"
	"github.com/alexanderramin/stride/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// strideHuhTheme returns a huh theme matching the formatter palette.
func strideHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// fieldPrompts are the titles and placeholders for each positional value.
var fieldPrompts = map[string]struct{ title, placeholder string }{
	"action":        {"Actions (steps or strokes)", "15000"},
	"duration_h":    {"Duration (hours)", "1"},
	"weight_kg":     {"Weight (kg)", "75"},
	"height_cm":     {"Height (cm)", "180"},
	"pool_length_m": {"Pool length (m)", "25"},
	"pool_laps":     {"Pool laps", "40"},
}

// wizardSelectActivity creates a huh form to pick an activity code.
func wizardSelectActivity(result *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(domain.ActivityCodes))
	for _, code := range domain.ActivityCodes {
		options = append(options, huh.NewOption(fmt.Sprintf("%s · %s", code, code.Label()), string(code)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which Activity?").
				Options(options...).
				Value(result),
		),
	).WithTheme(strideHuhTheme()).WithShowHelp(false)
}

// wizardInputValues creates a huh form with one input per positional value
// of code. results must have code.Arity() elements.
func wizardInputValues(code domain.ActivityCode, results []string) *huh.Form {
	fields := code.Fields()
	inputs := make([]huh.Field, 0, len(fields))
	for i, name := range fields {
		prompt := fieldPrompts[name]
		validate := validatePositiveFloat
		if name == "action" || name == "pool_laps" {
			validate = validateNonNegativeFloat
		}
		inputs = append(inputs, huh.NewInput().
			Title(prompt.title).
			Placeholder(prompt.placeholder).
			Value(&results[i]).
			Validate(validate))
	}

	return huh.NewForm(huh.NewGroup(inputs...)).WithTheme(strideHuhTheme()).WithShowHelp(false)
}

// packageFromInputs converts wizard answers into a package. Blank answers
// take the field's placeholder value.
func packageFromInputs(code domain.ActivityCode, inputs []string) (domain.Package, error) {
	fields := code.Fields()
	if len(inputs) != len(fields) {
		return domain.Package{}, &domain.ArityMismatchError{Code: code, Want: len(fields), Got: len(inputs)}
	}

	values := make([]float64, 0, len(inputs))
	for i, raw := range inputs {
		raw = domain.CoalesceStr(strings.TrimSpace(raw), fieldPrompts[fields[i]].placeholder)
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.Package{}, fmt.Errorf("%s: %q is not a number", fields[i], raw)
		}
		values = append(values, v)
	}
	return domain.Package{Code: string(code), Values: values}, nil
}

// validatePositiveFloat accepts empty or a number greater than zero.
func validatePositiveFloat(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !(v > 0) || math.IsInf(v, 1) {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// validateNonNegativeFloat accepts empty or a number of at least zero.
func validateNonNegativeFloat(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !(v >= 0) || math.IsInf(v, 1) {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}
