package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alexanderramin/stride/internal/config"
	"github.com/alexanderramin/stride/internal/domain"
	"github.com/alexanderramin/stride/internal/service"
	"github.com/alexanderramin/stride/internal/testutil"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App with plain output and no terminal.
func testApp(t *testing.T) *App {
	t.Helper()
	return &App{
		Reports:       service.NewReportService(),
		Import:        service.NewImportService(),
		Config:        config.DefaultConfig(),
		IsInteractive: func() bool { return false },
		IsTerminal:    func() bool { return false },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

var sampleLines = []string{
	"Activity type: Swimming; Duration: 1.000 h; Distance: 0.994 km; Avg speed: 1.000 km/h; Calories burned: 336.000.",
	"Activity type: Running; Duration: 1.000 h; Distance: 9.750 km; Avg speed: 9.750 km/h; Calories burned: 699.750.",
	"Activity type: SportsWalking; Duration: 1.000 h; Distance: 5.850 km; Avg speed: 5.850 km/h; Calories burned: 157.500.",
}

// --- Root command ---

func TestRootCmd_NoArgs_PrintsSamples(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(sampleLines, "\n")+"\n", output)
}

func TestRootCmd_UsesConfiguredPackageFile(t *testing.T) {
	app := testApp(t)
	app.Config.PackagesFile = testutil.WritePackageFile(t, "p.json", `{"packages": [{"code": "RUN", "values": [15000, 1, 75]}]}`)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Equal(t, sampleLines[1]+"\n", output)
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "bogus")
	assert.Error(t, err)
}

func TestRootCmd_StyledWhenTerminal(t *testing.T) {
	app := testApp(t)
	app.IsTerminal = func() bool { return true }

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "WORKOUT REPORT")
	assert.NotContains(t, output, "Activity type:")

	output, err = executeCmd(t, app, "--plain")
	require.NoError(t, err)
	assert.Contains(t, output, "Activity type: Swimming")
}

// --- report command ---

func TestReportCmd_YAMLFile(t *testing.T) {
	app := testApp(t)
	path := testutil.WritePackageFile(t, "p.yaml", `
packages:
  - code: WLK
    values: [9000, 1, 75, 180]
  - code: SWM
    fields: {action: 720, duration_h: 1, weight_kg: 80, pool_length_m: 25, pool_laps: 40}
`)

	output, err := executeCmd(t, app, "report", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, sampleLines[2]+"\n"+sampleLines[0]+"\n", output)
}

func TestReportCmd_FailedPackagesReported(t *testing.T) {
	app := testApp(t)
	path := testutil.WritePackageFile(t, "p.json", `{"packages": [
		{"code": "XYZ", "values": [1, 1, 1]},
		{"code": "SWM", "values": [720, 1, 80, 25], "label": "evening swim"},
		{"code": "RUN", "values": [15000, 1, 75]}
	]}`)

	output, err := executeCmd(t, app, "report", "-f", path)
	require.Error(t, err)
	assert.Equal(t, "2 of 3 packages failed", err.Error())

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `Error (#1 XYZ): unknown activity code "XYZ" (expected one of SWM, RUN, WLK)`, lines[0])
	assert.Equal(t, "Error (evening swim SWM): arity mismatch: SWM expects 5 values, got 4", lines[1])
	assert.Equal(t, sampleLines[1], lines[2])
}

func TestReportCmd_FailFast(t *testing.T) {
	app := testApp(t)
	path := testutil.WritePackageFile(t, "p.json", `{"packages": [
		{"code": "RUN", "values": [15000, 0, 75]},
		{"code": "RUN", "values": [15000, 1, 75]}
	]}`)

	output, err := executeCmd(t, app, "report", "--file", path, "--fail-fast")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)
	assert.NotContains(t, output, "Activity type:")
	assert.Contains(t, output, "Error (#1 RUN)")
}

func TestReportCmd_InvalidFile(t *testing.T) {
	app := testApp(t)
	path := testutil.WritePackageFile(t, "p.json", `{"packages": []}`)

	output, err := executeCmd(t, app, "report", "--file", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one package")
	assert.Empty(t, output)
}

// --- calc command ---

func TestCalcCmd_EachActivity(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"calc", "SWM", "720", "1", "80", "25", "40"}, sampleLines[0]},
		{[]string{"calc", "RUN", "15000", "1", "75"}, sampleLines[1]},
		{[]string{"calc", "WLK", "9000", "1", "75", "180"}, sampleLines[2]},
	}
	for _, tc := range cases {
		app := testApp(t)
		output, err := executeCmd(t, app, tc.args...)
		require.NoError(t, err, tc.args)
		assert.Equal(t, tc.want+"\n", output)
	}
}

func TestCalcCmd_Errors(t *testing.T) {
	cases := []struct {
		args    []string
		target  error
		message string
	}{
		{[]string{"calc", "XYZ", "1", "1", "1"}, domain.ErrUnknownActivity, "unknown activity code"},
		{[]string{"calc", "SWM", "720", "1", "80", "25"}, domain.ErrArityMismatch, "SWM expects 5 values, got 4"},
		{[]string{"calc", "RUN", "15000", "0", "75"}, domain.ErrInvalidDuration, "invalid duration"},
		{[]string{"calc", "RUN", "1.5", "1", "75"}, domain.ErrInvalidValue, "whole number"},
		{[]string{"calc", "RUN", "15000", "-1", "75"}, domain.ErrInvalidDuration, "invalid duration"},
		{[]string{"calc", "RUN", "-15000", "1", "75"}, domain.ErrInvalidValue, "must be >= 0"},
		{[]string{"calc", "RUN", "15000", "1", "NaN"}, domain.ErrInvalidValue, "weight_kg=NaN must be finite"},
		{[]string{"calc", "SWM", "720", "1", "80", "Inf", "40"}, domain.ErrInvalidValue, "pool_length_m=+Inf must be finite"},
		{[]string{"calc", "WLK", "9000", "1", "75", "-Inf"}, domain.ErrInvalidValue, "height_cm=-Inf must be finite"},
	}
	for _, tc := range cases {
		app := testApp(t)
		output, err := executeCmd(t, app, tc.args...)
		require.Error(t, err, tc.args)
		assert.ErrorIs(t, err, tc.target)
		assert.Contains(t, err.Error(), tc.message)
		assert.Empty(t, output)
	}
}

func TestCalcCmd_NonNumericValue(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "calc", "RUN", "15000", "one", "75")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid value "one" at position 2`)
}

func TestCalcCmd_PlainFlagBeforeCode(t *testing.T) {
	app := testApp(t)
	app.Config.Style = config.StyleStyled

	output, err := executeCmd(t, app, "calc", "--plain", "RUN", "15000", "1", "75")
	require.NoError(t, err)
	assert.Equal(t, sampleLines[1]+"\n", output)
}

func TestCalcCmd_RequiresCode(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "calc")
	assert.Error(t, err)
}

func TestCalcCmd_Styled(t *testing.T) {
	app := testApp(t)
	app.Config.Style = config.StyleStyled

	output, err := executeCmd(t, app, "calc", "SWM", "720", "1", "80", "25", "40")
	require.NoError(t, err)
	assert.Contains(t, output, "SWIMMING")
	assert.Contains(t, output, "336.000")
}

// --- activities command ---

func TestActivitiesCmd(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "activities")
	require.NoError(t, err)
	assert.Contains(t, output, "SportsWalking")
	assert.Contains(t, output, "pool_length_m, pool_laps")

	aliased, err := executeCmd(t, app, "codes")
	require.NoError(t, err)
	assert.Equal(t, output, aliased)
}

// --- new command ---

func TestNewCmd_RequiresInteractiveTerminal(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "new")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestNewCmd_AbortedForm(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }
	calls := 0
	app.RunForm = func(*huh.Form) error {
		calls++
		return huh.ErrUserAborted
	}

	_, err := executeCmd(t, app, "new")
	assert.ErrorIs(t, err, huh.ErrUserAborted)
	assert.Equal(t, 1, calls)
}
