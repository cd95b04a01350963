package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/stride/internal/contract"
	"github.com/alexanderramin/stride/internal/domain"
)

// EntryRef names a report entry as "<label> <CODE>", using the 1-based
// position when the package has no label.
func EntryRef(e contract.ReportEntry) string {
	label := domain.CoalesceStr(e.Package.Label, fmt.Sprintf("#%d", e.Index+1))
	return strings.TrimSpace(label + " " + e.Package.Code)
}

// FormatEntryError renders the failure line of a report entry.
func FormatEntryError(e contract.ReportEntry) string {
	return fmt.Sprintf("Error (%s): %v", EntryRef(e), e.Err)
}

// FormatReportPlain writes one canonical summary line per package and an
// error line for each package that failed.
func FormatReportPlain(resp *contract.ReportResponse) string {
	var b strings.Builder
	for _, e := range resp.Entries {
		if e.Failed() {
			b.WriteString(FormatEntryError(e))
		} else {
			b.WriteString(e.Summary.Render())
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatReport renders a report as a metrics table inside a box, followed
// by failures and a run footer.
func FormatReport(resp *contract.ReportResponse) string {
	headers := []string{"", "ACTIVITY", "HOURS", "KM", "KM/H", "KCAL"}
	rows := make([][]string, 0, len(resp.Entries))
	var failures []string

	for _, e := range resp.Entries {
		if e.Failed() {
			failures = append(failures, StyleRed.Render("✖ ")+FormatEntryError(e))
			continue
		}
		s := e.Summary
		rows = append(rows, []string{
			ActivityBadge(domain.ActivityCode(e.Package.Code)),
			Bold(s.ActivityLabel),
			Fixed3(s.DurationHours),
			Fixed3(s.DistanceKm),
			Fixed3(s.MeanSpeedKmh),
			Fixed3(s.CaloriesKcal),
		})
	}

	var b strings.Builder
	if len(rows) > 0 {
		b.WriteString(RenderTable(headers, rows, AlignRight(2, 3, 4, 5)))
	} else {
		b.WriteString(Dim("No summaries."))
		b.WriteString("\n")
	}
	if len(failures) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(failures, "\n"))
		b.WriteString("\n")
	}

	footer := Plural(len(resp.Entries), "package")
	if n := resp.FailedCount(); n > 0 {
		footer += " · " + StyleRed.Render(fmt.Sprintf("%d failed", n))
	}
	if resp.RunID != "" {
		footer += " · run " + TruncID(resp.RunID)
	}
	b.WriteString("\n")
	b.WriteString(Dim(footer))

	return RenderBox("Workout report", b.String()) + "\n"
}

// FormatSummary renders a single summary as a labelled metrics box.
func FormatSummary(code domain.ActivityCode, s domain.Summary) string {
	rows := [][]string{
		{"Duration", Fixed3(s.DurationHours), "h"},
		{"Distance", Fixed3(s.DistanceKm), "km"},
		{"Avg speed", Fixed3(s.MeanSpeedKmh), "km/h"},
		{"Calories", Fixed3(s.CaloriesKcal), "kcal"},
	}

	var b strings.Builder
	b.WriteString(ActivityBadge(code))
	b.WriteString("\n\n")
	b.WriteString(RenderTable([]string{"METRIC", "VALUE", "UNIT"}, rows, AlignRight(1)))

	return RenderBox(s.ActivityLabel, strings.TrimRight(b.String(), "\n")) + "\n"
}

// FormatActivities lists the accepted activity codes and the positional
// values each expects.
func FormatActivities() string {
	headers := []string{"CODE", "ACTIVITY", "VALUES", "FIELDS"}
	rows := make([][]string, 0, len(domain.ActivityCodes))
	for _, code := range domain.ActivityCodes {
		rows = append(rows, []string{
			ActivityColor(code).Render(string(code)),
			code.Label(),
			fmt.Sprintf("%d", code.Arity()),
			strings.Join(code.Fields(), ", "),
		})
	}
	return RenderTable(headers, rows, AlignRight(2))
}
