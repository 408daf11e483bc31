package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/pageza/vexine/backend/internal/model"
)

var severityColors = map[model.Severity]lipgloss.Color{
	model.SeverityLow:      lipgloss.Color("#60A5FA"), // blue
	model.SeverityHealthy:  lipgloss.Color("#22C55E"), // green
	model.SeverityElevated: lipgloss.Color("#FBBF24"), // amber
	model.SeverityHigh:     lipgloss.Color("#EF4444"), // red
}

// reportStyles are bound to the output writer so color is only emitted when
// it is a terminal.
type reportStyles struct {
	title    lipgloss.Style
	section  lipgloss.Style
	severity func(model.Severity) lipgloss.Style
}

func newReportStyles(w io.Writer) reportStyles {
	r := lipgloss.NewRenderer(w)
	return reportStyles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#F97316")),
		section: r.NewStyle().Bold(true).MarginTop(1),
		severity: func(s model.Severity) lipgloss.Style {
			return r.NewStyle().Bold(true).Foreground(severityColors[s])
		},
	}
}

func writeReport(w io.Writer, a *model.Assessment) {
	st := newReportStyles(w)
	m := a.Metrics

	fmt.Fprintln(w, st.title.Render("Assessment "+a.ID.String()))
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	category := st.severity(m.Severity).Render(string(m.BMICategory))
	fmt.Fprintf(tw, "BMI\t%.1f (%s, %s)\n", m.BMI, category, m.RangeText)
	fmt.Fprintf(tw, "BMR\t%.0f kcal/day\n", m.BMR)
	fmt.Fprintf(tw, "Maintenance\t%.0f kcal/day\n", m.MaintenanceCalories)
	fmt.Fprintf(tw, "Muscle gain\t%.0f kcal/day\n", m.SurplusCalories)
	fmt.Fprintf(tw, "Weight loss\t%.0f kcal/day\n", m.DeficitCalories)
	fmt.Fprintf(tw, "Ideal weight\t%.1f - %.1f kg\n", m.IdealWeightRange.Min, m.IdealWeightRange.Max)
	_ = tw.Flush()

	writeTips(w, st.section, "Nutrition", a.Recommendations.NutritionTips)
	writeTips(w, st.section, "Exercise", a.Recommendations.ExerciseTips)
	writeTips(w, st.section, "Lifestyle", a.Recommendations.LifestyleTips)
}

func writeTips(w io.Writer, heading lipgloss.Style, title string, tips []string) {
	fmt.Fprintln(w, heading.Render(title))
	for _, tip := range tips {
		fmt.Fprintf(w, "  - %s\n", tip)
	}
}
