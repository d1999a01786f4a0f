package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wildstyl3r/rootfind/internal/compare"
	"github.com/wildstyl3r/rootfind/internal/solver"
)

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorOK      = lipgloss.Color("#10B981")
	colorWarn    = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorMuted)

	methodStyle    = lipgloss.NewStyle().Width(18)
	stateStyle     = lipgloss.NewStyle().Width(12)
	numberStyle    = lipgloss.NewStyle().Width(12).Align(lipgloss.Right)
	labelStyle     = lipgloss.NewStyle().Width(12).Foreground(colorMuted)
	convergedStyle = stateStyle.Foreground(colorOK)
	exhaustedStyle = stateStyle.Foreground(colorWarn)
	failedStyle    = stateStyle.Foreground(colorError)
	errorStyle     = lipgloss.NewStyle().Foreground(colorError)
	bestStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorOK)
)

const rootDecimals = 2

// renderReport shows speed(root) for each method, labelled with unit.
func renderReport(w io.Writer, report compare.Report, speed func(float64) float64, unit string, best compare.Outcome, ok bool) {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Root finding comparison"))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(
		methodStyle.Render("METHOD") + stateStyle.Render("STATE") +
			numberStyle.Render("ROOT") + numberStyle.Render("ITERATIONS") +
			numberStyle.Render("V ["+unit+"]")))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(strings.Repeat("─", 66)))
	b.WriteString("\n")

	for _, o := range report.Outcomes {
		row := methodStyle.Render(string(o.Method))
		if o.Err != nil {
			row += failedStyle.Render(solver.Failed.String()) + "  " + errorStyle.Render(o.Err.Error())
		} else {
			row += styleForState(o.Result.State).Render(o.Result.State.String()) +
				numberStyle.Render(formatRoot(o.Result.Root)) +
				numberStyle.Render(strconv.Itoa(o.Result.Iterations)) +
				numberStyle.Render(formatRoot(speed(o.Result.Approx)))
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if ok {
		b.WriteString(bestStyle.Render(fmt.Sprintf("Most efficient: %s (%d iterations)",
			best.Method, best.Result.Iterations)))
	} else {
		b.WriteString(errorStyle.Render("No method found a root"))
	}
	b.WriteString("\n")
	fmt.Fprint(w, b.String())
}

func renderResult(w io.Writer, method solver.Method, expression string, r solver.Result) {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s: %s = 0", method, expression)))
	b.WriteString("\n")
	rows := []struct{ label, value string }{
		{"root", formatRoot(r.Root)},
		{"approx", strconv.FormatFloat(r.Approx, 'g', 12, 64)},
		{"iterations", strconv.Itoa(r.Iterations)},
	}
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row.label) + row.value + "\n")
	}
	b.WriteString(labelStyle.Render("state") + styleForState(r.State).Render(r.State.String()) + "\n")
	fmt.Fprint(w, b.String())
}

func styleForState(s solver.State) lipgloss.Style {
	switch s {
	case solver.Converged:
		return convergedStyle
	case solver.Exhausted:
		return exhaustedStyle
	}
	return failedStyle
}

func formatRoot(v float64) string {
	return strconv.FormatFloat(v, 'f', rootDecimals, 64)
}
