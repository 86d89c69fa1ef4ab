package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"flowsolve/internal/bench"
	"flowsolve/internal/flowshop"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	headerStyle = lipgloss.NewStyle().Bold(true)
	bestStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// sequenceString joins job names in schedule order.
func sequenceString(perm []int, names []string) string {
	return strings.Join(lo.Map(perm, func(job, _ int) string { return names[job] }), " -> ")
}

// renderComparison formats the method comparison table, rows sorted by
// makespan ascending. The leading row is the winner and gets highlighted.
func renderComparison(title string, entries []bench.Entry, names []string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-12s %-12s %s", "Method", "Makespan", "Sequence")))
	b.WriteString("\n")
	for i, e := range entries {
		line := fmt.Sprintf("%-12s %-12.2f %s", e.Method, e.Makespan, sequenceString(e.Permutation, names))
		if i == 0 {
			line = bestStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// renderAnalysis formats the final schedule report: makespan, idle times,
// utilization and efficiency.
func renderAnalysis(method string, perm []int, q flowshop.Quality, names []string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Best schedule"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Method:      %s\n", method))
	b.WriteString(fmt.Sprintf("Sequence:    %s\n", sequenceString(perm, names)))
	b.WriteString(fmt.Sprintf("Makespan:    %.2f\n", q.Makespan))
	b.WriteString(fmt.Sprintf("Total idle:  %.2f\n", q.TotalIdle))
	b.WriteString(fmt.Sprintf("Utilization: %.2f%%\n", 100*q.Utilization))
	b.WriteString(fmt.Sprintf("Efficiency:  %.2f%%\n", 100*q.Efficiency))
	for m, idle := range q.MachineIdle {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  Machine %d idle: %.2f", m+1, idle)))
		b.WriteString("\n")
	}
	return b.String()
}
