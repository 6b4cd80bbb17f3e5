// Package render turns raillock states, graphs, and verdicts into styled
// terminal text for the interactive front-end. It is strictly read-only
// over the core types.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/veletrack/raillock/checkpoint"
	"github.com/veletrack/raillock/core"
	"github.com/veletrack/raillock/recovery"
	"github.com/veletrack/raillock/wfg"
)

// Basic ANSI palette, matching the original terminal output conventions:
// green for grants and safety, red for denials and deadlock, yellow for
// recovery actions, cyan for informational banners.
var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	styleHeader  = lipgloss.NewStyle().Bold(true)
	styleGood    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleBad     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleAccent  = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	styleDim     = lipgloss.NewStyle().Faint(true)
	styleRemoved = lipgloss.NewStyle().Strikethrough(true).Faint(true)
)

// Title renders the banner shown when the simulator starts.
func Title() string {
	return styleTitle.Render("RAILWAY DEADLOCK SIMULATOR")
}

// Good renders a success message (grants, safe verdicts, restores).
func Good(msg string) string { return styleGood.Render(msg) }

// Bad renders a failure message (denials, deadlocks).
func Bad(msg string) string { return styleBad.Render(msg) }

// Warn renders a cautionary message (recovery actions, full stores).
func Warn(msg string) string { return styleWarn.Render(msg) }

// StateTable renders the allocation/maximum/need table plus the available
// units line, one row per train.
func StateTable(s *core.State) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %d    %s %d\n",
		styleHeader.Render("Trains:"), s.Trains(),
		styleHeader.Render("Track sections:"), s.Tracks())

	// Column header: R0 R1 ... repeated for the three matrices.
	cols := make([]string, s.Tracks())
	for j := range cols {
		cols[j] = fmt.Sprintf("R%d", j)
	}
	group := strings.Join(cols, " ")
	fmt.Fprintf(&b, "%-4s %-12s | %s | %s | %s\n", "ID", "Train",
		styleHeader.Render("Alloc "+group),
		styleHeader.Render("Max "+group),
		styleHeader.Render("Need "+group))

	for i := 0; i < s.Trains(); i++ {
		name := s.TrainNames[i]
		if name == recovery.RemovedName {
			name = styleRemoved.Render(name)
		}
		fmt.Fprintf(&b, "%-4d %-12s | %s | %s | %s\n", i, name,
			row(s.Allocation[i]), row(s.Maximum[i]), row(s.Need[i]))
	}

	b.WriteString(styleAccent.Render("Available:"))
	for j := 0; j < s.Tracks(); j++ {
		fmt.Fprintf(&b, " R%d=%d", j, s.Available[j])
	}
	b.WriteString("\n")

	return b.String()
}

// row formats one matrix row as fixed-width numbers.
func row(units []int) string {
	parts := make([]string, len(units))
	for j, u := range units {
		parts[j] = fmt.Sprintf("%2d", u)
	}

	return strings.Join(parts, " ")
}

// WaitFor renders the adjacency of the wait-for graph, one train per line.
func WaitFor(s *core.State, g *wfg.Graph) string {
	var b strings.Builder

	b.WriteString(styleWarn.Render("Wait-for graph (train -> train):"))
	b.WriteString("\n")
	for i := 0; i < g.Trains(); i++ {
		fmt.Fprintf(&b, "T%d (%s) waits for:", i, s.TrainNames[i])
		waits := g.WaitsFor(i)
		if len(waits) == 0 {
			b.WriteString(styleDim.Render(" none"))
		}
		for _, j := range waits {
			fmt.Fprintf(&b, " T%d (%s)", j, s.TrainNames[j])
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Cycle renders a deadlock cycle as "A -> B -> A", closing the loop back
// to the first train.
func Cycle(s *core.State, cycle []int) string {
	names := make([]string, 0, len(cycle)+1)
	for _, i := range cycle {
		names = append(names, s.TrainNames[i])
	}
	if len(cycle) > 0 {
		names = append(names, s.TrainNames[cycle[0]])
	}

	return styleBad.Render("Deadlock detected! Cycle: " + strings.Join(names, " -> "))
}

// SafeSequence renders a safe completion order by train name.
func SafeSequence(s *core.State, seq []int) string {
	names := make([]string, len(seq))
	for k, i := range seq {
		names[k] = s.TrainNames[i]
	}

	return styleGood.Render("Safe sequence: " + strings.Join(names, " -> "))
}

// Checkpoints renders the occupied checkpoint slots.
func Checkpoints(slots []checkpoint.Slot) string {
	if len(slots) == 0 {
		return styleDim.Render("No saved checkpoints.") + "\n"
	}

	var b strings.Builder
	b.WriteString(styleHeader.Render("Checkpoints:"))
	b.WriteString("\n")
	for _, slot := range slots {
		fmt.Fprintf(&b, "  %d: %s\n", slot.ID, slot.Label)
	}

	return b.String()
}

// Menu renders the interactive menu.
func Menu() string {
	var b strings.Builder

	b.WriteString(styleHeader.Render("MENU"))
	b.WriteString("\n")
	for _, line := range []string{
		"1) Load sample scenario",
		"2) Generate random scenario",
		"3) Load scenario from YAML file",
		"4) Show current state",
		"5) Request tracks for a train (Banker's avoidance)",
		"6) Detect deadlock (wait-for graph + safety check)",
		"7) Recover: terminate train",
		"8) Recover: preempt tracks from train",
		"9) Save checkpoint",
		"10) Restore checkpoint",
		"11) Export Graphviz DOT",
		"q) Quit",
	} {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("Enter choice: ")

	return b.String()
}
