package plans

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/routinely/internal/models"
	"github.com/julianstephens/routinely/internal/validation"
)

var (
	dayHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

// PrintDays writes the summary and every day record in a readable layout.
func PrintDays(w io.Writer, summary string, days []models.DayRecord) {
	if summary != "" {
		fmt.Fprintln(w, summary)
		fmt.Fprintln(w)
	}
	for _, day := range days {
		fmt.Fprintln(w, dayHeaderStyle.Render(fmt.Sprintf("Day %d · %s", day.Day, day.Date)))
		if len(day.Schedules) == 0 {
			fmt.Fprintln(w, "  Nothing scheduled")
		}
		for _, block := range day.Schedules {
			fmt.Fprintf(w, "  %s  %s\n", timeStyle.Render(block.StartTime+"–"+block.EndTime), block.Title)
			if block.Notes != "" {
				fmt.Fprintf(w, "               %s\n", noteStyle.Render(block.Notes))
			}
		}
		fmt.Fprintln(w)
	}
}

// PrintWarnings lists validation conflicts, if any.
func PrintWarnings(w io.Writer, result validation.ValidationResult) {
	if !result.HasConflicts() {
		return
	}
	fmt.Fprintln(w, warningStyle.Render("⚠️  Validation warnings:"))
	for _, conflict := range result.Conflicts {
		fmt.Fprintf(w, "  - %s\n", conflict.Description)
	}
	fmt.Fprintln(w)
}

// PrintJSON writes v as indented JSON.
func PrintJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
