package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// ProgressReporter prints styled status lines for the watch command, which
// reports one event at a time rather than a percentage.
type ProgressReporter struct{}

// NewProgressReporter creates a new ProgressReporter.
func NewProgressReporter() *ProgressReporter {
	return &ProgressReporter{}
}

// ReportError reports an error.
func (r *ProgressReporter) ReportError(err error) {
	fmt.Println(errorStyle.Render("✗ Error:") + " " + err.Error())
}

// ReportSuccess reports success.
func (r *ProgressReporter) ReportSuccess(message string) {
	fmt.Println(successStyle.Render("✓") + " " + message)
}

// ReportInfo reports an informational message.
func (r *ProgressReporter) ReportInfo(message string) {
	fmt.Println(infoStyle.Render("ℹ") + " " + message)
}
