package cli

import (
	"fmt"

	"github.com/madstone-tech/toon/internal/adapters/sizecmp"
)

// ValidationResult pairs a file path with the error (if any) found
// validating it.
type ValidationResult struct {
	Path string
	Err  error
}

// ReportFormatter formats CLI output for the validate and convert commands.
type ReportFormatter struct{}

// NewReportFormatter creates a new ReportFormatter instance.
func NewReportFormatter() *ReportFormatter {
	return &ReportFormatter{}
}

// PrintValidationReport prints the outcome of validating one or more
// files to stdout.
func (f *ReportFormatter) PrintValidationReport(results []ValidationResult) {
	var failed int
	for _, r := range results {
		if r.Err == nil {
			fmt.Println(successStyle.Render("✓") + " " + r.Path)
			continue
		}
		failed++
		fmt.Printf("%s %s — %v\n", errorStyle.Render("✗"), r.Path, r.Err)
	}

	if failed == 0 {
		fmt.Println(successStyle.Render(fmt.Sprintf("\n%d file(s) valid", len(results))))
		return
	}
	fmt.Println(errorStyle.Render(fmt.Sprintf("\n%d of %d file(s) failed validation", failed, len(results))))
}

// PrintSizeReport prints a TOON-vs-JSON size comparison to stdout.
func (f *ReportFormatter) PrintSizeReport(r sizecmp.Report) {
	fmt.Printf("TOON:  %d bytes\n", r.TOONBytes)
	fmt.Printf("JSON:  %d bytes\n", r.JSONBytes)
	fmt.Println(infoStyle.Render(fmt.Sprintf("Saved: %d bytes (%.1f%%)", r.SavedBytes, r.SavedPercent)))
}
