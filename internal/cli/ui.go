package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/dcmtools/dcm2bmp/pkg/pipeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorCyan   = lipgloss.Color("36")  // Teal - numbers
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleSpinner = lipgloss.NewStyle().Foreground(colorCyan)
)

// printSummary writes the end-of-run batch summary.
func printSummary(w io.Writer, s pipeline.Summary) {
	skipped := s.Scanned - s.Eligible

	fmt.Fprintf(w, "%s %s of %s eligible DICOM files converted\n",
		styleSuccess.Render("✓"),
		styleNumber.Render(fmt.Sprintf("%d", s.Converted)),
		styleNumber.Render(fmt.Sprintf("%d", s.Eligible)))

	if skipped > 0 {
		fmt.Fprintf(w, "%s\n", styleDim.Render(
			fmt.Sprintf("  %d non-DICOM file(s) skipped", skipped)))
	}
	if s.Failed > 0 {
		fmt.Fprintf(w, "%s %s\n",
			styleError.Render("!"),
			styleWarning.Render(fmt.Sprintf("%d file(s) failed mid-conversion, see log", s.Failed)))
	}
}
