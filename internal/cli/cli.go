// Package cli implements the dcm2bmp command-line interface.
//
// The CLI is a single cobra root command: it scans an input directory for
// DICOM files (extension or not), converts each to an 8-bit grayscale BMP
// with a metadata overlay, and prints a styled summary. Logging uses
// charmbracelet/log at a level selected by the -v count flag.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dcmtools/dcm2bmp/pkg/buildinfo"
	"github.com/dcmtools/dcm2bmp/pkg/errors"
	"github.com/dcmtools/dcm2bmp/pkg/pipeline"
	"github.com/dcmtools/dcm2bmp/pkg/transform"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "dcm2bmp"

	// Flag defaults mirror common CT soft-tissue viewing settings.
	defaultWindowCenter = 40.0
	defaultWindowWidth  = 400.0
)

// Log levels exported for use in main.go.
const (
	LogWarn  = log.WarnLevel
	LogInfo  = log.InfoLevel
	LogDebug = log.DebugLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for the command tree.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance writing logs to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// convertOpts holds the command-line flags for the root command.
type convertOpts struct {
	input        string  // directory containing DICOM files
	output       string  // directory for the generated BMP files
	windowCenter float64 // default window center when the dataset has none
	windowWidth  float64 // default window width when the dataset has none
	preset       string  // named window preset (overridden by explicit flags)
	presetsFile  string  // optional TOML file with extra presets
	groupSize    int     // files per progress group (log cadence only)
	verbosity    int     // -v count: 0 warn, 1 info, 2+ debug
}

// RootCommand creates the root cobra command.
func (c *CLI) RootCommand() *cobra.Command {
	var opts convertOpts

	root := &cobra.Command{
		Use:   appName,
		Short: "Convert DICOM files to BMP images with metadata overlays",
		Long: `dcm2bmp converts the DICOM files in a directory to 8-bit grayscale BMP
images. Pixel values are rescaled, windowed and normalized, and a fixed set of
patient, study and technical metadata is drawn onto each image, laid out
adaptively for small and large rasters. Files that do not decode as DICOM are
skipped; a failing file never aborts the batch.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.Logger.SetLevel(verbosityLevel(opts.verbosity))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := c.resolveWindow(cmd, &opts)
			if err != nil {
				return err
			}
			return c.runConvert(cmd.Context(), &opts, window)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.Flags().StringVarP(&opts.input, "input", "i", "", "directory containing DICOM files (required)")
	root.Flags().StringVarP(&opts.output, "output", "o", "", "directory for BMP output (required)")
	root.Flags().Float64Var(&opts.windowCenter, "window-center", defaultWindowCenter, "default window center")
	root.Flags().Float64Var(&opts.windowWidth, "window-width", defaultWindowWidth, "default window width")
	root.Flags().StringVar(&opts.preset, "preset", "", "window preset: brain, lung, bone, abdomen, mediastinum")
	root.Flags().StringVar(&opts.presetsFile, "presets-file", "", "TOML file with additional window presets")
	root.Flags().IntVar(&opts.groupSize, "group-size", pipeline.DefaultGroupSize, "files per progress group")
	root.Flags().CountVarP(&opts.verbosity, "verbose", "v", "increase verbosity (-v info, -vv debug)")

	_ = root.MarkFlagRequired("input")
	_ = root.MarkFlagRequired("output")

	return root
}

// resolveWindow combines preset and flag values into the default window.
// Explicitly set --window-center/--window-width flags always win over the
// preset; the preset wins over the built-in defaults.
func (c *CLI) resolveWindow(cmd *cobra.Command, opts *convertOpts) (transform.Params, error) {
	window := transform.Params{Center: opts.windowCenter, Width: opts.windowWidth}

	if opts.preset == "" {
		return window, nil
	}

	presets, err := LoadPresets(opts.presetsFile)
	if err != nil {
		return window, err
	}
	p, ok := presets[opts.preset]
	if !ok {
		return window, errors.New(errors.ErrCodeInvalidInput, "unknown window preset %q", opts.preset)
	}

	window = applyPreset(window, p,
		cmd.Flags().Changed("window-center"),
		cmd.Flags().Changed("window-width"))
	c.Logger.Debug("window preset applied", "preset", opts.preset, "center", window.Center, "width", window.Width)
	return window, nil
}

// runConvert builds the pipeline and converts the whole input directory. The
// probe/scan phase produces no per-file output, so it runs behind a spinner.
func (c *CLI) runConvert(ctx context.Context, opts *convertOpts, window transform.Params) error {
	if window.Width < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "window width must be at least 1")
	}

	conv, err := pipeline.New(pipeline.Options{
		InputDir:  opts.input,
		OutputDir: opts.output,
		Window:    window,
		GroupSize: opts.groupSize,
		Logger:    c.Logger,
	})
	if err != nil {
		return err
	}

	p := newProgress(c.Logger)

	spin := newSpinner(ctx, "Scanning "+opts.input+" for DICOM files")
	spin.Start()
	scan, err := conv.Scan()
	spin.Stop()
	if err != nil {
		return err
	}

	summary := conv.Convert(scan)
	p.done("Batch finished")

	printSummary(os.Stdout, summary)
	return nil
}
