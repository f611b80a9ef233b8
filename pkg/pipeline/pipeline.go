// Package pipeline orchestrates the conversion of DICOM files to BMP images:
// decode, rescale, window, normalize, overlay, persist.
//
// The pipeline is strictly sequential. Single-file conversion surfaces its
// error to the caller; directory conversion isolates per-file failures so one
// bad file never halts the batch.
package pipeline

import (
	"image"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/dcmtools/dcm2bmp/pkg/codec"
	"github.com/dcmtools/dcm2bmp/pkg/dicom"
	"github.com/dcmtools/dcm2bmp/pkg/errors"
	"github.com/dcmtools/dcm2bmp/pkg/overlay"
	"github.com/dcmtools/dcm2bmp/pkg/transform"
)

// DefaultGroupSize is the number of files per progress group in batch mode.
// Grouping affects log cadence only, never output.
const DefaultGroupSize = 50

// Options configures a Converter. Decoder, Codec and Logger are the external
// collaborators; leaving them nil selects the real implementations.
type Options struct {
	InputDir  string
	OutputDir string
	Window    transform.Params // defaults used when the dataset has no window tags
	GroupSize int

	Decoder dicom.Decoder
	Codec   codec.Codec
	Logger  *log.Logger
}

// Converter converts DICOM files to BMP images with metadata overlays.
// It holds no per-file state; only the configured window defaults persist
// across conversions.
type Converter struct {
	inputDir  string
	outputDir string
	window    transform.Params
	groupSize int

	decoder dicom.Decoder
	codec   codec.Codec
	logger  *log.Logger
}

// New builds a Converter and creates the output directory (with parents) if
// it does not exist yet.
func New(opts Options) (*Converter, error) {
	if opts.OutputDir == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "output directory is required")
	}
	if opts.GroupSize <= 0 {
		opts.GroupSize = DefaultGroupSize
	}
	if opts.Decoder == nil {
		opts.Decoder = dicom.FileDecoder{}
	}
	if opts.Codec == nil {
		opts.Codec = codec.BMP{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "create output directory %s", opts.OutputDir)
	}
	opts.Logger.Debug("output directory ready", "dir", opts.OutputDir)

	return &Converter{
		inputDir:  opts.InputDir,
		outputDir: opts.OutputDir,
		window:    opts.Window,
		groupSize: opts.GroupSize,
		decoder:   opts.Decoder,
		codec:     opts.Codec,
		logger:    opts.Logger,
	}, nil
}

// ConvertFile converts one DICOM file and returns the output path. Errors
// are logged and returned to the caller; batch mode decides whether to skip.
func (c *Converter) ConvertFile(path string) (string, error) {
	name := filepath.Base(path)

	rec, err := c.decoder.Decode(path)
	if err != nil {
		c.logger.Error("decode failed", "file", name, "err", err)
		return "", err
	}

	g := transform.NewGrid(rec.Rows, rec.Cols, rec.Pixels)
	g = transform.Rescale(g, rec.RescaleSlope, rec.RescaleIntercept)

	params, werr := transform.ResolveWindow(c.window, rec.WindowCenterRaw, rec.WindowWidthRaw)
	if werr != nil {
		// Degrade: keep the unclipped buffer rather than failing the file.
		c.logger.Warn("windowing degraded, converting unclipped", "file", name, "err", werr)
	} else {
		g = transform.Clip(g, params)
	}

	img := &image.Gray{
		Pix:    transform.Normalize(g),
		Stride: rec.Cols,
		Rect:   image.Rect(0, 0, rec.Cols, rec.Rows),
	}

	// The metadata path is independent of the numeric path.
	md := dicom.ExtractMetadata(rec)
	rendered := overlay.Render(img, md, c.logger)

	// Extension is appended, not replaced: scan001 becomes scan001.bmp and
	// scan001.dcm becomes scan001.dcm.bmp.
	outPath := filepath.Join(c.outputDir, name+".bmp")
	if err := c.codec.Write(rendered, outPath); err != nil {
		c.logger.Error("write failed", "file", name, "err", err)
		return "", err
	}

	c.logger.Info("converted", "file", name, "output", filepath.Base(outPath))
	return outPath, nil
}

// Summary reports the outcome of a directory conversion.
type Summary struct {
	Scanned   int // regular files seen in the input directory
	Eligible  int // files that passed the DICOM probe
	Converted int
	Failed    int
}

// ScanResult is the outcome of the probe phase: how many files were seen and
// which of them decode as DICOM.
type ScanResult struct {
	Scanned int
	Files   []string
}

// Scan enumerates the input directory (non-recursive) and probes each file to
// classify it as DICOM. Symlinks are followed; entries that do not resolve to
// a regular file are ignored.
func (c *Converter) Scan() (ScanResult, error) {
	var res ScanResult

	entries, err := os.ReadDir(c.inputDir)
	if err != nil {
		return res, errors.Wrap(errors.ErrCodeInvalidInput, err, "read input directory %s", c.inputDir)
	}

	for _, entry := range entries {
		path := filepath.Join(c.inputDir, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			c.logger.Debug("skipping unreadable entry", "file", entry.Name(), "err", err)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		res.Scanned++
		if err := c.decoder.Probe(path); err != nil {
			c.logger.Debug("skipping non-DICOM file", "file", entry.Name(), "err", err)
			continue
		}
		res.Files = append(res.Files, path)
	}

	return res, nil
}

// Convert converts the scanned files sequentially. Per-file failures are
// logged and skipped; the batch never aborts early.
func (c *Converter) Convert(scan ScanResult) Summary {
	s := Summary{Scanned: scan.Scanned, Eligible: len(scan.Files)}
	files := scan.Files

	if len(files) == 0 {
		c.logger.Warn("no DICOM files found", "dir", c.inputDir)
		return s
	}
	c.logger.Info("found DICOM files", "count", len(files), "dir", c.inputDir)

	for start := 0; start < len(files); start += c.groupSize {
		end := min(start+c.groupSize, len(files))
		c.logger.Info("converting group",
			"group", start/c.groupSize+1,
			"files", end-start,
			"done", start,
			"total", len(files))

		for _, path := range files[start:end] {
			if _, err := c.ConvertFile(path); err != nil {
				s.Failed++
				continue
			}
			s.Converted++
		}
	}

	return s
}

// ConvertDir scans the input directory and converts the survivors. The
// returned error covers only the enumeration itself.
func (c *Converter) ConvertDir() (Summary, error) {
	scan, err := c.Scan()
	if err != nil {
		return Summary{Scanned: scan.Scanned}, err
	}
	return c.Convert(scan), nil
}
