// Package dicom wraps DICOM decoding behind a fixed-field Record so the rest
// of the pipeline never queries dataset attributes at runtime.
//
// Decoding is delegated to github.com/suyashkumar/dicom. The Record carries
// the first native pixel frame as float64 samples plus the fixed tag set the
// converter cares about; every textual tag is optional and absent tags are
// empty strings.
package dicom

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"

	"github.com/dcmtools/dcm2bmp/pkg/errors"
)

// Record is the decoded form of one DICOM file. It is populated once by the
// decode collaborator and read-only downstream.
type Record struct {
	Rows, Cols int
	Pixels     []float64 // first frame, row-major, first sample per pixel

	// Calibration tags; nil means absent.
	RescaleSlope     *float64
	RescaleIntercept *float64

	// Window tags kept raw (multi-valued tags are backslash-joined) so the
	// windowing stage owns their parsing and its failure policy.
	WindowCenterRaw string
	WindowWidthRaw  string

	// Textual tags, raw and untrimmed; "" means absent.
	PatientName       string
	PatientID         string
	PatientBirthDate  string
	StudyDate         string
	StudyDescription  string
	SeriesDescription string
	InstitutionName   string
	Manufacturer      string
	SliceThickness    string
	KVP               string
}

// Decoder is the external decode collaborator. Probe classifies a file as
// DICOM without materializing pixel data; Decode produces a full Record.
type Decoder interface {
	Probe(path string) error
	Decode(path string) (*Record, error)
}

// FileDecoder decodes DICOM files from disk with suyashkumar/dicom.
type FileDecoder struct{}

// Probe runs a header-only parse, skipping pixel data. A nil return means the
// file is decodable and belongs in the conversion set.
func (FileDecoder) Probe(path string) error {
	if _, err := dicom.ParseFile(path, nil, dicom.SkipPixelData()); err != nil {
		return errors.Wrap(errors.ErrCodeDecode, err, "probe %s", filepath.Base(path))
	}
	return nil
}

// Decode parses the file and builds a Record from its first native frame and
// the fixed tag set.
func (FileDecoder) Decode(path string) (*Record, error) {
	ds, err := dicom.ParseFile(path, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDecode, err, "decode %s", filepath.Base(path))
	}
	return newRecord(&ds)
}

// newRecord extracts the pixel buffer and the fixed tag set from a parsed
// dataset.
func newRecord(ds *dicom.Dataset) (*Record, error) {
	rec := &Record{
		RescaleSlope:      floatValue(ds, tag.RescaleSlope),
		RescaleIntercept:  floatValue(ds, tag.RescaleIntercept),
		WindowCenterRaw:   stringValue(ds, tag.WindowCenter),
		WindowWidthRaw:    stringValue(ds, tag.WindowWidth),
		PatientName:       stringValue(ds, tag.PatientName),
		PatientID:         stringValue(ds, tag.PatientID),
		PatientBirthDate:  stringValue(ds, tag.PatientBirthDate),
		StudyDate:         stringValue(ds, tag.StudyDate),
		StudyDescription:  stringValue(ds, tag.StudyDescription),
		SeriesDescription: stringValue(ds, tag.SeriesDescription),
		InstitutionName:   stringValue(ds, tag.InstitutionName),
		Manufacturer:      stringValue(ds, tag.Manufacturer),
		SliceThickness:    stringValue(ds, tag.SliceThickness),
		KVP:               stringValue(ds, tag.KVP),
	}

	el, err := ds.FindElementByTag(tag.PixelData)
	if err != nil {
		return nil, errors.New(errors.ErrCodePixelsMissing, "dataset has no pixel data")
	}
	info, ok := el.Value.GetValue().(dicom.PixelDataInfo)
	if !ok || len(info.Frames) == 0 {
		return nil, errors.New(errors.ErrCodePixelsMissing, "pixel data holds no frames")
	}

	// Multi-frame data is out of scope; only the first frame is converted.
	native, err := info.Frames[0].GetNativeFrame()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodePixelsMissing, err, "pixel data is not native")
	}

	rec.Rows = native.Rows
	rec.Cols = native.Cols
	rec.Pixels = make([]float64, len(native.Data))
	for i, samples := range native.Data {
		rec.Pixels[i] = float64(samples[0])
	}
	return rec, nil
}

// stringValue returns the raw string form of a tag, with multi-valued tags
// joined back with the DICOM value separator. Absent tags yield "".
func stringValue(ds *dicom.Dataset, t tag.Tag) string {
	el, err := ds.FindElementByTag(t)
	if err != nil {
		return ""
	}
	vals, ok := el.Value.GetValue().([]string)
	if !ok || len(vals) == 0 {
		return ""
	}
	return strings.Join(vals, `\`)
}

// floatValue parses a decimal-string tag. Absent or malformed values yield
// nil, which downstream stages treat as "tag not present".
func floatValue(ds *dicom.Dataset, t tag.Tag) *float64 {
	el, err := ds.FindElementByTag(t)
	if err != nil {
		return nil
	}
	vals, ok := el.Value.GetValue().([]string)
	if !ok || len(vals) == 0 {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
	if err != nil {
		return nil
	}
	return &f
}
