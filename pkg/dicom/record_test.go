package dicom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"

	"github.com/dcmtools/dcm2bmp/pkg/errors"
)

func TestProbeRejectsNonDICOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("definitely not a DICOM file"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := FileDecoder{}.Probe(path)
	if err == nil {
		t.Fatal("Probe() = nil, want error for non-DICOM file")
	}
	if !errors.Is(err, errors.ErrCodeDecode) {
		t.Errorf("Probe() error code = %v, want %v", errors.GetCode(err), errors.ErrCodeDecode)
	}
}

func TestProbeRejectsMissingFile(t *testing.T) {
	if err := (FileDecoder{}).Probe(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("Probe() = nil, want error for missing file")
	}
}

func mustElement(t *testing.T, tg tag.Tag, data any) *dicom.Element {
	t.Helper()
	el, err := dicom.NewElement(tg, data)
	if err != nil {
		t.Fatalf("NewElement(%v): %v", tg, err)
	}
	return el
}

func TestStringValue(t *testing.T) {
	ds := &dicom.Dataset{Elements: []*dicom.Element{
		mustElement(t, tag.PatientName, []string{"DOE^JANE"}),
		mustElement(t, tag.WindowCenter, []string{"40", "80"}),
	}}

	if got := stringValue(ds, tag.PatientName); got != "DOE^JANE" {
		t.Errorf("stringValue(PatientName) = %q", got)
	}
	// Multi-valued tags keep the DICOM separator so downstream parsing sees
	// the original value form.
	if got := stringValue(ds, tag.WindowCenter); got != `40\80` {
		t.Errorf("stringValue(WindowCenter) = %q, want %q", got, `40\80`)
	}
	if got := stringValue(ds, tag.Manufacturer); got != "" {
		t.Errorf("stringValue(absent) = %q, want empty", got)
	}
}

func TestFloatValue(t *testing.T) {
	ds := &dicom.Dataset{Elements: []*dicom.Element{
		mustElement(t, tag.RescaleSlope, []string{"1.0"}),
		mustElement(t, tag.RescaleIntercept, []string{"-1024"}),
		mustElement(t, tag.KVP, []string{"onetwenty"}),
	}}

	if got := floatValue(ds, tag.RescaleSlope); got == nil || *got != 1.0 {
		t.Errorf("floatValue(RescaleSlope) = %v, want 1.0", got)
	}
	if got := floatValue(ds, tag.RescaleIntercept); got == nil || *got != -1024 {
		t.Errorf("floatValue(RescaleIntercept) = %v, want -1024", got)
	}
	if got := floatValue(ds, tag.KVP); got != nil {
		t.Errorf("floatValue(malformed) = %v, want nil", got)
	}
	if got := floatValue(ds, tag.WindowWidth); got != nil {
		t.Errorf("floatValue(absent) = %v, want nil", got)
	}
}
