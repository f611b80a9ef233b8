package overlay

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dcmtools/dcm2bmp/pkg/dicom"
)

func fullMetadata() dicom.Metadata {
	return dicom.Metadata{
		PatientName:       "SANTOS^MARIA",
		PatientID:         "PID-001",
		PatientBirthDate:  "03/12/1987",
		StudyDate:         "15/01/2024",
		StudyDescription:  "TC CRANIO",
		SeriesDescription: "AXIAL",
		InstitutionName:   "Hospital Central",
		Manufacturer:      "SIEMENS",
		SliceThickness:    "2.5",
		KVP:               "120",
	}
}

func TestLayoutSmallImage(t *testing.T) {
	blocks := Layout(128, 128, fullMetadata())

	want := []Block{{
		Anchor: AnchorTopCentered,
		Lines:  []string{"SANTOS^MARIA", "15/01/2024"},
	}}
	if diff := cmp.Diff(want, blocks); diff != "" {
		t.Errorf("Layout(small) mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutSmallImageByShortSide(t *testing.T) {
	// One large dimension does not make the image large; the short side rules.
	blocks := Layout(1024, 200, fullMetadata())

	if len(blocks) != 1 || blocks[0].Anchor != AnchorTopCentered {
		t.Fatalf("Layout(1024x200) = %+v, want single top-centered block", blocks)
	}
	if len(blocks[0].Lines) > 2 {
		t.Errorf("small layout has %d lines, want at most 2", len(blocks[0].Lines))
	}
}

func TestLayoutSmallImagePartialMetadata(t *testing.T) {
	blocks := Layout(100, 100, dicom.Metadata{StudyDate: "15/01/2024"})

	want := []Block{{Anchor: AnchorTopCentered, Lines: []string{"15/01/2024"}}}
	if diff := cmp.Diff(want, blocks); diff != "" {
		t.Errorf("Layout mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutLargeImage(t *testing.T) {
	blocks := Layout(512, 512, fullMetadata())

	want := []Block{
		{Anchor: AnchorTopLeft, Lines: []string{
			"Nome: SANTOS^MARIA",
			"ID: PID-001",
			"Nasc.: 03/12/1987",
		}},
		{Anchor: AnchorTopRight, Lines: []string{
			"Data: 15/01/2024",
			"Estudo: TC CRANIO",
			"Série: AXIAL",
		}},
		{Anchor: AnchorBottomLeft, Lines: []string{
			"Instituição: Hospital Central",
			"Fabricante: SIEMENS",
			"Espessura: 2.5mm",
			"kVp: 120",
		}},
	}
	if diff := cmp.Diff(want, blocks); diff != "" {
		t.Errorf("Layout(large) mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutLargeImageDropsEmptyLinesAndBlocks(t *testing.T) {
	md := dicom.Metadata{
		PatientName: "DOE^JOHN",
		KVP:         "120",
	}
	blocks := Layout(512, 512, md)

	want := []Block{
		{Anchor: AnchorTopLeft, Lines: []string{"Nome: DOE^JOHN"}},
		{Anchor: AnchorBottomLeft, Lines: []string{"kVp: 120"}},
	}
	if diff := cmp.Diff(want, blocks); diff != "" {
		t.Errorf("Layout mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutEmptyMetadata(t *testing.T) {
	if blocks := Layout(512, 512, dicom.Metadata{}); len(blocks) != 0 {
		t.Errorf("Layout(empty metadata) = %+v, want none", blocks)
	}
	if blocks := Layout(64, 64, dicom.Metadata{}); len(blocks) != 0 {
		t.Errorf("Layout(small, empty metadata) = %+v, want none", blocks)
	}
}

func TestLayoutBoundary(t *testing.T) {
	// 256 is the first size treated as large.
	if blocks := Layout(256, 256, fullMetadata()); len(blocks) != 3 {
		t.Errorf("Layout(256x256) produced %d blocks, want 3", len(blocks))
	}
	if blocks := Layout(255, 255, fullMetadata()); len(blocks) != 1 {
		t.Errorf("Layout(255x255) produced %d blocks, want 1", len(blocks))
	}
}
