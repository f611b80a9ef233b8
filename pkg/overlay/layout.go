// Package overlay lays out and draws metadata text on converted images.
//
// Layout and drawing are split: Layout is a pure decision table from image
// dimensions and metadata to positioned blocks of lines, so the size-adaptive
// policy is testable without any font or raster. Render owns fonts, metrics
// and pixels.
package overlay

import (
	"fmt"

	"github.com/dcmtools/dcm2bmp/pkg/dicom"
)

// smallThreshold is the short-side length below which the image only gets the
// compact centered overlay.
const smallThreshold = 256

// Anchor names the corner (or top center) a block is positioned against.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorTopRight
	AnchorBottomLeft
	AnchorTopCentered
)

// String returns the anchor name, mainly for test failure output.
func (a Anchor) String() string {
	switch a {
	case AnchorTopLeft:
		return "top-left"
	case AnchorTopRight:
		return "top-right"
	case AnchorBottomLeft:
		return "bottom-left"
	case AnchorTopCentered:
		return "top-centered"
	}
	return fmt.Sprintf("anchor(%d)", int(a))
}

// Block is a positioned group of text lines, the intermediate layout decision
// independent of drawing.
type Block struct {
	Anchor Anchor
	Lines  []string
}

// Layout decides which metadata ends up where for an image of the given size.
//
// Small images (short side < 256) get a single centered block with just the
// patient name and study date. Larger images get up to three labeled blocks:
// patient identity top-left, study information top-right, technical data
// bottom-left. Lines for empty fields are dropped and blocks that end up with
// no lines are omitted.
func Layout(width, height int, md dicom.Metadata) []Block {
	shortSide := width
	if height < shortSide {
		shortSide = height
	}

	if shortSide < smallThreshold {
		var lines []string
		if md.PatientName != "" {
			lines = append(lines, md.PatientName)
		}
		if md.StudyDate != "" {
			lines = append(lines, md.StudyDate)
		}
		if len(lines) == 0 {
			return nil
		}
		return []Block{{Anchor: AnchorTopCentered, Lines: lines}}
	}

	var blocks []Block

	var patient []string
	if md.PatientName != "" {
		patient = append(patient, "Nome: "+md.PatientName)
	}
	if md.PatientID != "" {
		patient = append(patient, "ID: "+md.PatientID)
	}
	if md.PatientBirthDate != "" {
		patient = append(patient, "Nasc.: "+md.PatientBirthDate)
	}
	if len(patient) > 0 {
		blocks = append(blocks, Block{Anchor: AnchorTopLeft, Lines: patient})
	}

	var study []string
	if md.StudyDate != "" {
		study = append(study, "Data: "+md.StudyDate)
	}
	if md.StudyDescription != "" {
		study = append(study, "Estudo: "+md.StudyDescription)
	}
	if md.SeriesDescription != "" {
		study = append(study, "Série: "+md.SeriesDescription)
	}
	if len(study) > 0 {
		blocks = append(blocks, Block{Anchor: AnchorTopRight, Lines: study})
	}

	var tech []string
	if md.InstitutionName != "" {
		tech = append(tech, "Instituição: "+md.InstitutionName)
	}
	if md.Manufacturer != "" {
		tech = append(tech, "Fabricante: "+md.Manufacturer)
	}
	if md.SliceThickness != "" {
		tech = append(tech, "Espessura: "+md.SliceThickness+"mm")
	}
	if md.KVP != "" {
		tech = append(tech, "kVp: "+md.KVP)
	}
	if len(tech) > 0 {
		blocks = append(blocks, Block{Anchor: AnchorBottomLeft, Lines: tech})
	}

	return blocks
}
