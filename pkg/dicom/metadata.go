package dicom

import (
	"strings"
	"time"
)

// Metadata is the fixed record of overlay-relevant fields. Every field is a
// trimmed string; absent or unextractable fields stay empty. Extraction never
// fails the whole record.
type Metadata struct {
	PatientName      string
	PatientID        string
	PatientBirthDate string

	StudyDate         string
	StudyDescription  string
	SeriesDescription string

	InstitutionName string
	Manufacturer    string
	SliceThickness  string
	KVP             string
	WindowCenter    string
	WindowWidth     string
}

// ExtractMetadata pulls the overlay fields from a decoded record. The three
// field groups (patient, study, technical) are filled independently so a
// defect in one group's values cannot empty the others.
func ExtractMetadata(rec *Record) Metadata {
	var md Metadata
	extractPatient(rec, &md)
	extractStudy(rec, &md)
	extractTechnical(rec, &md)
	return md
}

func extractPatient(rec *Record, md *Metadata) {
	md.PatientName = strings.TrimSpace(rec.PatientName)
	md.PatientID = strings.TrimSpace(rec.PatientID)
	md.PatientBirthDate = reformatDate(strings.TrimSpace(rec.PatientBirthDate))
}

func extractStudy(rec *Record, md *Metadata) {
	md.StudyDate = reformatDate(strings.TrimSpace(rec.StudyDate))
	md.StudyDescription = strings.TrimSpace(rec.StudyDescription)
	md.SeriesDescription = strings.TrimSpace(rec.SeriesDescription)
}

func extractTechnical(rec *Record, md *Metadata) {
	md.InstitutionName = strings.TrimSpace(rec.InstitutionName)
	md.Manufacturer = strings.TrimSpace(rec.Manufacturer)
	md.SliceThickness = strings.TrimSpace(rec.SliceThickness)
	md.KVP = strings.TrimSpace(rec.KVP)
	md.WindowCenter = strings.TrimSpace(rec.WindowCenterRaw)
	md.WindowWidth = strings.TrimSpace(rec.WindowWidthRaw)
}

// reformatDate converts a DICOM DA value (YYYYMMDD) to DD/MM/YYYY. Values
// that do not parse are kept unchanged; empty stays empty.
func reformatDate(raw string) string {
	if raw == "" {
		return ""
	}
	t, err := time.Parse("20060102", raw)
	if err != nil {
		return raw
	}
	return t.Format("02/01/2006")
}
