// Package pkg provides the core libraries for dcm2bmp DICOM conversion.
//
// # Overview
//
// dcm2bmp turns DICOM files into 8-bit grayscale BMP images annotated with a
// metadata overlay. The pkg directory is organized along the conversion flow:
//
//  1. [dicom] - Decoding: fixed-field Record, probe decode, metadata extraction
//  2. [transform] - Numeric pipeline: rescale, windowing, 8-bit normalization
//  3. [overlay] - Size-adaptive text layout and drawing
//  4. [fonts] - Scalable system font resolution with a bitmap fallback
//  5. [codec] - Lossless BMP persistence
//  6. [pipeline] - Orchestration: single-file and resilient batch conversion
//
// # Architecture
//
// The data flow for one file:
//
//	DICOM file
//	     ↓
//	[dicom] decode (Record: pixels + fixed tag set)
//	     ↓
//	[transform] rescale → window → normalize
//	     ↓
//	[overlay] metadata text, laid out by image size
//	     ↓
//	[codec] BMP output
//
// Metadata extraction runs independently of the numeric path; both meet in
// [pipeline].
//
// # Quick Start
//
//	conv, err := pipeline.New(pipeline.Options{
//	    InputDir:  "studies/",
//	    OutputDir: "bmp/",
//	    Window:    transform.Params{Center: 40, Width: 400},
//	})
//	if err != nil {
//	    return err
//	}
//	summary, err := conv.ConvertDir()
//
// Support packages: [errors] carries coded structured errors for every
// conversion stage; [buildinfo] holds ldflags-injected version information.
//
// [dicom]: https://pkg.go.dev/github.com/dcmtools/dcm2bmp/pkg/dicom
// [transform]: https://pkg.go.dev/github.com/dcmtools/dcm2bmp/pkg/transform
// [overlay]: https://pkg.go.dev/github.com/dcmtools/dcm2bmp/pkg/overlay
// [fonts]: https://pkg.go.dev/github.com/dcmtools/dcm2bmp/pkg/fonts
// [codec]: https://pkg.go.dev/github.com/dcmtools/dcm2bmp/pkg/codec
// [pipeline]: https://pkg.go.dev/github.com/dcmtools/dcm2bmp/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/dcmtools/dcm2bmp/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/dcmtools/dcm2bmp/pkg/buildinfo
package pkg
