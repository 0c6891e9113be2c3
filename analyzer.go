package wavemeta

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/riff"
)

// Analyze reads a whole WAVE stream and decodes every recognized metadata
// chunk into a fresh AnalysisReport. Failures inside individual chunks are
// recorded as diagnostics and leave the matching report field unset; only
// a missing or invalid container header makes the analysis itself fail.
func Analyze(r io.Reader) (*AnalysisReport, error) {
	chunks, err := ReadChunks(r)
	if err != nil {
		return nil, err
	}

	report := &AnalysisReport{CueLabels: make(map[uint32]string)}

	for _, chunk := range chunks {
		switch chunk.ID {
		case riff.FmtID:
			info, err := DecodeFormatChunk(chunk.Data)
			if err != nil {
				report.addDiagnostic(chunk.ID, err.Error())
				continue
			}

			report.Format = info
			report.SampleRate = info.SampleRate
		case CIDCue:
			points, diags := DecodeCueChunk(chunk.Data)
			report.CuePoints = points
			report.Diagnostics = append(report.Diagnostics, diags...)
		case CIDBext:
			bext, err := DecodeBroadcastChunk(chunk.Data)
			if err != nil {
				report.addDiagnostic(chunk.ID, err.Error())
				continue
			}

			report.Broadcast = bext
		case CIDList:
			sub, ok := ListSubType(chunk.Data)
			if !ok {
				report.addDiagnostic(chunk.ID, "LIST chunk too short for a sub-type tag")
				continue
			}

			switch sub {
			case CIDInfo:
				report.Info = DecodeInfoList(chunk.Data)
			case CIDAdtl:
				report.CueLabels = DecodeLabelList(chunk.Data)
			}
		case CIDIXML:
			report.IXML = DecodeIXMLChunk(chunk.Data)
		case riff.DataFormatID:
			// sample data is metadata-free and never decoded here
		default:
			report.Unknown = append(report.Unknown, UnknownChunk{
				ID:   chunk.ID,
				Size: chunk.Size,
				Data: append([]byte(nil), chunk.Data...),
			})
		}
	}

	return report, nil
}

// AnalyzeFile opens and analyzes one file.
func AnalyzeFile(path string) (*AnalysisReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return Analyze(f)
}
