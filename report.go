package wavemeta

import "github.com/go-audio/audio"

// Diagnostic records a non-fatal structural anomaly found while analyzing
// a file, such as a cue chunk shorter than its declared record count.
type Diagnostic struct {
	// Chunk is the four-character identifier of the chunk the anomaly was
	// found in.
	Chunk   string
	Message string
}

// AnalysisReport aggregates everything decoded from one file. A report is
// created fresh per analysis call and owned by the caller; consumers treat
// it as a snapshot and use Clone before handing it to code that mutates.
type AnalysisReport struct {
	Format    *FormatInfo
	CuePoints []CuePoint
	// CueLabels maps cue point ids to their adtl labels.
	CueLabels map[uint32]string
	Broadcast *BroadcastMetadata
	Info      *InfoMetadata
	IXML      string
	// Unknown preserves every chunk the analyzer does not recognize, in
	// file order.
	Unknown []UnknownChunk
	// SampleRate duplicates Format.SampleRate for convenience; zero when
	// no fmt chunk was decoded.
	SampleRate uint32
	// Diagnostics lists the non-fatal anomalies encountered, in the order
	// they were found.
	Diagnostics []Diagnostic
}

// AudioFormat returns the analyzed file's audio format, or nil when no fmt
// chunk was decoded.
func (r *AnalysisReport) AudioFormat() *audio.Format {
	if r == nil || r.Format == nil {
		return nil
	}

	return &audio.Format{
		NumChannels: int(r.Format.NumChannels),
		SampleRate:  int(r.Format.SampleRate),
	}
}

// ValidCuePoints returns the report's cue points filtered to those with a
// meaningful sample offset, with times derived from the report sample rate.
func (r *AnalysisReport) ValidCuePoints() []ValidCuePoint {
	if r == nil {
		return nil
	}

	return ValidCuePoints(r.CuePoints, r.SampleRate)
}

// Label returns the adtl label attached to a cue point id, if any.
func (r *AnalysisReport) Label(cueID uint32) (string, bool) {
	if r == nil {
		return "", false
	}

	label, ok := r.CueLabels[cueID]

	return label, ok
}

// Clone returns an independent deep copy of the report.
func (r *AnalysisReport) Clone() *AnalysisReport {
	if r == nil {
		return nil
	}

	out := &AnalysisReport{
		Format:     r.Format.Clone(),
		Broadcast:  cloneBroadcast(r.Broadcast),
		Info:       r.Info.Clone(),
		IXML:       r.IXML,
		Unknown:    cloneUnknownChunks(r.Unknown),
		SampleRate: r.SampleRate,
	}

	if r.CuePoints != nil {
		out.CuePoints = append([]CuePoint(nil), r.CuePoints...)
	}

	if r.CueLabels != nil {
		out.CueLabels = make(map[uint32]string, len(r.CueLabels))
		for id, label := range r.CueLabels {
			out.CueLabels[id] = label
		}
	}

	if r.Diagnostics != nil {
		out.Diagnostics = append([]Diagnostic(nil), r.Diagnostics...)
	}

	return out
}

func (r *AnalysisReport) addDiagnostic(id [4]byte, msg string) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Chunk: string(id[:]), Message: msg})
}

func cloneBroadcast(b *BroadcastMetadata) *BroadcastMetadata {
	if b == nil {
		return nil
	}

	out := *b

	return &out
}
