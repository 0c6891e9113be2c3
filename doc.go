// Package wavemeta reads and writes metadata carried in WAVE (RIFF) files.
//
// The package walks a file's top-level chunks and decodes the ones used by
// field-recording workflows: fmt (audio parameters, including the
// extensible-format tail), cue markers, bext broadcast metadata, LIST/INFO
// tags, LIST/adtl cue labels, and iXML production metadata. Chunks it does
// not recognize are preserved verbatim. Sample data is never decoded.
//
// Analyze and AnalyzeFile aggregate everything into one AnalysisReport per
// file. Structural anomalies that do not invalidate the container (for
// example a cue chunk shorter than its declared record count) are reported
// in the report's Diagnostics list instead of failing the analysis; only a
// missing or invalid RIFF/WAVE header makes an operation return an error.
//
// BuildInfoChunk and InjectInfoChunk form the write path: a LIST/INFO chunk
// is built from an InfoMetadata mapping and appended to an existing file
// image, rewriting the container's declared total size. Injection is a pure
// append and never removes a pre-existing INFO chunk, so tagging the same
// file twice yields two INFO lists. The tagsave subpackage wraps this in
// file-level save strategies.
package wavemeta
