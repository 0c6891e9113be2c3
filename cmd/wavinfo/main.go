// This tool prints every metadata chunk of the passed wav files: format,
// broadcast extension, INFO tags, cue points with their labels, iXML and
// unknown chunks, plus any structural warnings found along the way.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/aiff"

	"github.com/fieldrec/wavemeta"
)

const missingPathMessage = "You must pass -dir or the path of at least one file to analyze"

var (
	errMissingPath    = errors.New("missing path argument")
	errAnalysisFailed = errors.New("some files could not be analyzed")
)

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	log.Fatal(err)
}

func run(args []string, out io.Writer) error {
	flags := flag.NewFlagSet("wavinfo", flag.ContinueOnError)
	flags.SetOutput(out)
	dir := flags.String("dir", "", "analyze every .wav file in this directory")

	if err := flags.Parse(args); err != nil {
		return err
	}

	paths := flags.Args()

	if *dir != "" {
		entries, err := os.ReadDir(*dir)
		if err != nil {
			return fmt.Errorf("failed to list %s: %w", *dir, err)
		}

		for _, entry := range entries {
			if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".wav") {
				continue
			}

			paths = append(paths, filepath.Join(*dir, entry.Name()))
		}
	}

	if len(paths) == 0 {
		return errMissingPath
	}

	var failed bool

	for i, path := range paths {
		if i > 0 {
			fmt.Fprintln(out)
		}

		if err := printFile(out, path); err != nil {
			failed = true
			fmt.Fprintf(out, "Failed to analyze %s - %v\n", path, err)
		}
	}

	if failed {
		return errAnalysisFailed
	}

	return nil
}

func printFile(out io.Writer, path string) error {
	report, err := wavemeta.AnalyzeFile(path)
	if err != nil {
		if errors.Is(err, wavemeta.ErrNotWave) && isAiffFile(path) {
			return fmt.Errorf("%s is an AIFF file, not a WAVE file", path)
		}

		return err
	}

	fmt.Fprintf(out, "File: %s\n", path)
	printReport(out, report)

	return nil
}

// isAiffFile probes for the most common mix-up in recording folders, a file
// recorded as AIFF but renamed to .wav.
func isAiffFile(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	return aiff.NewDecoder(f).IsValidFile()
}

func printReport(out io.Writer, report *wavemeta.AnalysisReport) {
	if f := report.Format; f != nil {
		fmt.Fprintf(out, "Format: %s\n", f.FormatName)
		fmt.Fprintf(out, "Channels: %d\n", f.NumChannels)
		fmt.Fprintf(out, "Sample rate: %d Hz\n", f.SampleRate)
		fmt.Fprintf(out, "Bits per sample: %d\n", f.BitsPerSample)
		fmt.Fprintf(out, "Byte rate: %d\n", f.ByteRate)
		fmt.Fprintf(out, "Block align: %d\n", f.BlockAlign)

		if ext := f.Extensible; ext != nil {
			fmt.Fprintf(out, "Valid bits: %d\n", ext.ValidBits)
			fmt.Fprintf(out, "Channel mask: 0x%X\n", ext.ChannelMask)
			fmt.Fprintf(out, "Sub-format: %s (%s)\n",
				wavemeta.FormatName(f.EffectiveFormatTag()), ext.SubFormatGUID())
		} else if len(f.ExtraData) > 0 {
			fmt.Fprintf(out, "Extension bytes: %s\n", wavemeta.HexDump(f.ExtraData, 32))
		}
	}

	if bext := report.Broadcast; bext != nil {
		fmt.Fprintln(out, "Broadcast extension:")
		fmt.Fprintf(out, "\tDescription: %s\n", bext.Description)
		fmt.Fprintf(out, "\tOriginator: %s\n", bext.Originator)
		fmt.Fprintf(out, "\tOriginator reference: %s\n", bext.OriginatorReference)
		fmt.Fprintf(out, "\tOrigination: %s %s\n", bext.OriginationDate, bext.OriginationTime)
		fmt.Fprintf(out, "\tTime reference: %d samples\n", bext.TimeReference)
		fmt.Fprintf(out, "\tVersion: %d\n", bext.Version)
		fmt.Fprintf(out, "\tUMID: %s\n", bext.UMIDHex())

		if bext.CodingHistory != "" {
			fmt.Fprintf(out, "\tCoding history: %s\n", bext.CodingHistory)
		}
	}

	if report.Info != nil && report.Info.Len() > 0 {
		fmt.Fprintln(out, "INFO tags:")

		for _, key := range report.Info.Keys() {
			value, _ := report.Info.Get(key)
			fmt.Fprintf(out, "\t%s: %s\n", wavemeta.InfoTagName(key), value)
		}
	}

	if cues := report.ValidCuePoints(); len(cues) > 0 {
		fmt.Fprintln(out, "Cue points:")

		for _, cue := range cues {
			line := fmt.Sprintf("\t[%d] sample %d", cue.ID, cue.SampleOffset)
			if report.SampleRate > 0 {
				line += fmt.Sprintf(" (%.3fs)", cue.Time)
			}

			if label, ok := report.Label(cue.ID); ok {
				line += " " + label
			}

			fmt.Fprintln(out, line)
		}
	}

	if report.IXML != "" {
		fmt.Fprintf(out, "iXML: %d bytes\n", len(report.IXML))
	}

	for _, chunk := range report.Unknown {
		fmt.Fprintf(out, "Unknown chunk %q: %d bytes", chunk.IDString(), chunk.Size)

		if preview := wavemeta.HexDump(chunk.Data, 16); preview != "" {
			fmt.Fprintf(out, " (%s)", preview)
		}

		fmt.Fprintln(out)
	}

	for _, d := range report.Diagnostics {
		fmt.Fprintf(out, "Warning: %s chunk: %s\n", d.Chunk, d.Message)
	}
}
