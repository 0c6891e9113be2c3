// This tool exports the metadata of a whole recording folder as CSV, one
// row per wav file, for catalog spreadsheets.
package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fieldrec/wavemeta"
)

var errMissingDir = errors.New("missing directory argument")

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingDir) {
		fmt.Println("You must pass -dir with the folder of wav files to export")
		os.Exit(1)
	}

	log.Fatal(err)
}

func run(args []string, out io.Writer) error {
	flags := flag.NewFlagSet("wavcsv", flag.ContinueOnError)
	flags.SetOutput(out)
	dir := flags.String("dir", "", "directory of .wav files to export")
	outPath := flags.String("o", "", "write the CSV to this file instead of stdout")

	if err := flags.Parse(args); err != nil {
		return err
	}

	if *dir == "" {
		return errMissingDir
	}

	w := out

	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", *outPath, err)
		}
		defer f.Close()

		w = f
	}

	return export(w, *dir)
}

func export(w io.Writer, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", dir, err)
	}

	cw := csv.NewWriter(w)

	header := []string{
		"file", "format", "channels", "sample_rate", "bits",
		"cue_points", "labeled_cues", "title", "artist", "creation_date", "comment",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".wav") {
			continue
		}

		path := filepath.Join(dir, entry.Name())

		report, err := wavemeta.AnalyzeFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %s: %v\n", path, err)
			continue
		}

		if err := cw.Write(reportRow(entry.Name(), report)); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

func reportRow(name string, report *wavemeta.AnalysisReport) []string {
	var formatName, channels, sampleRate, bits string

	if f := report.Format; f != nil {
		formatName = f.FormatName
		bits = strconv.Itoa(int(f.BitsPerSample))
	}

	if af := report.AudioFormat(); af != nil {
		channels = strconv.Itoa(af.NumChannels)
		sampleRate = strconv.Itoa(af.SampleRate)
	}

	valid := report.ValidCuePoints()

	labeled := 0
	for _, cue := range valid {
		if _, ok := report.Label(cue.ID); ok {
			labeled++
		}
	}

	title, _ := report.Info.Get(wavemeta.TagTitle)
	artist, _ := report.Info.Get(wavemeta.TagArtist)
	date, _ := report.Info.Get(wavemeta.TagCreationDate)
	comment, _ := report.Info.Get(wavemeta.TagComment)

	return []string{
		name,
		formatName,
		channels,
		sampleRate,
		bits,
		strconv.Itoa(len(valid)),
		strconv.Itoa(labeled),
		title,
		artist,
		date,
		comment,
	}
}
