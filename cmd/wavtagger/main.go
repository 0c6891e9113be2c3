// This command line tool helps the user tag wav files by appending INFO
// metadata without touching the audio bytes. By default every tagged file
// is written as an _edit copy next to the original; other modes replace
// the original, keep a backup or write under a chosen name.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fieldrec/wavemeta"
	"github.com/fieldrec/wavemeta/tagsave"
)

var (
	flagFileToTag   = flag.String("file", "", "Path to the wave file to tag")
	flagDirToTag    = flag.String("dir", "", "Directory containing all the wav files to tag")
	flagTitleRegexp = flag.String("regexp", "", `submatch regexp to use to set the title dynamically by extracting it from the filename (ignoring the extension), example: 'my_files_\d\d_(.*)'`)
	flagMode        = flag.String("mode", "copy", "Where the tagged file goes: copy, inplace, backup or custom")
	flagName        = flag.String("name", "", "Output file name, only used with -mode custom")
	//
	flagTitle     = flag.String("title", "", "File's title")
	flagArtist    = flag.String("artist", "", "File's artist")
	flagComments  = flag.String("comments", "", "File's comments")
	flagCopyright = flag.String("copyright", "", "File's copyright")
	flagGenre     = flag.String("genre", "", "File's genre")
	flagDate      = flag.String("date", "", "File's creation date")
	flagSoftware  = flag.String("software", "", "Software the file was produced with")
)

func main() {
	flag.Parse()

	if *flagFileToTag == "" && *flagDirToTag == "" {
		fmt.Println("You need to pass -file or -dir to indicate what file or folder content to tag.")
		os.Exit(1)
	}

	if *flagFileToTag != "" {
		if err := tagFile(*flagFileToTag); err != nil {
			fmt.Printf("Something went wrong when tagging %s - error: %v\n", *flagFileToTag, err)
			os.Exit(1)
		}
	}

	if *flagDirToTag != "" {
		entries, err := os.ReadDir(*flagDirToTag)
		if err != nil {
			fmt.Printf("Failed to list %s - error: %v\n", *flagDirToTag, err)
			os.Exit(1)
		}

		for _, entry := range entries {
			if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".wav") {
				continue
			}

			filePath := filepath.Join(*flagDirToTag, entry.Name())

			if err := tagFile(filePath); err != nil {
				fmt.Printf("Something went wrong tagging %s - %v\n", filePath, err)
			}
		}
	}
}

func tagFile(path string) error {
	meta := metadataFromFlags(path)
	if meta.Len() == 0 {
		return errors.New("no metadata flags set, nothing to tag")
	}

	var (
		res *tagsave.Result
		err error
	)

	switch *flagMode {
	case "copy":
		res, err = tagsave.EditCopy(path, meta)
	case "inplace":
		res, err = tagsave.InPlace(path, meta)
	case "backup":
		res, err = tagsave.WithBackup(path, meta)
	case "custom":
		res, err = tagsave.CustomName(path, *flagName, meta)
	default:
		return fmt.Errorf("unknown mode %q", *flagMode)
	}

	if err != nil {
		return err
	}

	fmt.Println("Tagged file available at", res.OutputPath)

	if res.BackupPath != "" {
		fmt.Println("Original preserved at", res.BackupPath)
	}

	return nil
}

func metadataFromFlags(path string) *wavemeta.InfoMetadata {
	meta := wavemeta.NewInfoMetadata()

	var title string

	if *flagTitleRegexp != "" {
		filename := filepath.Base(path)
		filename = filename[:len(filename)-len(filepath.Ext(path))]
		re := regexp.MustCompile(*flagTitleRegexp)

		matches := re.FindStringSubmatch(filename)
		if len(matches) > 1 {
			title = matches[1]
		} else {
			fmt.Printf("No matches for title regexp %s in %s\n", *flagTitleRegexp, filename)
		}
	}

	// An explicit -title beats the extracted one.
	if *flagTitle != "" {
		title = *flagTitle
	}

	if title != "" {
		meta.Set(wavemeta.TagTitle, title)
	}

	if *flagArtist != "" {
		meta.Set(wavemeta.TagArtist, *flagArtist)
	}

	if *flagComments != "" {
		meta.Set(wavemeta.TagComment, *flagComments)
	}

	if *flagCopyright != "" {
		meta.Set(wavemeta.TagCopyright, *flagCopyright)
	}

	if *flagGenre != "" {
		meta.Set(wavemeta.TagGenre, *flagGenre)
	}

	if *flagDate != "" {
		meta.Set(wavemeta.TagCreationDate, *flagDate)
	}

	if *flagSoftware != "" {
		meta.Set(wavemeta.TagSoftware, *flagSoftware)
	}

	return meta
}
