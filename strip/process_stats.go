package strip

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

type fileStats struct {
	Path   string
	Before int
	After  int
}

func (fs fileStats) removed() int {
	return fs.Before - fs.After
}

// statsProcessor measures what stripping would remove without writing
// anything back.
type statsProcessor struct {
	codec      *textCodec
	sourceRoot string

	FileCount    int
	ErrorCount   int
	RemovedCount int
	OtherCount   int

	files []fileStats
}

func (sp *statsProcessor) process(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	content, err := sp.codec.decode(raw)
	if err != nil {
		return err
	}
	// measured after line ending normalisation, which is not a removal
	before, err := sp.codec.encode(content)
	if err != nil {
		return err
	}
	cleaned, err := sp.codec.encode(RemoveComments(content))
	if err != nil {
		return err
	}

	name, err := filepath.Rel(sp.sourceRoot, path)
	if err != nil {
		name = path
	}

	fs := fileStats{Path: name, Before: len(before), After: len(cleaned)}
	sp.files = append(sp.files, fs)
	sp.FileCount++
	sp.RemovedCount += fs.removed()
	sp.OtherCount += fs.After
	return nil
}

func (sp *statsProcessor) print(out io.Writer) error {
	tw := tablewriter.NewWriter(out)
	tw.Header("file", "before", "after", "removed")
	for _, fs := range sp.files {
		if err := tw.Append([]string{
			fs.Path,
			strconv.Itoa(fs.Before),
			strconv.Itoa(fs.After),
			strconv.Itoa(fs.removed()),
		}); err != nil {
			return err
		}
	}
	if err := tw.Render(); err != nil {
		return err
	}

	fmt.Fprintf(out, "files : %d\n", sp.FileCount)
	fmt.Fprintf(out, "unreadable files : %d\n", sp.ErrorCount)
	fmt.Fprintf(out, "code bytes  (after stripping) : %d\n", sp.OtherCount)
	fmt.Fprintf(out, "removed bytes : %d\n", sp.RemovedCount)
	fmt.Fprintf(out, "total bytes : %d\n", sp.RemovedCount+sp.OtherCount)
	return nil
}

// Stats reports, per file and in total, how many bytes stripping comments
// would remove. Files are only read.
func Stats(out io.Writer, cfg Config) error {
	rc, err := cfg.resolve()
	if err != nil {
		return err
	}

	sp := &statsProcessor{codec: rc.codec, sourceRoot: rc.sourceRoot}
	for _, path := range SortedSources(rc.sourceRoot, rc.suffix) {
		if err := sp.process(path); err != nil {
			log.Printf("error reading %s : %v\n", path, err)
			sp.ErrorCount++
		}
	}
	return sp.print(out)
}
