package strip

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	tick  = color.New(color.FgGreen).Sprint("✓")
	cross = color.New(color.FgRed).Sprint("✗")
)

// RunResult tallies a strip-comments run.
type RunResult struct {
	Found     int
	Processed int
}

// Failed is the number of files that could not be cleaned.
func (rr RunResult) Failed() int {
	return rr.Found - rr.Processed
}

type commentStripper struct {
	codec *textCodec
	out   io.Writer

	result RunResult
}

// process rewrites one file in place. Nothing is written until the new content
// has been fully produced, so a read, decode or encode failure leaves the file
// as it was. A failed write may leave it truncated.
func (cs *commentStripper) process(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	content, err := cs.codec.decode(raw)
	if err != nil {
		return err
	}

	cleaned, err := cs.codec.encode(RemoveComments(content))
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, cleaned, info.Mode().Perm()); err != nil {
		return err
	}
	return nil
}

func (cs *commentStripper) processAll(paths []string) RunResult {
	cs.result = RunResult{Found: len(paths)}

	for _, path := range paths {
		fmt.Fprintf(cs.out, "Processing: %s\n", path)
		if err := cs.process(path); err != nil {
			fmt.Fprintf(cs.out, "  %s Error processing %s: %v\n", cross, path, err)
			continue
		}
		fmt.Fprintf(cs.out, "  %s Cleaned: %s\n", tick, path)
		cs.result.Processed++
	}

	return cs.result
}
