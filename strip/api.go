package strip

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// StripComments removes comments from every matching file under the
// configured source root, in sorted path order, rewriting each file in place.
//
// Failures of individual files are reported to out and counted but do not
// stop the run. The returned error is only ever a configuration error.
func StripComments(out io.Writer, cfg Config) (RunResult, error) {
	rc, err := cfg.resolve()
	if err != nil {
		return RunResult{}, err
	}

	paths := SortedSources(rc.sourceRoot, rc.suffix)
	fmt.Fprintf(out, "Found %d %sfiles to process.\n\n", len(paths), rc.label)

	cs := &commentStripper{codec: rc.codec, out: out}
	result := cs.processAll(paths)

	fmt.Fprintf(out, "\n%s Successfully processed %d/%d files.\n", tick, result.Processed, result.Found)
	return result, nil
}

// ListLanguages writes the known languages and their file suffixes to out.
func ListLanguages(out io.Writer) error {
	tw := tablewriter.NewWriter(out)
	tw.Header("language", "name", "suffix")
	for _, l := range Languages() {
		if err := tw.Append([]string{l.Name, l.DisplayName, l.Suffix}); err != nil {
			return err
		}
	}
	return tw.Render()
}
