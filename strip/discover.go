package strip

import (
	"errors"
	"io/fs"
	"iter"
	"log"
	"path/filepath"
	"slices"
	"strings"
)

// Discover yields every regular file below root whose name ends in suffix.
// The order is that of the directory walk; use SortedSources for a stable
// order. A missing root yields nothing.
func Discover(root string, suffix string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if !errors.Is(err, fs.ErrNotExist) {
					log.Printf("skipping '%s' : %v\n", path, err)
				}
				return nil
			}
			if d.Type().IsRegular() && strings.HasSuffix(d.Name(), suffix) {
				if !yield(path) {
					return filepath.SkipAll
				}
			}
			return nil
		})
	}
}

// SortedSources collects the discovered files in lexicographic order.
func SortedSources(root string, suffix string) []string {
	return slices.Sorted(Discover(root, suffix))
}
