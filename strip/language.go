package strip

import (
	"fmt"
	"sort"
	"strings"
)

// Language is a C-family source language. All of them share the /** */,
// /* */ and // comment markers, so only the file suffix differs.
type Language struct {
	Name        string
	DisplayName string
	Suffix      string
}

var languages = map[string]Language{
	"c":          {"c", "C", ".c"},
	"cpp":        {"cpp", "C++", ".cpp"},
	"csharp":     {"csharp", "C#", ".cs"},
	"dart":       {"dart", "Dart", ".dart"},
	"go":         {"go", "Go", ".go"},
	"java":       {"java", "Java", ".java"},
	"javascript": {"javascript", "JavaScript", ".js"},
	"kotlin":     {"kotlin", "Kotlin", ".kt"},
	"rust":       {"rust", "Rust", ".rs"},
	"scala":      {"scala", "Scala", ".scala"},
	"swift":      {"swift", "Swift", ".swift"},
	"typescript": {"typescript", "TypeScript", ".ts"},
}

// LookupLanguage finds a language by name, ignoring case.
func LookupLanguage(name string) (Language, error) {
	lang, ok := languages[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Language{}, fmt.Errorf("unknown language '%s'", name)
	}
	return lang, nil
}

// Languages returns every known language, ordered by name.
func Languages() []Language {
	var all []Language
	for _, l := range languages {
		all = append(all, l)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}
