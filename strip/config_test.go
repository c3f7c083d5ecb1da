package strip

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaults(t *testing.T) {
	assert := assert.New(t)

	rc, err := Config{}.resolve()
	require.NoError(t, err)

	assert.Equal("src/main/java", rc.sourceRoot)
	assert.Equal(".java", rc.suffix)
	assert.Equal("Java ", rc.label)
	assert.True(rc.codec.isUTF8())
}

func TestResolveSuffixOverride(t *testing.T) {
	assert := assert.New(t)

	rc, err := Config{Language: "java", Suffix: ".jav"}.resolve()
	require.NoError(t, err)
	assert.Equal(".jav", rc.suffix)
	assert.Equal("", rc.label)

	rc, err = Config{Language: "kotlin", Suffix: ".kt"}.resolve()
	require.NoError(t, err)
	assert.Equal(".kt", rc.suffix)
	assert.Equal("Kotlin ", rc.label)
}

func TestResolveErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := Config{Language: "cobol"}.resolve()
	assert.EqualError(err, "unknown language 'cobol'")

	_, err = Config{Encoding: "nope"}.resolve()
	assert.ErrorContains(err, "invalid encoding")
}

func TestLookupLanguage(t *testing.T) {
	assert := assert.New(t)

	lang, err := LookupLanguage(" Java ")
	require.NoError(t, err)
	assert.Equal(Language{"java", "Java", ".java"}, lang)

	lang, err = LookupLanguage("csharp")
	require.NoError(t, err)
	assert.Equal(".cs", lang.Suffix)
}

func TestLanguagesSorted(t *testing.T) {
	assert := assert.New(t)

	all := Languages()
	assert.Len(all, len(languages))
	assert.IsIncreasing(func() []string {
		var names []string
		for _, l := range all {
			names = append(names, l.Name)
		}
		return names
	}())
}

func TestListLanguages(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	require.NoError(t, ListLanguages(&out))
	assert.Contains(out.String(), ".java")
	assert.Contains(out.String(), "TypeScript")
}
