package strip

import (
	"fmt"
)

const (
	DefaultSourceRoot = "src/main/java"
	DefaultLanguage   = "java"
	DefaultEncoding   = "utf-8"
)

// Config selects which files are processed and how their text is decoded.
type Config struct {
	SourceRoot string
	// Language picks the file suffix unless Suffix is set.
	Language string
	Suffix   string
	Encoding string
}

// DefaultConfig reproduces the behaviour of a bare invocation: java files
// under src/main/java, read and written as utf-8.
func DefaultConfig() Config {
	return Config{
		SourceRoot: DefaultSourceRoot,
		Language:   DefaultLanguage,
		Encoding:   DefaultEncoding,
	}
}

type resolvedConfig struct {
	sourceRoot string
	suffix     string
	// label used in the "Found N ... files" banner
	label string
	codec *textCodec
}

func (c Config) resolve() (*resolvedConfig, error) {
	rc := &resolvedConfig{sourceRoot: c.SourceRoot}
	if rc.sourceRoot == "" {
		rc.sourceRoot = DefaultSourceRoot
	}

	language := c.Language
	if language == "" {
		language = DefaultLanguage
	}
	lang, err := LookupLanguage(language)
	if err != nil {
		return nil, err
	}

	rc.suffix = lang.Suffix
	rc.label = lang.DisplayName + " "
	if c.Suffix != "" && c.Suffix != lang.Suffix {
		rc.suffix = c.Suffix
		rc.label = ""
	}

	encoding := c.Encoding
	if encoding == "" {
		encoding = DefaultEncoding
	}
	rc.codec, err = newTextCodec(encoding)
	if err != nil {
		return nil, fmt.Errorf("invalid encoding : %w", err)
	}

	return rc, nil
}
