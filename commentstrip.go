package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/utilitywarehouse/commentstrip/strip"
)

func main() {
	log.SetFlags(0)

	defaults := strip.DefaultConfig()

	app := &cli.App{
		Name:  "commentstrip",
		Usage: "Remove comments from source files, in place",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "source-root",
				Value: defaults.SourceRoot,
				Usage: "Root directory to search for source files",
			},
			&cli.StringFlag{
				Name:  "language",
				Value: defaults.Language,
				Usage: "Language of the source files (see the languages command)",
			},
			&cli.StringFlag{
				Name:  "suffix",
				Usage: "File name suffix to match, overrides the language's suffix",
			},
			&cli.StringFlag{
				Name:  "encoding",
				Value: defaults.Encoding,
				Usage: "Text encoding of the source files, e.g. utf-8 or windows-1252",
			},
		},
		Action: stripComments,
		Commands: []*cli.Command{
			{
				Name:   "strip-comments",
				Usage:  "Remove comments from the source files (the default)",
				Action: stripComments,
			},
			{
				Name:  "stats",
				Usage: "Show how much stripping comments would remove, without changing any file",
				Action: func(ctx *cli.Context) error {
					return strip.Stats(os.Stdout, configFrom(ctx))
				},
			},
			{
				Name:  "languages",
				Usage: "List the supported languages and their file suffixes",
				Action: func(ctx *cli.Context) error {
					return strip.ListLanguages(os.Stdout)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func stripComments(ctx *cli.Context) error {
	_, err := strip.StripComments(os.Stdout, configFrom(ctx))
	return err
}

func configFrom(ctx *cli.Context) strip.Config {
	return strip.Config{
		SourceRoot: ctx.String("source-root"),
		Language:   ctx.String("language"),
		Suffix:     ctx.String("suffix"),
		Encoding:   ctx.String("encoding"),
	}
}
