package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/iziplay/isbn-api/pkg/config"
	"github.com/iziplay/isbn-api/pkg/isbn"
	"github.com/urfave/cli/v2"
)

var intFlag = &cli.BoolFlag{
	Name:  "int",
	Usage: "read arguments as integers, zero padded to 10 digits",
}

func main() {
	cfg := config.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	if err := newApp(os.Stdout, cfg).Run(os.Args); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, cfg *config.Config) *cli.App {
	return &cli.App{
		Name:   "isbn",
		Usage:  "validate and convert ISBN-10 and ISBN-13 codes",
		Writer: w,
		Commands: []*cli.Command{
			{
				Name:      "validate",
				Aliases:   []string{"check"},
				Usage:     "check codes against their check digit",
				ArgsUsage: "ISBN...",
				Flags:     []cli.Flag{intFlag},
				Action: func(c *cli.Context) error {
					failed := 0
					for _, arg := range c.Args().Slice() {
						id, err := identifier(arg, c.Bool("int"))
						if err == nil {
							err = isbn.Check(id)
						}
						if err != nil {
							failed++
							fmt.Fprintf(w, "%s: %v\n", arg, err)
							continue
						}
						fmt.Fprintf(w, "%s: valid %s\n", arg, isbn.KindOf(id))
					}
					if failed > 0 {
						return cli.Exit("", 1)
					}
					return nil
				},
			},
			{
				Name:      "convert",
				Usage:     "convert ISBN-10 to ISBN-13 and back, without checking the input",
				ArgsUsage: "ISBN...",
				Flags:     []cli.Flag{intFlag},
				Action: func(c *cli.Context) error {
					for _, arg := range c.Args().Slice() {
						id, _ := identifier(arg, c.Bool("int"))
						fmt.Fprintf(w, "%s: %s\n", arg, isbn.Convert(id))
					}
					return nil
				},
			},
			{
				Name:      "normalize",
				Usage:     "remove hyphens and spaces",
				ArgsUsage: "ISBN",
				Action: func(c *cli.Context) error {
					normalized, err := isbn.Normalize(firstArg(c))
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					fmt.Fprintln(w, normalized)
					return nil
				},
			},
			{
				Name:      "url",
				Usage:     "build a book URL from the ISBN-10 form of a valid code",
				ArgsUsage: "ISBN",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "base",
						Usage: "URL prefix, defaults to " + isbn.DefaultBaseURL,
						Value: cfg.BookBaseURL,
					},
				},
				Action: func(c *cli.Context) error {
					url, err := isbn.BookURL(c.String("base"), firstArg(c))
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					fmt.Fprintln(w, url)
					return nil
				},
			},
		},
	}
}

// firstArg returns nil when no argument was given, so that a missing code is
// told apart from an empty one.
func firstArg(c *cli.Context) *string {
	if !c.Args().Present() {
		return nil
	}
	arg := c.Args().First()
	return &arg
}

// identifier returns arg as text, or with asInt the zero padded decimal form of the integer it holds.
func identifier(arg string, asInt bool) (string, error) {
	if !asInt {
		return arg, nil
	}
	n, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %v", isbn.ErrMalformed, err)
	}
	return isbn.NormalizeInt(n), nil
}
