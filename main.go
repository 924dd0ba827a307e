package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/hesusruiz/tagtree/render"
	"github.com/hesusruiz/tagtree/tagtree"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// setup creates the logger and the effective configuration from the global flags
func setup(c *cli.Context) (*zap.SugaredLogger, tagtree.Config, error) {

	var z *zap.Logger
	var err error

	// Setup the logging system
	if c.Bool("debug") {
		z, err = zap.NewDevelopment()
	} else {
		z, err = zap.NewProduction()
	}
	if err != nil {
		return nil, tagtree.Config{}, err
	}
	sugar := z.Sugar()

	// The configuration file is optional, flags are applied on top of it
	cfg := tagtree.DefaultConfig()
	if name := c.String("config"); len(name) > 0 {
		cfg, err = tagtree.LoadConfig(name)
		if err != nil {
			return nil, tagtree.Config{}, err
		}
	}

	opts := tagtree.Options{VoidTags: c.StringSlice("void")}
	if c.Bool("keep-whitespace") {
		trim := false
		opts.TrimWhitespace = &trim
	}
	cfg = cfg.With(opts)

	sugar.Debugw("configuration", "voidTags", cfg.VoidTags.Tags(), "trimWhitespace", cfg.TrimWhitespace)

	return sugar, cfg, nil
}

// writeMarkup writes markup and a new line, colored if requested
func writeMarkup(c *cli.Context, w io.Writer, markup string) error {
	if c.Bool("color") {
		if err := render.Highlight(w, markup, c.String("style"), "terminal256"); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	}
	_, err := fmt.Fprintln(w, markup)
	return err
}

// process is the main entry point of the program. It formats the input files.
func process(c *cli.Context) error {

	sugar, cfg, err := setup(c)
	if err != nil {
		return err
	}
	defer sugar.Sync()

	p := tagtree.NewParser(cfg, sugar)

	// Output file name command line parameter
	outputFileName := c.String("output")

	// Get the input file names
	inputFileNames := c.Args().Slice()
	if len(inputFileNames) == 0 {
		inputFileNames = []string{"index.html"}
		fmt.Fprintf(c.App.ErrWriter, "no input file provided, using %q\n", inputFileNames[0])
	}
	if len(outputFileName) > 0 && len(inputFileNames) > 1 {
		return errors.New("--output can be used with only one input file")
	}

	// If the user specified to watch, loop processing the input file when modified
	if c.Bool("watch") {
		if len(outputFileName) == 0 || len(inputFileNames) > 1 {
			return errors.New("--watch needs one input file and --output")
		}
		return watch(c.Context, p, inputFileNames[0], outputFileName, sugar)
	}

	// Each file is an independent document, so they are formatted in parallel
	results := make([]string, len(inputFileNames))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, name := range inputFileNames {
		i, name := i, name
		g.Go(func() error {
			doc, err := p.ParseFile(name)
			if err != nil {
				return err
			}
			results[i] = doc.Stringify()
			sugar.Debugw("formatted", "file", name, "elements", len(doc.Descendants()))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Do nothing if flag dryrun was specified
	if c.Bool("dryrun") {
		for _, name := range inputFileNames {
			fmt.Fprintf(c.App.Writer, "%s: ok\n", name)
		}
		return nil
	}

	if len(outputFileName) > 0 {
		return os.WriteFile(outputFileName, []byte(results[0]+"\n"), 0664)
	}

	if c.Bool("inplace") {
		for i, name := range inputFileNames {
			if err := os.WriteFile(name, []byte(results[i]+"\n"), 0664); err != nil {
				return err
			}
		}
		return nil
	}

	for _, markup := range results {
		if err := writeMarkup(c, c.App.Writer, markup); err != nil {
			return err
		}
	}

	return nil
}

// query prints the elements of a file matching the selection flags
func query(c *cli.Context) error {

	sugar, cfg, err := setup(c)
	if err != nil {
		return err
	}
	defer sugar.Sync()

	if c.NArg() != 1 {
		return errors.New("query needs exactly one input file")
	}

	doc, err := tagtree.NewParser(cfg, sugar).ParseFile(c.Args().First())
	if err != nil {
		return err
	}

	var found []*tagtree.Element
	switch {
	case len(c.String("id")) > 0:
		if e := doc.GetElementById(c.String("id")); e != nil {
			found = append(found, e)
		}
	case len(c.String("class")) > 0:
		found = doc.GetElementsByClassName(c.String("class"))
	case len(c.String("tag")) > 0:
		found = doc.GetElementsByTagName(c.String("tag"))
	default:
		return errors.New("one of --id, --class or --tag is required")
	}

	sugar.Debugw("query", "file", c.Args().First(), "found", len(found))

	if c.Bool("count") {
		_, err := fmt.Fprintln(c.App.Writer, len(found))
		return err
	}

	for _, e := range found {
		if err := writeMarkup(c, c.App.Writer, e.Stringify()); err != nil {
			return err
		}
	}

	return nil
}

// diagram prints the element tree of a file as a D2 diagram, or renders it to SVG
func diagram(c *cli.Context) error {

	sugar, cfg, err := setup(c)
	if err != nil {
		return err
	}
	defer sugar.Sync()

	if c.NArg() != 1 {
		return errors.New("diagram needs exactly one input file")
	}

	doc, err := tagtree.NewParser(cfg, sugar).ParseFile(c.Args().First())
	if err != nil {
		return err
	}

	svgFileName := c.String("svg")
	if len(svgFileName) == 0 {
		_, err := fmt.Fprint(c.App.Writer, render.D2Source(doc))
		return err
	}

	body, err := render.DiagramSVG(c.Context, doc)
	if err != nil {
		return err
	}
	return os.WriteFile(svgFileName, body, 0664)
}

func colorFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "color",
			Usage: "highlight the markup written to the terminal",
		},
		&cli.StringFlag{
			Name:  "style",
			Value: render.DefaultStyle,
			Usage: "chroma `STYLE` used with --color",
		},
	}
}

func formatFlags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "write the markup to `FILE` instead of the standard output",
		},
		&cli.BoolFlag{
			Name:    "inplace",
			Aliases: []string{"i"},
			Usage:   "rewrite each input file with its formatted markup",
		},
		&cli.BoolFlag{
			Name:    "dryrun",
			Aliases: []string{"n"},
			Usage:   "do not generate output, just check the input files",
		},
		&cli.BoolFlag{
			Name:    "watch",
			Aliases: []string{"w"},
			Usage:   "watch the input file for changes and regenerate the output",
		},
	}
	return append(flags, colorFlags()...)
}

func newApp() *cli.App {

	app := &cli.App{
		Name:     "tagtree",
		Version:  "v0.1.0",
		Compiled: time.Now(),
		Authors: []*cli.Author{
			{
				Name:  "Jesus Ruiz",
				Email: "hesus.ruiz@gmail.com",
			},
		},
		Usage:     "parse HTML-like markup into an element tree and write it back",
		UsageText: "tagtree [options] [command] [INPUT_FILE...] (default input file is index.html)",
		Action:    process,
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "run in debug mode",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "load the configuration from YAML `FILE`",
			},
			&cli.StringSliceFlag{
				Name:  "void",
				Usage: "add `TAG` to the void tags (can be repeated)",
			},
			&cli.BoolFlag{
				Name:  "keep-whitespace",
				Usage: "do not collapse whitespace in the output",
			},
		}, formatFlags()...),
		Commands: []*cli.Command{
			{
				Name:      "format",
				Usage:     "format the input files",
				ArgsUsage: "INPUT_FILE...",
				Action:    process,
				Flags:     formatFlags(),
			},
			{
				Name:      "query",
				Usage:     "print the elements matching an id, class or tag name",
				ArgsUsage: "INPUT_FILE",
				Action:    query,
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "id", Usage: "select the element with `ID`"},
					&cli.StringFlag{Name: "class", Usage: "select the elements with class `NAME`"},
					&cli.StringFlag{Name: "tag", Usage: "select the elements with tag `NAME`"},
					&cli.BoolFlag{Name: "count", Usage: "print only the number of elements found"},
				}, colorFlags()...),
			},
			{
				Name:      "diagram",
				Usage:     "describe the element tree as a D2 diagram",
				ArgsUsage: "INPUT_FILE",
				Action:    diagram,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "svg", Usage: "render the diagram to SVG `FILE`"},
				},
			},
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
