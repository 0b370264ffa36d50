package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"

	"github.com/brunokim/truth-table/expr"
	"github.com/brunokim/truth-table/table"

	"github.com/mattn/go-isatty"
)

const defaultExpression = "a^b"

var (
	expression = flag.String("expr", "", "Expression to tabulate (default: first argument, or "+defaultExpression+")")
	format     = flag.String("format", "text", "Output format: text, json or yaml")
	colors     = flag.String("color", "auto", "Color output: auto, always or never")
	showSize   = flag.Bool("size", false, "Print row and column count before the table")
	workers    = flag.Int("workers", 1, "Number of goroutines evaluating rows")
	strict     = flag.Bool("strict", false, "Reject malformed expressions instead of tabulating them")
	maxVars    = flag.Int("max-vars", 20, "Largest number of distinct variables to tabulate")
)

func main() {
	flag.Parse()
	text := *expression
	if text == "" && flag.NArg() > 0 {
		text = flag.Arg(0)
	}
	if text == "" {
		text = defaultExpression
	}
	if *strict {
		if err := expr.Validate(text); err != nil {
			log.Fatalf("validate: %v", err)
		}
	}
	if err := table.CheckLimit(text, *maxVars); err != nil {
		log.Fatalf("compute: %v", err)
	}
	var t *table.Table
	var err error
	if *workers > 1 {
		t, err = table.ComputeConcurrent(context.Background(), text, *workers)
	} else {
		t, err = table.Compute(text)
	}
	if err != nil {
		log.Fatalf("compute: %v", err)
	}
	if err := write(os.Stdout, t); err != nil {
		log.Fatalf("output: %v", err)
	}
}

func write(w *os.File, t *table.Table) error {
	switch *format {
	case "text":
		return table.Format(w, t, formatOptions(w)...)
	case "json":
		return table.EncodeJSON(w, t)
	case "yaml":
		return table.EncodeYAML(w, t)
	}
	log.Fatalf("invalid -format %q", *format)
	return nil
}

func formatOptions(w io.Writer) []table.FormatOption {
	var opts []table.FormatOption
	if *showSize {
		opts = append(opts, table.WithSize())
	}
	switch *colors {
	case "always":
		opts = append(opts, table.WithColors())
	case "auto":
		if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			opts = append(opts, table.WithColors())
		}
	case "never":
	default:
		log.Fatalf("invalid -color %q", *colors)
	}
	return opts
}
