package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/handle/narrow"
)

func main() {
	var (
		value       = flag.String("value", "", "Number to check (decimal, 0x hex, 0o octal or float)")
		verbose     = flag.Bool("v", false, "Log each lossy conversion to stderr")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = log.Sync() }()
		narrow.SetLogger(log)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*value); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *value == "" {
		fmt.Fprintln(os.Stderr, "Usage: narrow -value <number> [-v]")
		fmt.Fprintln(os.Stderr, "       narrow -i [-value <number>]  (interactive mode)")
		os.Exit(1)
	}

	if err := run(os.Stdout, *value, term.IsTerminal(int(os.Stdout.Fd()))); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, value string, styled bool) error {
	r, err := evaluate(value)
	if err != nil {
		return err
	}

	log := narrow.Logger()
	for _, row := range r.rows {
		if !row.lossless {
			log.Debug("lossy conversion",
				zap.String("input", r.input),
				zap.String("from", r.source),
				zap.String("to", row.target),
				zap.String("result", row.result))
		}
	}
	log.Debug("evaluated",
		zap.String("input", r.input),
		zap.String("source", r.source),
		zap.Int("lossless", r.lossless()))

	_, err = fmt.Fprint(w, render(r, styled))
	return err
}
