// Command ende-check type checks a program handed over by the parser as a
// YAML-encoded bare tree.
//
//	ende-check [-config ende.yaml] [-print] [-v] program.ende.yaml
//	ende-check [-config ende.yaml] -repl
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/AndyShiue/Ende/internal/analyzer"
	"github.com/AndyShiue/Ende/internal/astio"
	"github.com/AndyShiue/Ende/internal/config"
	"github.com/AndyShiue/Ende/internal/diagnostics"
	"github.com/AndyShiue/Ende/internal/pipeline"
	"github.com/AndyShiue/Ende/internal/prettyprinter"
)

const appName = "ende-check"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	configPath string
	print      bool
	verbose    bool
	repl       bool
}

func parseFlags(args []string, stderr io.Writer) (*options, []string, error) {
	opts := &options{}
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "prelude file (default: nearest "+config.ConfigFileNames[0]+")")
	fs.BoolVar(&opts.print, "print", false, "print the program with its types")
	fs.BoolVar(&opts.verbose, "v", false, "trace the check on stderr")
	fs.BoolVar(&opts.repl, "repl", false, "start an interactive session")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags] program%s\n       %s [flags] -repl\n", appName, config.SourceFileExt, appName)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return opts, fs.Args(), nil
}

// run is main without the process exit: 0 on success, 1 when the program
// has diagnostics, 2 on usage or I/O errors.
func run(args []string, stdout, stderr io.Writer) int {
	opts, rest, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}

	if opts.repl {
		if len(rest) != 0 {
			fmt.Fprintf(stderr, "%s: -repl takes no program\n", appName)
			return 2
		}
		return runREPL(opts, stdout, stderr)
	}

	if len(rest) != 1 {
		fmt.Fprintf(stderr, "Usage: %s [flags] program%s\n", appName, config.SourceFileExt)
		return 2
	}
	return checkFile(rest[0], opts, stdout, stderr)
}

func checkFile(path string, opts *options, stdout, stderr io.Writer) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading file: %s\n", err)
		return 2
	}
	if !config.HasSourceExt(path) {
		fmt.Fprintf(stderr, "%s: warning: %s does not end in %s\n", appName, path, config.SourceFileExt)
	}

	ctx := pipeline.NewPipelineContext(path, src)

	var logger *log.Logger
	if opts.verbose {
		logger = log.New(stderr, fmt.Sprintf("[%s] ", ctx.RunID), log.Lmsgprefix)
		logger.Printf("checking %s", path)
	}

	ctx = pipeline.New(
		&pipeline.PreludeProcessor{Path: opts.configPath},
		&astio.DecodeProcessor{},
		&analyzer.CheckProcessor{Logger: logger},
	).Run(ctx)

	if logger != nil && ctx.Config != nil {
		if src := ctx.Config.Source(); src != "" {
			logger.Printf("prelude %s", src)
		} else {
			logger.Printf("no prelude")
		}
	}

	if ctx.HasErrors() {
		if logger != nil {
			for _, e := range ctx.Errors {
				logger.Printf("%s %s", e.Code, e.Code.Name())
				if astio.IsDecodeError(e) {
					logger.Printf("malformed program; type checking skipped")
				}
			}
		}
		diagnostics.NewEmitter(stderr).EmitAll(ctx.Errors)
		return 1
	}

	if opts.print {
		fmt.Fprint(stdout, prettyprinter.NewTypedPrinter().Print(ctx.Tagged))
		return 0
	}
	fmt.Fprintln(stdout, "ok")
	return 0
}
