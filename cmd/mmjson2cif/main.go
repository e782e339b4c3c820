// Command mmjson2cif converts an mmJSON file to CIF text.
//
// Usage:
//
//	mmjson2cif 1abc.json.gz -o 1abc.cif
//	mmjson2cif 1abc.json --fingerprint
//	mmjson2cif 1abc.json --dump
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/davecgh/go-spew/spew"

	"github.com/mhemmit/gemmi/cif"
	"github.com/mhemmit/gemmi/fileio"
	"github.com/mhemmit/gemmi/mmjson"
)

// CLI defines the command-line interface of mmjson2cif.
type CLI struct {
	Input         string `arg:"" help:"mmJSON file, optionally compressed (.gz, .zst, .s2, .lz4, .xz)" type:"existingfile"`
	Output        string `short:"o" help:"Output CIF file (default: standard output)" type:"path"`
	Fingerprint   bool   `help:"Print the document fingerprint instead of CIF text"`
	Dump          bool   `help:"Dump the parsed document structure instead of CIF text"`
	StrictNumbers bool   `name:"strict-numbers" help:"Reject integer literals as values"`
	LogFormat     string `name:"log-format" help:"Log format (text, json)" enum:"text,json" default:"text"`
	LogLevel      string `name:"log-level" help:"Log level (debug, info, warn, error)" enum:"debug,info,warn,error" default:"warn"`
}

// env carries the streams a command writes to.
type env struct {
	stdout io.Writer
	stderr io.Writer
}

func (c *CLI) Run(e *env) error {
	logger, err := newLogger(e.stderr, c.LogFormat, c.LogLevel)
	if err != nil {
		return err
	}

	var opts []mmjson.Option
	if c.StrictNumbers {
		opts = append(opts, mmjson.WithStrictNumbers())
	}

	input := fileio.NewMaybeCompressed(c.Input)
	logger.Debug("reading", slog.String("path", c.Input), slog.String("compression", input.Compression().String()))
	doc, err := mmjson.ReadAny(input, opts...)
	if err != nil {
		return err
	}
	logger.Info("read document",
		slog.String("source", doc.Source),
		slog.Int("blocks", len(doc.Blocks)),
		slog.Int("items", len(doc.SoleBlock().Items)))

	if c.Fingerprint {
		_, err := fmt.Fprintf(e.stdout, "%016x  %s\n", doc.Fingerprint(), c.Input)
		return err
	}

	if c.Dump {
		spew.Fdump(e.stdout, doc)
		return nil
	}

	if c.Output == "" {
		return cif.Write(e.stdout, doc)
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if _, err := doc.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", c.Output, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", c.Output, err)
	}
	logger.Info("wrote CIF", slog.String("path", c.Output))

	return nil
}

func newLogger(w io.Writer, format, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// run parses args and executes the command.
func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("mmjson2cif"),
		kong.Description("Convert an mmJSON file to CIF."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	return kctx.Run(&env{stdout: stdout, stderr: stderr})
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("mmjson2cif failed", slog.Any("error", err))
		os.Exit(1)
	}
}
