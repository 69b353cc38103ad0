// Binary hashfile prints MD5, SHA1 and SHA256 digests of a
// file computed in a single streaming pass.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/peterbourgon/ff"

	"github.com/byte4ever/hashfile/multihash"
	"github.com/byte4ever/hashfile/report"
)

// sliceFlag implements flag.Value for multi-value
// string flags (repeated --flag=val usage).
type sliceFlag []string

// String returns the flag value as a comma-separated
// string representation.
func (s *sliceFlag) String() string {
	if s == nil {
		return ""
	}

	return strings.Join(*s, ",")
}

// Set appends a value to the slice.
func (s *sliceFlag) Set(val string) error {
	*s = append(*s, val)

	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		slog.Error("fatal", "error", err, "hint", hint(err))
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	const errCtx = "running hashfile"

	fs := flag.NewFlagSet("hashfile", flag.ContinueOnError)

	var algorithms sliceFlag

	fs.Var(
		&algorithms, "algorithm",
		"digest algorithm to print (repeatable, default all)",
	)
	list := fs.Bool(
		"list", false,
		"print supported algorithms and exit",
	)
	format := fs.String(
		"format", string(report.FormatText),
		"output format: text, json, yaml or template",
	)
	tpl := fs.String(
		"template", report.DefaultTemplate,
		"line template for -format=template",
	)
	output := fs.String(
		"output", "",
		"output file path (default: stdout)",
	)
	verbose := fs.Bool(
		"verbose", false,
		"log computed digests at debug level",
	)
	fs.String("config", "", "config file (optional)")

	if err := ff.Parse(fs, args,
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
		ff.WithEnvVarPrefix("HASHFILE"),
	); err != nil {
		return fmt.Errorf("%s: parsing flags: %w", errCtx, err)
	}

	if *verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(
			os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug},
		)))
	}

	if *list {
		for _, alg := range multihash.SupportedAlgorithms() {
			if _, err := fmt.Fprintln(stdout, alg); err != nil {
				return fmt.Errorf("%s: %w", errCtx, err)
			}
		}

		return nil
	}

	if fs.NArg() != 1 {
		return fmt.Errorf(
			"%s: expected exactly one file argument, got %d",
			errCtx, fs.NArg(),
		)
	}

	fo, err := report.ParseFormat(*format)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	algs, err := selectAlgorithms(algorithms)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	entries, err := hashFile(fs.Arg(0), algs)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := report.Write(stdout, entries, fo, *tpl, *output); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// selectAlgorithms resolves the -algorithm values, keeping
// their order and dropping duplicates. No values selects every
// supported algorithm.
func selectAlgorithms(names []string) ([]multihash.Algorithm, error) {
	if len(names) == 0 {
		return multihash.SupportedAlgorithms(), nil
	}

	seen := make(map[multihash.Algorithm]bool, len(names))
	algs := make([]multihash.Algorithm, 0, len(names))

	for _, name := range names {
		alg, err := multihash.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}

		if seen[alg] {
			continue
		}

		seen[alg] = true
		algs = append(algs, alg)
	}

	return algs, nil
}

// hashFile computes every requested digest from one
// accumulator, so the file is read once.
func hashFile(
	path string,
	algs []multihash.Algorithm,
) ([]report.Entry, error) {
	ac := multihash.New(path)
	entries := make([]report.Entry, 0, len(algs))

	for _, alg := range algs {
		dg, err := ac.Compute(alg)
		if err != nil {
			return nil, err
		}

		slog.Debug(
			"computed digest",
			"path", path,
			"algorithm", alg,
			"digest", dg,
		)

		entries = append(entries, report.Entry{
			Path:      path,
			Algorithm: alg.String(),
			Digest:    dg,
		})
	}

	slog.Debug("hashed file", "path", path, "bytes", ac.Size())

	return entries, nil
}

func hint(err error) string {
	switch {
	case errors.Is(err, multihash.ErrFileNotFound):
		return "check the path"
	case errors.Is(err, multihash.ErrReadFailure):
		return "check file permissions and integrity"
	case errors.Is(err, multihash.ErrUnsupportedAlgorithm):
		return "run with -list to see supported algorithms"
	default:
		return ""
	}
}
