package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/valyala/fasttemplate"
)

// Format selects how entries are rendered.
type Format string

// Supported formats.
const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatTemplate Format = "template"
)

// DefaultTemplate is the line template used by FormatTemplate
// when none is given.
const DefaultTemplate = "{algorithm} ({path}) = {digest}"

// ErrUnknownFormat is returned for format names outside the
// supported set.
var ErrUnknownFormat = errors.New("unknown report format")

// Entry is one computed digest of one file.
type Entry struct {
	Path      string `json:"path"      yaml:"path"`
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	Digest    string `json:"digest"    yaml:"digest"`
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	const errCtx = "parsing format"

	switch fo := Format(strings.ToLower(name)); fo {
	case FormatText, FormatJSON, FormatYAML, FormatTemplate:
		return fo, nil
	default:
		return "", fmt.Errorf("%s: %w: %q", errCtx, ErrUnknownFormat, name)
	}
}

// Render writes entries to w in the given format. tpl is only
// used by FormatTemplate; an empty tpl selects
// DefaultTemplate. Unknown template placeholders are kept
// as-is.
func Render(
	w io.Writer,
	entries []Entry,
	format Format,
	tpl string,
) error {
	const errCtx = "rendering report"

	var (
		by  []byte
		err error
	)

	switch format {
	case FormatText:
		by = renderText(entries)
	case FormatJSON:
		by, err = json.MarshalIndent(entries, "", "  ")
		by = append(by, '\n')
	case FormatYAML:
		by, err = yaml.Marshal(entries)
	case FormatTemplate:
		by, err = renderTemplate(entries, tpl)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if _, err := w.Write(by); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// Write renders entries to the file at outPath, or to w if
// outPath is empty. An existing file is truncated.
func Write(
	w io.Writer,
	entries []Entry,
	format Format,
	tpl string,
	outPath string,
) (retErr error) {
	const errCtx = "writing report"

	if outPath == "" {
		if err := Render(w, entries, format, tpl); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		return nil
	}

	fi, err := os.OpenFile( //nolint:gosec // path from CLI flag
		outPath,
		os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
		0o666,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	defer func() {
		if closeErr := fi.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("%s: %w", errCtx, closeErr)
		}
	}()

	if err := Render(fi, entries, format, tpl); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

func renderText(entries []Entry) []byte {
	var buf bytes.Buffer

	for _, en := range entries {
		buf.WriteString(en.Digest)
		buf.WriteString("  ")
		buf.WriteString(en.Path)
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

func renderTemplate(entries []Entry, tpl string) ([]byte, error) {
	const errCtx = "parsing template"

	if tpl == "" {
		tpl = DefaultTemplate
	}

	te, err := fasttemplate.NewTemplate(tpl, "{", "}")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	var buf bytes.Buffer

	for _, en := range entries {
		_, _ = te.ExecuteFunc(&buf, func(w io.Writer, tag string) (int, error) {
			switch tag {
			case "path":
				return w.Write([]byte(en.Path))
			case "algorithm":
				return w.Write([]byte(en.Algorithm))
			case "digest":
				return w.Write([]byte(en.Digest))
			default:
				return w.Write([]byte("{" + tag + "}"))
			}
		})

		buf.WriteByte('\n')
	}

	return buf.Bytes(), nil
}
