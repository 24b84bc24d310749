// Package printer renders compounds for humans, as indented text or JSON,
// in UTF-8 or UTF-16LE.
package printer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/esskit/ess"
)

const (
	DefaultIndentSize    = 2
	DefaultMaxDepth      = 0
	DefaultMaxValueBytes = 32
)

const (
	// EncodingUTF8 is the identifier for UTF-8 output.
	EncodingUTF8 = "UTF-8"

	// EncodingUTF16LE is the identifier for UTF-16 little-endian output.
	EncodingUTF16LE = "UTF-16LE"
)

var errUnsupportedEncoding = errors.New("printer: unsupported encoding")

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable indented text.
	FormatText Format = "text"

	// FormatJSON outputs JSON.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level.
	// Default: 2
	IndentSize int

	// MaxDepth limits how many levels of nested compounds and lists are
	// expanded (0 = unlimited). Deeper containers are summarized.
	// Default: 0 (unlimited)
	MaxDepth int

	// MaxValueBytes limits how many bytes of a Bytes value are displayed.
	// Longer values are truncated. Set to 0 for no limit.
	// Default: 32
	MaxValueBytes int

	// ShowValueTypes includes the variant name of each value.
	// Default: true
	ShowValueTypes bool

	// Encoding selects the output character encoding, EncodingUTF8 or
	// EncodingUTF16LE.
	// Default: EncodingUTF8
	Encoding string

	// WithBOM prefixes UTF-16LE output with a byte order mark.
	// Default: false
	WithBOM bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:         FormatText,
		IndentSize:     DefaultIndentSize,
		MaxDepth:       DefaultMaxDepth,
		MaxValueBytes:  DefaultMaxValueBytes,
		ShowValueTypes: true,
		Encoding:       EncodingUTF8,
	}
}

// Printer writes formatted compounds to a writer.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer.
//
// Example:
//
//	c, _ := ess.ReadFile("save.ess")
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.PrintCompound(c)
func New(w io.Writer, opts Options) *Printer {
	return &Printer{writer: w, opts: opts}
}

// Print writes c to w using opts.
func Print(w io.Writer, c *ess.Compound, opts Options) error {
	return New(w, opts).PrintCompound(c)
}

// PrintValue writes a single named value to w using opts.
func PrintValue(w io.Writer, name string, v ess.Value, opts Options) error {
	return New(w, opts).PrintValue(name, v)
}

// PrintCompound prints every entry of c, names sorted.
func (p *Printer) PrintCompound(c *ess.Compound) error {
	return p.emit(func(w io.Writer) error {
		if p.opts.Format == FormatJSON {
			return p.printCompoundJSON(w, c)
		}
		return p.printCompoundText(w, c)
	})
}

// PrintValue prints one value under the given name.
func (p *Printer) PrintValue(name string, v ess.Value) error {
	if v == nil {
		return fmt.Errorf("printer: nil value for %q", name)
	}
	return p.emit(func(w io.Writer) error {
		if p.opts.Format == FormatJSON {
			return p.printValueJSON(w, name, v)
		}
		return p.printValueText(w, name, v)
	})
}

// emit runs fn against the configured writer, transcoding to UTF-16LE when
// requested.
func (p *Printer) emit(fn func(w io.Writer) error) error {
	switch strings.ToUpper(p.opts.Encoding) {
	case "", EncodingUTF8:
		return fn(p.writer)
	case EncodingUTF16LE:
		bom := unicode.IgnoreBOM
		if p.opts.WithBOM {
			bom = unicode.UseBOM
		}
		tw := transform.NewWriter(p.writer, unicode.UTF16(unicode.LittleEndian, bom).NewEncoder())
		if err := fn(tw); err != nil {
			_ = tw.Close()
			return err
		}
		return tw.Close()
	default:
		return fmt.Errorf("%w: %q", errUnsupportedEncoding, p.opts.Encoding)
	}
}

// expand reports whether a container at depth may show its children.
func (p *Printer) expand(depth int) bool {
	return p.opts.MaxDepth <= 0 || depth < p.opts.MaxDepth
}

// truncate returns at most MaxValueBytes of data and whether it was cut.
func (p *Printer) truncate(data []byte) ([]byte, bool) {
	if p.opts.MaxValueBytes <= 0 || len(data) <= p.opts.MaxValueBytes {
		return data, false
	}
	return data[:p.opts.MaxValueBytes], true
}
