package printer

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/joshuapare/esskit/ess"
)

// printCompoundText prints the entries of c one per line.
func (p *Printer) printCompoundText(w io.Writer, c *ess.Compound) error {
	var buf bytes.Buffer
	for _, name := range c.Names() {
		v, _ := c.Get(name)
		p.writeEntryText(&buf, strconv.Quote(name), v, 0)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// printValueText prints a single named value.
func (p *Printer) printValueText(w io.Writer, name string, v ess.Value) error {
	var buf bytes.Buffer
	p.writeEntryText(&buf, strconv.Quote(name), v, 0)
	_, err := w.Write(buf.Bytes())
	return err
}

// writeEntryText writes one labelled value and, for containers within
// MaxDepth, its children one level deeper.
func (p *Printer) writeEntryText(buf *bytes.Buffer, label string, v ess.Value, depth int) {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)
	buf.WriteString(indent)
	buf.WriteString(label)
	if p.opts.ShowValueTypes {
		fmt.Fprintf(buf, " [%s]", v.Tag())
	}

	switch x := v.(type) {
	case *ess.Compound:
		fmt.Fprintf(buf, " (%d entries)\n", x.Len())
		if !p.expand(depth) {
			return
		}
		for _, name := range x.Names() {
			child, _ := x.Get(name)
			p.writeEntryText(buf, strconv.Quote(name), child, depth+1)
		}
	case ess.List:
		fmt.Fprintf(buf, " (%d elements)\n", len(x))
		if !p.expand(depth) {
			return
		}
		for i, elem := range x {
			if elem == nil {
				continue
			}
			p.writeEntryText(buf, fmt.Sprintf("[%d]", i), elem, depth+1)
		}
	default:
		buf.WriteString(" = ")
		buf.WriteString(p.scalarText(v))
		buf.WriteByte('\n')
	}
}

// scalarText formats a non-container value on one line.
func (p *Printer) scalarText(v ess.Value) string {
	switch x := v.(type) {
	case ess.Int8:
		return strconv.FormatInt(int64(x), 10)
	case ess.Int16:
		return strconv.FormatInt(int64(x), 10)
	case ess.Int32:
		return strconv.FormatInt(int64(x), 10)
	case ess.Int64:
		return strconv.FormatInt(int64(x), 10)
	case ess.Float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case ess.Float64:
		return strconv.FormatFloat(float64(x), 'g', -1, 64)
	case ess.String:
		return strconv.Quote(string(x))
	case ess.Bytes:
		return p.bytesText(x)
	case ess.Int16s:
		return joinText(x, func(n int16) string { return strconv.FormatInt(int64(n), 10) })
	case ess.Int32s:
		return joinText(x, func(n int32) string { return strconv.FormatInt(int64(n), 10) })
	case ess.Int64s:
		return joinText(x, func(n int64) string { return strconv.FormatInt(n, 10) })
	case ess.Float32s:
		return joinText(x, func(f float32) string { return strconv.FormatFloat(float64(f), 'g', -1, 32) })
	case ess.Float64s:
		return joinText(x, func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) })
	case ess.Strings:
		return joinText(x, strconv.Quote)
	default:
		return fmt.Sprintf("<%s>", v.Tag())
	}
}

// bytesText renders data as hex, cut at MaxValueBytes.
func (p *Printer) bytesText(data []byte) string {
	shown, cut := p.truncate(data)
	s := hex.EncodeToString(shown)
	if s == "" {
		s = "(empty)"
	}
	if cut {
		s += fmt.Sprintf(" (truncated, %d total bytes)", len(data))
	}
	return s
}

func joinText[E any](items []E, elem func(E) string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = elem(item)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
