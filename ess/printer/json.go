package printer

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/joshuapare/esskit/ess"
)

// jsonValue is a value annotated with its variant name.
type jsonValue struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// jsonNamedValue is the document PrintValue emits.
type jsonNamedValue struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
	Data any    `json:"data"`
}

// printCompoundJSON prints c as one JSON object keyed by entry name.
func (p *Printer) printCompoundJSON(w io.Writer, c *ess.Compound) error {
	return p.writeJSON(w, p.compoundJSON(c, 0))
}

// printValueJSON prints a single value as {"name", "type", "data"}.
func (p *Printer) printValueJSON(w io.Writer, name string, v ess.Value) error {
	doc := jsonNamedValue{Name: name, Data: p.dataJSON(v, 0)}
	if p.opts.ShowValueTypes {
		doc.Type = v.Tag().String()
	}
	return p.writeJSON(w, doc)
}

func (p *Printer) writeJSON(w io.Writer, doc any) error {
	data, err := json.MarshalIndent(doc, "", strings.Repeat(" ", p.opts.IndentSize))
	if err != nil {
		return fmt.Errorf("printer: marshal json: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func (p *Printer) compoundJSON(c *ess.Compound, depth int) map[string]any {
	out := make(map[string]any, c.Len())
	for name, v := range c.Entries() {
		out[name] = p.valueJSON(v, depth)
	}
	return out
}

// valueJSON wraps the data of v in its type annotation when requested.
func (p *Printer) valueJSON(v ess.Value, depth int) any {
	data := p.dataJSON(v, depth)
	if !p.opts.ShowValueTypes {
		return data
	}
	return jsonValue{Type: v.Tag().String(), Data: data}
}

// dataJSON converts v to a value encoding/json can marshal. Non-finite
// floats become strings; containers past MaxDepth become a summary string.
func (p *Printer) dataJSON(v ess.Value, depth int) any {
	switch x := v.(type) {
	case ess.Int8:
		return int8(x)
	case ess.Int16:
		return int16(x)
	case ess.Int32:
		return int32(x)
	case ess.Int64:
		return int64(x)
	case ess.Float32:
		return floatJSON(float64(x), 32)
	case ess.Float64:
		return floatJSON(float64(x), 64)
	case ess.String:
		return string(x)
	case ess.Bytes:
		shown, cut := p.truncate(x)
		s := hex.EncodeToString(shown)
		if cut {
			s += fmt.Sprintf(" (truncated, %d total bytes)", len(x))
		}
		return s
	case ess.Int16s:
		return arrayJSON(x, func(n int16) any { return n })
	case ess.Int32s:
		return arrayJSON(x, func(n int32) any { return n })
	case ess.Int64s:
		return arrayJSON(x, func(n int64) any { return n })
	case ess.Float32s:
		return arrayJSON(x, func(f float32) any { return floatJSON(float64(f), 32) })
	case ess.Float64s:
		return arrayJSON(x, func(f float64) any { return floatJSON(f, 64) })
	case ess.Strings:
		return arrayJSON(x, func(s string) any { return s })
	case ess.List:
		if !p.expand(depth) {
			return fmt.Sprintf("<%d elements>", len(x))
		}
		out := make([]any, 0, len(x))
		for _, elem := range x {
			if elem == nil {
				out = append(out, nil)
				continue
			}
			out = append(out, p.valueJSON(elem, depth+1))
		}
		return out
	case *ess.Compound:
		if !p.expand(depth) {
			return fmt.Sprintf("<%d entries>", x.Len())
		}
		return p.compoundJSON(x, depth+1)
	default:
		return nil
	}
}

// floatJSON keeps the shortest decimal form for the float's precision.
func floatJSON(f float64, bits int) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, bits)
	}
	return json.Number(strconv.FormatFloat(f, 'g', -1, bits))
}

func arrayJSON[E any](items []E, elem func(E) any) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = elem(item)
	}
	return out
}
