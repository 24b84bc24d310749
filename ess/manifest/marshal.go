package manifest

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/esskit/ess"
	"github.com/joshuapare/esskit/internal/format"
)

// Marshal renders c as a YAML manifest. Names are sorted and every value
// carries an explicit tag.
func Marshal(c *ess.Compound) ([]byte, error) {
	if c == nil {
		return nil, &Error{Msg: "nil compound"}
	}
	root, err := encodeCompound(c, 1)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, &Error{Msg: err.Error()}
	}
	if err := enc.Close(); err != nil {
		return nil, &Error{Msg: err.Error()}
	}
	return buf.Bytes(), nil
}

func encodeCompound(c *ess.Compound, depth int) (*yaml.Node, error) {
	if depth > format.MaxDepth {
		return nil, &Error{Msg: fmt.Sprintf("nesting exceeds %d levels", format.MaxDepth)}
	}
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: yamlMap}
	for _, name := range c.Names() {
		v, _ := c.Get(name)
		vn, err := encodeValue(v, depth+1)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", name, err)
		}
		n.Content = append(n.Content, scalar(yamlStr, name), vn)
	}
	return n, nil
}

func encodeValue(v ess.Value, depth int) (*yaml.Node, error) {
	switch x := v.(type) {
	case ess.Int8:
		return scalar(TagInt8, strconv.FormatInt(int64(x), 10)), nil
	case ess.Int16:
		return scalar(TagInt16, strconv.FormatInt(int64(x), 10)), nil
	case ess.Int32:
		return scalar(TagInt32, strconv.FormatInt(int64(x), 10)), nil
	case ess.Int64:
		return scalar(TagInt64, strconv.FormatInt(int64(x), 10)), nil
	case ess.Float32:
		return scalar(TagFloat32, formatFloat(float64(x), 32)), nil
	case ess.Float64:
		return scalar(TagFloat64, formatFloat(float64(x), 64)), nil
	case ess.String:
		return scalar(TagString, string(x)), nil
	case ess.Bytes:
		return scalar(TagBytes, base64.StdEncoding.EncodeToString(x)), nil
	case ess.Int16s:
		return flowSeq(TagInt16s, yamlInt, x, func(n int16) string { return strconv.FormatInt(int64(n), 10) }), nil
	case ess.Int32s:
		return flowSeq(TagInt32s, yamlInt, x, func(n int32) string { return strconv.FormatInt(int64(n), 10) }), nil
	case ess.Int64s:
		return flowSeq(TagInt64s, yamlInt, x, func(n int64) string { return strconv.FormatInt(n, 10) }), nil
	case ess.Float32s:
		return flowSeq(TagFloat32s, yamlFloat, x, func(f float32) string { return formatFloat(float64(f), 32) }), nil
	case ess.Float64s:
		return flowSeq(TagFloat64s, yamlFloat, x, func(f float64) string { return formatFloat(f, 64) }), nil
	case ess.Strings:
		return flowSeq(TagStrings, yamlStr, x, func(s string) string { return s }), nil
	case ess.List:
		if depth > format.MaxDepth {
			return nil, &Error{Msg: fmt.Sprintf("nesting exceeds %d levels", format.MaxDepth)}
		}
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: TagList}
		for i, elem := range x {
			en, err := encodeValue(elem, depth+1)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			n.Content = append(n.Content, en)
		}
		return n, nil
	case *ess.Compound:
		if x == nil {
			return nil, &Error{Msg: "nil compound"}
		}
		return encodeCompound(x, depth)
	default:
		return nil, &Error{Msg: "nil value"}
	}
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// flowSeq renders a typed array as a one-line sequence whose elements
// carry the core tag they resolve to.
func flowSeq[E any](tag, elemTag string, items []E, elem func(E) string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: tag, Style: yaml.FlowStyle}
	n.Content = make([]*yaml.Node, 0, len(items))
	for _, item := range items {
		n.Content = append(n.Content, scalar(elemTag, elem(item)))
	}
	return n
}

// formatFloat writes the shortest text that parses back to f at the given
// precision and that YAML resolves as a float.
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
