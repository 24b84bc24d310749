package manifest

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/esskit/ess"
	"github.com/joshuapare/esskit/internal/format"
)

// Unmarshal builds a compound from a YAML manifest. Empty input yields an
// empty compound; any other document must be a mapping.
func Unmarshal(data []byte) (*ess.Compound, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &Error{Msg: err.Error()}
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return ess.New(), nil
	}
	root := resolve(doc.Content[0])
	if root.Kind == yaml.ScalarNode && root.ShortTag() == yamlNull {
		return ess.New(), nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, errorAt(root, "document root must be a mapping")
	}
	return decodeCompound(root, 1)
}

func errorAt(n *yaml.Node, msg string, args ...any) *Error {
	return &Error{Line: n.Line, Column: n.Column, Msg: fmt.Sprintf(msg, args...)}
}

// resolve follows alias nodes to their anchors.
func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func decodeCompound(n *yaml.Node, depth int) (*ess.Compound, error) {
	if depth > format.MaxDepth {
		return nil, errorAt(n, "nesting exceeds %d levels", format.MaxDepth)
	}
	c := ess.New()
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := resolve(n.Content[i]), n.Content[i+1]
		if key.Kind != yaml.ScalarNode || key.ShortTag() == yamlMerge {
			return nil, errorAt(key, "entry names must be plain scalars")
		}
		if c.Has(key.Value) {
			return nil, errorAt(key, "duplicate name %q", key.Value)
		}
		v, err := decodeValue(val, depth+1)
		if err != nil {
			return nil, err
		}
		c.Set(key.Value, v)
	}
	return c, nil
}

func decodeValue(n *yaml.Node, depth int) (ess.Value, error) {
	n = resolve(n)
	if n.Kind == yaml.AliasNode {
		return nil, errorAt(n, "unresolved alias")
	}
	tag := n.ShortTag()

	switch tag {
	case TagInt8, TagInt16, TagInt32, TagInt64, yamlInt:
		return decodeInt(n, tag)
	case TagFloat32:
		f, err := scalarFloat(n, 32)
		return ess.Float32(f), err
	case TagFloat64, yamlFloat:
		f, err := scalarFloat(n, 64)
		return ess.Float64(f), err
	case TagBytes, yamlBinary:
		if err := requireKind(n, yaml.ScalarNode, tag); err != nil {
			return nil, err
		}
		b, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(n.Value), ""))
		if err != nil {
			return nil, errorAt(n, "invalid base64: %v", err)
		}
		return ess.Bytes(b), nil
	case TagInt16s:
		items, err := sequence(n, tag, func(e *yaml.Node) (int16, error) {
			v, err := scalarInt(e, 16)
			return int16(v), err
		})
		return ess.Int16s(items), err
	case TagInt32s:
		items, err := sequence(n, tag, func(e *yaml.Node) (int32, error) {
			v, err := scalarInt(e, 32)
			return int32(v), err
		})
		return ess.Int32s(items), err
	case TagInt64s:
		items, err := sequence(n, tag, func(e *yaml.Node) (int64, error) {
			return scalarInt(e, 64)
		})
		return ess.Int64s(items), err
	case TagFloat32s:
		items, err := sequence(n, tag, func(e *yaml.Node) (float32, error) {
			f, err := scalarFloat(e, 32)
			return float32(f), err
		})
		return ess.Float32s(items), err
	case TagFloat64s:
		items, err := sequence(n, tag, func(e *yaml.Node) (float64, error) {
			return scalarFloat(e, 64)
		})
		return ess.Float64s(items), err
	case TagStrings:
		items, err := sequence(n, tag, func(e *yaml.Node) (string, error) {
			if err := requireKind(e, yaml.ScalarNode, tag+" element"); err != nil {
				return "", err
			}
			return e.Value, nil
		})
		return ess.Strings(items), err
	case TagList, yamlSeq:
		if err := requireKind(n, yaml.SequenceNode, tag); err != nil {
			return nil, err
		}
		return decodeList(n, depth)
	case yamlMap:
		if err := requireKind(n, yaml.MappingNode, tag); err != nil {
			return nil, err
		}
		return decodeCompound(n, depth)
	case yamlBool:
		return nil, errorAt(n, "boolean %q has no value variant; quote it or tag it %s", n.Value, TagString)
	}

	if strings.HasPrefix(tag, "!") && !strings.HasPrefix(tag, "!!") && tag != TagString {
		return nil, errorAt(n, "unknown tag %s", tag)
	}
	// !str and every remaining core scalar (!!str, !!null, !!timestamp)
	// keep their literal text.
	if err := requireKind(n, yaml.ScalarNode, tag); err != nil {
		return nil, err
	}
	return ess.String(n.Value), nil
}

func decodeList(n *yaml.Node, depth int) (ess.List, error) {
	if depth > format.MaxDepth {
		return nil, errorAt(n, "nesting exceeds %d levels", format.MaxDepth)
	}
	l := make(ess.List, 0, len(n.Content))
	for _, e := range n.Content {
		v, err := decodeValue(e, depth+1)
		if err != nil {
			return nil, err
		}
		l = append(l, v)
	}
	return l, nil
}

// decodeInt handles explicit integer tags and untagged integers, which
// become Int32 when they fit.
func decodeInt(n *yaml.Node, tag string) (ess.Value, error) {
	switch tag {
	case TagInt8:
		v, err := scalarInt(n, 8)
		return ess.Int8(v), err
	case TagInt16:
		v, err := scalarInt(n, 16)
		return ess.Int16(v), err
	case TagInt32:
		v, err := scalarInt(n, 32)
		return ess.Int32(v), err
	case TagInt64:
		v, err := scalarInt(n, 64)
		return ess.Int64(v), err
	}
	v, err := scalarInt(n, 64)
	if err != nil {
		return nil, err
	}
	if v >= math.MinInt32 && v <= math.MaxInt32 {
		return ess.Int32(v), nil
	}
	return ess.Int64(v), nil
}

func requireKind(n *yaml.Node, kind yaml.Kind, what string) error {
	if n.Kind != kind {
		return errorAt(n, "%s expects a %s", what, kindName(kind))
	}
	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	default:
		return "node"
	}
}

// sequence decodes every element of a typed array node with elem.
func sequence[E any](n *yaml.Node, tag string, elem func(*yaml.Node) (E, error)) ([]E, error) {
	if err := requireKind(n, yaml.SequenceNode, tag); err != nil {
		return nil, err
	}
	out := make([]E, 0, len(n.Content))
	for _, e := range n.Content {
		v, err := elem(resolve(e))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// scalarInt parses YAML integer syntax (sign, 0x/0o/0b prefixes,
// underscores) into a value of the given bit size.
func scalarInt(n *yaml.Node, bits int) (int64, error) {
	if err := requireKind(n, yaml.ScalarNode, "integer"); err != nil {
		return 0, err
	}
	s := strings.ReplaceAll(n.Value, "_", "")
	v, err := strconv.ParseInt(s, 0, bits)
	if err != nil {
		return 0, errorAt(n, "invalid %d-bit integer %q", bits, n.Value)
	}
	return v, nil
}

// scalarFloat parses YAML float syntax, including .nan and .inf, into a
// value of the given bit size.
func scalarFloat(n *yaml.Node, bits int) (float64, error) {
	if err := requireKind(n, yaml.ScalarNode, "float"); err != nil {
		return 0, err
	}
	switch strings.ToLower(n.Value) {
	case ".nan":
		return math.NaN(), nil
	case ".inf", "+.inf":
		return math.Inf(1), nil
	case "-.inf":
		return math.Inf(-1), nil
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(n.Value, "_", ""), bits)
	if err != nil {
		return 0, errorAt(n, "invalid %d-bit float %q", bits, n.Value)
	}
	return f, nil
}
