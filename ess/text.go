package ess

import (
	"strconv"
	"strings"

	"github.com/joshuapare/esskit/internal/format"
)

// String renders the compound on one line with names sorted, for logs and
// debugging. Scalar suffixes mark the variant: 1b (Int8), 1s (Int16), 1
// (Int32), 1L (Int64), 1.5f (Float32), 1.5d (Float64); arrays carry a
// prefix such as [I; 1, 2].
func (c *Compound) String() string {
	var sb strings.Builder
	writeCompoundText(&sb, c, 1)
	return sb.String()
}

func writeCompoundText(sb *strings.Builder, c *Compound, depth int) {
	if depth > format.MaxDepth {
		sb.WriteString("{...}")
		return
	}
	sb.WriteByte('{')
	for i, name := range c.Names() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Quote(name))
		sb.WriteString(": ")
		writeValueText(sb, c.m[name], depth+1)
	}
	sb.WriteByte('}')
}

func writeValueText(sb *strings.Builder, v Value, depth int) {
	switch x := v.(type) {
	case Int8:
		sb.WriteString(strconv.FormatInt(int64(x), 10) + "b")
	case Int16:
		sb.WriteString(strconv.FormatInt(int64(x), 10) + "s")
	case Int32:
		sb.WriteString(strconv.FormatInt(int64(x), 10))
	case Int64:
		sb.WriteString(strconv.FormatInt(int64(x), 10) + "L")
	case Float32:
		sb.WriteString(strconv.FormatFloat(float64(x), 'g', -1, 32) + "f")
	case Float64:
		sb.WriteString(strconv.FormatFloat(float64(x), 'g', -1, 64) + "d")
	case String:
		sb.WriteString(strconv.Quote(string(x)))
	case Bytes:
		writeArrayText(sb, "B", x, func(b byte) string { return strconv.Itoa(int(b)) })
	case Int16s:
		writeArrayText(sb, "S", x, func(n int16) string { return strconv.Itoa(int(n)) })
	case Int32s:
		writeArrayText(sb, "I", x, func(n int32) string { return strconv.Itoa(int(n)) })
	case Int64s:
		writeArrayText(sb, "L", x, func(n int64) string { return strconv.FormatInt(n, 10) })
	case Float32s:
		writeArrayText(sb, "F", x, func(f float32) string { return strconv.FormatFloat(float64(f), 'g', -1, 32) })
	case Float64s:
		writeArrayText(sb, "D", x, func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) })
	case Strings:
		writeArrayText(sb, "T", x, strconv.Quote)
	case List:
		if depth > format.MaxDepth {
			sb.WriteString("[...]")
			return
		}
		sb.WriteByte('[')
		for i, item := range x {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeValueText(sb, item, depth+1)
		}
		sb.WriteByte(']')
	case *Compound:
		writeCompoundText(sb, x, depth)
	default:
		sb.WriteString("<nil>")
	}
}

func writeArrayText[E any](sb *strings.Builder, prefix string, items []E, elem func(E) string) {
	sb.WriteByte('[')
	sb.WriteString(prefix)
	sb.WriteByte(';')
	for i, item := range items {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte(' ')
		sb.WriteString(elem(item))
	}
	sb.WriteByte(']')
}
