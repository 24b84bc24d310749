package types

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTag_String(t *testing.T) {
	tests := []struct {
		name     string
		tag      Tag
		expected string
	}{
		{name: "invalid", tag: TagInvalid, expected: "INVALID"},
		{name: "int8", tag: TagInt8, expected: "INT8"},
		{name: "int32", tag: TagInt32, expected: "INT32"},
		{name: "float64", tag: TagFloat64, expected: "FLOAT64"},
		{name: "string", tag: TagString, expected: "STRING"},
		{name: "bytes", tag: TagBytes, expected: "BYTES"},
		{name: "int16 array", tag: TagInt16s, expected: "INT16_ARRAY"},
		{name: "string array", tag: TagStrings, expected: "STRING_ARRAY"},
		{name: "list", tag: TagList, expected: "LIST"},
		{name: "compound", tag: TagCompound, expected: "COMPOUND"},
		{name: "unknown", tag: Tag(0x7F), expected: "UNKNOWN_TAG_0x7F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.tag.String())
		})
	}
}

func TestTag_Valid(t *testing.T) {
	assert.False(t, TagInvalid.Valid())
	for tag := TagInt8; tag <= TagMax; tag++ {
		assert.True(t, tag.Valid(), "tag %s", tag)
	}
	assert.False(t, Tag(TagMax+1).Valid())
	assert.False(t, Tag(0xFF).Valid())
}

func TestError_IsMatchesKind(t *testing.T) {
	err := &Error{Kind: ErrKindCorrupt, Msg: "ess: truncated string"}

	require.ErrorIs(t, err, ErrCorrupt)
	require.NotErrorIs(t, err, ErrFormat)

	wrapped := fmt.Errorf("load config: %w", err)
	require.ErrorIs(t, wrapped, ErrCorrupt)
	require.True(t, IsKind(wrapped, ErrKindCorrupt))
	require.False(t, IsKind(wrapped, ErrKindIO))
}

func TestError_UnwrapCause(t *testing.T) {
	err := &Error{Kind: ErrKindIO, Msg: "ess: write", Err: io.ErrShortWrite}

	require.ErrorIs(t, err, io.ErrShortWrite)
	require.ErrorIs(t, err, ErrIO)
	assert.Equal(t, "ess: write: short write", err.Error())

	var typed *Error
	require.True(t, errors.As(fmt.Errorf("outer: %w", err), &typed))
	assert.Equal(t, ErrKindIO, typed.Kind)
}

func TestError_NilReceiver(t *testing.T) {
	var err *Error
	assert.Equal(t, "<nil>", err.Error())
	assert.False(t, err.Is(ErrIO))
}

func TestErrKind_String(t *testing.T) {
	assert.Equal(t, "io", ErrKindIO.String())
	assert.Equal(t, "unsupported", ErrKindUnsupported.String())
	assert.Equal(t, "kind(42)", ErrKind(42).String())
}
