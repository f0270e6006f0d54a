package asc

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// utf16le encodes BMP text the way LTspice XVII saves schematics.
func utf16le(s string) []byte {
	out := make([]byte, 0, 2*len(s))
	for _, r := range s {
		out = append(out, byte(r), byte(r>>8))
	}
	return out
}

func TestDecode(t *testing.T) {
	const text = "Version 4\nWIRE 0 0 32 0\n"

	tests := []struct {
		name  string
		input []byte
	}{
		{"ascii", []byte(text)},
		{"utf-8 bom", append([]byte{0xEF, 0xBB, 0xBF}, text...)},
		{"utf-16le", utf16le(text)},
		{"utf-16le bom", append([]byte{0xFF, 0xFE}, utf16le(text)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := io.ReadAll(Decode(bytes.NewReader(tt.input)))
			require.NoError(t, err)
			assert.Equal(t, text, string(got))
		})
	}
}

func TestDecodeEmpty(t *testing.T) {
	got, err := io.ReadAll(Decode(bytes.NewReader(nil)))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReaderUTF16(t *testing.T) {
	reader := newTestParser(t).NewReader("", bytes.NewReader(utf16le("SYMBOL cap 16 32 R90\r\nSYMATTR Value 2.2µ\r\n")))

	rec, err := reader.Next()
	require.NoError(t, err)
	require.NotNil(t, rec.Symbol)
	assert.Equal(t, "cap", rec.Symbol.Type)

	rec, err = reader.Next()
	require.NoError(t, err)
	require.NotNil(t, rec.Attr)
	// µ is U+00B5, a single UTF-16 unit
	assert.Equal(t, "2.2µ", rec.Attr.Value)
}
