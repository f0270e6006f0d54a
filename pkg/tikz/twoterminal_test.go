package tikz

import (
	"bytes"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rotationTokens = [4]string{"R0", "R90", "R180", "R270"}

func TestTwoTerminalLengthMatchesTable(t *testing.T) {
	for family, deltas := range lengthDeltas {
		for rot, token := range rotationTokens {
			sym, err := NewTwoTerminal(family, 112, -48, token)
			require.NoError(t, err, "%s %s", family, token)
			assert.Equal(t, deltas[rot], sym.End.Sub(sym.Start), "%s %s", family, token)
		}
	}
}

func TestTwoTerminalResistor(t *testing.T) {
	sym, err := NewSymbol("res", 100, 200, "R0")
	require.NoError(t, err)

	res, ok := sym.(*TwoTerminal)
	require.True(t, ok)
	assert.Equal(t, Point{3.625, -6.75}, res.Start)
	assert.Equal(t, Point{3.625, -9.25}, res.End)

	sym.SetName("R1")
	sym.SetValue("10k")

	var buf bytes.Buffer
	require.NoError(t, sym.Render(&buf))
	assert.Equal(t,
		"\t\t"+`\draw (3.625, -6.75) to [resistor, l^=\(R1\), a_=\(10 \unit{\kohm}\)] (3.625, -9.25);`+"\n",
		buf.String())
}

func TestTwoTerminalWithoutValue(t *testing.T) {
	sym, err := NewSymbol("cap", 0, 0, "R90")
	require.NoError(t, err)
	sym.SetName("C1")

	var buf bytes.Buffer
	require.NoError(t, sym.Render(&buf))
	// anchor offset (0, 16), length (-2, 0)
	assert.Equal(t,
		"\t\t"+`\draw (0, -0.5) to [capacitor, l^=\(C1\)] (-2, -0.5);`+"\n",
		buf.String())
}

func TestTwoTerminalRotations(t *testing.T) {
	tests := []struct {
		token      string
		start, end Point
	}{
		{"R0", Point{0.5, -0.5}, Point{0.5, -3}},
		{"R90", Point{-0.5, -0.5}, Point{-3, -0.5}},
		{"R180", Point{-0.5, 0.5}, Point{-0.5, 3}},
		{"R270", Point{0.5, 0.5}, Point{3, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			sym, err := NewTwoTerminal(Resistor, 0, 0, tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.start, sym.Start)
			assert.Equal(t, tt.end, sym.End)
		})
	}
}

func TestTwoTerminalRejectsMirror(t *testing.T) {
	_, err := NewSymbol("res", 0, 0, "M0")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedOrientation))
}

func TestTwoTerminalRejectsOtherFamilies(t *testing.T) {
	_, err := NewTwoTerminal(NPN, 0, 0, "R0")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownSymbolType))
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		unit  string
		want  string
	}{
		{"prefix", "10k", "ohm", `\(10 \unit{\kohm}\)`},
		{"base unit", "100", "ohm", `\(100 \unit{\ohm}\)`},
		{"micro", "4.7u", "F", `\(4.7 \unit{\uF}\)`},
		{"mega", "1M", "ohm", `\(1 \unit{\Mohm}\)`},
		{"volts", "5", "V", `\(5 \unit{\V}\)`},
		{"unicode prefix", "2.2µ", "H", `\(2.2 \unit{\µH}\)`},
		{"no unit", "1N4148", "", `\(1N4148 \unit{\}\)`},
		// A bare prefix keeps an empty number.
		{"single prefix character", "k", "ohm", `\( \unit{\kohm}\)`},
		{"single digit", "1", "A", `\(1 \unit{\A}\)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.value, tt.unit))
		})
	}
}
