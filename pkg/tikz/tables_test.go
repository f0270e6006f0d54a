package tikz

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupFamily(t *testing.T) {
	tests := []struct {
		symbolType string
		family     Family
		kind       Kind
	}{
		{"res", Resistor, TwoTerminalKind},
		{"current", CurrentSource, TwoTerminalKind},
		{"voltage", VoltageSource, TwoTerminalKind},
		{"bi", ControlledCurrentSource, TwoTerminalKind},
		{"f", ControlledCurrentSource, TwoTerminalKind},
		{"bv", ControlledVoltageSource, TwoTerminalKind},
		{"h", ControlledVoltageSource, TwoTerminalKind},
		{"e", ControlledVoltageSource, TwoTerminalKind},
		{"diode", Diode, TwoTerminalKind},
		{"cap", Capacitor, TwoTerminalKind},
		{"ind", Inductor, TwoTerminalKind},
		{"npn", NPN, ThreeTerminalKind},
		{"nmos", NMOS, ThreeTerminalKind},
		{`OpAmps\\opamp`, OpAmp, FourTerminalKind},
	}

	for _, tt := range tests {
		t.Run(tt.symbolType, func(t *testing.T) {
			family, err := LookupFamily(tt.symbolType)
			require.NoError(t, err)
			assert.Equal(t, tt.family, family)
			assert.Equal(t, tt.kind, family.Kind())
		})
	}

	assert.Len(t, SymbolTypes(), len(tests))
}

func TestLookupFamilyUnknown(t *testing.T) {
	_, err := LookupFamily("pnp")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownSymbolType))
	assert.Contains(t, err.Error(), `"pnp"`)

	hints := errors.GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Contains(t, hints[0], "res")
	assert.Contains(t, hints[0], "npn")
}

func TestSymbolTypesSorted(t *testing.T) {
	types := SymbolTypes()
	assert.IsIncreasing(t, types)
}

func TestTablesCoverEveryFamily(t *testing.T) {
	for _, symbolType := range SymbolTypes() {
		family, err := LookupFamily(symbolType)
		require.NoError(t, err)

		_, hasOffset := anchorOffsets[family]
		assert.True(t, hasOffset, "anchor offsets for %s", family)

		if family.Kind() == TwoTerminalKind {
			_, hasDelta := lengthDeltas[family]
			assert.True(t, hasDelta, "length deltas for %s", family)
			_, hasUnit := units[family]
			assert.True(t, hasUnit, "unit for %s", family)
		}
	}
}
