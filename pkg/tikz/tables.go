package tikz

import (
	"sort"

	"github.com/cockroachdb/errors"
)

// Family is the circuitikz macro a symbol is drawn with.
type Family string

const (
	Resistor                Family = "resistor"
	CurrentSource           Family = "isource"
	VoltageSource           Family = "vsource"
	ControlledCurrentSource Family = "cisource"
	ControlledVoltageSource Family = "cvsource"
	Diode                   Family = "diode"
	Capacitor               Family = "capacitor"
	Inductor                Family = "cute inductor"
	NPN                     Family = "npn"
	NMOS                    Family = "nmos"
	OpAmp                   Family = "op amp"
)

// Kind selects the geometry builder for a family.
type Kind int

const (
	TwoTerminalKind Kind = iota
	ThreeTerminalKind
	FourTerminalKind
)

func (k Kind) String() string {
	switch k {
	case TwoTerminalKind:
		return "two-terminal"
	case ThreeTerminalKind:
		return "three-terminal"
	case FourTerminalKind:
		return "four-terminal"
	}
	return "unknown"
}

// Kind returns which builder renders the family.
func (f Family) Kind() Kind {
	switch f {
	case NPN, NMOS:
		return ThreeTerminalKind
	case OpAmp:
		return FourTerminalKind
	}
	return TwoTerminalKind
}

// symbolTypes maps LTspice symbol names to families.
var symbolTypes = map[string]Family{
	"res":           Resistor,
	"current":       CurrentSource,
	"voltage":       VoltageSource,
	"bi":            ControlledCurrentSource,
	"f":             ControlledCurrentSource,
	"bv":            ControlledVoltageSource,
	"h":             ControlledVoltageSource,
	"e":             ControlledVoltageSource,
	"diode":         Diode,
	"npn":           NPN,
	"nmos":          NMOS,
	`OpAmps\\opamp`: OpAmp,
	"cap":           Capacitor,
	"ind":           Inductor,
}

// LookupFamily resolves an LTspice symbol name.
func LookupFamily(symbolType string) (Family, error) {
	family, ok := symbolTypes[symbolType]
	if !ok {
		err := errors.Wrapf(ErrUnknownSymbolType, "%q", symbolType)
		return "", errors.WithHintf(err, "known symbol types: %v", SymbolTypes())
	}
	return family, nil
}

// SymbolTypes returns the supported LTspice symbol names in sorted order.
func SymbolTypes() []string {
	names := make([]string, 0, len(symbolTypes))
	for name := range symbolTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Offset is a displacement in grid units.
type Offset struct {
	X, Y int
}

// anchorOffsets moves the LTspice anchor onto the first terminal (two
// terminal families) or the body origin (transistors, op amps), per rotation.
var anchorOffsets = map[Family][4]Offset{
	Resistor:                {{16, 16}, {-16, 16}, {-16, -16}, {16, -16}},
	CurrentSource:           {{0, 0}, {0, 0}, {0, 0}, {0, 0}},
	ControlledCurrentSource: {{0, 0}, {0, 0}, {0, 0}, {0, 0}},
	VoltageSource:           {{0, 16}, {-16, 0}, {0, -16}, {16, 0}},
	ControlledVoltageSource: {{0, 16}, {-16, 0}, {0, -16}, {16, 0}},
	Diode:                   {{16, 0}, {0, -16}, {-16, 0}, {0, 16}},
	Capacitor:               {{16, 0}, {0, 16}, {-16, 0}, {0, -16}},
	NPN:                     {{64, 48}, {-48, 64}, {-64, -48}, {48, -64}},
	NMOS:                    {{48, 48}, {-48, 48}, {-48, -48}, {48, -48}},
	OpAmp:                   {{0, 64}, {-64, 0}, {0, -64}, {64, 0}},
	Inductor:                {{16, 16}, {-16, 16}, {-16, -16}, {16, -16}},
}

// mirroredOpAmpOffsets replaces anchorOffsets[OpAmp] for mirrored op amps.
// Indexed by the unadjusted rotation.
var mirroredOpAmpOffsets = [4]Offset{{0, 64}, {64, 0}, {0, -64}, {-64, 0}}

// lengthDeltas is the second terminal relative to the first, in drawing units.
var lengthDeltas = map[Family][4]Point{
	Resistor:                {{0, -2.5}, {-2.5, 0}, {0, 2.5}, {2.5, 0}},
	CurrentSource:           {{0, -2.5}, {-2.5, 0}, {0, 2.5}, {2.5, 0}},
	ControlledCurrentSource: {{0, -2.5}, {-2.5, 0}, {0, 2.5}, {2.5, 0}},
	VoltageSource:           {{0, -2.5}, {-2.5, 0}, {0, 2.5}, {2.5, 0}},
	ControlledVoltageSource: {{0, -2.5}, {-2.5, 0}, {0, 2.5}, {2.5, 0}},
	Diode:                   {{0, -2}, {-2, 0}, {0, 2}, {2, 0}},
	Capacitor:               {{0, -2}, {-2, 0}, {0, 2}, {2, 0}},
	Inductor:                {{0, -2.5}, {-2.5, 0}, {0, 2.5}, {2.5, 0}},
}

// units are siunitx unit macros, without the backslash.
var units = map[Family]string{
	Resistor:                "ohm",
	CurrentSource:           "A",
	ControlledCurrentSource: "A",
	VoltageSource:           "V",
	ControlledVoltageSource: "V",
	Diode:                   "",
	Capacitor:               "F",
	Inductor:                "H",
}

// Transistor terminal stubs relative to the origin, in drawing units.
var (
	baseOffsets      = [4]Point{{-2, 0}, {0, 2}, {2, 0}, {0, -2}}
	collectorOffsets = [4]Point{{0, 1.5}, {1.5, 0}, {0, -1.5}, {-1.5, 0}}
	emitterOffsets   = [4]Point{{0, -1.5}, {-1.5, 0}, {0, 1.5}, {1.5, 0}}
)

// LengthDelta returns the end-minus-start vector of a two-terminal family.
func LengthDelta(f Family, r Rotation) (Point, bool) {
	deltas, ok := lengthDeltas[f]
	if !ok {
		return Point{}, false
	}
	return deltas[r], true
}

// Unit returns the siunitx unit of a two-terminal family.
func Unit(f Family) string {
	return units[f]
}
