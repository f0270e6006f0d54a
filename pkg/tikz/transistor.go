package tikz

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
)

// Transistor is a three-terminal node. Base, Collector and Emitter are the
// ends of the stubs that join the node's B, C and E anchors to the grid.
type Transistor struct {
	attributes

	family    Family
	Rotation  Rotation
	Origin    Point
	Base      Point
	Collector Point
	Emitter   Point
}

// labelSides puts the name on the side facing away from the base stub.
var labelSides = [4]string{"right", "below", "left", "above"}

// NewTransistor places a transistor family. The orientation must be one of
// R0, R90, R180, R270.
func NewTransistor(family Family, x, y int, orientation string) (*Transistor, error) {
	if family.Kind() != ThreeTerminalKind {
		return nil, errors.Wrapf(ErrUnknownSymbolType, "%s is not a transistor family", family)
	}

	rot, err := parseRotation(orientation)
	if err != nil {
		return nil, err
	}

	origin := MapGrid(x, y, anchorOffsets[family][rot])
	return &Transistor{
		family:    family,
		Rotation:  rot,
		Origin:    origin,
		Base:      origin.Add(baseOffsets[rot]),
		Collector: origin.Add(collectorOffsets[rot]),
		Emitter:   origin.Add(emitterOffsets[rot]),
	}, nil
}

func (t *Transistor) Family() Family { return t.family }

func (*Transistor) isSymbol() {}

// Render writes the transistor node followed by its three stubs.
func (t *Transistor) Render(w io.Writer) error {
	id := nodeName(t.name)
	options := joinOptions(
		string(t.family),
		rotateClause(t.Rotation),
		"label={"+labelSides[t.Rotation]+":"+mathLabel(t.name)+"}",
	)

	_, err := fmt.Fprintf(w,
		"\t\t\\node (%[1]s) at %[2]s [%[3]s] {};\n"+
			"\t\t\\draw %[4]s to [short] (%[1]s.B);\n"+
			"\t\t\\draw (%[1]s.C) to [short] %[5]s;\n"+
			"\t\t\\draw (%[1]s.E) to [short] %[6]s;\n",
		id, t.Origin, options, t.Base, t.Collector, t.Emitter)
	return err
}
