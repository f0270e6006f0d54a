package tikz

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
)

// LabelWrapper undoes the node's flip on its text so the label reads
// normally.
type LabelWrapper string

const (
	LabelPlain  LabelWrapper = ""
	LabelFlipX  LabelWrapper = `\ctikzflipx`
	LabelFlipY  LabelWrapper = `\ctikzflipy`
	LabelFlipXY LabelWrapper = `\ctikzflipxy`
)

// Wrap applies the wrapper to label.
func (l LabelWrapper) Wrap(label string) string {
	if l == LabelPlain {
		return label
	}
	return string(l) + "{" + label + "}"
}

// Decoration is the flip applied to an op amp node and its label.
type Decoration struct {
	Scale string // xscale=-1, yscale=-1 or empty
	Label LabelWrapper
}

// amplifierDecorations is indexed by [rotation][mirrored].
// Once rotated by 90° or 270°, a mirror flips the node's y axis.
var amplifierDecorations = [4][2]Decoration{
	{{"", LabelPlain}, {"xscale=-1", LabelFlipX}},
	{{"", LabelPlain}, {"yscale=-1", LabelFlipY}},
	{{"", LabelFlipXY}, {"xscale=-1", LabelFlipY}},
	{{"", LabelPlain}, {"yscale=-1", LabelFlipY}},
}

// DecorationFor returns the flip decoration for an orientation.
func DecorationFor(o Orientation) Decoration {
	mirrored := 0
	if o.Mirrored {
		mirrored = 1
	}
	return amplifierDecorations[o.Rotation][mirrored]
}

// Amplifier is a four-terminal op amp node. Its terminals are the node's own
// anchors, so only the origin is computed.
type Amplifier struct {
	attributes

	family      Family
	Orientation Orientation
	Origin      Point
}

// NewAmplifier places an op amp. Both rotated (R) and mirrored (M)
// orientations are accepted.
func NewAmplifier(family Family, x, y int, orientation string) (*Amplifier, error) {
	if family.Kind() != FourTerminalKind {
		return nil, errors.Wrapf(ErrUnknownSymbolType, "%s is not an amplifier family", family)
	}

	o, err := ParseOrientation(orientation)
	if err != nil {
		return nil, err
	}

	offsets := anchorOffsets[family]
	if o.Mirrored {
		offsets = mirroredOpAmpOffsets
	}

	return &Amplifier{
		family:      family,
		Orientation: o,
		Origin:      MapGrid(x, y, offsets[o.Rotation]),
	}, nil
}

func (a *Amplifier) Family() Family { return a.family }

func (*Amplifier) isSymbol() {}

// Render writes the op amp node with its name as the node text.
func (a *Amplifier) Render(w io.Writer) error {
	deco := DecorationFor(a.Orientation)
	options := joinOptions(
		string(a.family),
		rotateClause(a.Orientation.Rotation),
		deco.Scale,
	)

	_, err := fmt.Fprintf(w, "\t\t\\node (%s) at %s [%s] {%s};\n",
		nodeName(a.name), a.Origin, options, deco.Label.Wrap(mathLabel(a.name)))
	return err
}
