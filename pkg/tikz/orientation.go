package tikz

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// Rotation is a rotation index: 0, 1, 2, 3 for 0°, 90°, 180°, 270°.
type Rotation int

// Degrees returns the clockwise LTspice angle.
func (r Rotation) Degrees() int {
	return int(r) * 90
}

// Orientation is one of LTspice's eight placements: R0..R270 or M0..M270.
type Orientation struct {
	Rotation Rotation
	Mirrored bool
}

// orientations lists the eight tokens LTspice writes.
var orientations = map[string]Orientation{
	"R0":   {Rotation: 0},
	"R90":  {Rotation: 1},
	"R180": {Rotation: 2},
	"R270": {Rotation: 3},
	"M0":   {Rotation: 0, Mirrored: true},
	"M90":  {Rotation: 1, Mirrored: true},
	"M180": {Rotation: 2, Mirrored: true},
	"M270": {Rotation: 3, Mirrored: true},
}

// ParseOrientation parses tokens such as "R90" or "M180".
func ParseOrientation(token string) (Orientation, error) {
	o, ok := orientations[token]
	if !ok {
		return Orientation{}, errors.Wrapf(ErrMalformedOrientation, "%q", token)
	}
	return o, nil
}

// String returns the LTspice token.
func (o Orientation) String() string {
	prefix := "R"
	if o.Mirrored {
		prefix = "M"
	}
	return prefix + strconv.Itoa(o.Rotation.Degrees())
}

// parseRotation accepts only the rotate-only tokens R0, R90, R180 and R270.
func parseRotation(token string) (Rotation, error) {
	o, err := ParseOrientation(token)
	if err != nil {
		return 0, err
	}
	if o.Mirrored {
		return 0, errors.Wrapf(ErrMalformedOrientation, "%q: mirroring is only supported for op amps", token)
	}
	return o.Rotation, nil
}

// rotateClause is the circuitikz rotation option, empty at 0°.
// LTspice rotates clockwise, TikZ counterclockwise.
func rotateClause(r Rotation) string {
	if r == 0 {
		return ""
	}
	return "rotate=-" + strconv.Itoa(r.Degrees())
}
