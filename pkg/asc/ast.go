package asc

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// ErrMalformedNumber is returned when a coordinate field is not an integer.
var ErrMalformedNumber = errors.New("malformed number")

// Record is one line of an LTspice schematic.
// Exactly one of the fields is set.
type Record struct {
	Wire   *Wire   `  @@`
	Symbol *Symbol `| @@`
	Attr   *Attr   `| @@`
	Flag   *Flag   `| @@`
	Other  *Other  `| @@`
}

// Kind returns the leading keyword of the record.
func (r *Record) Kind() string {
	switch {
	case r.Wire != nil:
		return KeywordWire
	case r.Symbol != nil:
		return KeywordSymbol
	case r.Attr != nil:
		return KeywordSymAttr
	case r.Flag != nil:
		return KeywordFlag
	case r.Other != nil:
		return r.Other.Keyword
	}
	return ""
}

// Keywords understood by the converter. Every other keyword parses as Other.
const (
	KeywordWire    = "WIRE"
	KeywordSymbol  = "SYMBOL"
	KeywordSymAttr = "SYMATTR"
	KeywordFlag    = "FLAG"
)

// Symbol attribute keys that carry meaning for rendering.
const (
	AttrInstName = "InstName"
	AttrValue    = "Value"
)

// Wire is a straight connection between two grid points.
// Example: WIRE 96 128 96 176
type Wire struct {
	X1    Coord    `"WIRE" @Word`
	Y1    Coord    `@Word`
	X2    Coord    `@Word`
	Y2    Coord    `@Word`
	Extra []string `@Word*`
}

// Symbol places a component.
// Example: SYMBOL res 80 112 R0
type Symbol struct {
	Type        string   `"SYMBOL" @Word`
	X           Coord    `@Word`
	Y           Coord    `@Word`
	Orientation string   `@Word`
	Extra       []string `@Word*`
}

// Attr sets an attribute on the most recent symbol.
// Only the first word of the value is kept, so
// "SYMATTR Value PULSE(0 5 0)" yields the value "PULSE(0".
type Attr struct {
	Key   string   `"SYMATTR" @Word`
	Value string   `@Word`
	Rest  []string `@Word*`
}

// Flag names a net at a grid point. The name "0" is ground.
// Example: FLAG 64 64 VCC
type Flag struct {
	X     Coord    `"FLAG" @Word`
	Y     Coord    `@Word`
	Name  string   `@Word`
	Extra []string `@Word*`
}

// IsGround reports whether the flag is the ground net.
func (f *Flag) IsGround() bool {
	return f.Name == "0"
}

// Other is any record the converter does not interpret (Version, SHEET,
// WINDOW, TEXT, ...).
type Other struct {
	Keyword string   `@!( "WIRE" | "SYMBOL" | "SYMATTR" | "FLAG" )`
	Args    []string `@Word*`
}

// Coord is an integer coordinate in LTspice grid units, kept as written
// until Int converts it.
type Coord string

// Int converts the coordinate.
func (c Coord) Int() (int, error) {
	n, err := strconv.Atoi(string(c))
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedNumber, "%q", string(c))
	}
	return n, nil
}

func checkCoords(coords ...Coord) error {
	for _, c := range coords {
		if _, err := c.Int(); err != nil {
			return err
		}
	}
	return nil
}

// check reports the first malformed coordinate in the record.
func (r *Record) check() error {
	switch {
	case r.Wire != nil:
		return checkCoords(r.Wire.X1, r.Wire.Y1, r.Wire.X2, r.Wire.Y2)
	case r.Symbol != nil:
		return checkCoords(r.Symbol.X, r.Symbol.Y)
	case r.Flag != nil:
		return checkCoords(r.Flag.X, r.Flag.Y)
	}
	return nil
}

// Points returns the wire's end points.
func (w *Wire) Points() (x1, y1, x2, y2 int, err error) {
	if x1, err = w.X1.Int(); err != nil {
		return
	}
	if y1, err = w.Y1.Int(); err != nil {
		return
	}
	if x2, err = w.X2.Int(); err != nil {
		return
	}
	y2, err = w.Y2.Int()
	return
}

// Anchor returns the symbol's anchor point.
func (s *Symbol) Anchor() (x, y int, err error) {
	if x, err = s.X.Int(); err != nil {
		return
	}
	y, err = s.Y.Int()
	return
}

// Point returns the flag's position.
func (f *Flag) Point() (x, y int, err error) {
	if x, err = f.X.Int(); err != nil {
		return
	}
	y, err = f.Y.Int()
	return
}
