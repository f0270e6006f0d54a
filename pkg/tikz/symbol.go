// Package tikz turns placed LTspice symbols into circuitikz drawing commands.
//
// Each symbol family has its own geometry builder: two-terminal elements are
// drawn as a bipole between two points, transistors as a node with three
// short stubs, and op amps as a node whose own anchors serve as terminals.
// All builders share the grid mapping in coords.go and the per-rotation
// tables in tables.go.
package tikz

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrUnknownSymbolType is returned for an LTspice symbol name with no family.
	ErrUnknownSymbolType = errors.New("unknown symbol type")

	// ErrMalformedOrientation is returned for a rotation token outside
	// R0..R270 / M0..M270, or a mirrored token where mirroring is unsupported.
	ErrMalformedOrientation = errors.New("malformed orientation")
)

// Symbol is a placed component awaiting its attributes.
// The implementations are TwoTerminal, Transistor and Amplifier.
type Symbol interface {
	Family() Family
	Name() string
	SetName(name string)
	SetValue(value string)
	// Render writes the finished circuitikz commands.
	Render(w io.Writer) error

	isSymbol()
}

// NewSymbol builds the geometry for a SYMBOL record.
func NewSymbol(symbolType string, x, y int, orientation string) (Symbol, error) {
	family, err := LookupFamily(symbolType)
	if err != nil {
		return nil, err
	}

	switch family.Kind() {
	case ThreeTerminalKind:
		return NewTransistor(family, x, y, orientation)
	case FourTerminalKind:
		return NewAmplifier(family, x, y, orientation)
	default:
		return NewTwoTerminal(family, x, y, orientation)
	}
}

// attributes holds the fields filled in by SYMATTR records.
type attributes struct {
	name  string
	value string
}

func (a *attributes) Name() string          { return a.name }
func (a *attributes) SetName(name string)   { a.name = name }
func (a *attributes) Value() string         { return a.value }
func (a *attributes) SetValue(value string) { a.value = value }

var nodeNameReplacer = strings.NewReplacer("_", "", "{", "", "}", "")

// nodeName strips the characters TikZ rejects in node names.
func nodeName(name string) string {
	return nodeNameReplacer.Replace(name)
}

// mathLabel wraps text in inline math.
func mathLabel(text string) string {
	return `\(` + text + `\)`
}

// joinOptions joins the non-empty options with ", ".
func joinOptions(options ...string) string {
	var b strings.Builder
	for _, opt := range options {
		if opt == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(opt)
	}
	return b.String()
}
