package tikz

import (
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// TwoTerminal is a bipole drawn from Start to End.
type TwoTerminal struct {
	attributes

	family Family
	Start  Point
	End    Point
}

// NewTwoTerminal places a two-terminal family. The orientation must be one
// of R0, R90, R180, R270.
func NewTwoTerminal(family Family, x, y int, orientation string) (*TwoTerminal, error) {
	offsets, ok := anchorOffsets[family]
	deltas, hasDelta := lengthDeltas[family]
	if !ok || !hasDelta {
		return nil, errors.Wrapf(ErrUnknownSymbolType, "%s is not a two-terminal family", family)
	}

	rot, err := parseRotation(orientation)
	if err != nil {
		return nil, err
	}

	start := MapGrid(x, y, offsets[rot])
	return &TwoTerminal{
		family: family,
		Start:  start,
		End:    start.Add(deltas[rot]),
	}, nil
}

func (t *TwoTerminal) Family() Family { return t.family }

func (*TwoTerminal) isSymbol() {}

// Render writes
//
//	\draw (x1, y1) to [resistor, l^=\(R1\), a_=\(10 \unit{\kohm}\)] (x2, y2);
//
// The value annotation is left out when no value was set.
func (t *TwoTerminal) Render(w io.Writer) error {
	options := joinOptions(
		string(t.family),
		"l^="+mathLabel(t.name),
		t.valueOption(),
	)
	_, err := fmt.Fprintf(w, "\t\t\\draw %s to [%s] %s;\n", t.Start, options, t.End)
	return err
}

func (t *TwoTerminal) valueOption() string {
	if t.value == "" {
		return ""
	}
	return "a_=" + FormatValue(t.value, Unit(t.family))
}

// FormatValue renders an LTspice value with siunitx. A trailing digit means
// the value is in base units ("100" -> \(100 \unit{\ohm}\)). Any other
// trailing character is taken as an SI prefix and merged into the unit
// ("10k" -> \(10 \unit{\kohm}\)). A lone prefix such as "k" leaves the
// number empty.
func FormatValue(value, unit string) string {
	last, size := utf8.DecodeLastRuneInString(value)
	if unicode.IsDigit(last) {
		return mathLabel(value + ` \unit{\` + unit + `}`)
	}
	number := value[:len(value)-size]
	return mathLabel(number + ` \unit{\` + string(last) + unit + `}`)
}
