// Package convert drives a single pass over an LTspice schematic, writing a
// circuitikz picture as it goes.
package convert

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/OpenTraceLab/asc2tikz/pkg/asc"
	"github.com/OpenTraceLab/asc2tikz/pkg/tikz"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// ErrOrphanedAttribute is returned for a SYMATTR record with no symbol to
// attach to.
var ErrOrphanedAttribute = errors.New("attribute without a symbol")

// DefaultExtension is the extension given to generated files.
const DefaultExtension = ".tex"

// Stats counts what a conversion emitted.
type Stats struct {
	Wires    int
	Symbols  int
	Flags    int
	Grounds  int
	Ignored  int
	Families map[tikz.Family]int
}

// FamilyNames returns the families seen, sorted.
func (s Stats) FamilyNames() []tikz.Family {
	families := make([]tikz.Family, 0, len(s.Families))
	for f := range s.Families {
		families = append(families, f)
	}
	sort.Slice(families, func(i, j int) bool { return families[i] < families[j] })
	return families
}

// Converter turns .asc records into circuitikz.
type Converter struct {
	parser   *asc.Parser
	log      *zap.SugaredLogger
	document tikz.Document
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *Converter) {
		c.log = log
	}
}

// WithCenter controls the center environment around the picture.
func WithCenter(center bool) Option {
	return func(c *Converter) {
		c.document.Center = center
	}
}

// New creates a Converter.
func New(opts ...Option) (*Converter, error) {
	parser, err := asc.NewParser()
	if err != nil {
		return nil, err
	}

	c := &Converter{
		parser:   parser,
		log:      zap.NewNop().Sugar(),
		document: tikz.Document{Center: true},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Convert reads a schematic from r and writes the picture to w.
//
// Records are handled in order. A symbol is held back until the next
// WIRE, SYMBOL or FLAG record (or the end of input) so that its SYMATTR
// records can name it. The first error stops the pass; whatever was
// written before it is flushed to w.
func (c *Converter) Convert(filename string, r io.Reader, w io.Writer) (stats Stats, err error) {
	stats.Families = make(map[tikz.Family]int)

	out := bufio.NewWriter(w)
	defer func() {
		if ferr := out.Flush(); ferr != nil && err == nil {
			err = errors.Wrap(ferr, "failed to write output")
		}
	}()

	if err := c.document.WriteHeader(out); err != nil {
		return stats, err
	}

	var pending tikz.Symbol
	finalize := func() error {
		if pending == nil {
			return nil
		}
		c.log.Debugw("symbol", "family", pending.Family(), "name", pending.Name())
		err := pending.Render(out)
		pending = nil
		return err
	}

	reader := c.parser.NewReader(filename, r)
	for {
		rec, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, err
		}

		switch {
		case rec.Wire != nil:
			if err := finalize(); err != nil {
				return stats, err
			}
			x1, y1, x2, y2, err := rec.Wire.Points()
			if err != nil {
				return stats, err
			}
			if err := tikz.WriteWire(out, x1, y1, x2, y2); err != nil {
				return stats, err
			}
			stats.Wires++

		case rec.Symbol != nil:
			if err := finalize(); err != nil {
				return stats, err
			}
			x, y, err := rec.Symbol.Anchor()
			if err != nil {
				return stats, err
			}
			sym, err := tikz.NewSymbol(rec.Symbol.Type, x, y, rec.Symbol.Orientation)
			if err != nil {
				return stats, errors.Wrapf(err, "%s:%d", displayName(filename), reader.Line())
			}
			pending = sym
			stats.Symbols++
			stats.Families[sym.Family()]++

		case rec.Attr != nil:
			if pending == nil {
				return stats, errors.Wrapf(ErrOrphanedAttribute, "%s:%d: SYMATTR %s",
					displayName(filename), reader.Line(), rec.Attr.Key)
			}
			switch rec.Attr.Key {
			case asc.AttrInstName:
				pending.SetName(rec.Attr.Value)
			case asc.AttrValue:
				pending.SetValue(rec.Attr.Value)
			}

		case rec.Flag != nil:
			if err := finalize(); err != nil {
				return stats, err
			}
			x, y, err := rec.Flag.Point()
			if err != nil {
				return stats, err
			}
			if err := tikz.WriteFlag(out, x, y, rec.Flag.Name); err != nil {
				return stats, err
			}
			if rec.Flag.IsGround() {
				stats.Grounds++
			} else {
				stats.Flags++
			}

		default:
			c.log.Debugw("ignored record", "keyword", rec.Kind(), "line", reader.Line())
			stats.Ignored++
		}
	}

	if err := finalize(); err != nil {
		return stats, err
	}
	if err := c.document.WriteFooter(out); err != nil {
		return stats, err
	}

	c.log.Infow("converted schematic",
		"file", displayName(filename),
		"wires", stats.Wires,
		"symbols", stats.Symbols,
		"flags", stats.Flags+stats.Grounds,
	)
	return stats, nil
}

// ConvertFile converts src into dst. The output file is created before
// reading starts, so a failed conversion leaves a partial file behind.
// A dst of "-" writes to stdout.
func (c *Converter) ConvertFile(src, dst string) (Stats, error) {
	in, err := os.Open(src)
	if err != nil {
		return Stats{}, errors.Wrap(err, "failed to open input")
	}
	defer in.Close()

	if dst == "-" {
		return c.Convert(src, in, os.Stdout)
	}

	out, err := os.Create(dst)
	if err != nil {
		return Stats{}, errors.Wrap(err, "failed to create output")
	}

	stats, err := c.Convert(src, in, out)
	if cerr := out.Close(); cerr != nil && err == nil {
		err = errors.Wrap(cerr, "failed to close output")
	}
	return stats, err
}

// OutputPath replaces the extension of src with ext.
func OutputPath(src, ext string) string {
	if ext == "" {
		ext = DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return strings.TrimSuffix(src, filepath.Ext(src)) + ext
}

func displayName(filename string) string {
	if filename == "" {
		return "<input>"
	}
	return filename
}
