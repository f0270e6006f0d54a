package asc

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/cockroachdb/errors"
)

// ErrSyntax wraps every grammar error reported for a record.
var ErrSyntax = errors.New("syntax error")

// Parser parses LTspice schematic records, one line at a time.
type Parser struct {
	parser *participle.Parser[Record]
}

// NewParser creates a new record parser
func NewParser() (*Parser, error) {
	parser, err := participle.Build[Record](
		participle.Lexer(ASCLexer),
		participle.Elide("Whitespace"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build parser")
	}

	return &Parser{parser: parser}, nil
}

// ParseLine parses a single non-blank line.
func (p *Parser) ParseLine(filename string, line string) (*Record, error) {
	rec, err := p.parser.ParseString(filename, line)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "parse error"), ErrSyntax)
	}
	if err := rec.check(); err != nil {
		return nil, err
	}
	return rec, nil
}

// Parse reads every record from r.
func (p *Parser) Parse(filename string, r io.Reader) ([]*Record, error) {
	reader := p.NewReader(filename, r)

	var records []*Record
	for {
		rec, err := reader.Next()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
}

// ParseString parses a schematic held in a string
func (p *Parser) ParseString(input string) ([]*Record, error) {
	return p.Parse("", strings.NewReader(input))
}

// ParseFile parses a schematic from a file path
func (p *Parser) ParseFile(filename string) ([]*Record, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	return p.Parse(filename, file)
}

// Reader streams records from a schematic. It is the line-oriented
// tokenizer the converter pulls from; nothing is buffered beyond the
// current line.
type Reader struct {
	parser   *Parser
	filename string
	scanner  *bufio.Scanner
	line     int
}

// NewReader returns a Reader over r. The input is decoded to UTF-8 first,
// see Decode.
func (p *Parser) NewReader(filename string, r io.Reader) *Reader {
	return &Reader{
		parser:   p,
		filename: filename,
		scanner:  bufio.NewScanner(Decode(r)),
	}
}

// Next returns the next record, or io.EOF after the last one.
// Blank lines are skipped.
func (r *Reader) Next() (*Record, error) {
	for r.scanner.Scan() {
		r.line++
		text := r.scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		rec, err := r.parser.ParseLine(r.filename, text)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", r.name(), r.line)
		}
		return rec, nil
	}

	if err := r.scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", r.name())
	}
	return nil, io.EOF
}

// Line returns the number of the line last read.
func (r *Reader) Line() int {
	return r.line
}

func (r *Reader) name() string {
	if r.filename == "" {
		return "<input>"
	}
	return r.filename
}
