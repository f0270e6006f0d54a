package asc

import (
	"bufio"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode returns a UTF-8 view of an .asc file.
//
// LTspice XVII and later save schematics as UTF-16LE, usually without a
// byte order mark, while older versions write plain ASCII. A BOM always
// wins; otherwise a NUL second byte marks UTF-16LE.
func Decode(r io.Reader) io.Reader {
	br := bufio.NewReader(r)

	head, _ := br.Peek(2)
	if len(head) == 2 && head[0] != 0 && head[1] == 0 {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
		return transform.NewReader(br, dec)
	}

	return transform.NewReader(br, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}
