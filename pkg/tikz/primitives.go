package tikz

import (
	"fmt"
	"io"
)

// GroundName is the LTspice net name of ground.
const GroundName = "0"

// WriteWire draws a plain connection between two grid points.
func WriteWire(w io.Writer, x1, y1, x2, y2 int) error {
	start := MapGrid(x1, y1, Offset{})
	end := MapGrid(x2, y2, Offset{})
	_, err := fmt.Fprintf(w, "\t\t\\draw %s to [short] %s;\n", start, end)
	return err
}

// WriteFlag places a ground symbol for net "0", and a labelled dot for any
// other net name.
func WriteFlag(w io.Writer, x, y int, name string) error {
	at := MapGrid(x, y, Offset{})
	if name == GroundName {
		_, err := fmt.Fprintf(w, "\t\t\\node (ground) at %s [ground] {};\n", at)
		return err
	}
	_, err := fmt.Fprintf(w, "\t\t\\node (%s) at %s [label={above:%s}, circ] {};\n",
		name, at, mathLabel(name))
	return err
}

// Document is the environment around the drawing commands.
type Document struct {
	// Center wraps the picture in a center environment.
	Center bool
}

// WriteHeader opens the picture.
func (d Document) WriteHeader(w io.Writer) error {
	if d.Center {
		if _, err := io.WriteString(w, "\\begin{center}\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\t\\begin{tikzpicture}\n")
	return err
}

// WriteFooter closes the picture.
func (d Document) WriteFooter(w io.Writer) error {
	if _, err := io.WriteString(w, "\t\\end{tikzpicture}\n"); err != nil {
		return err
	}
	if d.Center {
		_, err := io.WriteString(w, "\\end{center}\n")
		return err
	}
	return nil
}
