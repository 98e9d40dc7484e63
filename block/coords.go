package block

import (
	"fmt"
	"io"
	"os"
)

// Coords are three auxiliary integers carried by a TextBlock for debug
// output. They are unrelated to the text and default to zero.
type Coords struct {
	X, Y, Z int
}

// Fprint writes "X Y Z\n" to w.
func (c Coords) Fprint(w io.Writer) error {
	_, err := fmt.Fprintln(w, c.X, c.Y, c.Z)
	return err
}

func (b *TextBlock) Coords() Coords { return b.coords }

func (b *TextBlock) SetCoords(c Coords) { b.coords = c }

// DebugPrint writes the coords to standard output.
func (b *TextBlock) DebugPrint() {
	_ = b.coords.Fprint(os.Stdout)
}

func (b *TextBlock) DebugPrintTo(w io.Writer) error {
	return b.coords.Fprint(w)
}
