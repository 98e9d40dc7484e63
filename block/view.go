package block

// Reader is the read-only access surface shared by *TextBlock and View.
type Reader interface {
	Len() int
	At(pos int) (rune, error)
	String() string
}

var (
	_ Reader = (*TextBlock)(nil)
	_ Reader = View{}
)

// View grants read-only access to a TextBlock. The zero View reads as empty.
type View struct {
	b *TextBlock
}

func (v View) Len() int {
	if v.b == nil {
		return 0
	}
	return v.b.Len()
}

func (v View) At(pos int) (rune, error) {
	if v.b == nil {
		return 0, &RangeError{Pos: pos, Len: 0, Unit: UnitRune}
	}
	return v.b.At(pos)
}

func (v View) String() string {
	if v.b == nil {
		return ""
	}
	return v.b.String()
}

func (v View) Runes() []rune {
	if v.b == nil {
		return nil
	}
	return v.b.Runes()
}

func (v View) Graphemes() int {
	if v.b == nil {
		return 0
	}
	return v.b.Graphemes()
}
