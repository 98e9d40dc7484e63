package block

import (
	"iter"
	"slices"

	"github.com/iw2rmb/textblock/internal/grapheme"
)

// TextBlock owns a rune sequence and three auxiliary integers.
//
// The zero value is an empty block with zero coords. Copying a TextBlock by
// value shares its rune storage; use Clone for an independent copy.
type TextBlock struct {
	text   []rune
	coords Coords
}

// New returns a block holding a copy of text.
func New(text string) *TextBlock {
	return &TextBlock{text: []rune(text)}
}

func (b *TextBlock) Len() int { return len(b.text) }

func (b *TextBlock) String() string { return string(b.text) }

// Runes returns a copy of the sequence.
func (b *TextBlock) Runes() []rune { return slices.Clone(b.text) }

// At returns the rune at pos.
func (b *TextBlock) At(pos int) (rune, error) {
	if err := checkPos(pos, len(b.text), UnitRune); err != nil {
		return 0, err
	}
	return b.text[pos], nil
}

// Ref returns a pointer to the rune at pos. Writes through the pointer
// modify the block in place. The pointer is only valid until the next
// Append.
func (b *TextBlock) Ref(pos int) (*rune, error) {
	if err := checkPos(pos, len(b.text), UnitRune); err != nil {
		return nil, err
	}
	return &b.text[pos], nil
}

// Set overwrites the rune at pos.
func (b *TextBlock) Set(pos int, r rune) error {
	p, err := b.Ref(pos)
	if err != nil {
		return err
	}
	*p = r
	return nil
}

// Append grows the sequence by s.
func (b *TextBlock) Append(s string) {
	b.text = append(b.text, []rune(s)...)
}

// All yields every position with its rune, in order.
func (b *TextBlock) All() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		for i, r := range b.text {
			if !yield(i, r) {
				return
			}
		}
	}
}

func (b *TextBlock) Clone() *TextBlock {
	return &TextBlock{text: slices.Clone(b.text), coords: b.coords}
}

// View returns a read-only handle onto b. The view observes later writes
// made through b.
func (b *TextBlock) View() View { return View{b: b} }

// Graphemes returns the number of user-perceived characters.
func (b *TextBlock) Graphemes() int { return grapheme.Count(string(b.text)) }

// GraphemeAt returns the i-th grapheme cluster.
func (b *TextBlock) GraphemeAt(i int) (string, error) {
	s := string(b.text)
	g, ok := grapheme.At(s, i)
	if !ok {
		return "", &RangeError{Pos: i, Len: grapheme.Count(s), Unit: UnitGrapheme}
	}
	return g, nil
}

// Width returns the terminal display width in cells.
func (b *TextBlock) Width() int { return grapheme.Width(string(b.text)) }
