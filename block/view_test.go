package block

import (
	"errors"
	"testing"
)

func TestView_ObservesWrites(t *testing.T) {
	b := New("abc")
	v := b.View()

	if err := b.Set(2, 'Z'); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := v.String(); got != "abZ" {
		t.Fatalf("view text=%q, want %q", got, "abZ")
	}
	if v.Len() != 3 {
		t.Fatalf("view len=%d, want 3", v.Len())
	}
	if v.Graphemes() != 3 {
		t.Fatalf("view graphemes=%d, want 3", v.Graphemes())
	}

	rs := v.Runes()
	rs[0] = '!'
	if b.String() != "abZ" {
		t.Fatalf("view Runes() aliases storage: %q", b.String())
	}
}

func TestView_ZeroValue(t *testing.T) {
	var v View
	if v.Len() != 0 || v.String() != "" || v.Runes() != nil || v.Graphemes() != 0 {
		t.Fatalf("zero view should read as empty")
	}
	if _, err := v.At(0); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("zero view At(0): got %v, want ErrOutOfRange", err)
	}
}

func TestReader_AcceptsBlockAndView(t *testing.T) {
	b := New("xy")
	for _, r := range []Reader{b, b.View()} {
		got, err := r.At(1)
		if err != nil || got != 'y' {
			t.Fatalf("%T.At(1)=(%q,%v), want ('y',nil)", r, got, err)
		}
	}
}
