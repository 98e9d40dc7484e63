package block

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every bounds failure reported by this package.
var ErrOutOfRange = errors.New("textblock: position out of range")

// Unit names the coordinate space a RangeError refers to.
type Unit uint8

const (
	UnitRune Unit = iota
	UnitGrapheme
)

func (u Unit) String() string {
	switch u {
	case UnitRune:
		return "position"
	case UnitGrapheme:
		return "grapheme"
	default:
		return "unit(" + fmt.Sprint(uint8(u)) + ")"
	}
}

// RangeError reports an access at Pos into a sequence of length Len.
type RangeError struct {
	Pos  int
	Len  int
	Unit Unit
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("textblock: %s %d out of range [0, %d)", e.Unit, e.Pos, e.Len)
}

func (e *RangeError) Is(target error) bool { return target == ErrOutOfRange }

func checkPos(pos, n int, u Unit) error {
	if pos < 0 || pos >= n {
		return &RangeError{Pos: pos, Len: n, Unit: u}
	}
	return nil
}
