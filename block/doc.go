// Package block implements TextBlock, an owned rune sequence with checked
// positional access.
//
// Positions are 0-based rune indices. Read access goes through At or a View;
// write access goes through Ref or Set. Every position is bounds-checked and
// out-of-range access reports ErrOutOfRange instead of touching memory.
package block
