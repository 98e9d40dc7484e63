package main

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/urfave/cli/v2"

	"github.com/iw2rmb/textblock"
)

func parsePos(c *cli.Context, i int) (int, error) {
	arg := c.Args().Get(i)
	pos, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid position %q: %w", arg, err)
	}
	return pos, nil
}

func (a *app) at(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("at: expected POS, got %d arguments", c.Args().Len())
	}
	pos, err := parsePos(c, 0)
	if err != nil {
		return fmt.Errorf("at: %w", err)
	}

	r, err := a.newBlock().View().At(pos)
	if err != nil {
		return fmt.Errorf("at: %w", err)
	}
	a.log.Debug().Int("pos", pos).Str("rune", string(r)).Msg("read")
	_, err = fmt.Fprintf(a.out, "%q\n", r)
	return err
}

func (a *app) set(c *cli.Context) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("set: expected POS CHAR, got %d arguments", c.Args().Len())
	}
	pos, err := parsePos(c, 0)
	if err != nil {
		return fmt.Errorf("set: %w", err)
	}
	char := c.Args().Get(1)
	if utf8.RuneCountInString(char) != 1 {
		return fmt.Errorf("set: CHAR must be a single character, got %q", char)
	}
	r, _ := utf8.DecodeRuneInString(char)

	b := a.newBlock()
	p, err := b.Ref(pos)
	if err != nil {
		return fmt.Errorf("set: %w", err)
	}
	prev := *p
	*p = r
	a.log.Debug().Int("pos", pos).Str("from", string(prev)).Str("to", string(r)).Msg("overwrite")
	_, err = fmt.Fprintln(a.out, b.String())
	return err
}

func (a *app) xyz(c *cli.Context) error {
	return a.newBlock().DebugPrintTo(a.out)
}

func (a *app) info(c *cli.Context) error {
	b := a.newBlock()
	_, err := fmt.Fprintf(a.out, "len=%d graphemes=%d width=%d\n", b.Len(), b.Graphemes(), b.Width())
	return err
}

func (a *app) version(c *cli.Context) error {
	_, err := fmt.Fprintln(a.out, textblock.VersionTag())
	return err
}
