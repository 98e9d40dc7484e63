package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"

	"github.com/iw2rmb/textblock"
	"github.com/iw2rmb/textblock/block"
)

type app struct {
	out    io.Writer
	errOut io.Writer

	cfg *Config
	log zerolog.Logger
}

func newApp(out, errOut io.Writer) *app {
	a := &app{out: out, errOut: errOut, cfg: DefaultConfig()}
	a.log, _ = newLogger(errOut, a.cfg.LogLevel)
	return a
}

func (a *app) cli() *cli.App {
	return &cli.App{
		Name:      "textblock",
		Usage:     "inspect and edit a text block by position",
		Version:   textblock.VersionTag(),
		Writer:    a.out,
		ErrWriter: a.errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "text", Usage: "initial block text"},
			&cli.IntFlag{Name: "x", Usage: "auxiliary X"},
			&cli.IntFlag{Name: "y", Usage: "auxiliary Y"},
			&cli.IntFlag{Name: "z", Usage: "auxiliary Z"},
			&cli.StringFlag{Name: "config", Usage: "path to a YAML config file"},
			&cli.StringFlag{Name: "log-level", Usage: "trace, debug, info, warn or error"},
		},
		Before: a.before,
		Commands: []*cli.Command{
			{Name: "at", Usage: "print the character at POS", ArgsUsage: "POS", Action: a.at},
			{Name: "set", Usage: "overwrite the character at POS", ArgsUsage: "POS CHAR", Action: a.set},
			{Name: "xyz", Usage: "print the auxiliary integers", Action: a.xyz},
			{Name: "info", Usage: "print length, grapheme count and display width", Action: a.info},
			{Name: "view", Usage: "interactive overwrite viewer", Action: a.view},
			{Name: "version", Usage: "print the library version", Action: a.version},
		},
	}
}

func (a *app) before(c *cli.Context) error {
	overrides := map[string]any{}
	for _, name := range []string{"text", "log-level"} {
		if c.IsSet(name) {
			overrides[configKey(name)] = c.String(name)
		}
	}
	for _, name := range []string{"x", "y", "z"} {
		if c.IsSet(name) {
			overrides[name] = c.Int(name)
		}
	}

	cfg, err := LoadConfig(viper.New(), c.String("config"), overrides)
	if err != nil {
		return err
	}
	lg, err := newLogger(a.errOut, cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, lg
	a.log.Debug().Str("text", cfg.Text).Int("x", cfg.X).Int("y", cfg.Y).Int("z", cfg.Z).Msg("config loaded")
	return nil
}

func (a *app) newBlock() *block.TextBlock {
	b := block.New(a.cfg.Text)
	b.SetCoords(block.Coords{X: a.cfg.X, Y: a.cfg.Y, Z: a.cfg.Z})
	return b
}

func configKey(flag string) string {
	if flag == "log-level" {
		return "log_level"
	}
	return flag
}

func main() {
	a := newApp(os.Stdout, os.Stderr)
	if err := a.cli().Run(os.Args); err != nil {
		a.log.Error().Err(err).Msg("textblock failed")
		os.Exit(1)
	}
}
