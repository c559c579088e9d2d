package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"

	"morse-converter/internal/config"
	"morse-converter/internal/i18n"
	"morse-converter/internal/logger"
	"morse-converter/internal/morse"
)

// launcher opens the desktop window; tests replace it.
type launcher func(cfg *config.Config, log logger.Logger) error

type session struct {
	cfg *config.Config
	log logger.Logger
}

// newCLIApp creates the CLI application with all commands.
func newCLIApp(stdin io.Reader, stdout, stderr io.Writer, launch launcher) *cli.App {
	s := &session{}

	app := &cli.App{
		Name:      "morse-converter",
		Usage:     "Convert text to Morse code",
		Version:   Version,
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "TOML config file (or $MORSE_CONFIG)"},
			&cli.StringFlag{Name: "log-level", Usage: "debug|info|warn|error"},
			&cli.BoolFlag{Name: "json-logs", Usage: "Emit JSON log lines"},
			&cli.StringFlag{Name: "locale", Usage: "Message locale, e.g. en"},
		},
		Before: func(c *cli.Context) error {
			return s.setup(c)
		},
		Action: func(c *cli.Context) error {
			return launch(s.cfg, s.log)
		},
		Commands: []*cli.Command{
			guiCmd(s, launch),
			convertCmd(s),
			tableCmd(),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

func (s *session) setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("json-logs") {
		cfg.Log.JSON = c.Bool("json-logs")
	}
	if c.IsSet("locale") {
		cfg.Locale = c.String("locale")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(logger.Options{
		Level:   cfg.Log.Level,
		UseJSON: cfg.Log.JSON,
		Writer:  c.App.ErrWriter,
	})
	if err != nil {
		return err
	}

	s.cfg = cfg
	s.log = log
	return nil
}

func guiCmd(s *session, launch launcher) *cli.Command {
	return &cli.Command{
		Name:  "gui",
		Usage: "Open the converter window (default)",
		Action: func(c *cli.Context) error {
			return launch(s.cfg, s.log)
		},
	}
}

// convertCmd translates its arguments, or stdin when there are none.
func convertCmd(s *session) *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Print the Morse code for TEXT (reads stdin if no TEXT)",
		ArgsUsage: "[TEXT...]",
		Action: func(c *cli.Context) error {
			raw := strings.Join(c.Args().Slice(), " ")
			if c.NArg() == 0 {
				data, err := io.ReadAll(c.App.Reader)
				if err != nil {
					return cli.Exit(fmt.Sprintf("read stdin: %v", err), 1)
				}
				raw = strings.TrimSuffix(strings.TrimSuffix(string(data), "\n"), "\r")
			}

			code, err := morse.Convert(raw)
			if err != nil {
				s.log.Debug("CLI", "conversion rejected", map[string]interface{}{
					"error": err.Error(),
				})
				tr := i18n.NewTranslator(s.cfg.Locale, s.log)
				return cli.Exit(tr.ErrorMessage(err), 1)
			}

			fmt.Fprintln(c.App.Writer, code)
			return nil
		},
	}
}

func tableCmd() *cli.Command {
	return &cli.Command{
		Name:  "table",
		Usage: "List every supported character and its code",
		Action: func(c *cli.Context) error {
			for _, sym := range morse.Symbols() {
				code, _ := morse.Lookup(sym)
				name := string(sym)
				if sym == ' ' {
					name = "SPACE"
				}
				fmt.Fprintf(c.App.Writer, "%s\t%s\n", name, code)
			}
			return nil
		},
	}
}
