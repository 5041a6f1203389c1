package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/absurdtty/ttymood/internal/config"
	"github.com/absurdtty/ttymood/internal/errors"
	"github.com/absurdtty/ttymood/internal/ops"
	"github.com/absurdtty/ttymood/internal/render"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(cfg *config.Config) *cli.App {
	commands := []*cli.Command{
		generateCmd(cfg),
		showCmd(cfg),
		signalsCmd(cfg),
		renderCmd(cfg),
	}
	// Each render kind is also a top-level command, so `ttymood status`
	// works without the render prefix. Doctor gets its own command: it
	// checks the environment before diagnosing the operator.
	for _, kind := range render.Kinds() {
		if kind == render.KindDoctor {
			continue
		}
		commands = append(commands, kindCmd(cfg, kind))
	}
	commands = append(commands, doctorCmd(cfg))

	app := &cli.App{
		Name:     "ttymood",
		Usage:    "Mood signature engine for your terminal",
		Version:  Version,
		Commands: commands,
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

func historyFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "range", Aliases: []string{"r"}, Usage: "Analysis window: 7, 7d, or 2w"},
		&cli.StringFlag{Name: "history", Usage: "History file path (default: autodetected)"},
		&cli.StringFlag{Name: "shell", Usage: "History format: zsh|bash|fish|histdb"},
	}
}

// generateCmd creates the generate command.
func generateCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Analyze shell history and write a mood signature",
		Flags: append(historyFlags(),
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Signature output path"},
			&cli.Uint64Flag{Name: "seed", Usage: "Pin case ID entropy for reproducible output"},
			&cli.BoolFlag{Name: "dry-run", Usage: "Analyze without writing"},
			&cli.BoolFlag{Name: "json", Usage: "Print the document as JSON"},
		),
		Action: func(c *cli.Context) error {
			input := ops.GenerateInput{
				Range:       c.String("range"),
				HistoryPath: c.String("history"),
				Shell:       c.String("shell"),
				OutPath:     c.String("out"),
				DryRun:      c.Bool("dry-run"),
				Now:         time.Now(),
			}
			if c.IsSet("seed") {
				s := c.Uint64("seed")
				input.Seed = &s
			}

			output, err := ops.Generate(c.Context, cfg, input)
			if err != nil {
				return outputError(err)
			}

			if c.Bool("json") {
				return outputJSON(output.Doc)
			}
			fmt.Print(output.Doc.Summary())
			if output.Written {
				fmt.Printf("\nSignature filed: %s\n", output.Path)
			} else {
				fmt.Println("\nDry run. Nothing was filed. The analysis happened anyway.")
			}
			return nil
		},
	}
}

// showCmd creates the show command.
func showCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Display the persisted mood signature",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "mood-file", Aliases: []string{"f"}, Usage: "Signature path"},
			&cli.BoolFlag{Name: "json", Usage: "Print the document as JSON"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Show(c.Context, cfg, ops.ShowInput{Path: c.String("mood-file")})
			if err != nil {
				return outputError(err)
			}
			if c.Bool("json") {
				return outputJSON(output.Doc)
			}
			fmt.Print(output.Doc.Summary())
			return nil
		},
	}
}

// signalsCmd creates the signals command.
func signalsCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "signals",
		Usage: "Re-run signal extraction and print raw scores",
		Flags: append(historyFlags(),
			&cli.BoolFlag{Name: "all", Aliases: []string{"a"}, Usage: "Include signals below the significance threshold"},
			&cli.BoolFlag{Name: "json", Usage: "Print signals as JSON"},
		),
		Action: func(c *cli.Context) error {
			output, err := ops.Signals(c.Context, cfg, ops.SignalsInput{
				Range:       c.String("range"),
				HistoryPath: c.String("history"),
				Shell:       c.String("shell"),
				All:         c.Bool("all"),
				Now:         time.Now(),
			})
			if err != nil {
				return outputError(err)
			}
			if c.Bool("json") {
				return outputJSON(output)
			}
			fmt.Printf("Analyzed %d entries.\n\n", output.Entries)
			if len(output.Signals) == 0 {
				fmt.Println("No signals detected. Either serenity or an empty history.")
				return nil
			}
			for _, sig := range output.Signals {
				fmt.Printf("  %-24s %.2f", sig.ID, sig.Score)
				if sig.Note != "" {
					fmt.Printf("  %s", sig.Note)
				}
				fmt.Println()
			}
			return nil
		},
	}
}

func renderFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "mood-file", Aliases: []string{"f"}, Usage: "Signature path"},
		&cli.Uint64Flag{Name: "seed", Usage: "Pin output for a given signature"},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"V"}, Usage: "More output, not more truth"},
		&cli.StringFlag{Name: "template", Aliases: []string{"t"}, Usage: "Form template: declaration|incident|requisition|appeal"},
		&cli.StringFlag{Name: "dir", Aliases: []string{"d"}, Usage: "Directory for ls (default: current)"},
	}
}

func runRender(c *cli.Context, cfg *config.Config, kind string, args []string) error {
	input := ops.RenderInput{
		Kind:     kind,
		MoodPath: c.String("mood-file"),
		Dir:      c.String("dir"),
		Args:     args,
		Template: c.String("template"),
		Verbose:  c.Bool("verbose"),
	}
	// `ttymood ls <path>` beats the flag for the common case.
	if kind == string(render.KindLs) && input.Dir == "" && len(args) > 0 {
		input.Dir = args[0]
	}
	if c.IsSet("seed") {
		s := c.Uint64("seed")
		input.Seed = &s
	}

	output, err := ops.Render(c.Context, cfg, input)
	if err != nil {
		return outputError(err)
	}
	fmt.Print(output.Text)
	return nil
}

// renderCmd creates the render command.
func renderCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "Render mood-styled output of the given kind",
		ArgsUsage: "<kind> [args...]",
		Flags:     renderFlags(),
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return outputError(errors.NewInvalidRequest("render needs a kind: status, uptime, ls, explain, doctor, patchnotes, or form"))
			}
			return runRender(c, cfg, c.Args().First(), c.Args().Tail())
		},
	}
}

// kindCmd creates a top-level shortcut for one render kind.
func kindCmd(cfg *config.Config, kind render.Kind) *cli.Command {
	usage := map[render.Kind]string{
		render.KindStatus:     "Report system status, colored by mood",
		render.KindUptime:     "Report uptime, colored by mood",
		render.KindLs:         "List a directory, colored by mood",
		render.KindExplain:    "Explain a command, unreliably",
		render.KindDoctor:     "Diagnose the terminal's condition",
		render.KindPatchnotes: "Fabricate release notes",
		render.KindForm:       "File a bureaucratic form",
	}
	return &cli.Command{
		Name:      string(kind),
		Usage:     usage[kind],
		ArgsUsage: "[args...]",
		Flags:     renderFlags(),
		Action: func(c *cli.Context) error {
			return runRender(c, cfg, string(kind), c.Args().Slice())
		},
	}
}

// doctorCmd creates the doctor command: real environment checks first,
// then the mood-styled diagnosis.
func doctorCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "doctor",
		Usage: "Check the environment, then diagnose the terminal's condition",
		Flags: renderFlags(),
		Action: func(c *cli.Context) error {
			checks, err := ops.Doctor(c.Context, cfg)
			if err != nil {
				return outputError(err)
			}
			for _, check := range checks.Checks {
				mark := "ok"
				if !check.OK {
					mark = "FAIL"
				}
				fmt.Printf("  [%-4s] %-16s %s\n", mark, check.Name, check.Detail)
			}
			fmt.Println()
			return runRender(c, cfg, string(render.KindDoctor), nil)
		},
	}
}

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if moodErr, ok := err.(*errors.MoodError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", moodErr.Code, moodErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
