package cli

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"pfeifer.dev/acc/acc"
	m "pfeifer.dev/acc/math"
	"pfeifer.dev/acc/params"
	ms "pfeifer.dev/acc/settings"
)

func Handle() {
	if err := NewCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func logFileFlag(usage string) *cli.StringFlag {
	return &cli.StringFlag{
		Category: "Inputs and Outputs",
		Name:     "log-file",
		Aliases:  []string{"o"},
		Usage:    usage,
	}
}

// logFileFor prefers the --log-file flag, then the setting for mode.
func logFileFor(cmd *cli.Command, mode string) string {
	if path := cmd.String("log-file"); path != "" {
		return path
	}
	return ms.Settings.Path(mode)
}

func checkBounds(name string, val, lo, hi float64) error {
	if !m.Within(val, lo, hi) {
		return errors.Errorf("%s must be between %g and %g, got %g", name, lo, hi, val)
	}
	return nil
}

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "acc",
		Usage: "Adaptive cruise control calculator using the 2-second following rule",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "params-dir",
				Usage: "Directory persisted settings are stored in",
				Value: params.DefaultParamsPath(),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Overrides the configured diagnostic log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			params.ParamsPath = cmd.String("params-dir")
			ms.Settings.Load()
			if level := cmd.String("log-level"); level != "" {
				slog.SetLogLoggerLevel(ms.ParseLogLevel(level))
			}
			slog.SetDefault(slog.Default().With("session", uuid.NewString()))
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return menu(cmd.Root().Writer)
		},
		Commands: []*cli.Command{
			{
				Name:    "menu",
				Aliases: []string{"m"},
				Usage:   "Open the interactive main menu",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return menu(cmd.Root().Writer)
				},
			},
			{
				Name:    "demo",
				Aliases: []string{"d"},
				Usage:   "Play back the pre-configured following scenarios",
				Flags: []cli.Flag{
					logFileFlag("The log file demo records are appended to"),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					runDemo(cmd.Root().Writer, logFileFor(cmd, "demo"))
					return nil
				},
			},
			{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Enter your own scenario values",
				Flags: []cli.Flag{
					logFileFlag("The log file scenario records are appended to, prompted for when unset"),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runInteractive(cmd.Root().Writer, cmd.String("log-file"))
				},
			},
			{
				Name:    "status",
				Aliases: []string{"s"},
				Usage:   "Evaluate a single scenario without prompting",
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Category: "Scenario",
						Name:     "ego",
						Usage:    "Ego vehicle speed in km/h",
						Required: true,
					},
					&cli.Float64Flag{
						Category: "Scenario",
						Name:     "ahead",
						Usage:    "Speed of the vehicle ahead in km/h",
						Required: true,
					},
					&cli.Float64Flag{
						Category: "Scenario",
						Name:     "distance",
						Usage:    "Gap to the vehicle ahead in meters",
						Required: true,
					},
					&cli.BoolFlag{
						Category: "Scenario",
						Name:     "adjust",
						Usage:    "Apply one speed adjustment and report the result",
					},
					&cli.BoolFlag{
						Category: "Inputs and Outputs",
						Name:     "save",
						Usage:    "Append each reported status to the log file",
					},
					logFileFlag("The log file used with --save"),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runStatus(cmd)
				},
			},
			{
				Name:      "view",
				Aliases:   []string{"v"},
				Usage:     "Show a status log file",
				ArgsUsage: "[log file]",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "last",
						Usage: "Only show the newest N records as a table",
					},
					&cli.BoolFlag{
						Name:  "pager",
						Usage: "Open the log in a scrollable pager",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					path := cmd.Args().First()
					if path == "" {
						path = ms.Settings.Path("")
					}
					out := cmd.Root().Writer
					switch {
					case cmd.Bool("pager"):
						return pageLog(path)
					case cmd.Int("last") > 0:
						return printLastRecords(out, path, int(cmd.Int("last")))
					default:
						viewLog(out, path)
						return nil
					}
				},
			},
			{
				Name:  "settings",
				Usage: "Edit and persist settings",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return editSettings()
				},
			},
		},
	}
}

func runStatus(cmd *cli.Command) error {
	out := cmd.Root().Writer
	ego := cmd.Float64("ego")
	ahead := cmd.Float64("ahead")
	distance := cmd.Float64("distance")

	if err := checkBounds("ego", ego, ms.MIN_INPUT_SPEED, ms.MAX_INPUT_SPEED); err != nil {
		return err
	}
	if err := checkBounds("ahead", ahead, ms.MIN_INPUT_SPEED, ms.MAX_INPUT_SPEED); err != nil {
		return err
	}
	if err := checkBounds("distance", distance, ms.MIN_INPUT_DISTANCE, ms.MAX_INPUT_DISTANCE); err != nil {
		return err
	}

	save := cmd.Bool("save")
	c := acc.New(ego, ahead, distance, logFileFor(cmd, ""))
	report := func() {
		if save {
			showAndSave(out, c)
		} else {
			printStatus(out, c)
		}
	}

	report()
	if cmd.Bool("adjust") {
		c.AdjustSpeed()
		fmt.Fprintln(out, "After speed adjustment:")
		report()
	}
	return nil
}
