package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"

	"pfeifer.dev/acc/acc"
	m "pfeifer.dev/acc/math"
	ms "pfeifer.dev/acc/settings"
)

const (
	menuDemo = iota
	menuInteractive
	menuView
	menuSettings
	menuExit
)

var menuItems = []string{
	"Run Demo Mode (Pre-configured scenarios)",
	"Interactive Mode (Enter your own values)",
	"View Log Files",
	"Settings",
	"Exit",
}

func menu(out io.Writer) error {
	fmt.Fprintln(out, "Welcome to Adaptive Cruise Control System!")
	fmt.Fprintln(out, "This system implements the 2-second rule for safe following distance.")
	fmt.Fprint(out, "All sessions will be automatically logged for record keeping.\n\n")

	for {
		prompt := promptui.Select{
			Label: "=== Adaptive Cruise Control System ===",
			Items: menuItems,
			Size:  len(menuItems),
		}

		index, _, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return nil
			}
			return errors.Wrap(err, "menu prompt failed")
		}

		switch index {
		case menuDemo:
			runDemo(out, ms.Settings.Path("demo"))
			pause()
		case menuInteractive:
			err = runInteractive(out, "")
		case menuView:
			var path string
			path, err = promptLogFile("Enter log file name to view", ms.Settings.Path(""))
			if err == nil {
				err = pageLog(path)
			}
		case menuSettings:
			err = editSettings()
		case menuExit:
			fmt.Fprintln(out, "\nThank you for using Adaptive Cruise Control System!")
			fmt.Fprintln(out, "Check the log files for a complete record of all sessions.")
			return nil
		}
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) {
				return nil
			}
			fmt.Fprintf(out, "%s\n", errorStyle.Render(err.Error()))
		}
	}
}

// runInteractive builds scenarios from prompted values until the user
// declines another one. An empty logFile asks for one.
func runInteractive(out io.Writer, logFile string) error {
	var err error
	if logFile == "" {
		logFile, err = promptLogFile("Enter log file name", ms.Settings.Path("interactive"))
		if err != nil {
			return err
		}
	}

	for {
		printTitle(out, "\n=== Adaptive Cruise Control System - Interactive Mode ===")
		fmt.Fprintf(out, "Logging to: %s\n", logFile)
		fmt.Fprint(out, "Enter your own values to test different scenarios\n\n")

		egoSpeed, err := promptFloat("Enter ego vehicle speed (km/h, 0-120)", ms.MIN_INPUT_SPEED, ms.MAX_INPUT_SPEED)
		if err != nil {
			return err
		}
		aheadSpeed, err := promptFloat("Enter ahead vehicle speed (km/h, 0-120)", ms.MIN_INPUT_SPEED, ms.MAX_INPUT_SPEED)
		if err != nil {
			return err
		}
		distance, err := promptFloat("Enter distance to ahead vehicle (meters, 0-200)", ms.MIN_INPUT_DISTANCE, ms.MAX_INPUT_DISTANCE)
		if err != nil {
			return err
		}

		printTitle(out, "\n=== Your Scenario ===")
		c := acc.New(egoSpeed, aheadSpeed, distance, logFile)
		showAndSave(out, c)

		adjust, err := confirm("Would you like to adjust speed based on current conditions")
		if err != nil {
			return err
		}
		if adjust {
			c.AdjustSpeed()
			fmt.Fprintln(out, "\nAfter speed adjustment:")
			showAndSave(out, c)
		}

		again, err := confirm("Would you like to test another scenario")
		if err != nil {
			return err
		}
		if !again {
			break
		}
	}

	fmt.Fprintf(out, "\nAll scenarios have been logged to: %s\n", logFile)
	return nil
}

// parseBounded parses a number and checks it lies in [lo, hi].
func parseBounded(input string, lo, hi float64) (float64, error) {
	val, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0, errors.New("please enter a number")
	}
	if !m.Within(val, lo, hi) {
		return 0, errors.Errorf("please enter a value between %g and %g", lo, hi)
	}
	return val, nil
}

func boundedValidator(lo, hi float64) promptui.ValidateFunc {
	return func(input string) error {
		_, err := parseBounded(input, lo, hi)
		return err
	}
}

func promptFloat(label string, lo, hi float64) (float64, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: boundedValidator(lo, hi),
	}
	result, err := prompt.Run()
	if err != nil {
		return 0, err
	}
	return parseBounded(result, lo, hi)
}

func promptLogFile(label string, def string) (string, error) {
	prompt := promptui.Prompt{
		Label:   label,
		Default: def,
	}
	result, err := prompt.Run()
	if err != nil {
		return "", err
	}
	result = strings.TrimSpace(result)
	if result == "" {
		return def, nil
	}
	return result, nil
}

func confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	_, err := prompt.Run()
	if errors.Is(err, promptui.ErrAbort) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func pause() {
	prompt := promptui.Prompt{
		Label: "Press Enter to continue",
	}
	_, _ = prompt.Run()
}
