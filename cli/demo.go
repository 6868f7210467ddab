package cli

import (
	"fmt"
	"io"

	"pfeifer.dev/acc/acc"
)

// runDemo plays the scripted following scenarios and logs every step to
// logFile. It returns the controller in its final state.
func runDemo(out io.Writer, logFile string) *acc.Controller {
	printTitle(out, "=== Adaptive Cruise Control System - Demo Mode ===")
	fmt.Fprint(out, "Simulating vehicle following scenarios...\n\n")

	c := acc.New(60, 55, 25, logFile)

	fmt.Fprintln(out, "Scenario 1: Vehicle too close")
	showAndSave(out, c)

	c.AdjustSpeed()
	fmt.Fprintln(out, "After speed adjustment:")
	showAndSave(out, c)

	c.UpdateDistance(34)
	fmt.Fprintln(out, "Scenario 2: Safe distance achieved")
	showAndSave(out, c)

	printTitle(out, "\n=== Dynamic Updates Demo ===")
	c.UpdateAheadSpeed(70)
	c.UpdateDistance(40)
	fmt.Fprintln(out, "Updated scenario:")
	showAndSave(out, c)

	c.AdjustSpeed()
	fmt.Fprintln(out, "After adjustment for new conditions:")
	showAndSave(out, c)

	printTitle(out, "\n=== Emergency Scenario ===")
	c.UpdateDistance(15)
	showAndSave(out, c)

	c.AdjustSpeed()
	fmt.Fprintln(out, "Emergency response:")
	showAndSave(out, c)

	printTitle(out, "\n=== System Summary ===")
	fmt.Fprintln(out, "Final Status:")
	showAndSave(out, c)

	fmt.Fprintf(out, "\nDemo completed. All scenarios have been logged to: %s\n", c.LogFile())
	return c
}
