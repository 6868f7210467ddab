package acc

import (
	"fmt"
	"strings"
	"time"

	ms "pfeifer.dev/acc/settings"
)

// Advisory is the driver-facing recommendation. It uses HOLD_GAP_RATIO,
// which is deliberately not the ratio AdjustSpeed acts on.
type Advisory int

const (
	AdviseCaution Advisory = iota
	AdviseReduce
	AdviseHold
)

func (a Advisory) String() string {
	switch a {
	case AdviseReduce:
		return "reduce"
	case AdviseHold:
		return "hold"
	default:
		return "caution"
	}
}

// Icon is the marker printed before the advisory message.
func (a Advisory) Icon() string {
	if a == AdviseHold {
		return "✅"
	}
	return "⚠"
}

// Message renders the advisory text. aheadSpeed is only used by AdviseReduce.
func (a Advisory) Message(aheadSpeed float64) string {
	switch a {
	case AdviseReduce:
		return fmt.Sprintf("Too close! Reduce speed to %.1f km/h", aheadSpeed)
	case AdviseHold:
		return "Safe gap maintained — Hold speed"
	default:
		return "Caution — Maintain current speed"
	}
}

// Advisory classifies the current gap with HOLD_GAP_RATIO.
func (c *Controller) Advisory() Advisory {
	safe := c.SafeDistance()
	if c.distance < safe {
		return AdviseReduce
	}
	if c.distance > safe*ms.HOLD_GAP_RATIO {
		return AdviseHold
	}
	return AdviseCaution
}

// Status is a point in time copy of the controller fields.
type Status struct {
	Time         time.Time
	EgoSpeed     float64
	AheadSpeed   float64
	Distance     float64
	SafeDistance float64
	Advisory     Advisory
}

// Snapshot captures the current state and the time it was taken.
func (c *Controller) Snapshot() Status {
	return Status{
		Time:         c.now(),
		EgoSpeed:     c.egoSpeed,
		AheadSpeed:   c.aheadSpeed,
		Distance:     c.distance,
		SafeDistance: c.SafeDistance(),
		Advisory:     c.Advisory(),
	}
}

func (s Status) AdvisoryLine() string {
	return s.Advisory.Icon() + " " + s.Advisory.Message(s.AheadSpeed)
}

// Fields renders the four labeled numeric lines shared by the console
// report and the log record.
func (s Status) Fields() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Current Speed: %.1f km/h\n", s.EgoSpeed)
	fmt.Fprintf(&b, "Car Ahead Speed: %.1f km/h\n", s.AheadSpeed)
	fmt.Fprintf(&b, "Distance: %.1f m\n", s.Distance)
	fmt.Fprintf(&b, "Safe Distance: %.1f m\n", s.SafeDistance)
	return b.String()
}

func (s Status) Format() string {
	return s.Fields() + s.AdvisoryLine() + "\n" + ms.RECORD_SEPARATOR + "\n"
}

// Record renders the status as one append-only log record.
func (s Status) Record() string {
	var b strings.Builder
	b.WriteString(ms.RECORD_BANNER + "\n")
	fmt.Fprintf(&b, "Timestamp: %s\n", s.Time.Format(time.ANSIC))
	b.WriteString(s.Fields())
	fmt.Fprintf(&b, "Status: %s\n", s.Advisory.Message(s.AheadSpeed))
	b.WriteString(ms.RECORD_SEPARATOR + "\n")
	return b.String()
}

// FormatStatus returns the human readable report for the current state.
func (c *Controller) FormatStatus() string {
	return c.Snapshot().Format()
}
