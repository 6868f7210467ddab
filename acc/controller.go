// Package acc implements a rule-based adaptive cruise control calculator.
//
// A Controller holds the ego vehicle speed, the speed of the vehicle ahead
// and the measured gap between them. Speeds are in km/h, distances in
// meters. The safe following distance comes from the 2-second rule and
// AdjustSpeed applies a single threshold-based speed correction per call.
package acc

import (
	"log/slog"
	"time"

	m "pfeifer.dev/acc/math"
	ms "pfeifer.dev/acc/settings"
)

// GapRegime classifies the gap against the safe distance using the
// adjustment threshold (AMPLE_GAP_RATIO).
type GapRegime int

const (
	Nominal GapRegime = iota
	TooClose
	Ample
)

func (r GapRegime) String() string {
	switch r {
	case TooClose:
		return "too close"
	case Ample:
		return "ample"
	default:
		return "nominal"
	}
}

// Controller is the ACC state record. It is not safe for concurrent use.
type Controller struct {
	egoSpeed   float64
	aheadSpeed float64
	distance   float64
	logFile    string
	now        func() time.Time
}

// New creates a controller. Negative or non-finite initial values are stored
// as 0 and an empty logFile selects DEFAULT_LOG_FILE.
func New(egoSpeed, aheadSpeed, distance float64, logFile string) *Controller {
	if logFile == "" {
		logFile = ms.DEFAULT_LOG_FILE
	}
	return &Controller{
		egoSpeed:   orZero(egoSpeed),
		aheadSpeed: orZero(aheadSpeed),
		distance:   orZero(distance),
		logFile:    logFile,
		now:        time.Now,
	}
}

func orZero(val float64) float64 {
	if !m.NonNegative(val) {
		return 0
	}
	return val
}

// EgoSpeed is the ego vehicle speed in km/h.
func (c *Controller) EgoSpeed() float64 { return c.egoSpeed }

// AheadSpeed is the speed of the vehicle ahead in km/h.
func (c *Controller) AheadSpeed() float64 { return c.aheadSpeed }

// Distance is the gap to the vehicle ahead in meters.
func (c *Controller) Distance() float64 { return c.distance }

// LogFile is where SaveStatus appends records.
func (c *Controller) LogFile() string { return c.logFile }

// SetLogFile changes where later snapshots are saved.
func (c *Controller) SetLogFile(path string) {
	c.logFile = path
}

// SetClock replaces the clock used to timestamp snapshots.
func (c *Controller) SetClock(now func() time.Time) {
	c.now = now
}

// UpdateAheadSpeed ignores negative and non-finite speeds.
func (c *Controller) UpdateAheadSpeed(speed float64) {
	if m.NonNegative(speed) {
		c.aheadSpeed = speed
	}
}

// UpdateDistance ignores negative and non-finite distances.
func (c *Controller) UpdateDistance(distance float64) {
	if m.NonNegative(distance) {
		c.distance = distance
	}
}

// SafeDistance is the distance in meters covered in FOLLOWING_TIME seconds
// at the current ego speed.
func (c *Controller) SafeDistance() float64 {
	return c.egoSpeed * ms.SAFE_DISTANCE_GAIN
}

// Regime classifies the current gap the way AdjustSpeed does.
func (c *Controller) Regime() GapRegime {
	safe := c.SafeDistance()
	if c.distance < safe {
		return TooClose
	}
	if c.distance > safe*ms.AMPLE_GAP_RATIO {
		return Ample
	}
	return Nominal
}

// AdjustSpeed applies one speed correction for the current gap regime.
//
// Too close: match a slower lead vehicle, otherwise drop DECEL_STEP (not
// below 0). Ample: gain ACCEL_STEP toward a faster lead vehicle, capped at
// MAX_SPEED. Nominal: hold.
func (c *Controller) AdjustSpeed() {
	before := c.egoSpeed
	regime := c.Regime()

	switch regime {
	case TooClose:
		if c.aheadSpeed < c.egoSpeed {
			c.egoSpeed = c.aheadSpeed
		} else {
			c.egoSpeed = max(0, c.egoSpeed-ms.DECEL_STEP)
		}
	case Ample:
		if c.aheadSpeed > c.egoSpeed && c.egoSpeed < ms.MAX_SPEED {
			c.egoSpeed = m.Step(c.egoSpeed, ms.ACCEL_STEP, 0, ms.MAX_SPEED)
		}
	}

	slog.Debug("adjusted speed",
		"regime", regime.String(),
		"from", before,
		"to", c.egoSpeed,
		"aheadSpeed", c.aheadSpeed,
		"distance", c.distance,
	)
}
