package schedule

import (
	"fmt"
	"math"

	"github.com/earseneau1/course-scheduler/core"
)

// Grid holds the calendar grid geometry and performs the pixel/minute
// conversions the gesture layer lives on. All methods are pure.
type Grid struct {
	startHour       int
	endHour         int
	hourHeight      int
	defaultDuration int
	presets         []int
	minDuration     int
	snapQuantum     int
}

func NewGrid(conf core.GridConfig) Grid {
	return Grid{
		startHour:       conf.StartHour,
		endHour:         conf.EndHour,
		hourHeight:      conf.HourHeight,
		defaultDuration: conf.DefaultDuration,
		presets:         conf.PresetDurations,
		minDuration:     conf.MinDuration,
		snapQuantum:     conf.SnapQuantum,
	}
}

// Span returns the grid's total height in minutes.
func (g Grid) Span() int {
	return (g.endHour - g.startHour) * 60
}

func (g Grid) DefaultDuration() int { return g.defaultDuration }
func (g Grid) MinDuration() int     { return g.minDuration }

// MinutesToOffset converts grid minutes to a pixel offset from the grid top.
func (g Grid) MinutesToOffset(minutes float64) float64 {
	return minutes / 60 * float64(g.hourHeight)
}

// OffsetToMinutes converts a pixel offset from the grid top to grid minutes.
func (g Grid) OffsetToMinutes(offset float64) float64 {
	return offset / float64(g.hourHeight) * 60
}

// FormatClockTime renders grid minutes as a 12-hour wall-clock time,
// e.g. 0 -> "8:00 AM" on a grid starting at 8.
func (g Grid) FormatClockTime(minutes int) string {
	total := g.startHour*60 + minutes
	hour := total / 60
	minute := total % 60
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, minute, period)
}

// SnapToQuantum rounds minutes to the nearest snap quantum. A value exactly
// equal to the default duration or one of the class-length presets passes
// through unchanged so those sessions keep their exact length (neither 80
// nor 50 is a multiple of 30).
func (g Grid) SnapToQuantum(minutes int) int {
	if minutes == g.defaultDuration || g.IsPreset(minutes) {
		return minutes
	}
	q := float64(g.snapQuantum)
	return int(math.Round(float64(minutes)/q) * q)
}

// IsPreset reports whether minutes is a configured class-length preset.
func (g Grid) IsPreset(minutes int) bool {
	for _, p := range g.presets {
		if minutes == p {
			return true
		}
	}
	return false
}
