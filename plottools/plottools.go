// Package plottools builds gonum/plot figures for one-day time series.
// Time runs along the x axis in seconds since the start of the day, with
// tick marks on the hour labelled as HH:MM:SS clock values.
// This package has NO I/O — it only configures figures; rendering and
// saving are left to the caller.
package plottools

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/sweeney/dayplot/timevals"
)

// Canvas dimensions for the day figure: an 800x300 pixel notebook cell
// at 96 DPI.
const (
	DefaultWidth  = 800 * vg.Inch / 96
	DefaultHeight = 300 * vg.Inch / 96
)

// HourTicksForOneDay returns the second values for one tick per hour
// across a day, both endpoints included (25 values: 0, 3600, ... 86400).
// The slice is freshly allocated on every call.
func HourTicksForOneDay() []int {
	ticks := make([]int, 0, timevals.HoursInADay+1)
	for s := 0; s <= timevals.SecondsInADay; s += timevals.SecondsInAnHour {
		ticks = append(ticks, s)
	}
	return ticks
}

// ClockLabel formats a second-of-day value as a zero-padded HH:MM:SS
// clock string. The value is not wrapped: the end of the day renders
// as "24:00:00", not "00:00:00".
func ClockLabel(seconds int) string {
	h := seconds / timevals.SecondsInAnHour
	m := seconds % timevals.SecondsInAnHour / timevals.SecondsInAMinute
	s := seconds % timevals.SecondsInAMinute
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// NewDayFigure makes a blank figure with a 24-hour x axis in units of
// seconds and a y axis running from 0 to maxY. maxY is passed to the
// axis verbatim — a non-positive value gives whatever degenerate axis
// gonum/plot produces for an empty range.
func NewDayFigure(maxY float64) *plot.Plot {
	p := plot.New()

	p.X.Min, p.X.Max = 0, timevals.SecondsInADay
	p.Y.Min, p.Y.Max = 0, maxY

	p.X.Label.Text = "Time"
	p.Y.Label.Text = "Pixels / s"

	// Replace the default ticker with one tick per hour. The default
	// picks rounded second values (20000, 40000, ...) that mean nothing
	// as times of day.
	p.X.Tick.Marker = plot.ConstantTicks(hourTicks())

	// Tilt the clock labels to avoid overlaps.
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter

	// No grid is added. gonum/plot only draws gridlines when a grid
	// plotter is attached, and an attached grid would follow the axis
	// ticks we just fixed — but the original figure ships without a
	// grid, so neither do we.

	return p
}

// hourTicks builds the fixed tick set: one labelled tick per hour.
func hourTicks() []plot.Tick {
	seconds := HourTicksForOneDay()
	ticks := make([]plot.Tick, 0, len(seconds))
	for _, s := range seconds {
		ticks = append(ticks, plot.Tick{
			Value: float64(s),
			Label: ClockLabel(s),
		})
	}
	return ticks
}
