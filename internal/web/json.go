package web

import (
	"encoding/json"

	"github.com/sweeney/dayplot/plottools"
	"github.com/sweeney/dayplot/timevals"
)

// FigureJSON is the top-level JSON envelope for the figure configuration.
type FigureJSON struct {
	Figure FigureInner `json:"figure"`
}

// FigureInner contains the figure details.
type FigureInner struct {
	XRange RangeJSON `json:"x_range"`
	YRange RangeJSON `json:"y_range"`
	XLabel string    `json:"x_label"`
	YLabel string    `json:"y_label"`
	Ticks  []int     `json:"ticks"`
	Points int       `json:"points"`
	Source string    `json:"source,omitempty"`
}

// RangeJSON is a closed numeric interval.
type RangeJSON struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func formatJSON(fig Figure) []byte {
	fj := FigureJSON{
		Figure: FigureInner{
			XRange: RangeJSON{Min: 0, Max: timevals.SecondsInADay},
			YRange: RangeJSON{Min: 0, Max: fig.MaxY},
			XLabel: "Time",
			YLabel: "Pixels / s",
			Ticks:  plottools.HourTicksForOneDay(),
			Points: len(fig.Data),
			Source: fig.Source,
		},
	}

	data, _ := json.MarshalIndent(fj, "", "  ")
	return data
}
