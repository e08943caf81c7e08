package reportservice

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartPalette holds the colors used for score charts.
type ChartPalette struct {
	Background  drawing.Color
	PrimaryLine drawing.Color
	AccentLine  drawing.Color
	TextColor   drawing.Color
}

// DefaultPalette is a dark theme matching the admin console.
var DefaultPalette = ChartPalette{
	Background:  drawing.ColorFromHex("111418"),
	PrimaryLine: drawing.ColorFromHex("f5c518"),
	AccentLine:  drawing.ColorFromHex("e74c3c"),
	TextColor:   drawing.ColorFromHex("e6e6e6"),
}

// RenderScoreHistoryChart produces a PNG line chart of a player's final
// scores by matchday date.
func RenderScoreHistoryChart(playerName string, history []ScorePoint, palette ChartPalette) ([]byte, error) {
	if len(history) == 0 {
		return renderNoDataPlaceholder(palette, "No votes recorded for "+playerName)
	}

	xValues := make([]time.Time, len(history))
	yValues := make([]float64, len(history))
	for i, p := range history {
		xValues[i] = p.Date
		yValues[i] = p.FinalScore
	}

	// go-chart needs two points to draw a line.
	if len(history) == 1 {
		xValues = append(xValues, xValues[0].Add(time.Hour))
		yValues = append(yValues, yValues[0])
	}
	lo, hi := yValues[0], yValues[0]
	for _, y := range yValues {
		lo, hi = min(lo, y), max(hi, y)
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s: final score by matchday", playerName),
		Width:  800,
		Height: 400,
		TitleStyle: chart.Style{
			FontColor: palette.TextColor,
		},
		Background: chart.Style{FillColor: palette.Background},
		Canvas:     chart.Style{FillColor: palette.Background},
		XAxis: chart.XAxis{
			Name:           "Matchday",
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02"),
			Style:          chart.Style{FontColor: palette.TextColor},
		},
		YAxis: chart.YAxis{
			Name:  "Final score",
			Style: chart.Style{FontColor: palette.TextColor},
			Range: &chart.ContinuousRange{Min: lo - 1, Max: hi + 1},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Final score",
				XValues: xValues,
				YValues: yValues,
				Style: chart.Style{
					StrokeColor: palette.PrimaryLine,
					StrokeWidth: 2,
					DotWidth:    4,
					DotColor:    palette.AccentLine,
				},
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render score chart: %w", err)
	}
	return buffer.Bytes(), nil
}

func renderNoDataPlaceholder(palette ChartPalette, msg string) ([]byte, error) {
	graph := chart.Chart{
		Width:      400,
		Height:     200,
		Background: chart.Style{FillColor: palette.Background},
		Canvas:     chart.Style{FillColor: palette.Background},
		XAxis:      chart.XAxis{Style: chart.Style{Hidden: true}},
		YAxis:      chart.YAxis{Style: chart.Style{Hidden: true}},
		// Render refuses a chart without a visible series.
		Series: []chart.Series{chart.ContinuousSeries{
			XValues: []float64{0, 1},
			YValues: []float64{0, 1},
			Style:   chart.Style{StrokeColor: drawing.ColorTransparent},
		}},
		Elements: []chart.Renderable{
			func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
				r.SetFontColor(palette.TextColor)
				r.SetFontSize(12.0)
				tb := r.MeasureText(msg)
				x := (cb.Width() - tb.Width()) / 2
				y := (cb.Height() + tb.Height()) / 2
				r.Text(msg, x, y)
			},
		},
	}
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render placeholder: %w", err)
	}
	return buffer.Bytes(), nil
}
