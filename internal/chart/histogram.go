// Package chart renders histograms to PNG for the histogram view.
package chart

import (
	"errors"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"threshlab/internal/imaging"
)

const (
	graphWidth  = 960
	graphHeight = 540
)

func levelAxis() []float64 {
	xvalues := make([]float64, 256)
	for i := range xvalues {
		xvalues[i] = float64(i)
	}
	return xvalues
}

func histogramSeries(h *imaging.Histogram, stroke, fill drawing.Color) chart.ContinuousSeries {
	yvalues := make([]float64, 256)
	for i, n := range h {
		yvalues[i] = float64(n)
	}
	return chart.ContinuousSeries{
		Style: chart.Style{
			StrokeColor: stroke,
			FillColor:   fill,
		},
		XValues: levelAxis(),
		YValues: yvalues,
	}
}

func render(w io.Writer, title string, series []chart.Series) error {
	graph := chart.Chart{
		Title:  title,
		Width:  graphWidth,
		Height: graphHeight,
		XAxis: chart.XAxis{
			Name: "Level",
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: 255.0,
			},
		},
		YAxis: chart.YAxis{
			Name: "Count",
			Range: &chart.ContinuousRange{
				Min: 0.0,
			},
		},
		Series: series,
	}
	return graph.Render(chart.PNG, w)
}

// Channels renders the red, green and blue histograms of the buffer
// into one PNG chart.
func Channels(w io.Writer, b *imaging.Buffer) error {
	if b.Width() == 0 || b.Height() == 0 {
		return errors.New("nothing to chart for a zero-size image")
	}
	ch := imaging.ChannelHistogramOf(b)

	series := []chart.Series{
		histogramSeries(ch.At(imaging.ChannelRed), chart.ColorRed, chart.ColorRed.WithAlpha(64)),
		histogramSeries(ch.At(imaging.ChannelGreen), chart.ColorGreen, chart.ColorGreen.WithAlpha(64)),
		histogramSeries(ch.At(imaging.ChannelBlue), chart.ColorBlue, chart.ColorBlue.WithAlpha(64)),
	}
	return render(w, "Channel histogram", series)
}

// Grayscale renders the luminance histogram of the buffer into a PNG
// chart.
func Grayscale(w io.Writer, b *imaging.Buffer) error {
	if b.Width() == 0 || b.Height() == 0 {
		return errors.New("nothing to chart for a zero-size image")
	}
	h := imaging.GrayscaleHistogramOf(b)

	series := []chart.Series{
		histogramSeries(h, chart.ColorAlternateGray, chart.ColorAlternateGray.WithAlpha(96)),
	}
	return render(w, "Grayscale histogram", series)
}
