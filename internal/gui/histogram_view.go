package gui

import (
	"bytes"
	"fmt"
	"image/png"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"threshlab/internal/chart"
	"threshlab/internal/imaging"
)

// HistogramView renders the channel and grayscale histograms of the
// loaded image as charts.
type HistogramView struct {
	container     *fyne.Container
	channelsImage *canvas.Image
	grayImage     *canvas.Image
}

func NewHistogramView() *HistogramView {
	channelsImage := canvas.NewImageFromImage(nil)
	channelsImage.FillMode = canvas.ImageFillContain
	channelsImage.SetMinSize(fyne.NewSize(displayMinWidth, displayMinHeight/2))

	grayImage := canvas.NewImageFromImage(nil)
	grayImage.FillMode = canvas.ImageFillContain
	grayImage.SetMinSize(fyne.NewSize(displayMinWidth, displayMinHeight/2))

	return &HistogramView{
		container:     container.NewGridWithRows(2, channelsImage, grayImage),
		channelsImage: channelsImage,
		grayImage:     grayImage,
	}
}

// Update recomputes both charts from the buffer.
func (v *HistogramView) Update(b *imaging.Buffer) error {
	if err := renderInto(v.channelsImage, b, chart.Channels); err != nil {
		return err
	}
	return renderInto(v.grayImage, b, chart.Grayscale)
}

func renderInto(target *canvas.Image, b *imaging.Buffer, render func(w io.Writer, b *imaging.Buffer) error) error {
	var buf bytes.Buffer
	if err := render(&buf, b); err != nil {
		return fmt.Errorf("chart rendering failed: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return fmt.Errorf("chart decoding failed: %w", err)
	}
	target.Image = img
	target.Refresh()
	return nil
}

func (v *HistogramView) GetContainer() *fyne.Container {
	return v.container
}
