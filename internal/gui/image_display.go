package gui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	displayMinWidth  = 420
	displayMinHeight = 420
)

// ImageDisplay shows the retained original next to the latest result.
type ImageDisplay struct {
	container     *fyne.Container
	originalImage *canvas.Image
	resultImage   *canvas.Image
}

func NewImageDisplay() *ImageDisplay {
	originalImage := canvas.NewImageFromImage(nil)
	originalImage.FillMode = canvas.ImageFillContain
	originalImage.SetMinSize(fyne.NewSize(displayMinWidth, displayMinHeight))

	resultImage := canvas.NewImageFromImage(nil)
	resultImage.FillMode = canvas.ImageFillContain
	resultImage.SetMinSize(fyne.NewSize(displayMinWidth, displayMinHeight))

	originalContainer := container.NewBorder(
		widget.NewRichTextFromMarkdown("**Original**"), nil, nil, nil,
		originalImage,
	)
	resultContainer := container.NewBorder(
		widget.NewRichTextFromMarkdown("**Result**"), nil, nil, nil,
		resultImage,
	)

	return &ImageDisplay{
		container:     container.NewGridWithColumns(2, originalContainer, resultContainer),
		originalImage: originalImage,
		resultImage:   resultImage,
	}
}

func (d *ImageDisplay) SetOriginal(img image.Image) {
	d.originalImage.Image = img
	d.originalImage.Refresh()
}

func (d *ImageDisplay) SetResult(img image.Image) {
	d.resultImage.Image = img
	d.resultImage.Refresh()
}

func (d *ImageDisplay) GetContainer() *fyne.Container {
	return d.container
}
