package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// View owns the window layout and the leaf components; all behavior is
// injected by the Controller.
type View struct {
	window fyne.Window

	controls   *ControlsPanel
	display    *ImageDisplay
	histograms *HistogramView

	openButton  *widget.Button
	statusLabel *widget.Label
}

func NewView(window fyne.Window, algorithmNames []string, defaultAlgorithm string) *View {
	v := &View{
		window:      window,
		controls:    NewControlsPanel(algorithmNames, defaultAlgorithm),
		display:     NewImageDisplay(),
		histograms:  NewHistogramView(),
		statusLabel: widget.NewLabel("Ready"),
	}

	v.openButton = widget.NewButton("Open Image", nil)

	toolbar := container.NewHBox(v.openButton, v.statusLabel)

	tabs := container.NewAppTabs(
		container.NewTabItem("Images", v.display.GetContainer()),
		container.NewTabItem("Histograms", v.histograms.GetContainer()),
	)

	content := container.NewBorder(
		toolbar, nil, v.controls.GetContainer(), nil,
		tabs,
	)

	window.SetContent(content)
	window.Resize(fyne.NewSize(1200, 700))

	return v
}

func (v *View) SetOpenHandler(handler func()) {
	v.openButton.OnTapped = handler
}

func (v *View) ShowFileDialog(callback func(fyne.URIReadCloser, error)) {
	d := dialog.NewFileOpen(callback, v.window)
	d.SetFilter(storage.NewExtensionFileFilter(imageExtensions))
	d.Show()
}

func (v *View) ShowError(err error) {
	dialog.ShowError(err, v.window)
}

func (v *View) SetStatus(status string) {
	v.statusLabel.SetText(status)
}

func (v *View) Controls() *ControlsPanel   { return v.controls }
func (v *View) Display() *ImageDisplay     { return v.display }
func (v *View) Histograms() *HistogramView { return v.histograms }
