package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ControlsPanel holds the algorithm picker and the parameter widgets.
// Threshold bounds and the black percentage live here as explicit
// widget state and travel into each apply call as parameters; the
// processing layers keep no UI state of their own.
type ControlsPanel struct {
	container      *fyne.Container
	algorithmRadio *widget.RadioGroup

	lowSlider    *widget.Slider
	highSlider   *widget.Slider
	lowLabel     *widget.Label
	highLabel    *widget.Label
	manualParams *fyne.Container

	percentSlider *widget.Slider
	percentLabel  *widget.Label
	percentParams *fyne.Container

	applyButton *widget.Button
	resetButton *widget.Button

	algorithmChangeHandler func(string)
	parameterChangeHandler func(key string, value interface{})
	applyHandler           func()
	resetHandler           func()
}

func NewControlsPanel(algorithmNames []string, defaultAlgorithm string) *ControlsPanel {
	panel := &ControlsPanel{}
	panel.setupControls(algorithmNames, defaultAlgorithm)
	return panel
}

func (cp *ControlsPanel) setupControls(algorithmNames []string, defaultAlgorithm string) {
	cp.algorithmRadio = widget.NewRadioGroup(algorithmNames, cp.onAlgorithmSelected)
	cp.algorithmRadio.SetSelected(defaultAlgorithm)

	cp.lowLabel = widget.NewLabel("Low: 0")
	cp.lowSlider = widget.NewSlider(0, 255)
	cp.lowSlider.Step = 1
	cp.lowSlider.OnChanged = func(v float64) {
		cp.lowLabel.SetText(fmt.Sprintf("Low: %d", int(v)))
		if cp.parameterChangeHandler != nil {
			cp.parameterChangeHandler("low", int(v))
		}
	}

	cp.highLabel = widget.NewLabel("High: 255")
	cp.highSlider = widget.NewSlider(0, 255)
	cp.highSlider.Step = 1
	cp.highSlider.SetValue(255)
	cp.highSlider.OnChanged = func(v float64) {
		cp.highLabel.SetText(fmt.Sprintf("High: %d", int(v)))
		if cp.parameterChangeHandler != nil {
			cp.parameterChangeHandler("high", int(v))
		}
	}

	cp.manualParams = container.NewVBox(
		cp.lowLabel, cp.lowSlider,
		cp.highLabel, cp.highSlider,
	)

	cp.percentLabel = widget.NewLabel("Black: 50%")
	cp.percentSlider = widget.NewSlider(0, 1)
	cp.percentSlider.Step = 0.01
	cp.percentSlider.SetValue(0.5)
	cp.percentSlider.OnChanged = func(v float64) {
		cp.percentLabel.SetText(fmt.Sprintf("Black: %.0f%%", v*100))
		if cp.parameterChangeHandler != nil {
			cp.parameterChangeHandler("percent", v)
		}
	}

	cp.percentParams = container.NewVBox(cp.percentLabel, cp.percentSlider)
	cp.percentParams.Hide()

	cp.applyButton = widget.NewButton("Apply", func() {
		if cp.applyHandler != nil {
			cp.applyHandler()
		}
	})
	cp.applyButton.Importance = widget.HighImportance

	cp.resetButton = widget.NewButton("Reset", func() {
		if cp.resetHandler != nil {
			cp.resetHandler()
		}
	})

	cp.container = container.NewVBox(
		widget.NewLabel("Algorithm"),
		cp.algorithmRadio,
		widget.NewSeparator(),
		cp.manualParams,
		cp.percentParams,
		widget.NewSeparator(),
		cp.applyButton,
		cp.resetButton,
	)
}

func (cp *ControlsPanel) onAlgorithmSelected(name string) {
	if name == "" {
		return
	}
	if cp.algorithmChangeHandler != nil {
		cp.algorithmChangeHandler(name)
	}
}

// ShowParametersFor reveals the parameter widgets relevant to the
// selected algorithm and hides the rest.
func (cp *ControlsPanel) ShowParametersFor(manual, percent bool) {
	if manual {
		cp.manualParams.Show()
	} else {
		cp.manualParams.Hide()
	}
	if percent {
		cp.percentParams.Show()
	} else {
		cp.percentParams.Hide()
	}
}

func (cp *ControlsPanel) SetAlgorithmChangeHandler(handler func(string)) {
	cp.algorithmChangeHandler = handler
}

func (cp *ControlsPanel) SetParameterChangeHandler(handler func(string, interface{})) {
	cp.parameterChangeHandler = handler
}

func (cp *ControlsPanel) SetApplyHandler(handler func()) {
	cp.applyHandler = handler
}

func (cp *ControlsPanel) SetResetHandler(handler func()) {
	cp.resetHandler = handler
}

func (cp *ControlsPanel) GetContainer() *fyne.Container {
	return cp.container
}
