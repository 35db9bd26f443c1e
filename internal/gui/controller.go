package gui

import (
	"fyne.io/fyne/v2"

	"threshlab/internal/algorithms"
	"threshlab/internal/logger"
	"threshlab/internal/pipeline"
)

// Controller mediates between the view and the processing layers.
// Widget callbacks run on the fyne main thread; processing happens on
// a goroutine and results come back through fyne.Do.
type Controller struct {
	logger           logger.Logger
	coordinator      *pipeline.Coordinator
	algorithmManager *algorithms.Manager
	view             *View
}

func NewController(log logger.Logger, coordinator *pipeline.Coordinator, manager *algorithms.Manager) *Controller {
	return &Controller{
		logger:           log,
		coordinator:      coordinator,
		algorithmManager: manager,
	}
}

func (c *Controller) SetView(view *View) {
	c.view = view

	view.SetOpenHandler(c.openImage)
	view.Controls().SetAlgorithmChangeHandler(c.algorithmChanged)
	view.Controls().SetParameterChangeHandler(c.parameterChanged)
	view.Controls().SetApplyHandler(c.apply)
	view.Controls().SetResetHandler(c.reset)

	c.algorithmChanged(c.algorithmManager.GetCurrentAlgorithm())
}

func (c *Controller) openImage() {
	c.view.ShowFileDialog(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			c.handleError(err)
			return
		}
		if reader == nil {
			return
		}

		c.view.SetStatus("Loading image...")

		go func() {
			defer reader.Close()

			imageData, loadErr := c.coordinator.LoadImage(reader)

			fyne.Do(func() {
				if loadErr != nil {
					c.handleError(loadErr)
					c.view.SetStatus("Ready")
					return
				}

				c.view.Display().SetOriginal(imageData.Buffer.ToNRGBA())
				c.view.Display().SetResult(nil)
				if histErr := c.view.Histograms().Update(imageData.Buffer); histErr != nil {
					c.logger.Warning("Controller", "histogram update failed", map[string]interface{}{
						"error": histErr.Error(),
					})
				}
				c.view.SetStatus("Image loaded")
			})
		}()
	})
}

func (c *Controller) algorithmChanged(name string) {
	if err := c.algorithmManager.SetCurrentAlgorithm(name); err != nil {
		c.handleError(err)
		return
	}
	c.view.Controls().ShowParametersFor(
		name == algorithms.ManualRangeName,
		name == algorithms.PercentBlackName,
	)
}

func (c *Controller) parameterChanged(key string, value interface{}) {
	current := c.algorithmManager.GetCurrentAlgorithm()
	if err := c.algorithmManager.SetParameter(current, key, value); err != nil {
		c.logger.Warning("Controller", "parameter rejected", map[string]interface{}{
			"algorithm": current,
			"parameter": key,
			"error":     err.Error(),
		})
	}
}

func (c *Controller) apply() {
	if c.coordinator.Original() == nil {
		c.view.SetStatus("Load an image first")
		return
	}

	algorithm := c.algorithmManager.GetCurrentAlgorithm()
	params := c.algorithmManager.GetParameters(algorithm)

	c.view.SetStatus("Processing...")

	go func() {
		output, err := c.coordinator.Apply(algorithm, params)

		fyne.Do(func() {
			if err != nil {
				c.handleError(err)
				c.view.SetStatus("Processing failed")
				return
			}
			c.view.Display().SetResult(output.ToNRGBA())
			c.view.SetStatus("Done: " + algorithm)
		})
	}()
}

func (c *Controller) reset() {
	c.coordinator.Reset()
	c.view.Display().SetResult(nil)
	c.view.SetStatus("Ready")
}

func (c *Controller) handleError(err error) {
	c.logger.Error("Controller", err, nil)
	c.view.ShowError(err)
}
