package main

import (
	"runtime"

	"fyne.io/fyne/v2/app"

	"threshlab/internal/algorithms"
	"threshlab/internal/gui"
	"threshlab/internal/logger"
	"threshlab/internal/pipeline"
)

const (
	AppName    = "Threshold Lab"
	AppID      = "com.imageprocessing.threshlab"
	AppVersion = "1.0.0"
)

func main() {
	appLogger := logger.NewConsoleLogger(logger.LevelFromEnv("THRESHLAB_LOG"))

	appLogger.Info("Main", "application starting", map[string]interface{}{
		"version":    AppVersion,
		"go_version": runtime.Version(),
	})

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.CenterOnScreen()

	algorithmManager := algorithms.NewManager()
	coordinator := pipeline.NewCoordinator(appLogger, algorithmManager)

	controller := gui.NewController(appLogger, coordinator, algorithmManager)
	view := gui.NewView(window, algorithmManager.Names(), algorithmManager.GetCurrentAlgorithm())
	controller.SetView(view)

	window.ShowAndRun()

	appLogger.Info("Main", "application terminated", nil)
}
