package pipeline

import (
	"fmt"
	"time"

	"threshlab/internal/algorithms"
	"threshlab/internal/imaging"
	"threshlab/internal/logger"
)

type imageProcessor struct {
	logger           logger.Logger
	algorithmManager *algorithms.Manager
}

func newProcessor(log logger.Logger, manager *algorithms.Manager) *imageProcessor {
	return &imageProcessor{logger: log, algorithmManager: manager}
}

func (p *imageProcessor) Process(input *imaging.Buffer, algorithmName string, params map[string]interface{}) (*imaging.Buffer, error) {
	algorithm, err := p.algorithmManager.GetAlgorithm(algorithmName)
	if err != nil {
		return nil, err
	}

	if err := algorithm.ValidateParameters(params); err != nil {
		return nil, fmt.Errorf("parameter validation failed: %w", err)
	}

	p.logger.Debug("ImageProcessor", "processing started", map[string]interface{}{
		"algorithm": algorithmName,
		"width":     input.Width(),
		"height":    input.Height(),
	})

	start := time.Now()
	output, err := algorithm.Process(input, params)
	if err != nil {
		return nil, fmt.Errorf("algorithm processing failed: %w", err)
	}

	p.logger.Info("ImageProcessor", "processing completed", map[string]interface{}{
		"algorithm":   algorithmName,
		"duration_ms": time.Since(start).Milliseconds(),
		"size":        fmt.Sprintf("%dx%d", output.Width(), output.Height()),
	})

	return output, nil
}
