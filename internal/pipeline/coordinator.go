package pipeline

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2"

	"threshlab/internal/algorithms"
	"threshlab/internal/imaging"
	"threshlab/internal/logger"
)

// Coordinator owns the loaded original and the latest processed
// buffer. Apply always starts from the original, never from a previous
// result, so switching algorithms or parameters is side-effect free.
type Coordinator struct {
	mu        sync.RWMutex
	loader    ImageLoader
	processor *imageProcessor
	logger    logger.Logger

	original  *ImageData
	processed *imaging.Buffer
}

func NewCoordinator(log logger.Logger, manager *algorithms.Manager) *Coordinator {
	return &Coordinator{
		loader:    NewLoader(log),
		processor: newProcessor(log, manager),
		logger:    log,
	}
}

func (c *Coordinator) LoadImage(reader fyne.URIReadCloser) (*ImageData, error) {
	imageData, err := c.loader.LoadFromReader(reader)
	if err != nil {
		return nil, fmt.Errorf("image loading failed: %w", err)
	}

	c.mu.Lock()
	c.original = imageData
	c.processed = nil
	c.mu.Unlock()

	return imageData, nil
}

func (c *Coordinator) LoadImageFromBytes(data []byte, format string) (*ImageData, error) {
	imageData, err := c.loader.LoadFromBytes(data, format)
	if err != nil {
		return nil, fmt.Errorf("image loading failed: %w", err)
	}

	c.mu.Lock()
	c.original = imageData
	c.processed = nil
	c.mu.Unlock()

	return imageData, nil
}

// Apply runs the named algorithm over the retained original and stores
// the result as the latest processed buffer.
func (c *Coordinator) Apply(algorithmName string, params map[string]interface{}) (*imaging.Buffer, error) {
	c.mu.RLock()
	original := c.original
	c.mu.RUnlock()

	if original == nil {
		return nil, fmt.Errorf("no image loaded")
	}

	output, err := c.processor.Process(original.Buffer, algorithmName, params)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.processed = output
	c.mu.Unlock()

	return output, nil
}

func (c *Coordinator) Original() *ImageData {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.original
}

func (c *Coordinator) Processed() *imaging.Buffer {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.processed
}

// Reset drops the processed buffer, returning the view to the original.
func (c *Coordinator) Reset() {
	c.mu.Lock()
	c.processed = nil
	c.mu.Unlock()
}
