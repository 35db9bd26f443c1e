package pipeline

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"fyne.io/fyne/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"threshlab/internal/imaging"
	"threshlab/internal/logger"
)

type imageLoader struct {
	logger logger.Logger
}

func NewLoader(log logger.Logger) ImageLoader {
	return &imageLoader{logger: log}
}

func (l *imageLoader) LoadFromReader(reader fyne.URIReadCloser) (*ImageData, error) {
	originalURI := reader.URI()
	uriExtension := strings.ToLower(originalURI.Extension())

	l.logger.Debug("ImageLoader", "loading image", map[string]interface{}{
		"path":      originalURI.Path(),
		"extension": uriExtension,
	})

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	imageData, err := l.LoadFromBytes(data, uriExtension)
	if err != nil {
		return nil, err
	}
	imageData.OriginalURI = originalURI
	return imageData, nil
}

func (l *imageLoader) LoadFromBytes(data []byte, format string) (*ImageData, error) {
	img, decodedFormat, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (hint %q): %w", format, err)
	}

	buf := imaging.FromImage(img)

	l.logger.Info("ImageLoader", "image decoded", map[string]interface{}{
		"format": decodedFormat,
		"width":  buf.Width(),
		"height": buf.Height(),
	})

	return &ImageData{
		Buffer: buf,
		Format: decodedFormat,
	}, nil
}
