// Package pipeline connects the decoding boundary, the algorithm
// registry and the retained source image. The decoded original is kept
// for the lifetime of a session so every transform re-applies from the
// same source rather than compounding on previous results.
package pipeline

import (
	"fyne.io/fyne/v2"

	"threshlab/internal/imaging"
)

// ImageData is a decoded image together with where it came from.
type ImageData struct {
	Buffer      *imaging.Buffer
	Format      string
	OriginalURI fyne.URI
}

// ImageLoader turns encoded bytes into an ImageData. Decode failures
// are hard errors; no core computation runs on undecodable input.
type ImageLoader interface {
	LoadFromReader(reader fyne.URIReadCloser) (*ImageData, error)
	LoadFromBytes(data []byte, format string) (*ImageData, error)
}
