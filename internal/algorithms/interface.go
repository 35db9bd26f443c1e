// Package algorithms exposes every image transform behind a single
// interface so the GUI and pipeline can treat manual thresholding, the
// automatic selectors and the normalization operations uniformly.
package algorithms

import (
	"threshlab/internal/imaging"
)

type Algorithm interface {
	Process(input *imaging.Buffer, params map[string]interface{}) (*imaging.Buffer, error)
	ValidateParameters(params map[string]interface{}) error
	GetDefaultParameters() map[string]interface{}
	GetName() string
}
