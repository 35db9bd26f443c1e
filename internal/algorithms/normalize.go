package algorithms

import (
	"threshlab/internal/imaging"
)

const (
	StretchName  = "Stretch"
	EqualizeName = "Equalize"
)

// normalization wraps the contrast operations so they sit in the same
// registry as the threshold algorithms.
type normalization struct {
	name string
	run  func(*imaging.Buffer) *imaging.Buffer
}

func NewStretch() Algorithm {
	return normalization{name: StretchName, run: imaging.Stretch}
}

func NewEqualize() Algorithm {
	return normalization{name: EqualizeName, run: imaging.Equalize}
}

func (n normalization) GetName() string { return n.name }

func (n normalization) GetDefaultParameters() map[string]interface{} {
	return map[string]interface{}{}
}

func (n normalization) ValidateParameters(map[string]interface{}) error { return nil }

func (n normalization) Process(input *imaging.Buffer, _ map[string]interface{}) (*imaging.Buffer, error) {
	return n.run(input), nil
}
