package algorithms

import (
	"fmt"

	"threshlab/internal/imaging"
)

// Display names double as registry keys.
const (
	ManualRangeName       = "Manual Range"
	PercentBlackName      = "Percent Black"
	MeanIterativeName     = "Mean Iterative"
	EntropyName           = "Entropy"
	MinimumErrorName      = "Minimum Error"
	FuzzyMinimumErrorName = "Fuzzy Minimum Error"
)

func intParam(params map[string]interface{}, key string) (int, bool) {
	switch v := params[key].(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	}
	return 0, false
}

// manualRange applies the range-threshold primitive with user-chosen
// low and high cutoffs.
type manualRange struct{}

func NewManualRange() Algorithm { return manualRange{} }

func (manualRange) GetName() string { return ManualRangeName }

func (manualRange) GetDefaultParameters() map[string]interface{} {
	return map[string]interface{}{
		"low":  0,
		"high": 255,
	}
}

func (manualRange) ValidateParameters(params map[string]interface{}) error {
	for _, key := range []string{"low", "high"} {
		if v, ok := intParam(params, key); ok {
			if v < 0 || v > 255 {
				return fmt.Errorf("%s must be between 0 and 255, got: %d", key, v)
			}
		}
	}
	return nil
}

func (m manualRange) Process(input *imaging.Buffer, params map[string]interface{}) (*imaging.Buffer, error) {
	if err := m.ValidateParameters(params); err != nil {
		return nil, err
	}
	low, ok := intParam(params, "low")
	if !ok {
		low = 0
	}
	high, ok := intParam(params, "high")
	if !ok {
		high = 255
	}
	return imaging.Threshold(input, uint8(low), uint8(high)), nil
}

// percentBlack selects the cutoff at which the requested share of
// pixels falls below, then thresholds from there up.
type percentBlack struct{}

func NewPercentBlack() Algorithm { return percentBlack{} }

func (percentBlack) GetName() string { return PercentBlackName }

func (percentBlack) GetDefaultParameters() map[string]interface{} {
	return map[string]interface{}{
		"percent": 0.5,
	}
}

func (percentBlack) ValidateParameters(params map[string]interface{}) error {
	if v, ok := params["percent"].(float64); ok {
		if v < 0 || v > 1 {
			return fmt.Errorf("percent must be between 0.0 and 1.0, got: %f", v)
		}
	}
	return nil
}

func (p percentBlack) Process(input *imaging.Buffer, params map[string]interface{}) (*imaging.Buffer, error) {
	if err := p.ValidateParameters(params); err != nil {
		return nil, err
	}
	percent, ok := params["percent"].(float64)
	if !ok {
		percent = 0.5
	}
	return imaging.PercentBlack(input, percent), nil
}

// selector wraps the parameterless automatic selectors.
type selector struct {
	name string
	run  func(*imaging.Buffer) *imaging.Buffer
}

func NewMeanIterative() Algorithm {
	return selector{name: MeanIterativeName, run: imaging.MeanIterative}
}

func NewEntropy() Algorithm {
	return selector{name: EntropyName, run: imaging.Entropy}
}

func NewMinimumError() Algorithm {
	return selector{name: MinimumErrorName, run: imaging.MinimumError}
}

func NewFuzzyMinimumError() Algorithm {
	return selector{name: FuzzyMinimumErrorName, run: imaging.FuzzyMinimumError}
}

func (s selector) GetName() string { return s.name }

func (s selector) GetDefaultParameters() map[string]interface{} {
	return map[string]interface{}{}
}

func (s selector) ValidateParameters(map[string]interface{}) error { return nil }

func (s selector) Process(input *imaging.Buffer, _ map[string]interface{}) (*imaging.Buffer, error) {
	return s.run(input), nil
}
