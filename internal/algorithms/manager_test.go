package algorithms

import (
	"testing"

	"threshlab/internal/imaging"
)

func testBuffer(t *testing.T) *imaging.Buffer {
	t.Helper()
	pix := []uint8{
		10, 10, 10, 255,
		200, 200, 200, 255,
	}
	b, err := imaging.NewBuffer(2, 1, pix)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	return b
}

func TestManagerRegistersAllAlgorithms(t *testing.T) {
	m := NewManager()
	want := []string{
		ManualRangeName,
		PercentBlackName,
		MeanIterativeName,
		EntropyName,
		MinimumErrorName,
		FuzzyMinimumErrorName,
		StretchName,
		EqualizeName,
	}
	names := m.Names()
	if len(names) != len(want) {
		t.Fatalf("got %d algorithms, want %d", len(names), len(want))
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("names[%d] = %q, want %q", i, names[i], name)
		}
	}
}

func TestManagerRejectsUnknownAlgorithm(t *testing.T) {
	m := NewManager()
	if err := m.SetCurrentAlgorithm("Otsu"); err == nil {
		t.Error("expected error for unknown algorithm")
	}
	if _, err := m.GetAlgorithm("Otsu"); err == nil {
		t.Error("expected error for unknown algorithm")
	}
}

func TestManagerParameterValidation(t *testing.T) {
	m := NewManager()

	if err := m.SetParameter(ManualRangeName, "low", 300); err == nil {
		t.Error("expected range error for low=300")
	}
	if err := m.SetParameter(ManualRangeName, "low", 50); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if got := m.GetParameters(ManualRangeName)["low"]; got != 50 {
		t.Errorf("low = %v, want 50", got)
	}

	if err := m.SetParameter(PercentBlackName, "percent", 1.5); err == nil {
		t.Error("expected range error for percent=1.5")
	}
	if err := m.SetParameter(PercentBlackName, "percent", 0.25); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestManagerParameterCopyIsDetached(t *testing.T) {
	m := NewManager()
	params := m.GetParameters(ManualRangeName)
	params["low"] = 99
	if got := m.GetParameters(ManualRangeName)["low"]; got == 99 {
		t.Error("mutating a returned parameter map leaked into the manager")
	}
}

func TestManualRangeProcess(t *testing.T) {
	alg := NewManualRange()
	out, err := alg.Process(testBuffer(t), map[string]interface{}{"low": 50, "high": 255})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	pix := out.Pix()
	if pix[0] != 0 || pix[4] != 255 {
		t.Errorf("got pixels %d, %d, want 0, 255", pix[0], pix[4])
	}
}

func TestManualRangeRejectsBadParams(t *testing.T) {
	alg := NewManualRange()
	if _, err := alg.Process(testBuffer(t), map[string]interface{}{"low": -1}); err == nil {
		t.Error("expected error for low=-1")
	}
}

func TestEveryAlgorithmProcessesDefaults(t *testing.T) {
	m := NewManager()
	for _, name := range m.Names() {
		t.Run(name, func(t *testing.T) {
			alg, err := m.GetAlgorithm(name)
			if err != nil {
				t.Fatalf("GetAlgorithm: %v", err)
			}
			out, err := alg.Process(testBuffer(t), alg.GetDefaultParameters())
			if err != nil {
				t.Fatalf("Process: %v", err)
			}
			if out.Width() != 2 || out.Height() != 1 {
				t.Errorf("output is %dx%d, want 2x1", out.Width(), out.Height())
			}
		})
	}
}
