package imaging

import "testing"

// bimodalLevels derives the gray levels of the standard test fixture
// through the same luminance computation the selectors see, so the
// expectations cannot drift from the truncation behavior.
func bimodalLevels(t *testing.T) (l1, l2, h1, h2 uint8) {
	t.Helper()
	l1 = grayLevel(10, 10, 10)
	l2 = grayLevel(12, 12, 12)
	h1 = grayLevel(200, 200, 200)
	h2 = grayLevel(202, 202, 202)
	if !(l1 < l2 && l2 < h1 && h1 < h2) {
		t.Fatalf("fixture levels not strictly increasing: %d %d %d %d", l1, l2, h1, h2)
	}
	return
}

// bimodalBuffer holds four pixels at each of four gray levels: two
// nearby dark spikes and two nearby bright ones.
func bimodalBuffer(t *testing.T) *Buffer {
	t.Helper()
	var values []uint8
	for _, v := range []uint8{10, 12, 200, 202} {
		for i := 0; i < 4; i++ {
			values = append(values, v)
		}
	}
	return grayBuffer(t, values...)
}

func bimodalHistogram(t *testing.T) (*Histogram, uint32) {
	t.Helper()
	b := bimodalBuffer(t)
	return GrayscaleHistogramOf(b), uint32(b.Width() * b.Height())
}

func TestPercentBlackLevel(t *testing.T) {
	var h Histogram
	h[10] = 1
	h[200] = 1

	cases := []struct {
		percent float64
		want    uint8
	}{
		{0, 0},     // target floor(2*0) = 0, reached immediately
		{0.5, 10},  // target 1, reached at the first occupied level
		{1.0, 200}, // target 2
	}
	for _, c := range cases {
		if got := percentBlackLevel(&h, 2, c.percent); got != c.want {
			t.Errorf("percentBlackLevel(%.1f) = %d, want %d", c.percent, got, c.want)
		}
	}
}

func TestPercentBlackHalf(t *testing.T) {
	// Cumulative target floor(2*0.5) = 1 is met at the dark level, and
	// thresholding from there turns both pixels white.
	b := grayBuffer(t, 10, 200)
	out := PercentBlack(b, 0.5)
	pixelsEqual(t, out, []uint8{
		255, 255, 255, 255,
		255, 255, 255, 255,
	})
}

func TestPercentBlackFull(t *testing.T) {
	b := grayBuffer(t, 10, 200)
	out := PercentBlack(b, 1.0)
	pixelsEqual(t, out, []uint8{
		0, 0, 0, 255,
		255, 255, 255, 255,
	})
}

func TestMeanIterativeLevel(t *testing.T) {
	l1, l2, h1, h2 := bimodalLevels(t)
	h, total := bimodalHistogram(t)

	// The global mean splits the clusters on the first pass and the
	// average of the two cluster means reproduces it exactly.
	want := uint8(((float64(l1)+float64(l2))/2 + (float64(h1)+float64(h2))/2) / 2)
	if got := meanIterativeLevel(h, total); got != want {
		t.Errorf("meanIterativeLevel = %d, want %d", got, want)
	}
}

func TestMeanIterativeSeparates(t *testing.T) {
	b := bimodalBuffer(t)
	out := MeanIterative(b)
	assertBinarized(t, b, out, 100)
}

func TestMeanIterativeConstantImage(t *testing.T) {
	b := grayBuffer(t, 42, 42, 42)
	// One split group is empty on the first pass; iteration must stop
	// rather than divide by zero.
	out := MeanIterative(b)
	if len(out.Pix()) != len(b.Pix()) {
		t.Fatal("unexpected buffer shape")
	}
}

func TestEntropyLevel(t *testing.T) {
	_, l2, _, _ := bimodalLevels(t)
	h, total := bimodalHistogram(t)
	if got := entropyLevel(h, total); got != l2 {
		t.Errorf("entropyLevel = %d, want %d", got, l2)
	}
}

func TestMinimumErrorLevel(t *testing.T) {
	_, l2, _, _ := bimodalLevels(t)
	h, total := bimodalHistogram(t)
	if got := minimumErrorLevel(h, total); got != l2 {
		t.Errorf("minimumErrorLevel = %d, want %d", got, l2)
	}
}

func TestFuzzyMinimumErrorLevel(t *testing.T) {
	_, l2, _, _ := bimodalLevels(t)
	h, total := bimodalHistogram(t)
	if got := fuzzyMinimumErrorLevel(h, total); got != l2 {
		t.Errorf("fuzzyMinimumErrorLevel = %d, want %d", got, l2)
	}
}

func TestSelectorsEmptyHistogram(t *testing.T) {
	var h Histogram
	if got := meanIterativeLevel(&h, 0); got != 0 {
		t.Errorf("meanIterativeLevel = %d, want 0", got)
	}
	if got := entropyLevel(&h, 0); got != 0 {
		t.Errorf("entropyLevel = %d, want 0", got)
	}
	if got := minimumErrorLevel(&h, 0); got != 0 {
		t.Errorf("minimumErrorLevel = %d, want 0", got)
	}
	if got := fuzzyMinimumErrorLevel(&h, 0); got != 0 {
		t.Errorf("fuzzyMinimumErrorLevel = %d, want 0", got)
	}
}

func TestSelectorsConstantImageDoNotPanic(t *testing.T) {
	b := grayBuffer(t, 128, 128)
	for name, sel := range map[string]func(*Buffer) *Buffer{
		"entropy":             Entropy,
		"minimum error":       MinimumError,
		"fuzzy minimum error": FuzzyMinimumError,
	} {
		out := sel(b)
		if out.Width() != b.Width() || out.Height() != b.Height() {
			t.Errorf("%s: unexpected output shape", name)
		}
	}
}

// assertBinarized checks that each source pixel darker than split came
// out black and each brighter one came out white.
func assertBinarized(t *testing.T, src, out *Buffer, split uint8) {
	t.Helper()
	for i := 0; i < len(src.Pix()); i += 4 {
		want := uint8(0)
		if src.Pix()[i] >= split {
			want = 255
		}
		for ci := 0; ci < 3; ci++ {
			if out.Pix()[i+ci] != want {
				t.Errorf("pixel %d channel %d = %d, want %d", i/4, ci, out.Pix()[i+ci], want)
			}
		}
		if out.Pix()[i+3] != src.Pix()[i+3] {
			t.Errorf("pixel %d alpha changed", i/4)
		}
	}
}

func TestSelectorsSeparateBimodalImage(t *testing.T) {
	b := bimodalBuffer(t)
	for name, sel := range map[string]func(*Buffer) *Buffer{
		"entropy":             Entropy,
		"minimum error":       MinimumError,
		"fuzzy minimum error": FuzzyMinimumError,
	} {
		t.Run(name, func(t *testing.T) {
			// All three settle on the upper dark spike, so the level-12
			// pixels land on the white side of the cut.
			assertBinarized(t, b, sel(b), 12)
		})
	}
}
