package imaging

import "math"

// The automatic selectors each derive a single cutoff t from the
// grayscale histogram and terminate by calling Threshold(b, t, 255).
//
// Candidates whose objective works out non-finite (empty class, zero
// variance, zero probability mass) are skipped rather than letting
// NaN or an infinity win the arg-min/arg-max; the per-selector notes
// below spell out the remaining degenerate results.

// PercentBlack picks the smallest gray level whose cumulative count
// reaches floor(width*height*percent) and thresholds at it. A percent
// of 0 selects level 0, which turns every pixel white.
func PercentBlack(b *Buffer, percent float64) *Buffer {
	h := GrayscaleHistogramOf(b)
	t := percentBlackLevel(h, uint32(b.width*b.height), percent)
	return Threshold(b, t, 255)
}

func percentBlackLevel(h *Histogram, total uint32, percent float64) uint8 {
	target := uint32(math.Floor(float64(total) * percent))
	var sum uint32
	for i := 0; i < 256; i++ {
		sum += h[i]
		if sum >= target {
			return uint8(i)
		}
	}
	return 0
}

// MeanIterative starts from the global histogram-weighted mean gray
// level, then repeatedly replaces it with the average of the means of
// the below-mean and at-or-above-mean groups until the change is at
// most 0.01. If one group empties, iteration stops at the current mean
// instead of dividing by zero. The converged mean, truncated to 8 bits,
// is the cutoff.
func MeanIterative(b *Buffer) *Buffer {
	h := GrayscaleHistogramOf(b)
	t := meanIterativeLevel(h, uint32(b.width*b.height))
	return Threshold(b, t, 255)
}

func meanIterativeLevel(h *Histogram, total uint32) uint8 {
	if total == 0 {
		return 0
	}

	var mean float64
	for i := 0; i < 256; i++ {
		mean += float64(i) * float64(h[i])
	}
	mean /= float64(total)

	prev := 0.0
	for math.Abs(mean-prev) > 0.01 {
		var lowSum, highSum float64
		var lowCount, highCount uint32
		for i := 0; i < 256; i++ {
			if float64(i) < mean {
				lowSum += float64(i) * float64(h[i])
				lowCount += h[i]
			} else {
				highSum += float64(i) * float64(h[i])
				highCount += h[i]
			}
		}
		if lowCount == 0 || highCount == 0 {
			break
		}
		prev = mean
		mean = (lowSum/float64(lowCount) + highSum/float64(highCount)) / 2
	}

	return uint8(mean)
}

// Entropy implements Kapur-style maximum-entropy selection: the cutoff
// maximizing an objective built from the low-class entropy, the total
// entropy and the largest probabilities on either side of the split.
//
// The high-side maximum is seeded from the level directly above the
// candidate and then scanned from two levels above, leaving level i+1
// out of the scan. That asymmetric window is part of the objective's
// definition; do not widen it.
func Entropy(b *Buffer) *Buffer {
	h := GrayscaleHistogramOf(b)
	t := entropyLevel(h, uint32(b.width*b.height))
	return Threshold(b, t, 255)
}

func entropyLevel(h *Histogram, total uint32) uint8 {
	if total == 0 {
		return 0
	}

	var p [256]float64
	for i := 0; i < 256; i++ {
		p[i] = float64(h[i]) / float64(total)
	}

	var htTotal float64
	for i := 0; i < 256; i++ {
		if p[i] > 0 {
			htTotal -= p[i] * math.Log2(p[i])
		}
	}

	best := math.Inf(-1)
	threshold := 0
	var pt, ht float64
	maxLow := p[0]

	for i := 0; i < 256; i++ {
		pt += p[i]
		if p[i] > maxLow {
			maxLow = p[i]
		}

		maxHigh := p[i]
		if i < 255 {
			maxHigh = p[i+1]
		}
		for j := i + 2; j < 256; j++ {
			if p[j] > maxHigh {
				maxHigh = p[j]
			}
		}

		if p[i] > 0 {
			ht -= p[i] * math.Log2(p[i])
		}

		f := ht*math.Log2(pt)/(htTotal*math.Log2(maxLow)) +
			(1-ht/htTotal)*math.Log2(1-pt)/math.Log2(maxHigh)

		if math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		if f > best {
			best = f
			threshold = i
		}
	}

	return uint8(threshold)
}

// MinimumError implements Kittler–Illingworth selection: the cutoff
// minimizing a Gaussian misclassification objective over the two
// classes either side of the split.
func MinimumError(b *Buffer) *Buffer {
	h := GrayscaleHistogramOf(b)
	t := minimumErrorLevel(h, uint32(b.width*b.height))
	return Threshold(b, t, 255)
}

func minimumErrorLevel(h *Histogram, total uint32) uint8 {
	if total == 0 {
		return 0
	}

	var p [256]float64
	for i := 0; i < 256; i++ {
		p[i] = float64(h[i]) / float64(total)
	}

	var p1, pi1 float64
	var p2, pi2 float64
	for i := 0; i < 256; i++ {
		p2 += p[i]
		pi2 += float64(i) * p[i]
	}

	best := math.Inf(1)
	threshold := 0

	for i := 0; i < 256; i++ {
		p1 += p[i]
		p2 -= p[i]
		pi1 += float64(i) * p[i]
		pi2 -= float64(i) * p[i]

		var u1, u2 float64
		if p1 > 0 {
			u1 = pi1 / p1
		}
		if p2 > 0 {
			u2 = pi2 / p2
		}

		var s1, s2 float64
		if p1 > 0 {
			for j := 0; j <= i; j++ {
				d := float64(j) - u1
				s1 += d * d * p[j]
			}
			s1 /= p1
		}
		if p2 > 0 {
			for j := i + 1; j < 256; j++ {
				d := float64(j) - u2
				s2 += d * d * p[j]
			}
			s2 /= p2
		}

		objective := 1 + 2*(p1*math.Log2(s1)-p1*math.Log2(p1)+
			p2*(math.Log2(s2)-math.Log2(p2)))

		if math.IsNaN(objective) || math.IsInf(objective, -1) {
			continue
		}
		if objective < best {
			best = objective
			threshold = i
		}
	}

	return uint8(threshold)
}

// FuzzyMinimumError picks the cutoff minimizing a fuzzy-membership
// entropy: each level contributes the Shannon function of its
// membership in its class, where membership decays with distance from
// the class mean scaled by the occupied gray range. Candidates with an
// empty class are skipped.
func FuzzyMinimumError(b *Buffer) *Buffer {
	h := GrayscaleHistogramOf(b)
	t := fuzzyMinimumErrorLevel(h, uint32(b.width*b.height))
	return Threshold(b, t, 255)
}

func fuzzyMinimumErrorLevel(h *Histogram, total uint32) uint8 {
	if total == 0 {
		return 0
	}
	min, max, ok := h.Bounds()
	if !ok {
		return 0
	}
	c := float64(max - min)

	best := math.Inf(1)
	threshold := 0

	for t := 0; t < 255; t++ {
		var mu0, mu1 float64
		var c0, c1 uint32
		for i := 0; i <= t; i++ {
			mu0 += float64(i) * float64(h[i])
			c0 += h[i]
		}
		for i := t + 1; i < 256; i++ {
			mu1 += float64(i) * float64(h[i])
			c1 += h[i]
		}
		if c0 == 0 || c1 == 0 {
			continue
		}
		mu0 /= float64(c0)
		mu1 /= float64(c1)

		var e float64
		for i := 0; i <= t; i++ {
			e += shannon(c/(c+math.Abs(float64(i)-mu0))) * float64(h[i])
		}
		for i := t + 1; i < 256; i++ {
			e += shannon(c/(c+math.Abs(float64(i)-mu1))) * float64(h[i])
		}
		e /= float64(total)

		if math.IsNaN(e) {
			continue
		}
		if e < best {
			best = e
			threshold = t
		}
	}

	return uint8(threshold)
}

// shannon is the binary entropy function, defined as 0 at x == 0.
func shannon(x float64) float64 {
	if x == 0 {
		return 0
	}
	return -x*math.Log2(x) - (1-x)*math.Log2(1-x)
}
