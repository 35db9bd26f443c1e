package imaging

import "math"

// Equalize remaps each of the red, green and blue channels through the
// cumulative distribution of its own histogram, spreading the observed
// values over the full [0,255] range. Alpha is carried through.
//
// The reference point subtracted from the cdf is the running minimum of
// the cumulative sum. The cumulative sum never decreases, so this
// settles at cdf[0]; the running-minimum form is the behavior this
// transform is defined with, not the textbook smallest-nonzero-cdf
// variant, and the two differ whenever bucket 0 is empty.
//
// A channel whose every pixel sits at level 0 would make the divisor
// zero; such a channel is copied through unchanged, as is a zero-size
// buffer.
//
// Equalizing an already-equalized image is not a no-op; no round-trip
// law holds for this transform.
func Equalize(b *Buffer) *Buffer {
	total := uint32(b.width * b.height)
	if total == 0 {
		return b.withPix(b.clonePix())
	}

	ch := ChannelHistogramOf(b)

	var cdf [3][256]uint32
	var minCdf [3]uint32
	for ci, c := range rgbChannels {
		hist := ch.At(c)
		minCdf[ci] = math.MaxUint32
		var sum uint32
		for v := 0; v < 256; v++ {
			sum += hist[v]
			cdf[ci][v] = sum
			if sum < minCdf[ci] {
				minCdf[ci] = sum
			}
		}
	}

	pix := b.clonePix()
	for ci := range rgbChannels {
		if minCdf[ci] == total {
			continue
		}
		down := float64(total - minCdf[ci])
		for i := ci; i < len(pix); i += 4 {
			up := float64(cdf[ci][pix[i]] - minCdf[ci])
			pix[i] = uint8(math.Round(up / down * 255))
		}
	}

	return b.withPix(pix)
}

// Stretch linearly remaps each of the red, green and blue channels so
// that its smallest observed value lands on 0 and its largest on 255.
// The remapped value is truncated, not rounded. A constant channel
// (min == max) is copied through unchanged rather than divided by zero.
func Stretch(b *Buffer) *Buffer {
	ch := ChannelHistogramOf(b)
	pix := b.clonePix()

	for ci, c := range rgbChannels {
		min, max, ok := ch.At(c).Bounds()
		if !ok || min == max {
			continue
		}
		span := float64(max - min)
		for i := ci; i < len(pix); i += 4 {
			pix[i] = uint8(float64(int(pix[i])-min) / span * 255)
		}
	}

	return b.withPix(pix)
}
