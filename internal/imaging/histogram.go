package imaging

// Histogram counts how many pixels take each of the 256 possible 8-bit
// values. The counts of a valid histogram always sum to width*height.
type Histogram [256]uint32

// Total returns the number of pixels counted.
func (h *Histogram) Total() uint32 {
	var sum uint32
	for _, n := range h {
		sum += n
	}
	return sum
}

// Bounds returns the smallest and largest value with a nonzero count,
// and false if every bucket is empty.
func (h *Histogram) Bounds() (min, max int, ok bool) {
	min, max = 255, 0
	for i, n := range h {
		if n == 0 {
			continue
		}
		ok = true
		if i < min {
			min = i
		}
		if i > max {
			max = i
		}
	}
	return min, max, ok
}

// ChannelHistogram holds one Histogram per color channel, indexed by
// Channel ordinal. Alpha is never histogrammed.
type ChannelHistogram [3]Histogram

// At returns the histogram for c, which must be red, green or blue.
func (ch *ChannelHistogram) At(c Channel) *Histogram {
	return &ch[c]
}

// ChannelHistogramOf counts the red, green and blue values of every
// pixel in the buffer. A zero-size buffer yields all-zero histograms.
func ChannelHistogramOf(b *Buffer) *ChannelHistogram {
	var ch ChannelHistogram
	pix := b.pix
	for i := 0; i < len(pix); i += 4 {
		ch[ChannelRed][pix[i]]++
		ch[ChannelGreen][pix[i+1]]++
		ch[ChannelBlue][pix[i+2]]++
	}
	return &ch
}

// GrayscaleHistogramOf counts the luminance of every pixel using the
// Rec. 709 weights. The weighted sum is truncated toward zero, not
// rounded; for valid RGB8 input it already lies in [0,255].
func GrayscaleHistogramOf(b *Buffer) *Histogram {
	var h Histogram
	pix := b.pix
	for i := 0; i < len(pix); i += 4 {
		h[grayLevel(pix[i], pix[i+1], pix[i+2])]++
	}
	return &h
}

func grayLevel(r, g, b uint8) uint8 {
	return uint8(float64(r)*0.2126 + float64(g)*0.7152 + float64(b)*0.0722)
}
