package imaging

// Threshold binarizes the buffer against an inclusive value range. A
// pixel whose red, green or blue value falls inside [low,high] has all
// three set to 255, any other pixel has them set to 0. Alpha bytes are
// preserved from the input.
//
// With low > high no pixel can qualify and the result is all black.
// Every automatic selector terminates by calling this with its computed
// cutoff as low and 255 as high.
func Threshold(b *Buffer, low, high uint8) *Buffer {
	pix := b.clonePix()
	for i := 0; i < len(pix); i += 4 {
		var val uint8
		for ci := range rgbChannels {
			if pix[i+ci] >= low && pix[i+ci] <= high {
				val = 255
			}
		}
		pix[i] = val
		pix[i+1] = val
		pix[i+2] = val
	}
	return b.withPix(pix)
}
