// Package imaging holds the histogram and threshold computations the
// application is built around. Everything operates on immutable RGBA8
// buffers; each transform returns a fresh buffer and never touches its
// input, so a caller can keep the decoded original around and re-apply
// different transforms from it.
package imaging

import (
	"fmt"
	"image"
)

// Channel identifies one color component of a pixel. Its value is the
// byte offset of that component within a 4-byte RGBA pixel.
type Channel int

const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
	ChannelAlpha
)

// rgbChannels are the components that participate in histograms and
// transforms. Alpha is carried through untouched.
var rgbChannels = [3]Channel{ChannelRed, ChannelGreen, ChannelBlue}

func (c Channel) String() string {
	switch c {
	case ChannelRed:
		return "red"
	case ChannelGreen:
		return "green"
	case ChannelBlue:
		return "blue"
	case ChannelAlpha:
		return "alpha"
	}
	return fmt.Sprintf("channel(%d)", int(c))
}

// Buffer is a decoded width×height image in RGBA8 layout. It is
// immutable once constructed: transforms allocate a new Buffer and the
// pixel slice must not be written to by callers.
type Buffer struct {
	width  int
	height int
	pix    []uint8
}

// NewBuffer wraps decoded RGBA8 bytes. The slice is used directly, not
// copied; ownership passes to the Buffer.
func NewBuffer(width, height int, pix []uint8) (*Buffer, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}
	if len(pix) != width*height*4 {
		return nil, fmt.Errorf("pixel data length %d does not match %dx%d RGBA", len(pix), width, height)
	}
	return &Buffer{width: width, height: height, pix: pix}, nil
}

// FromImage converts any decoded image into a Buffer, flattening it to
// the canonical RGBA8 layout.
func FromImage(img image.Image) *Buffer {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]uint8, w*h*4)

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			pix[i+0] = uint8(r >> 8)
			pix[i+1] = uint8(g >> 8)
			pix[i+2] = uint8(bl >> 8)
			pix[i+3] = uint8(a >> 8)
			i += 4
		}
	}

	return &Buffer{width: w, height: h, pix: pix}
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

// Pix exposes the raw RGBA8 bytes for reading. Callers must not modify
// the returned slice.
func (b *Buffer) Pix() []uint8 { return b.pix }

// ToNRGBA copies the buffer into a stdlib image for display.
func (b *Buffer) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.pix)
	return img
}

// clonePix returns a copy of the pixel bytes for a transform to rewrite
// before wrapping them in a new Buffer.
func (b *Buffer) clonePix() []uint8 {
	pix := make([]uint8, len(b.pix))
	copy(pix, b.pix)
	return pix
}

func (b *Buffer) withPix(pix []uint8) *Buffer {
	return &Buffer{width: b.width, height: b.height, pix: pix}
}
