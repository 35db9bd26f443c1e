package chart

import (
	"bytes"
	"testing"

	"threshlab/internal/imaging"
)

func testBuffer(t *testing.T) *imaging.Buffer {
	t.Helper()
	pix := []uint8{
		10, 20, 30, 255,
		200, 100, 50, 255,
		200, 100, 50, 255,
		0, 255, 128, 255,
	}
	b, err := imaging.NewBuffer(2, 2, pix)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	return b
}

func TestChannelsRendersPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := Channels(&buf, testBuffer(t)); err != nil {
		t.Fatalf("Channels: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output does not start with a PNG header")
	}
}

func TestGrayscaleRendersPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := Grayscale(&buf, testBuffer(t)); err != nil {
		t.Fatalf("Grayscale: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output does not start with a PNG header")
	}
}

func TestChartsRejectZeroSize(t *testing.T) {
	b, err := imaging.NewBuffer(0, 0, nil)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	var buf bytes.Buffer
	if err := Channels(&buf, b); err == nil {
		t.Error("expected error for zero-size image")
	}
	if err := Grayscale(&buf, b); err == nil {
		t.Error("expected error for zero-size image")
	}
}
