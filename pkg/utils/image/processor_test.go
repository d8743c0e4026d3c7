package image_test

import (
	"bytes"
	stdimage "image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	imgutil "kejani_backend/pkg/utils/image"
)

func sample() stdimage.Image {
	img := stdimage.NewRGBA(stdimage.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), B: 120, A: 255})
		}
	}
	return img
}

func TestOptimize_PNG(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, sample()); err != nil {
		t.Fatalf("encode: %v", err)
	}

	out, contentType, err := imgutil.Optimize(buf.Bytes())
	if err != nil {
		t.Fatalf("optimize: %v", err)
	}
	if contentType != "image/png" {
		t.Fatalf("content type = %q", contentType)
	}
	if len(out) == 0 {
		t.Fatalf("empty output")
	}
}

func TestOptimize_JPEG(t *testing.T) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, sample(), nil); err != nil {
		t.Fatalf("encode: %v", err)
	}

	_, contentType, err := imgutil.Optimize(buf.Bytes())
	if err != nil {
		t.Fatalf("optimize: %v", err)
	}
	if contentType != "image/jpeg" {
		t.Fatalf("content type = %q", contentType)
	}
}

func TestOptimize_RejectsNonImage(t *testing.T) {
	if _, _, err := imgutil.Optimize([]byte("definitely not pixels")); err == nil {
		t.Fatalf("expected decode error")
	}
}
