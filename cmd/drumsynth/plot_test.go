package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestPlotWaveform_Silence(t *testing.T) {
	img := plotWaveform(make([]float32, 1000), 200, 100, "")
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Fatalf("bounds = %v, want 200x100", b)
	}
	mid := (PLOT_CAPTION_PAD + 100 - PLOT_MARGIN) / 2
	for x := range 200 {
		if got := img.RGBAAt(x, mid); got != plotTrace {
			t.Fatalf("pixel (%d,%d) = %v, want trace", x, mid, got)
		}
		if got := img.RGBAAt(x, mid-10); got != plotBackground {
			t.Fatalf("pixel (%d,%d) = %v, want background", x, mid-10, got)
		}
	}
}

func TestPlotWaveform_FullScaleFillsColumn(t *testing.T) {
	samples := []float32{1, -1, 1, -1, 1, -1, 1, -1}
	img := plotWaveform(samples, 4, 100, "")
	for y := PLOT_CAPTION_PAD + 1; y < 100-PLOT_MARGIN; y++ {
		if got := img.RGBAAt(0, y); got != plotTrace {
			t.Fatalf("pixel (0,%d) = %v, want trace", y, got)
		}
	}
}

func TestPlotWaveform_Caption(t *testing.T) {
	img := plotWaveform(nil, 200, 100, "snare")
	found := false
	for y := range PLOT_CAPTION_PAD {
		for x := range 60 {
			if img.RGBAAt(x, y) != plotBackground {
				found = true
			}
		}
	}
	if !found {
		t.Error("caption left the header area empty")
	}
}

func TestColumnRange(t *testing.T) {
	samples := []float32{0.1, -0.4, 0.3, 2, -3, 0}
	lo, hi := columnRange(samples, 0, 2)
	if lo != -0.4 || hi != 0.3 {
		t.Errorf("column 0 = [%v, %v], want [-0.4, 0.3]", lo, hi)
	}
	lo, hi = columnRange(samples, 1, 2)
	if lo != -1 || hi != 1 {
		t.Errorf("column 1 = [%v, %v], want clipped [-1, 1]", lo, hi)
	}
	// More columns than samples repeats the nearest sample.
	lo, hi = columnRange([]float32{0.5}, 3, 4)
	if lo != 0.5 || hi != 0.5 {
		t.Errorf("sparse column = [%v, %v], want [0.5, 0.5]", lo, hi)
	}
}

func TestWritePNG_Decodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hit.png")
	if err := writePNG(path, plotWaveform([]float32{0, 0.5, -0.5}, 320, 120, "kick")); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 120 {
		t.Errorf("decoded bounds = %v, want 320x120", b)
	}
}
