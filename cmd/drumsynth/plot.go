// plot.go - Waveform plots as PNG

package main

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	PLOT_MARGIN      = 4
	PLOT_CAPTION_PAD = 16
)

var (
	plotBackground = color.RGBA{0x10, 0x10, 0x18, 0xFF}
	plotAxis       = color.RGBA{0x40, 0x40, 0x50, 0xFF}
	plotTrace      = color.RGBA{0x40, 0xE0, 0x80, 0xFF}
	plotText       = color.RGBA{0xE0, 0xE0, 0xE0, 0xFF}
)

// plotWaveform draws one min/max column per pixel with a caption at the top.
func plotWaveform(samples []float32, width, height int, caption string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(plotBackground), image.Point{}, draw.Src)

	top := PLOT_CAPTION_PAD
	bottom := height - PLOT_MARGIN
	if bottom <= top {
		top, bottom = 0, height-1
	}
	mid := (top + bottom) / 2
	half := float32(bottom-top) / 2

	for x := range width {
		img.SetRGBA(x, mid, plotAxis)
	}

	if len(samples) > 0 {
		for x := range width {
			lo, hi := columnRange(samples, x, width)
			y0 := mid - int(hi*half)
			y1 := mid - int(lo*half)
			for y := max(y0, top); y <= min(y1, bottom); y++ {
				img.SetRGBA(x, y, plotTrace)
			}
		}
	}

	if caption != "" {
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(plotText),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(PLOT_MARGIN, basicfont.Face7x13.Ascent+1),
		}
		d.DrawString(caption)
	}
	return img
}

// columnRange returns the clipped sample extremes that fall in column x.
func columnRange(samples []float32, x, width int) (lo, hi float32) {
	start := x * len(samples) / width
	end := (x + 1) * len(samples) / width
	if end <= start {
		end = start + 1
	}
	end = min(end, len(samples))
	if start >= end {
		return 0, 0
	}
	lo, hi = samples[start], samples[start]
	for _, s := range samples[start+1 : end] {
		lo = min(lo, s)
		hi = max(hi, s)
	}
	return max(lo, -1), min(hi, 1)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
