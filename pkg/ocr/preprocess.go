package ocr

import (
	"bytes"
	"fmt"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
)

const (
	// Small screenshots are upscaled to roughly this height before
	// recognition; tesseract accuracy drops sharply on tiny glyphs.
	targetHeight = 1300

	defaultBlurRadius   = 1.0
	defaultThreshBlock  = 16
	defaultThreshBias   = 10
	defaultMedianWindow = 3.0
)

// Preprocess decodes raw image bytes and runs the binarization chain:
// grayscale, Gaussian smoothing, histogram equalization, adaptive local
// thresholding, median denoise. Each stage is idempotent on its own output,
// so feeding an already-clean screenshot through again is harmless.
func Preprocess(raw []byte) (*PixelBuffer, error) {
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	gray := imaging.Grayscale(img)
	if gray.Bounds().Dy() > 0 && gray.Bounds().Dy() < targetHeight {
		gray = imaging.Resize(gray, 0, targetHeight, imaging.Lanczos)
	}
	smoothed := blur.Gaussian(gray, defaultBlurRadius)
	buf := bufferFromImage(smoothed)
	buf = equalizeHistogram(buf)
	buf = adaptiveThreshold(buf, defaultThreshBlock, defaultThreshBias)
	buf = bufferFromImage(effect.Median(buf.ToGray(), defaultMedianWindow))
	return buf, nil
}

// equalizeHistogram remaps intensities through the cumulative distribution
// so compressed dark or washed-out screenshots spread over the full range.
func equalizeHistogram(b *PixelBuffer) *PixelBuffer {
	var hist [256]int
	for _, v := range b.Pix {
		hist[v]++
	}
	var cdf [256]int
	sum := 0
	for i, n := range hist {
		sum += n
		cdf[i] = sum
	}
	cdfMin := 0
	for _, c := range cdf {
		if c > 0 {
			cdfMin = c
			break
		}
	}
	total := len(b.Pix)
	out := newPixelBuffer(b.W, b.H)
	denom := total - cdfMin
	if denom <= 0 {
		// flat image, nothing to equalize
		copy(out.Pix, b.Pix)
		return out
	}
	var lut [256]uint8
	for i := range lut {
		v := (cdf[i] - cdfMin) * 255 / denom
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		lut[i] = uint8(v)
	}
	for i, v := range b.Pix {
		out.Pix[i] = lut[v]
	}
	return out
}

// adaptiveThreshold binarizes against the mean of a surrounding block using
// an integral image, so uneven lighting across a screenshot does not smear
// whole regions black. A pixel survives as white when it exceeds the local
// mean minus bias.
func adaptiveThreshold(b *PixelBuffer, block, bias int) *PixelBuffer {
	if block < 3 {
		block = 3
	}
	w, h := b.W, b.H
	out := newPixelBuffer(w, h)
	if w == 0 || h == 0 {
		return out
	}
	ints := make([]int, w*h)
	for y := 0; y < h; y++ {
		rowSum := 0
		for x := 0; x < w; x++ {
			rowSum += int(b.Pix[y*w+x])
			idx := y*w + x
			if y == 0 {
				ints[idx] = rowSum
			} else {
				ints[idx] = ints[(y-1)*w+x] + rowSum
			}
		}
	}
	half := block / 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			x0, y0 := x-half, y-half
			x1, y1 := x+half, y+half
			if x0 < 0 {
				x0 = 0
			}
			if y0 < 0 {
				y0 = 0
			}
			if x1 >= w {
				x1 = w - 1
			}
			if y1 >= h {
				y1 = h - 1
			}
			sum := ints[y1*w+x1]
			if x0 > 0 {
				sum -= ints[y1*w+x0-1]
			}
			if y0 > 0 {
				sum -= ints[(y0-1)*w+x1]
			}
			if x0 > 0 && y0 > 0 {
				sum += ints[(y0-1)*w+x0-1]
			}
			mean := sum / ((x1 - x0 + 1) * (y1 - y0 + 1))
			th := mean - bias
			if th < 0 {
				th = 0
			}
			if int(b.Pix[y*w+x]) > th {
				out.set(x, y, 255)
			} else {
				out.set(x, y, 0)
			}
		}
	}
	return out
}
