package ocr

import (
	"image"
)

// PixelBuffer is the binarized grayscale buffer the pipeline works on.
// It is built once by Preprocess and treated as immutable afterwards.
type PixelBuffer struct {
	W, H int
	Pix  []uint8 // row-major, one intensity byte per pixel
}

func newPixelBuffer(w, h int) *PixelBuffer {
	return &PixelBuffer{W: w, H: h, Pix: make([]uint8, w*h)}
}

// At returns the intensity at (x, y). Out-of-bounds reads return white so
// border windows in local filters behave sanely.
func (b *PixelBuffer) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return 255
	}
	return b.Pix[y*b.W+x]
}

func (b *PixelBuffer) set(x, y int, v uint8) {
	b.Pix[y*b.W+x] = v
}

// ToGray converts the buffer to a stdlib image for encoding or cropping.
func (b *PixelBuffer) ToGray() *image.Gray {
	out := image.NewGray(image.Rect(0, 0, b.W, b.H))
	for y := 0; y < b.H; y++ {
		copy(out.Pix[y*out.Stride:y*out.Stride+b.W], b.Pix[y*b.W:(y+1)*b.W])
	}
	return out
}

// bufferFromImage reads the red channel into a PixelBuffer. Callers pass
// grayscale images, where R, G and B are equal.
func bufferFromImage(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	out := newPixelBuffer(bounds.Dx(), bounds.Dy())
	for y := 0; y < out.H; y++ {
		for x := 0; x < out.W; x++ {
			r, _, _, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			out.set(x, y, uint8(r>>8))
		}
	}
	return out
}

// RegionRole tags what kind of slip content a region is expected to hold.
type RegionRole string

const (
	RoleHeader   RegionRole = "header"
	RolePickCard RegionRole = "pick-card"
	RoleFooter   RegionRole = "footer"
)

// Region is a rectangular sub-area of the preprocessed buffer. Value type,
// never mutated after the segmenter produces it.
type Region struct {
	Left, Top     int
	Width, Height int
	Role          RegionRole
}

// RecognitionResult is one engine pass: recognized text, the engine's mean
// word confidence in [0,100], and the region role the pass covered.
type RecognitionResult struct {
	Text       string
	Confidence float64
	Role       RegionRole
}
