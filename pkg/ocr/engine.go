package ocr

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// SegMode selects the engine's layout analysis mode for one pass.
type SegMode int

const (
	SegSingleLine SegMode = iota
	SegSingleBlock
)

// Profile is the engine parameter set for one recognition pass. Profiles are
// values; the engine applies them under its owner lock before each call.
type Profile struct {
	Name      string
	Whitelist string
	Mode      SegMode
}

const (
	lettersDigits = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// HeaderProfile reads the single lineup-type line at the top of a slip.
var HeaderProfile = Profile{
	Name:      "header",
	Whitelist: lettersDigits + "- ",
	Mode:      SegSingleLine,
}

// PickCardProfile reads pick cards and the payout footer, so it admits
// currency and punctuation symbols.
var PickCardProfile = Profile{
	Name:      "pick-card",
	Whitelist: lettersDigits + "$.,+-:'()/@&% ",
	Mode:      SegSingleBlock,
}

// Engine is the external text-recognition contract. A nil region means the
// whole buffer. Implementations own any session state; callers never see it.
type Engine interface {
	Recognize(buf *PixelBuffer, region *Region, profile Profile) (RecognitionResult, error)
}

// TesseractEngine wraps one gosseract client. The client carries mutable
// session parameters (whitelist, page-seg mode), so every call must own the
// client exclusively: acquisition goes through a capacity-1 channel that
// queues waiting callers. Use independent engines for parallel throughput
// across unrelated images.
type TesseractEngine struct {
	owner  chan struct{}
	client *gosseract.Client
}

// NewTesseractEngine creates an engine with its own tesseract session.
func NewTesseractEngine() *TesseractEngine {
	return &TesseractEngine{
		owner:  make(chan struct{}, 1),
		client: gosseract.NewClient(),
	}
}

// Close releases the underlying tesseract session.
func (e *TesseractEngine) Close() error {
	e.owner <- struct{}{}
	defer func() { <-e.owner }()
	return e.client.Close()
}

// Recognize runs one serialized pass over the region (or the whole buffer)
// with the given profile. Confidence is the mean word confidence reported by
// tesseract, in [0,100]; zero when no words were found.
func (e *TesseractEngine) Recognize(buf *PixelBuffer, region *Region, profile Profile) (RecognitionResult, error) {
	e.owner <- struct{}{}
	defer func() { <-e.owner }()

	var img image.Image = buf.ToGray()
	role := RolePickCard
	if region != nil {
		role = region.Role
		rect := image.Rect(region.Left, region.Top, region.Left+region.Width, region.Top+region.Height)
		img = imaging.Crop(img, rect)
	}
	return e.recognizeImage(img, role, profile)
}

func (e *TesseractEngine) recognizeImage(img image.Image, role RegionRole, profile Profile) (RecognitionResult, error) {
	tmp, err := os.CreateTemp("", "slip-"+profile.Name+"-*.png")
	if err != nil {
		return RecognitionResult{}, fmt.Errorf("temp image: %w", err)
	}
	tmpPath := tmp.Name()
	_ = tmp.Close()
	defer os.Remove(tmpPath)
	if err := imaging.Save(img, tmpPath); err != nil {
		return RecognitionResult{}, fmt.Errorf("save temp image: %w", err)
	}

	_ = e.client.SetLanguage("eng")
	if err := e.client.SetWhitelist(profile.Whitelist); err != nil {
		return RecognitionResult{}, fmt.Errorf("set whitelist: %w", err)
	}
	mode := gosseract.PSM_SINGLE_BLOCK
	if profile.Mode == SegSingleLine {
		mode = gosseract.PSM_SINGLE_LINE
	}
	if err := e.client.SetPageSegMode(mode); err != nil {
		return RecognitionResult{}, fmt.Errorf("set page seg mode: %w", err)
	}
	if err := e.client.SetImage(tmpPath); err != nil {
		return RecognitionResult{}, fmt.Errorf("set image: %w", err)
	}
	text, err := e.client.Text()
	if err != nil {
		return RecognitionResult{}, fmt.Errorf("tesseract: %w", err)
	}

	conf := 0.0
	if boxes, err := e.client.GetBoundingBoxes(gosseract.RIL_WORD); err == nil && len(boxes) > 0 {
		sum := 0.0
		n := 0
		for _, box := range boxes {
			if box.Word == "" {
				continue
			}
			sum += box.Confidence
			n++
		}
		if n > 0 {
			conf = sum / float64(n)
		}
	}
	return RecognitionResult{Text: text, Confidence: conf, Role: role}, nil
}
