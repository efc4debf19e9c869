package ocr

import (
	"fmt"
	"log"
	"os"

	"slipscan/models"
)

// Pipeline converts one slip screenshot into a draft lineup plus a
// validation report. Stages run strictly in order: preprocess, segment,
// recognize, fuse, normalize, extract, build, validate. Only decoding
// (ErrDecode) and recognition (ErrEngine) may abort; every later stage
// degrades to best-effort output so the caller is never blocked by noise.
//
// A pipeline is safe for concurrent use only insofar as its Engine is; the
// bundled TesseractEngine serializes callers itself.
type Pipeline struct {
	Engine   Engine
	Progress ProgressFunc
}

// New builds a pipeline around a recognition engine.
func New(engine Engine) *Pipeline {
	return &Pipeline{Engine: engine}
}

// ScanBytes runs the full pipeline over raw image bytes.
func (p *Pipeline) ScanBytes(data []byte) (*models.Lineup, *ValidationReport, error) {
	buf, err := Preprocess(data)
	if err != nil {
		return nil, nil, err
	}
	orch := &Orchestrator{Engine: p.Engine, Progress: p.Progress}
	results, err := orch.Run(buf)
	if err != nil {
		return nil, nil, err
	}
	text := NormalizeText(Fuse(results))
	log.Printf("scan: fused text %q", snippet(text, 160))

	lineup := BuildLineup(text)
	report := Validate(lineup)
	if !report.IsValid {
		log.Printf("scan: draft has %d validation findings", len(report.Errors))
	}
	return lineup, report, nil
}

// ScanImage runs the pipeline over an image file on disk. An unreadable
// file reports as ErrDecode, same as undecodable bytes.
func (p *Pipeline) ScanImage(path string) (*models.Lineup, *ValidationReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: read %s: %v", ErrDecode, path, err)
	}
	return p.ScanBytes(data)
}
