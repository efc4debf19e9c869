package ocr

import (
	"regexp"
	"strings"
)

var dollarAmountRE = regexp.MustCompile(`\$\s*[0-9]+(?:\.[0-9]{1,2})?`)

// slipKeywords are terms that only appear on genuine pick-slip screens;
// each hit is worth more than a few points of raw engine confidence.
var slipKeywords = []string{"pick", "flex", "play"}

const (
	keywordBonus = 10.0
	noiseWeight  = 0.5
)

// Fuse selects the canonical text from a recognition result set by score:
// engine confidence, plus a bonus per slip keyword and dollar pattern,
// minus a penalty per character outside the expected symbol set. Ties
// resolve to the earliest pass. Never fails; an empty set yields "".
func Fuse(results []RecognitionResult) string {
	if len(results) == 0 {
		return ""
	}
	best := 0
	bestScore := ScoreResult(results[0])
	for i := 1; i < len(results); i++ {
		if s := ScoreResult(results[i]); s > bestScore {
			best, bestScore = i, s
		}
	}
	return results[best].Text
}

// ScoreResult computes the fusion score for one pass.
func ScoreResult(r RecognitionResult) float64 {
	score := r.Confidence
	low := strings.ToLower(r.Text)
	for _, kw := range slipKeywords {
		if strings.Contains(low, kw) {
			score += keywordBonus
		}
	}
	if dollarAmountRE.MatchString(r.Text) {
		score += keywordBonus
	}
	return score - noiseWeight*float64(noiseCount(r.Text))
}

// noiseCount counts characters outside the alphanumeric/currency/punctuation
// set a slip can legitimately contain.
func noiseCount(s string) int {
	n := 0
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune(" $.,+-:'()/@&%\n\t", r):
		default:
			n++
		}
	}
	return n
}
