package ocr

import (
	"strings"
	"testing"
)

func TestFuseNoiseMonotonic(t *testing.T) {
	base := RecognitionResult{Text: "4-Pick Flex Play $5 to pay $25", Confidence: 70, Role: RolePickCard}
	prev := ScoreResult(base)
	noisy := base
	for i := 0; i < 5; i++ {
		noisy.Text += "#"
		score := ScoreResult(noisy)
		if score >= prev {
			t.Fatalf("appending noise must strictly decrease the score: %v >= %v", score, prev)
		}
		prev = score
	}
}

func TestFuseKeywordBonus(t *testing.T) {
	plain := RecognitionResult{Text: "some header text", Confidence: 50}
	slippy := RecognitionResult{Text: "3-Pick Power Play", Confidence: 50}
	if ScoreResult(slippy) <= ScoreResult(plain) {
		t.Fatalf("slip keywords must outscore plain text")
	}
}

func TestFusePicksArgmaxTieFirst(t *testing.T) {
	results := []RecognitionResult{
		{Text: "first", Confidence: 40},
		{Text: "second", Confidence: 40},
		{Text: "winner pick flex play $10", Confidence: 40},
	}
	if got := Fuse(results); !strings.Contains(got, "winner") {
		t.Fatalf("expected keyword-rich result to win, got %q", got)
	}
	tie := []RecognitionResult{
		{Text: "alpha", Confidence: 40},
		{Text: "bravo", Confidence: 40},
	}
	if got := Fuse(tie); got != "alpha" {
		t.Fatalf("ties resolve to first pass, got %q", got)
	}
	if got := Fuse(nil); got != "" {
		t.Fatalf("empty result set yields empty text, got %q", got)
	}
}
