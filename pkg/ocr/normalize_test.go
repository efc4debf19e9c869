package ocr

import "testing"

func TestNormalizeIdempotent(t *testing.T) {
	samples := []string{
		"4-Pick Flex P1ay | LeBron James",
		"0ver 27.5 P0ints \\ vs BOS",
		"  spaced   out\ttext  ",
		"5an Antonio 5purs",
		"already clean text",
		"",
	}
	for _, s := range samples {
		once := NormalizeText(s)
		twice := NormalizeText(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: %q != %q", s, once, twice)
		}
	}
}

func TestNormalizeSeparatorsAndMisreads(t *testing.T) {
	got := NormalizeText("F1ex|P1ay")
	if got != "Flex Play" {
		t.Fatalf("expected %q got %q", "Flex Play", got)
	}
	// digits stay digits when not followed by a lowercase letter
	got = NormalizeText("$10 to pay $231.25")
	if got != "$10 to pay $231.25" {
		t.Fatalf("amounts must survive normalization, got %q", got)
	}
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	got := NormalizeText("  a \t b \n c ")
	if got != "a b c" {
		t.Fatalf("expected %q got %q", "a b c", got)
	}
}
