package ocr

import (
	"regexp"
	"strings"
)

var (
	separatorNoiseRE = regexp.MustCompile("[|\\\\/_~]+")

	// Single-character misreads repaired only in letter context: preceded
	// by a letter and followed by a lowercase letter. Word-initial capitals
	// (and genuine numbers) are left alone.
	misreadZeroRE = regexp.MustCompile(`([A-Za-z])0([a-z])`)
	misreadEllRE  = regexp.MustCompile(`([A-Za-z])[1I]([a-z])`)
	misreadEssRE  = regexp.MustCompile(`([A-Za-z])[5S]([a-z])`)
)

// NormalizeText cleans fused recognition output: stray separator characters
// become spaces, common digit/letter confusions are repaired in letter
// context, and whitespace is collapsed. Runs replacements to a fixpoint so
// the transform is idempotent.
func NormalizeText(s string) string {
	t := separatorNoiseRE.ReplaceAllString(s, " ")
	for {
		next := misreadZeroRE.ReplaceAllString(t, "${1}o${2}")
		next = misreadEllRE.ReplaceAllString(next, "${1}l${2}")
		next = misreadEssRE.ReplaceAllString(next, "${1}s${2}")
		if next == t {
			break
		}
		t = next
	}
	return strings.Join(strings.Fields(t), " ")
}

// snippet shortens text for log lines.
func snippet(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
