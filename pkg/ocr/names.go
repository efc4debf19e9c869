package ocr

import (
	"regexp"
	"strings"
	"unicode"
)

// Name pattern families in decreasing specificity. The suffixed family is
// the most reliable match, the plain two-token family the loosest.
var (
	suffixedNameRE   = regexp.MustCompile(`\b([A-Z][a-z']+ [A-Z][a-z']+,? (?:Jr|Sr|II|III|IV)\.?)(?:\b|$)`)
	threeTokenNameRE = regexp.MustCompile(`\b([A-Z][a-z']+ [A-Z][a-z']+ [A-Z][a-z']+)\b`)
	twoTokenNameRE   = regexp.MustCompile(`\b([A-Z][a-z']+ [A-Z][a-z']+)\b`)
)

// stopPhrases are capitalized slip vocabulary that the loose name patterns
// would otherwise swallow as player names.
var stopPhrases = []string{
	"power play",
	"flex play",
	"pick flex",
	"pick power",
	"fantasy score",
	"free square",
	"promo pick",
	"entry fee",
	"total payout",
	"potential payout",
	"pass yards",
	"rush yards",
	"receiving yards",
	"more less",
}

// stopTokens reject a candidate when any single token is slip vocabulary;
// the loose families otherwise glue direction or stat words onto real
// names ("Caitlin Clark More").
var stopTokens = map[string]struct{}{
	"over": {}, "under": {}, "more": {}, "less": {},
	"pick": {}, "play": {}, "flex": {}, "power": {},
	"points": {}, "rebounds": {}, "assists": {}, "goals": {},
	"saves": {}, "kills": {}, "hits": {}, "strikeouts": {},
	"yards": {}, "fantasy": {}, "score": {}, "entry": {},
	"fee": {}, "payout": {}, "total": {}, "promo": {},
}

// ExtractNames runs the three name strategies over the text and returns
// candidates in on-screen order, deduplicated so a loose pattern never
// re-proposes part of a stricter match.
func ExtractNames(text string) []Candidate[string] {
	type found struct {
		cand Candidate[string]
		pos  int
	}
	var all []found
	// Scan manually instead of FindAll: a rejected candidate must not
	// consume its span, or "Play Caitlin" swallowing "Caitlin" would hide
	// the real "Caitlin Clark" right behind it. On rejection the scan
	// resumes one rune past the match start so overlapping real names
	// stay reachable.
	collect := func(re *regexp.Regexp, conf float64, strategy string) {
		off := 0
		for off < len(text) {
			m := re.FindStringSubmatchIndex(text[off:])
			if m == nil {
				break
			}
			start := off + m[2]
			value := strings.TrimRight(text[start:off+m[3]], ".")
			value = strings.ReplaceAll(value, ",", "")
			if !ValidNameShape(value) {
				off = start + 1
				continue
			}
			all = append(all, found{
				cand: Candidate[string]{Value: value, Confidence: conf, Strategy: strategy},
				pos:  start,
			})
			off += m[1]
		}
	}
	collect(suffixedNameRE, 0.9, "name-suffixed")
	collect(threeTokenNameRE, 0.8, "name-three-token")
	collect(twoTokenNameRE, 0.7, "name-two-token")

	// Stricter strategies ran first, so drop any later candidate contained
	// in one already kept, then restore on-screen (positional) order.
	var kept []found
	for _, f := range all {
		dup := false
		for _, k := range kept {
			if strings.Contains(k.cand.Value, f.cand.Value) || strings.Contains(f.cand.Value, k.cand.Value) {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, f)
		}
	}
	for i := 1; i < len(kept); i++ {
		for j := i; j > 0 && kept[j].pos < kept[j-1].pos; j-- {
			kept[j], kept[j-1] = kept[j-1], kept[j]
		}
	}
	out := make([]Candidate[string], 0, len(kept))
	for _, f := range kept {
		out = append(out, f.cand)
	}
	return out
}

// ValidNameShape is the shared name predicate: at least four characters,
// contains a space, starts with a capital letter, and carries no digits or
// punctuation beyond an apostrophe. Slip vocabulary phrases are rejected.
func ValidNameShape(name string) bool {
	name = strings.TrimSpace(name)
	if len(name) < 4 || !strings.Contains(name, " ") {
		return false
	}
	first := []rune(name)[0]
	if !unicode.IsUpper(first) {
		return false
	}
	for _, r := range name {
		switch {
		case unicode.IsLetter(r), r == ' ', r == '\'':
		default:
			return false
		}
	}
	low := strings.ToLower(name)
	for _, phrase := range stopPhrases {
		if strings.Contains(low, phrase) {
			return false
		}
	}
	for _, tok := range strings.Fields(low) {
		if _, bad := stopTokens[tok]; bad {
			return false
		}
	}
	return true
}
