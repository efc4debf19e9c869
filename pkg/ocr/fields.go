package ocr

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"slipscan/models"
)

// dictEntry is one pattern in a field dictionary. Specific multi-word
// phrases carry more confidence than generic single-word matches.
type dictEntry[T any] struct {
	re       *regexp.Regexp
	value    T
	conf     float64
	strategy string
}

// collectOrdered runs a dictionary over the text and returns candidates in
// text position order, so positional assignment mirrors on-screen order.
// A span matched by an earlier (more specific) entry is not re-matched.
func collectOrdered[T any](text string, dict []dictEntry[T]) []Candidate[T] {
	type hit struct {
		cand       Candidate[T]
		start, end int
	}
	var hits []hit
	for _, d := range dict {
		for _, m := range d.re.FindAllStringIndex(text, -1) {
			overlap := false
			for _, h := range hits {
				if m[0] < h.end && m[1] > h.start {
					overlap = true
					break
				}
			}
			if overlap {
				continue
			}
			hits = append(hits, hit{
				cand:  Candidate[T]{Value: d.value, Confidence: d.conf, Strategy: d.strategy},
				start: m[0],
				end:   m[1],
			})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].start < hits[j].start })
	out := make([]Candidate[T], 0, len(hits))
	for _, h := range hits {
		out = append(out, h.cand)
	}
	return out
}

var sportDict = []dictEntry[models.Sport]{
	{regexp.MustCompile(`\bWNBA\b`), models.SportWNBA, 0.9, "sport-league"},
	{regexp.MustCompile(`\bNBA\b`), models.SportNBA, 0.9, "sport-league"},
	{regexp.MustCompile(`\bNFL\b`), models.SportNFL, 0.9, "sport-league"},
	{regexp.MustCompile(`\bMLB\b`), models.SportMLB, 0.9, "sport-league"},
	{regexp.MustCompile(`\bNHL\b`), models.SportNHL, 0.9, "sport-league"},
	{regexp.MustCompile(`(?i)\b(?:premier league|la liga|serie a|champions league)\b`), models.SportSoccer, 0.85, "sport-phrase"},
	{regexp.MustCompile(`(?i)\b(?:league of legends|counter strike|cs2|valorant|dota)\b`), models.SportEsports, 0.85, "sport-phrase"},
	{regexp.MustCompile(`(?i)\bsoccer\b`), models.SportSoccer, 0.7, "sport-word"},
	{regexp.MustCompile(`(?i)\btennis\b`), models.SportTennis, 0.7, "sport-word"},
	{regexp.MustCompile(`(?i)\besports\b`), models.SportEsports, 0.7, "sport-word"},
}

// ExtractSports returns league candidates in on-screen order.
func ExtractSports(text string) []Candidate[models.Sport] {
	return collectOrdered(text, sportDict)
}

var statDict = []dictEntry[models.StatType]{
	{regexp.MustCompile(`(?i)\bpts\s*\+\s*rebs\s*\+\s*asts\b`), models.StatPtsRebsAsts, 0.95, "stat-phrase"},
	{regexp.MustCompile(`(?i)\bfantasy\s+score\b`), models.StatFantasyScore, 0.9, "stat-phrase"},
	{regexp.MustCompile(`(?i)\b3-?\s*pt\s+made\b`), models.StatThreePointers, 0.9, "stat-phrase"},
	{regexp.MustCompile(`(?i)\bpass(?:ing)?\s+yards\b`), models.StatPassingYards, 0.9, "stat-phrase"},
	{regexp.MustCompile(`(?i)\brush(?:ing)?\s+yards\b`), models.StatRushingYards, 0.9, "stat-phrase"},
	{regexp.MustCompile(`(?i)\breceiving\s+yards\b`), models.StatReceivingYards, 0.9, "stat-phrase"},
	{regexp.MustCompile(`(?i)\bpoints\b`), models.StatPoints, 0.7, "stat-word"},
	{regexp.MustCompile(`(?i)\brebounds\b`), models.StatRebounds, 0.7, "stat-word"},
	{regexp.MustCompile(`(?i)\bassists\b`), models.StatAssists, 0.7, "stat-word"},
	{regexp.MustCompile(`(?i)\bhits\b`), models.StatHits, 0.7, "stat-word"},
	{regexp.MustCompile(`(?i)\bstrikeouts\b`), models.StatStrikeouts, 0.7, "stat-word"},
	{regexp.MustCompile(`(?i)\bgoals\b`), models.StatGoals, 0.7, "stat-word"},
	{regexp.MustCompile(`(?i)\bsaves\b`), models.StatSaves, 0.7, "stat-word"},
	{regexp.MustCompile(`(?i)\bkills\b`), models.StatKills, 0.7, "stat-word"},
}

// ExtractStats returns stat-type candidates in on-screen order.
func ExtractStats(text string) []Candidate[models.StatType] {
	return collectOrdered(text, statDict)
}

var directionDict = []dictEntry[models.Direction]{
	{regexp.MustCompile(`(?i)\bover\b`), models.DirectionOver, 0.8, "direction-word"},
	{regexp.MustCompile(`(?i)\bunder\b`), models.DirectionUnder, 0.8, "direction-word"},
	{regexp.MustCompile(`(?i)\bmore\b`), models.DirectionOver, 0.6, "direction-loose"},
	{regexp.MustCompile(`(?i)\bless\b`), models.DirectionUnder, 0.6, "direction-loose"},
}

// ExtractDirections returns over/under candidates in on-screen order. An
// unmatched direction stays unknown; the pipeline never coin-flips one.
func ExtractDirections(text string) []Candidate[models.Direction] {
	return collectOrdered(text, directionDict)
}

var (
	// Only the vs literal is case-insensitive; the captured team must keep
	// real capitalization or "vs the field" reads as opponent "the".
	opponentVsRE = regexp.MustCompile(`\b(?i:vs)\.?\s+([A-Z]{2,4}\b|[A-Z][a-z]+(?: [A-Z][a-z]+)?)`)
	opponentAtRE = regexp.MustCompile(`@\s*([A-Z]{2,4})\b`)
)

// ExtractOpponents returns opponent candidates in on-screen order. "vs" is
// the usual slip notation; "@" marks away games and is a looser signal.
func ExtractOpponents(text string) []Candidate[string] {
	type hit struct {
		cand Candidate[string]
		pos  int
	}
	var hits []hit
	for _, m := range opponentVsRE.FindAllStringSubmatchIndex(text, -1) {
		hits = append(hits, hit{
			cand: Candidate[string]{Value: text[m[2]:m[3]], Confidence: 0.8, Strategy: "opponent-vs"},
			pos:  m[0],
		})
	}
	for _, m := range opponentAtRE.FindAllStringSubmatchIndex(text, -1) {
		hits = append(hits, hit{
			cand: Candidate[string]{Value: text[m[2]:m[3]], Confidence: 0.7, Strategy: "opponent-at"},
			pos:  m[0],
		})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })
	out := make([]Candidate[string], 0, len(hits))
	for _, h := range hits {
		out = append(out, h.cand)
	}
	return out
}

// Betting lines: free-standing numbers near stat vocabulary. Sportsbook
// lines are conventionally set at half-points, so those score up.
var lineValueRE = regexp.MustCompile(`(^|[^$0-9.])([0-9]{1,3}(?:\.[05])?)\b`)

const (
	minPlausibleLine = 0.5
	maxPlausibleLine = 500.0
)

// ExtractLines returns betting-line candidates in on-screen order. Values
// prefixed with $ belong to the money extractor, and pick-count numerals
// ("6-Pick") are lineup metadata; both are skipped here.
func ExtractLines(text string) []Candidate[float64] {
	var out []Candidate[float64]
	for _, m := range lineValueRE.FindAllStringSubmatchIndex(text, -1) {
		raw := text[m[4]:m[5]]
		rest := strings.ToLower(text[m[5]:])
		if strings.HasPrefix(rest, "-pick") || strings.HasPrefix(rest, " pick") {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		if v < minPlausibleLine || v > maxPlausibleLine {
			continue
		}
		conf := 0.6
		if math.Mod(v, 1) == 0.5 {
			conf += 0.2 // half-point convention
		}
		out = append(out, Candidate[float64]{Value: v, Confidence: conf, Strategy: "line-number"})
	}
	return out
}
