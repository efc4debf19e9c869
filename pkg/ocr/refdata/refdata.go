// Package refdata holds the versioned reference tables the extractor and
// validator consult: historically observed (entry, payout) pairs per pick
// count, entry-amount ranges, payout multiplier bands, and per-sport
// betting-line ranges. The tables live in an embedded YAML asset so heuristic
// tuning never touches pipeline code.
package refdata

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var rawTables []byte

// Pair is one historically observed entry/payout combination.
type Pair struct {
	Entry  float64
	Payout float64
}

type pickTable struct {
	EntryRange     []float64   `yaml:"entry_range"`
	MultiplierBand []float64   `yaml:"multiplier_band"`
	Pairs          [][]float64 `yaml:"pairs"`
}

type tables struct {
	DefaultPair struct {
		Entry  float64 `yaml:"entry"`
		Payout float64 `yaml:"payout"`
	} `yaml:"default_pair"`
	Picks      map[int]pickTable               `yaml:"picks"`
	LineRanges map[string]map[string][]float64 `yaml:"line_ranges"`
}

var (
	loadOnce sync.Once
	loaded   tables
	loadErr  error
)

func load() tables {
	loadOnce.Do(func() {
		loadErr = yaml.Unmarshal(rawTables, &loaded)
		if loadErr != nil {
			// The asset is embedded and versioned with the code; failing to
			// parse it is a build defect, not a runtime condition.
			panic(fmt.Sprintf("refdata: parse tables.yaml: %v", loadErr))
		}
	})
	return loaded
}

// DefaultPair is the hard fallback when no strategy produced usable amounts.
func DefaultPair() Pair {
	t := load()
	return Pair{Entry: t.DefaultPair.Entry, Payout: t.DefaultPair.Payout}
}

// Pairs returns the known entry/payout combinations for a pick count.
func Pairs(pickCount int) []Pair {
	t := load()
	pt, ok := t.Picks[pickCount]
	if !ok {
		return nil
	}
	out := make([]Pair, 0, len(pt.Pairs))
	for _, p := range pt.Pairs {
		if len(p) == 2 {
			out = append(out, Pair{Entry: p[0], Payout: p[1]})
		}
	}
	return out
}

// EntryRange returns the plausible stake range for a pick count.
func EntryRange(pickCount int) (min, max float64, ok bool) {
	t := load()
	pt, found := t.Picks[pickCount]
	if !found || len(pt.EntryRange) != 2 {
		return 0, 0, false
	}
	return pt.EntryRange[0], pt.EntryRange[1], true
}

// MultiplierBand returns the expected payout/entry ratio band for a pick count.
func MultiplierBand(pickCount int) (min, max float64, ok bool) {
	t := load()
	pt, found := t.Picks[pickCount]
	if !found || len(pt.MultiplierBand) != 2 {
		return 0, 0, false
	}
	return pt.MultiplierBand[0], pt.MultiplierBand[1], true
}

// LineRange returns the plausible betting-line range for a sport and stat
// type, keyed by their canonical string values. ok is false when the
// combination has no table entry (unknown sports are never flagged).
func LineRange(sport, statType string) (min, max float64, ok bool) {
	t := load()
	stats, found := t.LineRanges[sport]
	if !found {
		return 0, 0, false
	}
	r, found := stats[statType]
	if !found || len(r) != 2 {
		return 0, 0, false
	}
	return r[0], r[1], true
}
