package ocr

// Candidate is one proposed value for a field, with the confidence the
// producing strategy assigned to its own match.
type Candidate[T any] struct {
	Value      T
	Confidence float64
	Strategy   string
}

// StrategyFunc extracts zero or more candidates for one field from the
// normalized text. Strategies never fail; an unmatched strategy returns nil.
type StrategyFunc[T any] func(text string) []Candidate[T]

// runStrategies gathers candidates from every strategy, preserving strategy
// order and each strategy's internal ordering.
func runStrategies[T any](text string, strategies []StrategyFunc[T]) []Candidate[T] {
	var out []Candidate[T]
	for _, s := range strategies {
		out = append(out, s(text)...)
	}
	return out
}

// bestCandidate picks the highest-confidence candidate; earlier candidates
// win ties so arbitration stays deterministic.
func bestCandidate[T any](cands []Candidate[T]) (Candidate[T], bool) {
	if len(cands) == 0 {
		return Candidate[T]{}, false
	}
	best := cands[0]
	for _, c := range cands[1:] {
		if c.Confidence > best.Confidence {
			best = c
		}
	}
	return best, true
}

// acceptOrDefault is the shared per-field arbitration: the best candidate at
// or above minConf wins, otherwise the documented default applies.
func acceptOrDefault[T any](cands []Candidate[T], minConf float64, def T) (T, float64) {
	best, ok := bestCandidate(cands)
	if !ok || best.Confidence < minConf {
		return def, 0
	}
	return best.Value, best.Confidence
}
