package ocr

import (
	"log"

	"slipscan/models"
)

// Candidates below this confidence are treated as noise and replaced by the
// field default during record building.
const minAcceptConfidence = 0.5

// Defaults substituted when a field produced no acceptable candidate.
const placeholderName = "Unknown Player"

// BuildLineup arbitrates every field's candidate set into one draft record.
// Per-player fields are assigned positionally: the i-th accepted candidate
// belongs to player i, cycling with modulo when a list runs short. This
// leans on recognized items appearing in top-to-bottom on-screen order.
// The builder always succeeds; missing evidence degrades to defaults.
func BuildLineup(text string) *models.Lineup {
	lineupType, pickCount, typeConf := ExtractLineupType(text)
	money, moneyConf := ExtractMoney(text, pickCount)

	names := accepted(ExtractNames(text))
	sports := accepted(ExtractSports(text))
	stats := accepted(ExtractStats(text))
	lines := accepted(ExtractLines(text))
	directions := accepted(ExtractDirections(text))
	opponents := accepted(ExtractOpponents(text))

	players := make([]models.Player, pickCount)
	for i := range players {
		players[i] = models.Player{
			Slot:      i,
			Name:      cyclic(names, i, placeholderName),
			Sport:     cyclic(sports, i, models.SportUnknown),
			StatType:  cyclic(stats, i, models.StatUnknown),
			Line:      cyclic(lines, i, 0),
			Direction: cyclic(directions, i, models.DirectionUnknown),
			Opponent:  cyclic(opponents, i, ""),
		}
	}

	if typeConf < minAcceptConfidence || moneyConf < minAcceptConfidence {
		log.Printf("scan: low-confidence draft type=%q typeConf=%.2f moneyConf=%.2f text=%q",
			lineupType, typeConf, moneyConf, snippet(text, 120))
	}
	return &models.Lineup{
		Type:            lineupType,
		EntryAmount:     money.Entry,
		PotentialPayout: money.Payout,
		Status:          models.StatusPending,
		Players:         players,
	}
}

// accepted filters a candidate list down to the values that clear the
// acceptance threshold, preserving order.
func accepted[T any](cands []Candidate[T]) []T {
	var out []T
	for _, c := range cands {
		if c.Confidence >= minAcceptConfidence {
			out = append(out, c.Value)
		}
	}
	return out
}

// cyclic returns the i-th value, wrapping around short lists; empty lists
// yield the field default.
func cyclic[T any](values []T, i int, def T) T {
	if len(values) == 0 {
		return def
	}
	return values[i%len(values)]
}
