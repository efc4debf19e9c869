package ocr

import (
	"fmt"
	"log"

	"slipscan/models"
	"slipscan/pkg/ocr/refdata"
)

// ValidationReport is the validator's verdict on a draft lineup. Errors are
// human-readable and independently collected; none of them aborts anything.
// Corrected, present only when errors exist, applies the documented
// deterministic substitutions; it is a suggestion for the review screen,
// not an authoritative rewrite.
type ValidationReport struct {
	IsValid   bool           `json:"isValid"`
	Errors    []string       `json:"errors"`
	Corrected *models.Lineup `json:"correctedLineup,omitempty"`
}

// Grossly inflated payouts (beyond entry x 100) get a stronger suggested
// correction than merely inverted ones.
const (
	payoutSuggestFactor      = 2.0
	payoutSuggestGrossFactor = 10.0
	maxPayoutMultiplier      = 100.0
)

// Validate checks a draft lineup against the domain constraints the noisy
// pipeline stages deliberately do not enforce. Checks never short-circuit:
// every violation is reported. The input lineup is never mutated;
// corrections go into a fresh copy.
func Validate(l *models.Lineup) *ValidationReport {
	var errs []string
	fixed := l.Clone()

	pickCount := PickCountFromType(l.Type)

	if lo, hi, ok := refdata.EntryRange(pickCount); ok && (l.EntryAmount < lo || l.EntryAmount > hi) {
		suggested := lo
		if l.EntryAmount > hi {
			suggested = hi
		}
		errs = append(errs, fmt.Sprintf(
			"entry amount $%.2f outside expected range [$%.2f, $%.2f] for a %d-pick; suggested $%.2f",
			l.EntryAmount, lo, hi, pickCount, suggested))
		fixed.EntryAmount = suggested
	} else if l.EntryAmount <= 0 {
		suggested := refdata.DefaultPair().Entry
		errs = append(errs, fmt.Sprintf("entry amount $%.2f is not positive; suggested $%.2f", l.EntryAmount, suggested))
		fixed.EntryAmount = suggested
	}

	switch {
	case l.PotentialPayout <= l.EntryAmount:
		if l.Status == models.StatusLoss {
			// settled losses legitimately pay below the stake
			log.Printf("validate: payout $%.2f below entry $%.2f on a loss, accepted", l.PotentialPayout, l.EntryAmount)
		} else {
			errs = append(errs, fmt.Sprintf(
				"potential payout $%.2f does not exceed entry $%.2f; suggested $%.2f",
				l.PotentialPayout, l.EntryAmount, l.EntryAmount*payoutSuggestFactor))
			fixed.PotentialPayout = fixed.EntryAmount * payoutSuggestFactor
		}
	case l.PotentialPayout > l.EntryAmount*maxPayoutMultiplier:
		errs = append(errs, fmt.Sprintf(
			"potential payout $%.2f exceeds %gx the entry $%.2f; suggested $%.2f",
			l.PotentialPayout, maxPayoutMultiplier, l.EntryAmount, l.EntryAmount*payoutSuggestGrossFactor))
		fixed.PotentialPayout = fixed.EntryAmount * payoutSuggestGrossFactor
	}

	// Ratio anomalies are informational; no auto-correction.
	if lo, hi, ok := refdata.MultiplierBand(pickCount); ok && l.EntryAmount > 0 {
		ratio := l.PotentialPayout / l.EntryAmount
		if ratio < lo || ratio > hi {
			errs = append(errs, fmt.Sprintf(
				"payout/entry ratio %.2fx outside the usual %d-pick band [%.1fx, %.1fx]",
				ratio, pickCount, lo, hi))
		}
	}

	if pickCount > 0 && len(l.Players) != pickCount {
		errs = append(errs, fmt.Sprintf(
			"lineup type %q expects %d players, found %d", l.Type, pickCount, len(l.Players)))
	}

	for i := range l.Players {
		p := &l.Players[i]
		if lo, hi, ok := refdata.LineRange(string(p.Sport), string(p.StatType)); ok && (p.Line < lo || p.Line > hi) {
			errs = append(errs, fmt.Sprintf(
				"player %d (%s): line %.1f outside %s %s range [%.1f, %.1f]",
				i+1, p.Name, p.Line, p.Sport, p.StatType, lo, hi))
		}
		if !ValidNameShape(p.Name) {
			errs = append(errs, fmt.Sprintf("player %d: name %q fails name validation", i+1, p.Name))
			fixed.Players[i].Name = placeholderName
		}
	}

	if len(errs) == 0 {
		return &ValidationReport{IsValid: true, Errors: []string{}}
	}
	return &ValidationReport{IsValid: false, Errors: errs, Corrected: fixed}
}
