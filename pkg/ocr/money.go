package ocr

import (
	"math"
	"regexp"
	"sort"
	"strconv"

	"slipscan/pkg/ocr/refdata"
)

// MoneyPair is an extracted stake and potential payout, in dollars.
type MoneyPair struct {
	Entry  float64
	Payout float64
}

// Amounts outside this range are ids, dates or noise, not stakes.
const (
	minPlausibleAmount = 0.10
	maxPlausibleAmount = 10000.0
)

// Confidence attached to the hard default pair when every strategy failed.
const moneyDefaultConfidence = 0.2

var (
	dollarValueRE = regexp.MustCompile(`\$\s*([0-9]+(?:\.[0-9]{1,2})?)`)

	moneyContextREs = []*regexp.Regexp{
		regexp.MustCompile(`(?i)entry\s*(?:fee)?\s*\$?\s*([0-9]+(?:\.[0-9]{1,2})?).{0,40}?(?:payout|pays|to pay|to win)\s*\$?\s*([0-9]+(?:\.[0-9]{1,2})?)`),
		regexp.MustCompile(`(?i)\$\s*([0-9]+(?:\.[0-9]{1,2})?)\s*to\s*(?:pay|win)\s*\$\s*([0-9]+(?:\.[0-9]{1,2})?)`),
	}

	bareNumberRE = regexp.MustCompile(`\b[0-9]+(?:\.[0-9]{1,2})?\b`)
)

// ExtractMoney arbitrates the four money strategies. Candidates with a
// non-positive entry or payout are discarded; among the rest the highest
// confidence wins. If nothing qualifies the documented hard default applies
// and the low confidence flags the record downstream.
func ExtractMoney(text string, pickCount int) (MoneyPair, float64) {
	cands := runStrategies(text, []StrategyFunc[MoneyPair]{
		moneyDirect,
		moneyContextual,
		moneyBareNumbers,
		moneyHistorical(pickCount),
	})
	kept := cands[:0]
	for _, c := range cands {
		if c.Value.Entry > 0 && c.Value.Payout > 0 {
			kept = append(kept, c)
		}
	}
	best, ok := bestCandidate(kept)
	if !ok {
		d := refdata.DefaultPair()
		return MoneyPair{Entry: d.Entry, Payout: d.Payout}, moneyDefaultConfidence
	}
	return best.Value, best.Confidence
}

// moneyDirect matches explicit dollar amounts. With two or more distinct
// plausible values the smallest is the entry and the largest the payout.
func moneyDirect(text string) []Candidate[MoneyPair] {
	values := dollarAmounts(text)
	if len(values) < 2 {
		return nil
	}
	return []Candidate[MoneyPair]{{
		Value:      MoneyPair{Entry: values[0], Payout: values[len(values)-1]},
		Confidence: 0.9,
		Strategy:   "money-direct",
	}}
}

// moneyContextual matches entry/payout phrase patterns such as
// "entry $5 ... payout $25" and "$10 to pay $231.25".
func moneyContextual(text string) []Candidate[MoneyPair] {
	var out []Candidate[MoneyPair]
	for _, re := range moneyContextREs {
		m := re.FindStringSubmatch(text)
		if len(m) != 3 {
			continue
		}
		entry, err1 := strconv.ParseFloat(m[1], 64)
		payout, err2 := strconv.ParseFloat(m[2], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, Candidate[MoneyPair]{
			Value:      MoneyPair{Entry: entry, Payout: payout},
			Confidence: 0.8,
			Strategy:   "money-context",
		})
	}
	return out
}

// moneyBareNumbers scans undecorated numbers, repairing the common OCR
// artifact of a dropped decimal point (250 -> 2.50, 2500 -> 25.00) before
// taking min/max of the plausible survivors.
func moneyBareNumbers(text string) []Candidate[MoneyPair] {
	var values []float64
	for _, m := range bareNumberRE.FindAllString(text, -1) {
		v, err := strconv.ParseFloat(m, 64)
		if err != nil {
			continue
		}
		v = repairDecimalDrop(m, v)
		if v < minPlausibleAmount || v > maxPlausibleAmount {
			continue
		}
		values = append(values, v)
	}
	values = sortedDistinct(values)
	if len(values) < 2 {
		return nil
	}
	return []Candidate[MoneyPair]{{
		Value:      MoneyPair{Entry: values[0], Payout: values[len(values)-1]},
		Confidence: 0.6,
		Strategy:   "money-bare",
	}}
}

// repairDecimalDrop divides pointless 3- and 4-digit integers by 100, on
// the assumption the engine dropped a decimal point from a cents amount.
func repairDecimalDrop(raw string, v float64) float64 {
	if len(raw) == 3 && v >= 100 && v <= 999 && v == math.Trunc(v) {
		return v / 100
	}
	if len(raw) == 4 && v >= 1000 && v <= 9999 && v == math.Trunc(v) {
		return v / 100
	}
	return v
}

// moneyHistorical consults the reference table of previously observed
// entry/payout combinations for the detected pick-count class. A table pair
// whose entry sits close to an amount seen on the slip scores well; with no
// evidence at all the table default is proposed at low confidence.
func moneyHistorical(pickCount int) StrategyFunc[MoneyPair] {
	const entryTolerance = 0.50
	return func(text string) []Candidate[MoneyPair] {
		seen := dollarAmounts(text)
		for _, pair := range refdata.Pairs(pickCount) {
			for _, v := range seen {
				if math.Abs(pair.Entry-v) <= entryTolerance {
					return []Candidate[MoneyPair]{{
						Value:      MoneyPair{Entry: pair.Entry, Payout: pair.Payout},
						Confidence: 0.7,
						Strategy:   "money-historical",
					}}
				}
			}
		}
		d := refdata.DefaultPair()
		return []Candidate[MoneyPair]{{
			Value:      MoneyPair{Entry: d.Entry, Payout: d.Payout},
			Confidence: 0.3,
			Strategy:   "money-historical",
		}}
	}
}

// dollarAmounts returns the distinct plausible $-amounts in the text,
// ascending.
func dollarAmounts(text string) []float64 {
	var out []float64
	for _, m := range dollarValueRE.FindAllStringSubmatch(text, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if v < minPlausibleAmount || v > maxPlausibleAmount {
			continue
		}
		out = append(out, v)
	}
	return sortedDistinct(out)
}

func sortedDistinct(values []float64) []float64 {
	sort.Float64s(values)
	out := values[:0]
	for i, v := range values {
		if i == 0 || v != values[i-1] {
			out = append(out, v)
		}
	}
	return out
}
