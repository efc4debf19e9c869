package refdata

import "testing"

func TestDefaultPair(t *testing.T) {
	p := DefaultPair()
	if p.Entry != 2.50 || p.Payout != 7.50 {
		t.Fatalf("unexpected default pair: %+v", p)
	}
}

func TestPairsKnownPickCounts(t *testing.T) {
	for pick := 2; pick <= 6; pick++ {
		pairs := Pairs(pick)
		if len(pairs) == 0 {
			t.Fatalf("no pairs for %d picks", pick)
		}
		for _, p := range pairs {
			if p.Entry <= 0 || p.Payout <= p.Entry {
				t.Fatalf("%d picks: implausible pair %+v", pick, p)
			}
		}
	}
	if got := Pairs(9); got != nil {
		t.Fatalf("expected nil for unknown pick count, got %v", got)
	}
}

func TestEntryRangeAndMultiplierBand(t *testing.T) {
	lo, hi, ok := EntryRange(6)
	if !ok || lo != 1.00 || hi != 500.00 {
		t.Fatalf("EntryRange(6) = %v, %v, %v", lo, hi, ok)
	}
	lo, hi, ok = MultiplierBand(2)
	if !ok || lo != 1.5 || hi != 10.0 {
		t.Fatalf("MultiplierBand(2) = %v, %v, %v", lo, hi, ok)
	}
	if _, _, ok := EntryRange(1); ok {
		t.Fatal("EntryRange(1) should not exist")
	}
	if _, _, ok := MultiplierBand(7); ok {
		t.Fatal("MultiplierBand(7) should not exist")
	}
}

func TestPairsStayWithinBands(t *testing.T) {
	for pick := 2; pick <= 6; pick++ {
		elo, ehi, _ := EntryRange(pick)
		mlo, mhi, _ := MultiplierBand(pick)
		for _, p := range Pairs(pick) {
			if p.Entry < elo || p.Entry > ehi {
				t.Errorf("%d picks: entry %.2f outside range [%.2f, %.2f]", pick, p.Entry, elo, ehi)
			}
			mult := p.Payout / p.Entry
			if mult < mlo || mult > mhi {
				t.Errorf("%d picks: multiplier %.2f outside band [%.2f, %.2f]", pick, mult, mlo, mhi)
			}
		}
	}
}

func TestLineRange(t *testing.T) {
	lo, hi, ok := LineRange("WNBA", "Points")
	if !ok || lo != 1 || hi != 40 {
		t.Fatalf("LineRange(WNBA, Points) = %v, %v, %v", lo, hi, ok)
	}
	lo, hi, ok = LineRange("MLB", "Hits")
	if !ok || lo != 0.5 || hi != 4 {
		t.Fatalf("LineRange(MLB, Hits) = %v, %v, %v", lo, hi, ok)
	}
	if _, _, ok := LineRange("Unknown", "Points"); ok {
		t.Fatal("unknown sport must have no range")
	}
	if _, _, ok := LineRange("NBA", "Saves"); ok {
		t.Fatal("NBA/Saves must have no range")
	}
}
