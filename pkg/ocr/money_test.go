package ocr

import "testing"

func TestMoneyDirectMinMax(t *testing.T) {
	cands := moneyDirect("won $5 on $5 then $35 payout")
	if len(cands) != 1 {
		t.Fatalf("expected one candidate got %d", len(cands))
	}
	c := cands[0]
	if c.Value.Entry != 5 || c.Value.Payout != 35 {
		t.Fatalf("expected entry=5 payout=35 got %+v", c.Value)
	}
	if c.Confidence != 0.9 {
		t.Fatalf("expected confidence 0.9 got %v", c.Confidence)
	}
}

func TestMoneyContextualToPay(t *testing.T) {
	pair, conf := ExtractMoney("$10 to pay $231.25", 6)
	if pair.Entry != 10 || pair.Payout != 231.25 {
		t.Fatalf("expected 10/231.25 got %+v", pair)
	}
	if conf < 0.8 {
		t.Fatalf("expected confidence >= 0.8 got %v", conf)
	}
}

func TestRepairDecimalDrop(t *testing.T) {
	if v := repairDecimalDrop("250", 250); v != 2.50 {
		t.Fatalf("expected 2.50 got %v", v)
	}
	if v := repairDecimalDrop("2500", 2500); v != 25.00 {
		t.Fatalf("expected 25.00 got %v", v)
	}
	// already has a decimal point, leave alone
	if v := repairDecimalDrop("2.50", 2.50); v != 2.50 {
		t.Fatalf("expected 2.50 got %v", v)
	}
	if v := repairDecimalDrop("25", 25); v != 25 {
		t.Fatalf("two-digit numbers are not repaired, got %v", v)
	}
}

func TestMoneyFallbackDefault(t *testing.T) {
	pair, conf := ExtractMoney("nothing usable here", 4)
	if pair.Entry != 2.50 || pair.Payout != 7.50 {
		t.Fatalf("expected default pair 2.50/7.50 got %+v", pair)
	}
	if conf >= 0.5 {
		t.Fatalf("fallback must flag low confidence, got %v", conf)
	}
}

func TestMoneyHistoricalNearKnownPair(t *testing.T) {
	s := moneyHistorical(6)
	cands := s("entry $10 something unreadable")
	if len(cands) != 1 {
		t.Fatalf("expected one candidate got %d", len(cands))
	}
	c := cands[0]
	if c.Confidence != 0.7 {
		t.Fatalf("expected table-match confidence 0.7 got %v", c.Confidence)
	}
	if c.Value.Entry != 10 || c.Value.Payout != 231.25 {
		t.Fatalf("expected known 6-pick pair 10/231.25 got %+v", c.Value)
	}
}
