package ocr

import (
	"testing"

	"slipscan/models"
)

const sampleSlipText = "6-Pick Flex Play " +
	"Caitlin Clark WNBA Points Over 18.5 vs ATL " +
	"Breanna Stewart WNBA Rebounds Under 9.5 vs CHI " +
	"Jayson Tatum NBA Points Over 27.5 vs MIA " +
	"Luka Doncic NBA Assists Over 8.5 vs PHX " +
	"Aaron Judge MLB Hits Over 1.5 vs BOS " +
	"Juan Soto MLB Hits Under 1.5 vs ATL " +
	"$10 to pay $231.25"

func TestBuildLineupFullSlip(t *testing.T) {
	l := BuildLineup(sampleSlipText)
	if l.Type != "6-Pick Flex Play" {
		t.Fatalf("type = %q", l.Type)
	}
	if l.EntryAmount != 10 || l.PotentialPayout != 231.25 {
		t.Fatalf("amounts = %v/%v", l.EntryAmount, l.PotentialPayout)
	}
	if len(l.Players) != 6 {
		t.Fatalf("expected 6 players got %d", len(l.Players))
	}
	if l.Status != models.StatusPending {
		t.Fatalf("draft status must be pending, got %s", l.Status)
	}
	first := l.Players[0]
	if first.Name != "Caitlin Clark" || first.Sport != models.SportWNBA ||
		first.StatType != models.StatPoints || first.Line != 18.5 ||
		first.Direction != models.DirectionOver || first.Opponent != "ATL" {
		t.Fatalf("first player mismatch: %+v", first)
	}
	third := l.Players[2]
	if third.Name != "Jayson Tatum" || third.Sport != models.SportNBA || third.Line != 27.5 {
		t.Fatalf("third player mismatch: %+v", third)
	}
}

func TestBuildLineupCyclesShortLists(t *testing.T) {
	// Two sports recognized for a four-pick slip: positional assignment
	// cycles with modulo.
	l := BuildLineup("4-Pick Flex Play WNBA NBA $5 to pay $50")
	if len(l.Players) != 4 {
		t.Fatalf("expected 4 players got %d", len(l.Players))
	}
	if l.Players[0].Sport != models.SportWNBA || l.Players[2].Sport != models.SportWNBA {
		t.Fatalf("modulo cycling broken: %+v", l.Players)
	}
	if l.Players[1].Sport != models.SportNBA || l.Players[3].Sport != models.SportNBA {
		t.Fatalf("modulo cycling broken: %+v", l.Players)
	}
}

func TestBuildLineupDegradesToDefaults(t *testing.T) {
	l := BuildLineup("completely unreadable smudge")
	if l == nil {
		t.Fatalf("builder must always produce a record")
	}
	if l.Type != "4-Pick Flex Play" {
		t.Fatalf("expected default type, got %q", l.Type)
	}
	if l.EntryAmount <= 0 || l.PotentialPayout <= 0 {
		t.Fatalf("defaults must be positive: %v/%v", l.EntryAmount, l.PotentialPayout)
	}
	for _, p := range l.Players {
		if p.Name != placeholderName {
			t.Fatalf("expected placeholder names, got %q", p.Name)
		}
		if p.Direction != models.DirectionUnknown {
			t.Fatalf("unresolved direction must stay unknown, got %s", p.Direction)
		}
		if p.Sport != models.SportUnknown || p.StatType != models.StatUnknown {
			t.Fatalf("unresolved enums must stay unknown: %+v", p)
		}
	}
}
