package ocr

import (
	"strings"
	"testing"

	"slipscan/models"
)

func fourPickLineup() *models.Lineup {
	return &models.Lineup{
		Type:            "4-Pick Flex Play",
		EntryAmount:     5,
		PotentialPayout: 50,
		Status:          models.StatusPending,
		Players: []models.Player{
			{Slot: 0, Name: "Caitlin Clark", Sport: models.SportWNBA, StatType: models.StatPoints, Line: 22.5, Direction: models.DirectionOver},
			{Slot: 1, Name: "Breanna Stewart", Sport: models.SportWNBA, StatType: models.StatRebounds, Line: 9.5, Direction: models.DirectionUnder},
			{Slot: 2, Name: "Jayson Tatum", Sport: models.SportNBA, StatType: models.StatPoints, Line: 27.5, Direction: models.DirectionOver},
			{Slot: 3, Name: "Luka Doncic", Sport: models.SportNBA, StatType: models.StatAssists, Line: 8.5, Direction: models.DirectionOver},
		},
	}
}

func TestValidateCleanLineup(t *testing.T) {
	report := Validate(fourPickLineup())
	if !report.IsValid {
		t.Fatalf("expected valid, got errors: %v", report.Errors)
	}
	if report.Corrected != nil {
		t.Fatalf("valid lineups carry no corrected copy")
	}
}

func TestValidatePlayerCountMismatch(t *testing.T) {
	l := fourPickLineup()
	l.Players = l.Players[:3]
	report := Validate(l)
	if report.IsValid {
		t.Fatalf("expected invalid")
	}
	found := false
	for _, e := range report.Errors {
		if strings.Contains(e, "expects 4 players") && strings.Contains(e, "found 3") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected count mismatch error, got %v", report.Errors)
	}
}

func TestValidateLineRange(t *testing.T) {
	l := fourPickLineup()
	l.Players[0].Line = 85 // WNBA Points tops out at 40
	report := Validate(l)
	if report.IsValid {
		t.Fatalf("expected invalid for out-of-range line")
	}
	found := false
	for _, e := range report.Errors {
		if strings.Contains(e, "line 85.0") && strings.Contains(e, "WNBA Points") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected line-range error, got %v", report.Errors)
	}

	l2 := fourPickLineup()
	l2.Players[0].Line = 22.5
	if report := Validate(l2); !report.IsValid {
		t.Fatalf("22.5 WNBA Points must validate, got %v", report.Errors)
	}
}

func TestValidatePayoutInversionSuggestion(t *testing.T) {
	l := fourPickLineup()
	l.PotentialPayout = 3 // below the $5 entry
	report := Validate(l)
	if report.IsValid {
		t.Fatalf("expected invalid")
	}
	if report.Corrected == nil {
		t.Fatalf("expected a corrected copy")
	}
	if report.Corrected.PotentialPayout != l.EntryAmount*2 {
		t.Fatalf("expected suggested payout %v got %v", l.EntryAmount*2, report.Corrected.PotentialPayout)
	}
	// the input lineup is never mutated
	if l.PotentialPayout != 3 {
		t.Fatalf("validator mutated its input")
	}
}

func TestValidateNamePlaceholder(t *testing.T) {
	l := fourPickLineup()
	l.Players[1].Name = "x9"
	report := Validate(l)
	if report.IsValid {
		t.Fatalf("expected invalid")
	}
	if report.Corrected.Players[1].Name != placeholderName {
		t.Fatalf("expected placeholder substitution, got %q", report.Corrected.Players[1].Name)
	}
	if l.Players[1].Name != "x9" {
		t.Fatalf("validator mutated its input")
	}
}

func TestValidateRatioBandInformational(t *testing.T) {
	l := fourPickLineup()
	l.PotentialPayout = 490 // 98x on a 4-pick, far above the band but under 100x
	report := Validate(l)
	if report.IsValid {
		t.Fatalf("expected ratio finding")
	}
	// informational: the corrected copy keeps the recognized payout
	if report.Corrected != nil && report.Corrected.PotentialPayout != 490 {
		t.Fatalf("ratio findings must not auto-correct, got %v", report.Corrected.PotentialPayout)
	}
}
