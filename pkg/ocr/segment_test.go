package ocr

import "testing"

func TestSegmentRolesAndCoverage(t *testing.T) {
	regions := Segment(1080, 2400)
	if regions[0].Role != RoleHeader {
		t.Fatalf("first region must be the header, got %s", regions[0].Role)
	}
	if regions[len(regions)-1].Role != RoleFooter {
		t.Fatalf("last region must be the footer, got %s", regions[len(regions)-1].Role)
	}
	cards := 0
	for _, r := range regions {
		if r.Role == RolePickCard {
			cards++
		}
		if r.Width != 1080 {
			t.Fatalf("regions span the full width, got %d", r.Width)
		}
	}
	if cards < minPickCards || cards > maxPickCards {
		t.Fatalf("pick-card count %d outside [%d,%d]", cards, minPickCards, maxPickCards)
	}
	// stacked without gaps through the play area
	for i := 1; i < len(regions)-1; i++ {
		if regions[i].Top != regions[i-1].Top+regions[i-1].Height {
			t.Fatalf("region %d not stacked flush: top=%d prev ends %d",
				i, regions[i].Top, regions[i-1].Top+regions[i-1].Height)
		}
	}
}

func TestSegmentDeterministic(t *testing.T) {
	a := Segment(720, 1560)
	b := Segment(720, 1560)
	if len(a) != len(b) {
		t.Fatalf("same dimensions must segment identically")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("region %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSegmentDegenerate(t *testing.T) {
	regions := Segment(0, 0)
	if len(regions) < 3 {
		t.Fatalf("degenerate input still yields header/cards/footer, got %d regions", len(regions))
	}
}
