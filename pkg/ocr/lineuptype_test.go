package ocr

import "testing"

func TestExtractLineupType(t *testing.T) {
	label, count, conf := ExtractLineupType("6-Pick Flex Play $10 to pay $231.25")
	if label != "6-Pick Flex Play" || count != 6 {
		t.Fatalf("expected 6-Pick Flex Play got %q (%d)", label, count)
	}
	if conf != 0.9 {
		t.Fatalf("expected 0.9 got %v", conf)
	}
	// case and spacing noise from recognition
	label, count, _ = ExtractLineupType("3 - pick POWER play")
	if label != "3-Pick Power Play" || count != 3 {
		t.Fatalf("expected canonical 3-Pick Power Play got %q (%d)", label, count)
	}
}

func TestExtractLineupTypeDefault(t *testing.T) {
	label, count, conf := ExtractLineupType("nothing recognizable")
	if label != "4-Pick Flex Play" || count != 4 {
		t.Fatalf("expected default 4-Pick Flex Play got %q (%d)", label, count)
	}
	if conf >= 0.5 {
		t.Fatalf("default must carry low confidence, got %v", conf)
	}
}

func TestPickCountFromType(t *testing.T) {
	if n := PickCountFromType("4-Pick Flex Play"); n != 4 {
		t.Fatalf("expected 4 got %d", n)
	}
	if n := PickCountFromType("6-Pick Power Play"); n != 6 {
		t.Fatalf("expected 6 got %d", n)
	}
	if n := PickCountFromType("garbage"); n != 0 {
		t.Fatalf("expected 0 got %d", n)
	}
}
