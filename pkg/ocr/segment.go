package ocr

// Layout heuristics for a pick-slip screenshot: app chrome and lineup type
// at the top, stacked pick cards in the middle, entry/payout summary at the
// bottom.
const (
	headerFraction   = 0.15
	footerFraction   = 0.10
	cardHeightFactor = 0.12

	minPickCards = 2
	maxPickCards = 6
)

// Segment divides a buffer of the given dimensions into header, pick-card
// and footer regions. Pure function of width and height: no recognition
// happens here, and degenerate dimensions still yield a minimal region set.
func Segment(w, h int) []Region {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	headerH := int(float64(h) * headerFraction)
	footerH := int(float64(h) * footerFraction)
	playArea := h - headerH - footerH

	cards := minPickCards
	if unit := float64(h) * cardHeightFactor; unit >= 1 {
		cards = int(float64(playArea) / unit)
		if cards < minPickCards {
			cards = minPickCards
		}
		if cards > maxPickCards {
			cards = maxPickCards
		}
	}

	regions := make([]Region, 0, cards+2)
	regions = append(regions, Region{Left: 0, Top: 0, Width: w, Height: headerH, Role: RoleHeader})
	cardH := playArea / cards
	for i := 0; i < cards; i++ {
		top := headerH + i*cardH
		height := cardH
		if i == cards-1 {
			height = playArea - (cards-1)*cardH // last card absorbs the remainder
		}
		regions = append(regions, Region{Left: 0, Top: top, Width: w, Height: height, Role: RolePickCard})
	}
	regions = append(regions, Region{Left: 0, Top: h - footerH, Width: w, Height: footerH, Role: RoleFooter})
	return regions
}
