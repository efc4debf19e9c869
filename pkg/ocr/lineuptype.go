package ocr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Lineup type fallback when the header line is unreadable. Four-pick flex
// is the most common slip shape observed in the wild.
const (
	defaultPickCount = 4
	defaultPlayStyle = "Flex"
)

var lineupTypeRE = regexp.MustCompile(`(?i)\b([2-6])\s*-?\s*Pick\s+(Flex|Power)\s+Play\b`)

// ExtractLineupType parses the "<N>-Pick <Flex|Power> Play" label. Returns
// the canonical label, the pick count, and the match confidence; absent a
// match the documented default applies.
func ExtractLineupType(text string) (string, int, float64) {
	m := lineupTypeRE.FindStringSubmatch(text)
	if len(m) == 3 {
		count, err := strconv.Atoi(m[1])
		if err == nil {
			style := strings.ToUpper(m[2][:1]) + strings.ToLower(m[2][1:])
			return fmt.Sprintf("%d-Pick %s Play", count, style), count, 0.9
		}
	}
	return fmt.Sprintf("%d-Pick %s Play", defaultPickCount, defaultPlayStyle), defaultPickCount, 0.3
}

var leadingCountRE = regexp.MustCompile(`^([0-9]+)\s*-?\s*Pick`)

// PickCountFromType reads the numeral back out of a lineup type label.
// Returns 0 when the label carries no recognizable count.
func PickCountFromType(lineupType string) int {
	m := leadingCountRE.FindStringSubmatch(strings.TrimSpace(lineupType))
	if len(m) != 2 {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
