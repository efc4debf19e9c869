package ocr

import (
	"fmt"
	"log"
)

// ProgressFunc receives a monotonically non-decreasing percentage and a
// short status string after each recognition pass. Called synchronously.
type ProgressFunc func(pct int, status string)

// Orchestrator drives the recognition engine over the segmented regions of
// one preprocessed buffer. All engine calls are sequential: the wrapped
// engine carries mutable session parameters that must not be reconfigured
// while a call is outstanding.
type Orchestrator struct {
	Engine   Engine
	Progress ProgressFunc
}

// Run recognizes every segmented region with its role profile and finishes
// with one whole-image pass as a structural backup. Any engine failure
// aborts with a wrapped ErrEngine; no partial result set is returned.
func (o *Orchestrator) Run(buf *PixelBuffer) ([]RecognitionResult, error) {
	regions := Segment(buf.W, buf.H)
	total := len(regions) + 1
	results := make([]RecognitionResult, 0, total)
	for i := range regions {
		region := regions[i]
		res, err := o.Engine.Recognize(buf, &region, profileFor(region.Role))
		if err != nil {
			return nil, fmt.Errorf("%w: %s region: %v", ErrEngine, region.Role, err)
		}
		results = append(results, res)
		o.report((i+1)*100/total, fmt.Sprintf("recognized %s region %d/%d", region.Role, i+1, len(regions)))
	}
	whole, err := o.Engine.Recognize(buf, nil, PickCardProfile)
	if err != nil {
		return nil, fmt.Errorf("%w: whole-image pass: %v", ErrEngine, err)
	}
	results = append(results, whole)
	o.report(100, "recognition complete")
	log.Printf("scan: %d recognition passes done", len(results))
	return results, nil
}

func (o *Orchestrator) report(pct int, status string) {
	if o.Progress != nil {
		o.Progress(pct, status)
	}
}

// profileFor maps a region role to its engine profile. The footer carries
// entry/payout amounts, so it shares the wide pick-card profile.
func profileFor(role RegionRole) Profile {
	if role == RoleHeader {
		return HeaderProfile
	}
	return PickCardProfile
}
