package trip

import "sort"

// Pacing thresholds, in minutes of scheduled activity per day.
const (
	tightMinutes      = 480
	overloadedMinutes = 720
	tightCount        = 3
	overloadedCount   = 5
	minGapMinutes     = 30
)

// Classify maps a day's activity list to a feasibility label. It is a pure
// function of the (time, duration) pairs: input order never changes the
// result. A missing duration counts as 0 toward the day total but as 60
// minutes when checking gaps, matching the document model this grew out of.
func Classify(activities []Activity) Feasibility {
	if len(activities) == 0 {
		return FeasibilitySmooth
	}

	totalMinutes := 0
	for _, a := range activities {
		if a.Duration != nil {
			totalMinutes += *a.Duration
		}
	}
	count := len(activities)

	sorted := make([]Activity, len(activities))
	copy(sorted, activities)
	sort.SliceStable(sorted, func(i, j int) bool {
		return TimeToMinutes(sorted[i].Time) < TimeToMinutes(sorted[j].Time)
	})

	hasOverlap := false
	for i := 1; i < len(sorted); i++ {
		if TimeToMinutes(sorted[i].Time) < ActivityEnd(sorted[i-1])+minGapMinutes {
			hasOverlap = true
			break
		}
	}

	switch {
	case count > overloadedCount || totalMinutes > overloadedMinutes || hasOverlap:
		return FeasibilityOverloaded
	case count > tightCount || totalMinutes > tightMinutes:
		return FeasibilityTight
	}
	return FeasibilitySmooth
}
