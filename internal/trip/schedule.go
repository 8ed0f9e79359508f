package trip

import (
	"strconv"
	"strings"
)

// defaultEndDuration pads an activity with no duration to a one-hour block
// when computing its end time. Note this differs on purpose from Classify,
// which counts a missing duration as 0 toward the day total.
const defaultEndDuration = 60

// TimeToMinutes converts "HH:MM" to minutes since midnight. Malformed or
// empty input yields 0 rather than an error; unscheduled activities sort to
// the start of the day.
func TimeToMinutes(s string) int {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0
	}
	hours, err := strconv.Atoi(h)
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return hours*60 + minutes
}

// ActivityEnd returns the activity's end in minutes since midnight.
func ActivityEnd(a Activity) int {
	duration := defaultEndDuration
	if a.Duration != nil {
		duration = *a.Duration
	}
	return TimeToMinutes(a.Time) + duration
}
