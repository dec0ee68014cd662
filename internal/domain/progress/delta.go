package progress

import "time"

// LeafDelta is the change between a skill's two most recent entries. ok is
// false when fewer than two entries exist; a missing delta is absent, never 0.
func LeafDelta(h History) (delta int, ok bool) {
	newest, previous, ok := h.LastTwo()
	if !ok {
		return 0, false
	}
	return newest.Score - previous.Score, true
}

// ParentDelta compares a parent's current child average against the previous
// one. A child with two or more entries contributes its newest and second
// newest scores; a child with exactly one entry contributes that score to both
// sides, participating in the average with zero net change; a child with no
// entries contributes to neither sum. Both averages divide by the total child
// count with integer truncation. ok is false unless at least one child has two
// entries of history.
func ParentDelta(children []History) (delta int, ok bool) {
	if len(children) == 0 {
		return 0, false
	}

	currentTotal := 0
	previousTotal := 0
	hasHistory := false
	for _, child := range children {
		if newest, previous, ok := child.LastTwo(); ok {
			currentTotal += newest.Score
			previousTotal += previous.Score
			hasHistory = true
			continue
		}
		if only, ok := child.Latest(); ok {
			currentTotal += only.Score
			previousTotal += only.Score
		}
	}
	if !hasHistory {
		return 0, false
	}

	n := len(children)
	return currentTotal/n - previousTotal/n, true
}

// WeeklyDelta is the change across the trailing seven-day window of a chart
// series (a leaf's day-bucketed history or a parent's synthetic trend). It is
// the last point's rating minus the first point's within the window, and is
// absent unless the window holds two distinct points.
func WeeklyDelta(series []Point, now time.Time) (delta int, ok bool) {
	cutoff := now.AddDate(0, 0, -7)

	first := -1
	for i, p := range series {
		if !p.Day.Before(cutoff) {
			first = i
			break
		}
	}
	if first < 0 || len(series)-first < 2 {
		return 0, false
	}
	return series[len(series)-1].Rating - series[first].Rating, true
}
