package progress

import (
	"sort"
	"time"
)

// Point is one day of a chart series.
type Point struct {
	Day    time.Time
	Rating int
}

// TrendSeries reconstructs a parent's historical average from its children's
// raw histories. For every calendar day on which any child was rated, each
// child contributes its latest entry known by the end of that day; the point
// is the integer mean of the contributing children. Days before the first
// rating of any child produce no point. The series is rebuilt from leaf
// history on every call; nothing synthetic is ever stored.
func TrendSeries(children []History) []Point {
	daySet := make(map[time.Time]struct{})
	for _, child := range children {
		for _, r := range child.Ascending() {
			daySet[startOfDay(r.Date)] = struct{}{}
		}
	}
	if len(daySet) == 0 {
		return nil
	}

	days := make([]time.Time, 0, len(daySet))
	for d := range daySet {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	points := make([]Point, 0, len(days))
	for _, day := range days {
		endOfDay := day.AddDate(0, 0, 1)

		total := 0
		count := 0
		for _, child := range children {
			if r, ok := latestBy(child, endOfDay); ok {
				total += r
				count++
			}
		}
		if count == 0 {
			continue
		}
		points = append(points, Point{Day: day, Rating: total / count})
	}
	return points
}

// DailySeries collapses a leaf's history to one point per calendar day,
// keeping the latest entry for each day.
func DailySeries(h History) []Point {
	points := make([]Point, 0, h.Len())
	// entries arrive ordered by (date, updatedAt), so the last entry seen for
	// a day is the one that wins.
	for _, r := range h.Ascending() {
		day := startOfDay(r.Date)
		if n := len(points); n > 0 && points[n-1].Day.Equal(day) {
			points[n-1].Rating = r.Score
			continue
		}
		points = append(points, Point{Day: day, Rating: r.Score})
	}
	return points
}

// latestBy returns the score of the most recent entry dated at or before the
// cutoff.
func latestBy(h History, cutoff time.Time) (int, bool) {
	entries := h.Ascending()
	for i := len(entries) - 1; i >= 0; i-- {
		if !entries[i].Date.After(cutoff) {
			return entries[i].Score, true
		}
	}
	return 0, false
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
