package progress

import (
	"testing"
	"time"

	"skilltrack/internal/domain/skill"
)

func TestLeafDelta(t *testing.T) {
	if _, ok := LeafDelta(NewHistory(nil)); ok {
		t.Fatalf("no ratings should mean no delta")
	}
	if _, ok := LeafDelta(leafHistory(50)); ok {
		t.Fatalf("a single rating should mean no delta, not zero")
	}

	h := NewHistory([]skill.Rating{
		entry(50, testDay, testDay),
		entry(70, testDay.AddDate(0, 0, 2), testDay),
	})
	delta, ok := LeafDelta(h)
	if !ok || delta != 20 {
		t.Fatalf("expected +20, got %d ok=%v", delta, ok)
	}
}

func TestLeafDelta_SameDayTie(t *testing.T) {
	h := NewHistory([]skill.Rating{
		entry(40, testDay, testDay.Add(1*time.Hour)),
		entry(55, testDay, testDay.Add(2*time.Hour)),
	})
	delta, ok := LeafDelta(h)
	if !ok || delta != 15 {
		t.Fatalf("expected +15 via UpdatedAt ordering, got %d ok=%v", delta, ok)
	}
}

func TestParentDelta_AveragesChildPairs(t *testing.T) {
	children := []History{
		leafHistory(80, 90), // previous 80, newest 90
		leafHistory(60, 70), // previous 60, newest 70
	}
	delta, ok := ParentDelta(children)
	if !ok || delta != 10 {
		t.Fatalf("expected (160/2)-(140/2)=10, got %d ok=%v", delta, ok)
	}
}

func TestParentDelta_SingleEntryChildCountsBothSides(t *testing.T) {
	children := []History{
		leafHistory(80, 90),
		leafHistory(60), // one entry: zero net change but in both sums
	}
	delta, ok := ParentDelta(children)
	if !ok || delta != 5 {
		t.Fatalf("expected (150/2)-(140/2)=5, got %d ok=%v", delta, ok)
	}
}

func TestParentDelta_UnratedChildStillInDenominator(t *testing.T) {
	children := []History{
		leafHistory(80, 90),
		NewHistory(nil), // no entries: out of the sums, still a child
	}
	delta, ok := ParentDelta(children)
	if !ok || delta != 5 {
		t.Fatalf("expected (90/2)-(80/2)=5, got %d ok=%v", delta, ok)
	}
}

func TestParentDelta_NoHistory(t *testing.T) {
	if _, ok := ParentDelta(nil); ok {
		t.Fatalf("childless parent should have no delta")
	}
	children := []History{leafHistory(50), NewHistory(nil)}
	if _, ok := ParentDelta(children); ok {
		t.Fatalf("no child with two entries should mean no delta")
	}
}

func TestWeeklyDelta(t *testing.T) {
	now := testDay

	series := []Point{
		{Day: now.AddDate(0, 0, -20), Rating: 10},
		{Day: now.AddDate(0, 0, -6), Rating: 40},
		{Day: now.AddDate(0, 0, -2), Rating: 65},
	}
	delta, ok := WeeklyDelta(series, now)
	if !ok || delta != 25 {
		t.Fatalf("expected +25 within the window, got %d ok=%v", delta, ok)
	}
}

func TestWeeklyDelta_RequiresTwoPointsInWindow(t *testing.T) {
	now := testDay

	if _, ok := WeeklyDelta(nil, now); ok {
		t.Fatalf("empty series should have no weekly delta")
	}

	single := []Point{{Day: now.AddDate(0, 0, -1), Rating: 70}}
	if _, ok := WeeklyDelta(single, now); ok {
		t.Fatalf("one point in the window should have no weekly delta")
	}

	stale := []Point{
		{Day: now.AddDate(0, 0, -30), Rating: 10},
		{Day: now.AddDate(0, 0, -20), Rating: 20},
	}
	if _, ok := WeeklyDelta(stale, now); ok {
		t.Fatalf("points older than the window should have no weekly delta")
	}
}
