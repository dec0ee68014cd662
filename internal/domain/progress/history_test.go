package progress

import (
	"testing"
	"time"

	"skilltrack/internal/domain/skill"

	"github.com/google/uuid"
)

var testDay = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func entry(score int, date time.Time, updated time.Time) skill.Rating {
	return skill.Rating{
		ID:        uuid.New(),
		SkillID:   uuid.New(),
		Score:     score,
		Date:      date,
		Notes:     "",
		UpdatedAt: updated,
	}
}

func TestHistory_LatestEmpty(t *testing.T) {
	h := NewHistory(nil)
	if _, ok := h.Latest(); ok {
		t.Fatalf("empty history should have no latest entry")
	}
	if h.Len() != 0 {
		t.Fatalf("expected empty history")
	}
}

func TestHistory_SortsAscending(t *testing.T) {
	h := NewHistory([]skill.Rating{
		entry(70, testDay.AddDate(0, 0, 2), testDay),
		entry(50, testDay, testDay),
		entry(60, testDay.AddDate(0, 0, 1), testDay),
	})

	asc := h.Ascending()
	if len(asc) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(asc))
	}
	if asc[0].Score != 50 || asc[1].Score != 60 || asc[2].Score != 70 {
		t.Fatalf("unexpected order: %d %d %d", asc[0].Score, asc[1].Score, asc[2].Score)
	}

	latest, ok := h.Latest()
	if !ok || latest.Score != 70 {
		t.Fatalf("expected latest 70, got %d ok=%v", latest.Score, ok)
	}
}

func TestHistory_SameDateTieBrokenByUpdatedAt(t *testing.T) {
	h := NewHistory([]skill.Rating{
		entry(55, testDay, testDay.Add(2*time.Hour)),
		entry(40, testDay, testDay.Add(1*time.Hour)),
	})

	latest, ok := h.Latest()
	if !ok || latest.Score != 55 {
		t.Fatalf("expected the greater UpdatedAt to win, got %d ok=%v", latest.Score, ok)
	}
}

func TestHistory_LastTwo(t *testing.T) {
	one := NewHistory([]skill.Rating{entry(50, testDay, testDay)})
	if _, _, ok := one.LastTwo(); ok {
		t.Fatalf("single entry should not yield a pair")
	}

	h := NewHistory([]skill.Rating{
		entry(50, testDay, testDay),
		entry(70, testDay.AddDate(0, 0, 2), testDay),
	})
	newest, previous, ok := h.LastTwo()
	if !ok || newest.Score != 70 || previous.Score != 50 {
		t.Fatalf("expected (70, 50), got (%d, %d) ok=%v", newest.Score, previous.Score, ok)
	}
}

func TestHistory_SinceIncludesCutoff(t *testing.T) {
	h := NewHistory([]skill.Rating{
		entry(10, testDay.AddDate(0, 0, -10), testDay),
		entry(20, testDay.AddDate(0, 0, -3), testDay),
		entry(30, testDay, testDay),
	})

	window := h.Since(testDay.AddDate(0, 0, -3))
	if len(window) != 2 {
		t.Fatalf("expected 2 entries in window, got %d", len(window))
	}
	if window[0].Score != 20 || window[1].Score != 30 {
		t.Fatalf("unexpected window: %d %d", window[0].Score, window[1].Score)
	}
}
