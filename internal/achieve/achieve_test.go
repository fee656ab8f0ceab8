package achieve

import (
	"reflect"
	"testing"
	"time"
)

func intp(v int) *int { return &v }

func unlockedIDs(fresh []Achievement) []string {
	ids := make([]string, len(fresh))
	for i, a := range fresh {
		ids[i] = a.ID
	}
	return ids
}

func TestApplyFirstTest(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	st, fresh := Apply(State{}, Event{
		TestsCompleted: intp(1),
		MatchedBreed:   "russian-blue",
		Score:          intp(72),
	}, now)

	if st.TestsCompleted != 1 {
		t.Errorf("TestsCompleted = %d, want 1", st.TestsCompleted)
	}
	if st.HighestScore != 72 {
		t.Errorf("HighestScore = %d, want 72", st.HighestScore)
	}
	if !reflect.DeepEqual(st.BreedsMatched, []string{"russian-blue"}) {
		t.Errorf("BreedsMatched = %v", st.BreedsMatched)
	}
	if !st.UpdatedAt.Equal(now) {
		t.Errorf("UpdatedAt = %v, want %v", st.UpdatedAt, now)
	}
	if got := unlockedIDs(fresh); !reflect.DeepEqual(got, []string{"first-test"}) {
		t.Errorf("fresh = %v, want [first-test]", got)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	e := Event{TestsCompleted: intp(1), Score: intp(90)}

	st, fresh := Apply(State{}, e, time.Now())
	if len(fresh) == 0 {
		t.Fatal("first apply unlocked nothing")
	}

	again, fresh2 := Apply(st, e, st.UpdatedAt)
	if len(fresh2) != 0 {
		t.Errorf("re-applying the same event unlocked %v", unlockedIDs(fresh2))
	}
	if !reflect.DeepEqual(again, st) {
		t.Errorf("re-apply changed state: %+v != %+v", again, st)
	}
}

func TestApplyCountersAreTotalsNotIncrements(t *testing.T) {
	st, _ := Apply(State{TestsCompleted: 5}, Event{TestsCompleted: intp(3)}, time.Now())
	if st.TestsCompleted != 5 {
		t.Errorf("TestsCompleted = %d, stale total must not regress the counter", st.TestsCompleted)
	}

	st, _ = Apply(st, Event{TestsCompleted: intp(6)}, time.Now())
	if st.TestsCompleted != 6 {
		t.Errorf("TestsCompleted = %d, want 6", st.TestsCompleted)
	}
}

func TestApplyHighestScoreIsMonotonic(t *testing.T) {
	st, _ := Apply(State{HighestScore: 88}, Event{Score: intp(60)}, time.Now())
	if st.HighestScore != 88 {
		t.Errorf("HighestScore = %d, want 88", st.HighestScore)
	}
	st, _ = Apply(st, Event{Score: intp(96)}, time.Now())
	if st.HighestScore != 96 {
		t.Errorf("HighestScore = %d, want 96", st.HighestScore)
	}
}

func TestApplySetsStaySortedAndUnique(t *testing.T) {
	var st State
	for _, breed := range []string{"persian", "bengal", "persian", "abyssinian"} {
		st, _ = Apply(st, Event{MatchedBreed: breed}, time.Now())
	}
	want := []string{"abyssinian", "bengal", "persian"}
	if !reflect.DeepEqual(st.BreedsMatched, want) {
		t.Errorf("BreedsMatched = %v, want %v", st.BreedsMatched, want)
	}
}

func TestApplyThresholds(t *testing.T) {
	tests := []struct {
		name   string
		seed   State
		event  Event
		wantID string
	}{
		{"five tests", State{TestsCompleted: 4, Unlocked: []string{"first-test"}},
			Event{TestsCompleted: intp(5)}, "test-explorer"},
		{"ten tests", State{TestsCompleted: 9, Unlocked: []string{"first-test", "test-explorer"}},
			Event{TestsCompleted: intp(10)}, "test-master"},
		{"great match", State{}, Event{Score: intp(85)}, "great-match"},
		{"perfect match", State{HighestScore: 90, Unlocked: []string{"great-match"}},
			Event{Score: intp(95)}, "perfect-match"},
		{"three breeds", State{BreedsMatched: []string{"bengal", "persian"}},
			Event{MatchedBreed: "somali"}, "breed-collector"},
		{"first share", State{}, Event{SharedPlatform: "kakao"}, "first-share"},
		{"three platforms", State{PlatformsShared: []string{"kakao", "twitter"}, Unlocked: []string{"first-share"}},
			Event{SharedPlatform: "instagram"}, "influencer"},
		{"ten breed views", State{BreedsViewed: 9}, Event{BreedsViewed: intp(10)}, "breed-browser"},
		{"three guides", State{GuidesViewed: 2}, Event{GuidesViewed: intp(3)}, "guide-reader"},
		{"first compare", State{}, Event{FriendsCompared: intp(1)}, "friendly-rival"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, fresh := Apply(tt.seed, tt.event, time.Now())
			got := unlockedIDs(fresh)
			if !reflect.DeepEqual(got, []string{tt.wantID}) {
				t.Errorf("unlocked %v, want [%s]", got, tt.wantID)
			}
		})
	}
}

func TestApplyNeverRemovesUnlocked(t *testing.T) {
	st := State{
		TestsCompleted: 10,
		HighestScore:   96,
		Unlocked:       []string{"first-test", "test-explorer", "test-master", "great-match", "perfect-match"},
	}
	after, fresh := Apply(st, Event{BreedsViewed: intp(1)}, time.Now())
	if len(fresh) != 0 {
		t.Errorf("unexpected unlocks %v", unlockedIDs(fresh))
	}
	if !reflect.DeepEqual(after.Unlocked, st.Unlocked) {
		t.Errorf("Unlocked changed: %v -> %v", st.Unlocked, after.Unlocked)
	}
}

func TestApplyEmptyEventOnlyTouchesTimestamp(t *testing.T) {
	now := time.Now()
	st, fresh := Apply(State{TestsCompleted: 2, Unlocked: []string{"first-test"}}, Event{}, now)
	if len(fresh) != 0 {
		t.Errorf("empty event unlocked %v", unlockedIDs(fresh))
	}
	if st.TestsCompleted != 2 || !st.UpdatedAt.Equal(now) {
		t.Errorf("empty event mutated counters: %+v", st)
	}
}

func TestDefinitionsCoverAllRules(t *testing.T) {
	defs := Definitions()
	if len(defs) != 11 {
		t.Fatalf("got %d definitions, want 11", len(defs))
	}
	seen := map[string]bool{}
	for _, d := range defs {
		if d.ID == "" || d.Title == "" || d.Description == "" || d.Icon == "" {
			t.Errorf("incomplete definition: %+v", d)
		}
		if seen[d.ID] {
			t.Errorf("duplicate achievement id %s", d.ID)
		}
		seen[d.ID] = true
	}
}
