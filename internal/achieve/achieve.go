// Package achieve implements the achievement progress system: a pure
// state-merge function, a fixed rule table, and a badger-backed store
// for per-profile persistence.
package achieve

import (
	"sort"
	"time"
)

// State holds a profile's cumulative progress counters. Counters only
// ever increase, HighestScore is a monotonic max, and the unlocked set
// only grows. The zero value is the documented default for new or
// unreadable profiles.
type State struct {
	TestsCompleted  int       `json:"testsCompleted"`
	BreedsMatched   []string  `json:"breedsMatched"`
	PlatformsShared []string  `json:"platformsShared"`
	BreedsViewed    int       `json:"breedsViewed"`
	GuidesViewed    int       `json:"guidesViewed"`
	FriendsCompared int       `json:"friendsCompared"`
	HighestScore    int       `json:"highestScore"`
	Unlocked        []string  `json:"unlocked"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Event is one tracked user action. Counter fields carry the new
// total (not an increment); set fields union a single value in; Score
// is a candidate for the HighestScore maximum. Nil pointer fields
// leave the state untouched.
type Event struct {
	TestsCompleted  *int   `json:"testsCompleted,omitempty"`
	MatchedBreed    string `json:"matchedBreed,omitempty"`
	SharedPlatform  string `json:"sharedPlatform,omitempty"`
	BreedsViewed    *int   `json:"breedsViewed,omitempty"`
	GuidesViewed    *int   `json:"guidesViewed,omitempty"`
	FriendsCompared *int   `json:"friendsCompared,omitempty"`
	Score           *int   `json:"score,omitempty"`
}

// Achievement is one unlockable milestone.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// rule pairs an achievement with its unlock predicate. Predicates
// must be monotonic over the counters so unlocking never reverses.
type rule struct {
	Achievement
	unlocked func(State) bool
}

var rules = []rule{
	{Achievement{"first-test", "첫 만남", "첫 번째 테스트를 완료했어요", "🐣"},
		func(s State) bool { return s.TestsCompleted >= 1 }},
	{Achievement{"test-explorer", "탐구 집사", "테스트를 5번 완료했어요", "🔍"},
		func(s State) bool { return s.TestsCompleted >= 5 }},
	{Achievement{"test-master", "테스트 마스터", "테스트를 10번 완료했어요", "🏆"},
		func(s State) bool { return s.TestsCompleted >= 10 }},
	{Achievement{"great-match", "좋은 궁합", "85% 이상의 궁합을 찾았어요", "💕"},
		func(s State) bool { return s.HighestScore >= 85 }},
	{Achievement{"perfect-match", "운명의 상대", "95% 이상의 궁합을 찾았어요", "💘"},
		func(s State) bool { return s.HighestScore >= 95 }},
	{Achievement{"breed-collector", "묘종 수집가", "서로 다른 3개 묘종과 매칭됐어요", "🎭"},
		func(s State) bool { return len(s.BreedsMatched) >= 3 }},
	{Achievement{"first-share", "소문내기", "결과를 처음으로 공유했어요", "📢"},
		func(s State) bool { return len(s.PlatformsShared) >= 1 }},
	{Achievement{"influencer", "인플루언서", "3개 플랫폼에 결과를 공유했어요", "🌟"},
		func(s State) bool { return len(s.PlatformsShared) >= 3 }},
	{Achievement{"breed-browser", "도감 탐독", "묘종 도감을 10번 열어봤어요", "📖"},
		func(s State) bool { return s.BreedsViewed >= 10 }},
	{Achievement{"guide-reader", "공부하는 집사", "가이드 문서를 3개 읽었어요", "📚"},
		func(s State) bool { return s.GuidesViewed >= 3 }},
	{Achievement{"friendly-rival", "우정 대결", "친구와 결과를 비교해봤어요", "🤝"},
		func(s State) bool { return s.FriendsCompared >= 1 }},
}

// Definitions returns every achievement in rule order.
func Definitions() []Achievement {
	out := make([]Achievement, len(rules))
	for i, r := range rules {
		out[i] = r.Achievement
	}
	return out
}

// Apply merges an event into the state and evaluates the rule table.
// It returns the updated state and only the achievements that became
// unlocked by this event. Re-applying the same event yields no new
// achievements, and nothing already unlocked is ever removed.
func Apply(s State, e Event, now time.Time) (State, []Achievement) {
	if e.TestsCompleted != nil && *e.TestsCompleted > s.TestsCompleted {
		s.TestsCompleted = *e.TestsCompleted
	}
	if e.BreedsViewed != nil && *e.BreedsViewed > s.BreedsViewed {
		s.BreedsViewed = *e.BreedsViewed
	}
	if e.GuidesViewed != nil && *e.GuidesViewed > s.GuidesViewed {
		s.GuidesViewed = *e.GuidesViewed
	}
	if e.FriendsCompared != nil && *e.FriendsCompared > s.FriendsCompared {
		s.FriendsCompared = *e.FriendsCompared
	}
	if e.Score != nil && *e.Score > s.HighestScore {
		s.HighestScore = *e.Score
	}
	if e.MatchedBreed != "" {
		s.BreedsMatched = union(s.BreedsMatched, e.MatchedBreed)
	}
	if e.SharedPlatform != "" {
		s.PlatformsShared = union(s.PlatformsShared, e.SharedPlatform)
	}
	s.UpdatedAt = now

	already := make(map[string]bool, len(s.Unlocked))
	for _, id := range s.Unlocked {
		already[id] = true
	}

	var fresh []Achievement
	for _, r := range rules {
		if already[r.ID] || !r.unlocked(s) {
			continue
		}
		s.Unlocked = append(s.Unlocked, r.ID)
		fresh = append(fresh, r.Achievement)
	}
	return s, fresh
}

// union inserts v into the sorted set, returning the set unchanged if
// v is already present.
func union(set []string, v string) []string {
	i := sort.SearchStrings(set, v)
	if i < len(set) && set[i] == v {
		return set
	}
	out := make([]string, 0, len(set)+1)
	out = append(out, set[:i]...)
	out = append(out, v)
	out = append(out, set[i:]...)
	return out
}
