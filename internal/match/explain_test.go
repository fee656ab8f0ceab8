package match

import (
	"strings"
	"testing"

	"github.com/nyangbti/catquiz/internal/catquiz"
)

func testBreed() catquiz.Breed {
	return catquiz.Breed{
		ID:    "russian-blue",
		Name:  "러시안 블루",
		Emoji: "🐈",
	}
}

func checkExplanation(t *testing.T, ex catquiz.Explanation) {
	t.Helper()

	if len(ex.Pros) < 2 {
		t.Errorf("got %d pros, want at least 2", len(ex.Pros))
	}
	if len(ex.Cons) < 1 {
		t.Errorf("got %d cons, want at least 1", len(ex.Cons))
	}
	if len(ex.Badges) == 0 || len(ex.Badges) > 4 {
		t.Errorf("got %d badges, want 1–4", len(ex.Badges))
	}
	if ex.Summary == "" {
		t.Error("empty summary")
	}
}

func TestBuildExplanationStrongResult(t *testing.T) {
	ex := BuildExplanation(catquiz.MatchResult{
		Breed: testBreed(),
		Score: 91,
		Breakdown: map[catquiz.Category]int{
			catquiz.CategoryLifestyle:   92,
			catquiz.CategoryPersonality: 88,
			catquiz.CategoryMaintenance: 90,
			catquiz.CategoryAppearance:  95,
			catquiz.CategoryCost:        85,
		},
	})
	checkExplanation(t, ex)

	// Appearance leads the breakdown, so the summary names it.
	if !strings.Contains(ex.Summary, "외모 취향") {
		t.Errorf("summary %q does not name the top category", ex.Summary)
	}
	if !strings.Contains(ex.Summary, "91%") {
		t.Errorf("summary %q does not state the score", ex.Summary)
	}
	if len(ex.Pros) != 3 {
		t.Errorf("got %d pros, want 3 strong categories capped at 3", len(ex.Pros))
	}
	// Every category clears the weak threshold, so no category cons.
	for _, c := range ex.Cons {
		for _, tmpl := range weakTemplates {
			if c == tmpl {
				t.Errorf("unexpected category caution %q in a uniformly strong result", c)
			}
		}
	}

	wantBadges := map[string]bool{"TOP 3": true, "찰떡궁합": true, "취향 저격 비주얼": true}
	for _, b := range ex.Badges {
		if !wantBadges[b] {
			t.Errorf("unexpected badge %q", b)
		}
	}
	if ex.Badges[0] != "TOP 3" {
		t.Errorf("first badge = %q, want TOP 3", ex.Badges[0])
	}
}

func TestBuildExplanationWeakResult(t *testing.T) {
	ex := BuildExplanation(catquiz.MatchResult{
		Breed: testBreed(),
		Score: 48,
		Breakdown: map[catquiz.Category]int{
			catquiz.CategoryLifestyle:   50,
			catquiz.CategoryPersonality: 45,
			catquiz.CategoryMaintenance: 52,
			catquiz.CategoryAppearance:  40,
			catquiz.CategoryCost:        55,
		},
	})
	checkExplanation(t, ex)

	// No category clears the strong threshold, so pros come from the
	// neutral fillers.
	if ex.Pros[0] != fillerPros[0] || ex.Pros[1] != fillerPros[1] {
		t.Errorf("pros = %v, want the first two fillers", ex.Pros)
	}
	if len(ex.Cons) != 2 {
		t.Errorf("got %d cons, want 2 (cap on weak categories)", len(ex.Cons))
	}
	// The weakest category, appearance, must be cited first.
	if ex.Cons[0] != weakTemplates[catquiz.CategoryAppearance] {
		t.Errorf("first con = %q, want the appearance caution", ex.Cons[0])
	}
}

func TestBuildExplanationTemplateTiers(t *testing.T) {
	base := map[catquiz.Category]int{
		catquiz.CategoryLifestyle:   60,
		catquiz.CategoryPersonality: 60,
		catquiz.CategoryMaintenance: 60,
		catquiz.CategoryAppearance:  60,
		catquiz.CategoryCost:        60,
	}

	topTier := map[catquiz.Category]int{}
	for c, v := range base {
		topTier[c] = v
	}
	topTier[catquiz.CategoryPersonality] = 90
	ex := BuildExplanation(catquiz.MatchResult{Breed: testBreed(), Score: 66, Breakdown: topTier})
	if ex.Pros[0] != strongTemplates[catquiz.CategoryPersonality][0] {
		t.Errorf("score 90 used %q, want the top-tier template", ex.Pros[0])
	}

	midTier := map[catquiz.Category]int{}
	for c, v := range base {
		midTier[c] = v
	}
	midTier[catquiz.CategoryPersonality] = 78
	ex = BuildExplanation(catquiz.MatchResult{Breed: testBreed(), Score: 64, Breakdown: midTier})
	if ex.Pros[0] != strongTemplates[catquiz.CategoryPersonality][1] {
		t.Errorf("score 78 used %q, want the mid-tier template", ex.Pros[0])
	}
}

func TestBuildExplanationSharedFallback(t *testing.T) {
	ex := BuildExplanation(catquiz.MatchResult{
		Breed:     testBreed(),
		Score:     87,
		Breakdown: map[catquiz.Category]int{},
	})
	checkExplanation(t, ex)

	if !strings.Contains(ex.Summary, "공유 링크") {
		t.Errorf("fallback summary %q does not mention the share link", ex.Summary)
	}
	if !strings.Contains(ex.Summary, "87%") {
		t.Errorf("fallback summary %q does not state the score", ex.Summary)
	}
	if len(ex.Badges) != 1 || ex.Badges[0] != "TOP 추천" {
		t.Errorf("fallback badges = %v, want exactly [TOP 추천]", ex.Badges)
	}
}

func TestBuildExplanationNilBreakdown(t *testing.T) {
	ex := BuildExplanation(catquiz.MatchResult{Breed: testBreed(), Score: 70})
	checkExplanation(t, ex)
	if !strings.Contains(ex.Summary, "공유 링크") {
		t.Errorf("nil breakdown should use the fallback, got %q", ex.Summary)
	}
}

func TestBuildExplanationBadgeCap(t *testing.T) {
	// Mixed result that triggers every badge source at once: base,
	// top-tier score, strong top category, and a caution.
	ex := BuildExplanation(catquiz.MatchResult{
		Breed: testBreed(),
		Score: 86,
		Breakdown: map[catquiz.Category]int{
			catquiz.CategoryLifestyle:   95,
			catquiz.CategoryPersonality: 90,
			catquiz.CategoryMaintenance: 88,
			catquiz.CategoryAppearance:  50,
			catquiz.CategoryCost:        80,
		},
	})
	checkExplanation(t, ex)
	if len(ex.Badges) != 4 {
		t.Errorf("got %d badges, want the full set of 4", len(ex.Badges))
	}

	seen := map[string]bool{}
	for _, b := range ex.Badges {
		if seen[b] {
			t.Errorf("duplicate badge %q", b)
		}
		seen[b] = true
	}
}
