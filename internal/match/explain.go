package match

import (
	"fmt"
	"sort"

	"github.com/nyangbti/catquiz/internal/catquiz"
)

const (
	strongThreshold  = 75
	topTierThreshold = 85
	weakThreshold    = 55

	maxStrong = 3
	maxWeak   = 2
	minPros   = 2
	minCons   = 1
	maxBadges = 4
)

// categoryLabels are the Korean display names of the scoring
// categories.
var categoryLabels = map[catquiz.Category]string{
	catquiz.CategoryLifestyle:   "라이프스타일",
	catquiz.CategoryPersonality: "성격 궁합",
	catquiz.CategoryMaintenance: "관리 난이도",
	catquiz.CategoryAppearance:  "외모 취향",
	catquiz.CategoryCost:        "비용",
}

// strongTemplates holds two pre-authored sentences per category: the
// first for scores of 85 and above, the second for 75–84.
var strongTemplates = map[catquiz.Category][2]string{
	catquiz.CategoryLifestyle: {
		"지금의 생활 패턴과 거의 완벽하게 맞아떨어지는 친구예요.",
		"생활 패턴이 잘 맞아서 무리 없이 함께 지낼 수 있어요.",
	},
	catquiz.CategoryPersonality: {
		"원하던 성격 그 자체예요. 서로 금방 마음이 통할 거예요.",
		"성격 궁합이 좋은 편이라 적응 기간이 짧을 거예요.",
	},
	catquiz.CategoryMaintenance: {
		"관리 부담이 기대치와 딱 맞아요. 케어 스트레스가 거의 없을 거예요.",
		"감당할 수 있는 수준의 관리 난이도라 부담이 적어요.",
	},
	catquiz.CategoryAppearance: {
		"딱 취향 저격인 외모예요. 매일 사진첩이 가득 찰 거예요.",
		"선호하는 외모 조건과 잘 맞는 친구예요.",
	},
	catquiz.CategoryCost: {
		"예산 계획과 거의 정확히 맞는 비용 수준이에요.",
		"생각해 둔 예산 범위에서 크게 벗어나지 않아요.",
	},
}

// weakTemplates holds one cautionary sentence per category.
var weakTemplates = map[catquiz.Category]string{
	catquiz.CategoryLifestyle:   "생활 패턴과는 다소 차이가 있어요. 환경 조정이 필요할 수 있어요.",
	catquiz.CategoryPersonality: "기대한 성격과는 결이 달라요. 서로 알아가는 시간이 필요해요.",
	catquiz.CategoryMaintenance: "예상보다 손이 많이 가는 관리가 필요할 수 있어요.",
	catquiz.CategoryAppearance:  "외모는 선호 조건과 조금 달라요. 직접 보면 생각이 바뀔지도요.",
	catquiz.CategoryCost:        "예산 계획보다 비용이 더 들 수 있으니 미리 확인해 보세요.",
}

var positiveBadges = map[catquiz.Category]string{
	catquiz.CategoryLifestyle:   "라이프스타일 찰떡",
	catquiz.CategoryPersonality: "성격 궁합 최고",
	catquiz.CategoryMaintenance: "관리 걱정 없음",
	catquiz.CategoryAppearance:  "취향 저격 비주얼",
	catquiz.CategoryCost:        "합리적인 선택",
}

var cautionBadges = map[catquiz.Category]string{
	catquiz.CategoryLifestyle:   "생활 패턴 조정 필요",
	catquiz.CategoryPersonality: "성격 적응 기간 필요",
	catquiz.CategoryMaintenance: "꾸준한 케어 필요",
	catquiz.CategoryAppearance:  "외모는 취향 밖",
	catquiz.CategoryCost:        "예산 확인 필요",
}

var fillerPros = []string{
	"전반적인 궁합 점수가 안정적인 조합이에요.",
	"큰 충돌 없이 무난하게 적응할 수 있는 친구예요.",
	"많은 집사들이 만족하며 키우는 검증된 묘종이에요.",
}

var fillerCons = []string{
	"모든 고양이는 개체차가 있으니 입양 전 직접 만나보는 걸 추천해요.",
	"함께 사는 환경에 따라 실제 궁합은 달라질 수 있어요.",
}

// BuildExplanation turns a match result into natural-language
// summary, pros, cons, and badges. It always returns at least two
// pros and one con, and never fails — a breakdown whose values sum to
// zero (a result reconstructed from a share link, for example) gets a
// fixed fallback explanation instead of fabricated category claims.
func BuildExplanation(result catquiz.MatchResult) catquiz.Explanation {
	var total int
	for _, c := range catquiz.Categories {
		total += result.Breakdown[c]
	}
	if total == 0 {
		return sharedFallback(result)
	}

	ranked := rankCategories(result.Breakdown)

	var strong, weak []catquiz.Category
	for _, c := range ranked {
		if result.Breakdown[c] >= strongThreshold && len(strong) < maxStrong {
			strong = append(strong, c)
		}
	}
	for i := len(ranked) - 1; i >= 0; i-- {
		c := ranked[i]
		if result.Breakdown[c] <= weakThreshold && len(weak) < maxWeak {
			weak = append(weak, c)
		}
	}

	pros := make([]string, 0, maxStrong)
	for _, c := range strong {
		t := strongTemplates[c]
		if result.Breakdown[c] >= topTierThreshold {
			pros = append(pros, t[0])
		} else {
			pros = append(pros, t[1])
		}
	}
	for i := 0; len(pros) < minPros && i < len(fillerPros); i++ {
		pros = append(pros, fillerPros[i])
	}

	cons := make([]string, 0, maxWeak)
	for _, c := range weak {
		cons = append(cons, weakTemplates[c])
	}
	for i := 0; len(cons) < minCons && i < len(fillerCons); i++ {
		cons = append(cons, fillerCons[i])
	}

	top := ranked[0]
	summary := fmt.Sprintf("%s %s와(과)의 궁합은 %d%%! 특히 %s 부분이 잘 맞아요.",
		result.Breed.Emoji, result.Breed.Name, result.Score, categoryLabels[top])

	badges := []string{"TOP 3"}
	if result.Score >= topTierThreshold {
		badges = append(badges, "찰떡궁합")
	}
	if result.Breakdown[top] >= 80 {
		badges = append(badges, positiveBadges[top])
	}
	if len(weak) > 0 {
		badges = append(badges, cautionBadges[weak[0]])
	}
	badges = dedupeBadges(badges)

	return catquiz.Explanation{
		Summary: summary,
		Pros:    pros,
		Cons:    cons,
		Badges:  badges,
	}
}

// sharedFallback is the fixed explanation for results without
// category detail, such as those reconstructed from a shared URL.
func sharedFallback(result catquiz.MatchResult) catquiz.Explanation {
	return catquiz.Explanation{
		Summary: fmt.Sprintf("%s %s와(과)의 궁합은 %d%%예요. 공유 링크로 확인한 결과라 카테고리별 상세 분석은 담겨 있지 않아요.",
			result.Breed.Emoji, result.Breed.Name, result.Score),
		Pros: []string{
			"직접 테스트하면 다섯 가지 카테고리의 상세 분석을 볼 수 있어요.",
			"많은 집사들이 만족하며 키우는 검증된 묘종이에요.",
		},
		Cons: []string{
			"실제 궁합은 나의 답변에 따라 달라질 수 있어요.",
		},
		Badges: []string{"TOP 추천"},
	}
}

// rankCategories sorts categories by score descending; equal scores
// keep the canonical category order.
func rankCategories(breakdown map[catquiz.Category]int) []catquiz.Category {
	ranked := make([]catquiz.Category, len(catquiz.Categories))
	copy(ranked, catquiz.Categories)
	sort.SliceStable(ranked, func(i, j int) bool {
		return breakdown[ranked[i]] > breakdown[ranked[j]]
	})
	return ranked
}

func dedupeBadges(badges []string) []string {
	seen := make(map[string]bool, len(badges))
	out := badges[:0]
	for _, b := range badges {
		if seen[b] {
			continue
		}
		seen[b] = true
		out = append(out, b)
	}
	if len(out) > maxBadges {
		out = out[:maxBadges]
	}
	return out
}
