package catalog

import "github.com/nyangbti/catquiz/internal/catquiz"

// questions is the ordered question bank. Numeric deltas express the
// preferred attribute level (1–5) that the chosen option implies;
// categorical deltas cast one vote for a size/coat/cost value.
var questions = []catquiz.Question{
	{
		ID: "q-home", Category: catquiz.CategoryLifestyle, SubCategory: "space",
		Text: "지금 살고 있는 집은 어떤 곳인가요?",
		Options: []catquiz.Option{
			{ID: "a", Label: "원룸이나 작은 오피스텔이에요", Delta: catquiz.ScoreDelta{
				Lifestyle: map[catquiz.LifestyleDim]int{catquiz.DimSpace: 1},
				Size:      catquiz.SizeSmall,
			}},
			{ID: "b", Label: "방 두세 개짜리 아파트예요", Delta: catquiz.ScoreDelta{
				Lifestyle: map[catquiz.LifestyleDim]int{catquiz.DimSpace: 3},
				Size:      catquiz.SizeMedium,
			}},
			{ID: "c", Label: "마당이나 넓은 거실이 있는 집이에요", Delta: catquiz.ScoreDelta{
				Lifestyle: map[catquiz.LifestyleDim]int{catquiz.DimSpace: 5},
				Size:      catquiz.SizeLarge,
			}},
		},
	},
	{
		ID: "q-away", Category: catquiz.CategoryLifestyle, SubCategory: "aloneTime",
		Text: "평일에 집을 비우는 시간은 얼마나 되나요?",
		Options: []catquiz.Option{
			{ID: "a", Label: "재택이라 거의 항상 같이 있어요", Delta: catquiz.ScoreDelta{
				Lifestyle:   map[catquiz.LifestyleDim]int{catquiz.DimAloneTime: 1},
				Personality: map[catquiz.PersonalityDim]int{catquiz.DimAffection: 5},
			}},
			{ID: "b", Label: "반나절 정도 비워요", Delta: catquiz.ScoreDelta{
				Lifestyle: map[catquiz.LifestyleDim]int{catquiz.DimAloneTime: 3},
			}},
			{ID: "c", Label: "야근이 잦아 하루 대부분 비워요", Delta: catquiz.ScoreDelta{
				Lifestyle:   map[catquiz.LifestyleDim]int{catquiz.DimAloneTime: 5},
				Personality: map[catquiz.PersonalityDim]int{catquiz.DimQuiet: 4},
			}},
		},
	},
	{
		ID: "q-play", Category: catquiz.CategoryLifestyle, SubCategory: "activityTime",
		Text: "고양이와 놀아줄 수 있는 시간은 하루에 어느 정도인가요?",
		Options: []catquiz.Option{
			{ID: "a", Label: "10분 남짓, 짧게요", Delta: catquiz.ScoreDelta{
				Lifestyle:   map[catquiz.LifestyleDim]int{catquiz.DimActivityTime: 1},
				Personality: map[catquiz.PersonalityDim]int{catquiz.DimActivity: 2},
			}},
			{ID: "b", Label: "30분 정도는 꾸준히요", Delta: catquiz.ScoreDelta{
				Lifestyle: map[catquiz.LifestyleDim]int{catquiz.DimActivityTime: 3},
			}},
			{ID: "c", Label: "한 시간 이상 신나게요", Delta: catquiz.ScoreDelta{
				Lifestyle:   map[catquiz.LifestyleDim]int{catquiz.DimActivityTime: 5},
				Personality: map[catquiz.PersonalityDim]int{catquiz.DimActivity: 5},
			}},
		},
	},
	{
		ID: "q-household", Category: catquiz.CategoryLifestyle, SubCategory: "space",
		Text: "함께 사는 가족 구성은 어떻게 되나요?",
		Options: []catquiz.Option{
			{ID: "a", Label: "혼자 살아요", Delta: catquiz.ScoreDelta{
				Lifestyle:   map[catquiz.LifestyleDim]int{catquiz.DimSpace: 2},
				Personality: map[catquiz.PersonalityDim]int{catquiz.DimLoyalty: 5},
			}},
			{ID: "b", Label: "둘이서 살아요", Delta: catquiz.ScoreDelta{
				Lifestyle: map[catquiz.LifestyleDim]int{catquiz.DimSpace: 3},
			}},
			{ID: "c", Label: "아이가 있는 가족이에요", Delta: catquiz.ScoreDelta{
				Lifestyle:   map[catquiz.LifestyleDim]int{catquiz.DimSpace: 4},
				Personality: map[catquiz.PersonalityDim]int{catquiz.DimSocial: 5},
			}},
		},
	},
	{
		ID: "q-energy", Category: catquiz.CategoryPersonality, SubCategory: "activity",
		Text: "어떤 에너지의 고양이가 좋은가요?",
		Options: []catquiz.Option{
			{ID: "a", Label: "창밖을 보며 조용히 쉬는 고양이", Delta: catquiz.ScoreDelta{
				Personality: map[catquiz.PersonalityDim]int{catquiz.DimActivity: 1, catquiz.DimQuiet: 5},
			}},
			{ID: "b", Label: "적당히 놀고 적당히 쉬는 고양이", Delta: catquiz.ScoreDelta{
				Personality: map[catquiz.PersonalityDim]int{catquiz.DimActivity: 3, catquiz.DimQuiet: 3},
			}},
			{ID: "c", Label: "온 집안을 질주하는 에너자이저", Delta: catquiz.ScoreDelta{
				Personality: map[catquiz.PersonalityDim]int{catquiz.DimActivity: 5, catquiz.DimQuiet: 1},
			}},
		},
	},
	{
		ID: "q-affection", Category: catquiz.CategoryPersonality, SubCategory: "affection",
		Text: "고양이와의 거리감, 어느 쪽이 이상적인가요?",
		Options: []catquiz.Option{
			{ID: "a", Label: "서로 독립적으로, 쿨한 사이", Delta: catquiz.ScoreDelta{
				Personality: map[catquiz.PersonalityDim]int{catquiz.DimAffection: 2, catquiz.DimLoyalty: 2},
			}},
			{ID: "b", Label: "부르면 오는 정도의 적당한 사이", Delta: catquiz.ScoreDelta{
				Personality: map[catquiz.PersonalityDim]int{catquiz.DimAffection: 3, catquiz.DimLoyalty: 4},
			}},
			{ID: "c", Label: "무릎냥이, 껌딱지 같은 사이", Delta: catquiz.ScoreDelta{
				Personality: map[catquiz.PersonalityDim]int{catquiz.DimAffection: 5, catquiz.DimLoyalty: 5},
			}},
		},
	},
	{
		ID: "q-guests", Category: catquiz.CategoryPersonality, SubCategory: "social",
		Text: "집에 손님이 자주 오는 편인가요?",
		Options: []catquiz.Option{
			{ID: "a", Label: "거의 안 와요, 조용한 집이에요", Delta: catquiz.ScoreDelta{
				Personality: map[catquiz.PersonalityDim]int{catquiz.DimSocial: 2, catquiz.DimQuiet: 4},
			}},
			{ID: "b", Label: "가끔 친구들이 놀러 와요", Delta: catquiz.ScoreDelta{
				Personality: map[catquiz.PersonalityDim]int{catquiz.DimSocial: 4},
			}},
			{ID: "c", Label: "모임이 잦아 늘 북적여요", Delta: catquiz.ScoreDelta{
				Personality: map[catquiz.PersonalityDim]int{catquiz.DimSocial: 5, catquiz.DimQuiet: 2},
			}},
		},
	},
	{
		ID: "q-grooming", Category: catquiz.CategoryMaintenance, SubCategory: "grooming",
		Text: "빗질과 털 관리에 쓸 수 있는 정성은 어느 정도인가요?",
		Options: []catquiz.Option{
			{ID: "a", Label: "최소한으로 간단히만", Delta: catquiz.ScoreDelta{
				Maintenance: map[catquiz.MaintenanceDim]int{catquiz.DimGrooming: 1},
				Coat:        catquiz.CoatShort,
			}},
			{ID: "b", Label: "일주일에 두세 번은 괜찮아요", Delta: catquiz.ScoreDelta{
				Maintenance: map[catquiz.MaintenanceDim]int{catquiz.DimGrooming: 3},
			}},
			{ID: "c", Label: "매일 빗질해도 행복해요", Delta: catquiz.ScoreDelta{
				Maintenance: map[catquiz.MaintenanceDim]int{catquiz.DimGrooming: 5},
				Coat:        catquiz.CoatLong,
			}},
		},
	},
	{
		ID: "q-experience", Category: catquiz.CategoryMaintenance, SubCategory: "training",
		Text: "고양이를 키워본 경험이 있나요?",
		Options: []catquiz.Option{
			{ID: "a", Label: "처음이에요", Delta: catquiz.ScoreDelta{
				Maintenance: map[catquiz.MaintenanceDim]int{catquiz.DimTraining: 2, catquiz.DimHealth: 5},
			}},
			{ID: "b", Label: "한 마리 키워봤어요", Delta: catquiz.ScoreDelta{
				Maintenance: map[catquiz.MaintenanceDim]int{catquiz.DimTraining: 3, catquiz.DimHealth: 4},
			}},
			{ID: "c", Label: "베테랑 집사예요", Delta: catquiz.ScoreDelta{
				Maintenance: map[catquiz.MaintenanceDim]int{catquiz.DimTraining: 5, catquiz.DimHealth: 3},
			}},
		},
	},
	{
		ID: "q-size", Category: catquiz.CategoryAppearance, SubCategory: "size",
		Text: "선호하는 고양이의 덩치는?",
		Options: []catquiz.Option{
			{ID: "a", Label: "아담하고 작은 고양이", Delta: catquiz.ScoreDelta{Size: catquiz.SizeSmall}},
			{ID: "b", Label: "표준 체형이면 좋아요", Delta: catquiz.ScoreDelta{Size: catquiz.SizeMedium}},
			{ID: "c", Label: "듬직한 대형묘가 좋아요", Delta: catquiz.ScoreDelta{Size: catquiz.SizeLarge}},
		},
	},
	{
		ID: "q-coat", Category: catquiz.CategoryAppearance, SubCategory: "coat",
		Text: "어떤 털의 고양이에게 끌리나요?",
		Options: []catquiz.Option{
			{ID: "a", Label: "짧고 매끈한 단모", Delta: catquiz.ScoreDelta{Coat: catquiz.CoatShort}},
			{ID: "b", Label: "풍성하고 우아한 장모", Delta: catquiz.ScoreDelta{Coat: catquiz.CoatLong}},
			{ID: "c", Label: "곱슬곱슬 개성파", Delta: catquiz.ScoreDelta{Coat: catquiz.CoatCurly}},
			{ID: "d", Label: "털 없는 것도 매력이죠", Delta: catquiz.ScoreDelta{Coat: catquiz.CoatHairless}},
		},
	},
	{
		ID: "q-budget", Category: catquiz.CategoryCost, SubCategory: "budget",
		Text: "입양 비용과 매달 드는 비용, 어느 정도 생각하나요?",
		Options: []catquiz.Option{
			{ID: "a", Label: "부담을 최소로 줄이고 싶어요", Delta: catquiz.ScoreDelta{
				CostInitial: catquiz.CostLow, CostMonthly: catquiz.CostLow,
			}},
			{ID: "b", Label: "평균적인 수준은 괜찮아요", Delta: catquiz.ScoreDelta{
				CostInitial: catquiz.CostMedium, CostMonthly: catquiz.CostMedium,
			}},
			{ID: "c", Label: "아이를 위해서라면 아끼지 않아요", Delta: catquiz.ScoreDelta{
				CostInitial: catquiz.CostHigh, CostMonthly: catquiz.CostHigh,
			}},
		},
	},
}
