package catalog

import "github.com/nyangbti/catquiz/internal/catquiz"

// breeds is the authored catalog, ordered by Korea popularity rank.
// Personality/maintenance/lifestyle attributes are 1–5.
var breeds = []catquiz.Breed{
	{
		ID: "korean-shorthair", Name: "코리안 숏헤어", NameEn: "Korean Shorthair", Emoji: "🐈", Rank: 1,
		Personality: catquiz.Personality{Activity: 4, Affection: 3, Social: 3, Quiet: 3, Loyalty: 4},
		Maintenance: catquiz.Maintenance{Grooming: 1, Training: 2, Health: 5},
		Lifestyle:   catquiz.Lifestyle{ActivityTime: 3, AloneTime: 4, Space: 2},
		Cost:        catquiz.Cost{Initial: catquiz.CostLow, Monthly: catquiz.CostLow},
		Size:        catquiz.SizeMedium, Coat: catquiz.CoatShort,
		Environment: []string{"apartment", "first-time"},
		Traits:      []string{"영리함", "적응력", "독립적"},
		Description: "한국 토착 고양이로 적응력이 뛰어나고 건강해요. 처음 고양이를 키우는 집사에게 가장 무난한 선택이에요.",
		KoreaPopularity: 95,
	},
	{
		ID: "russian-blue", Name: "러시안 블루", NameEn: "Russian Blue", Emoji: "🐱", Rank: 2,
		Personality: catquiz.Personality{Activity: 3, Affection: 4, Social: 2, Quiet: 5, Loyalty: 5},
		Maintenance: catquiz.Maintenance{Grooming: 2, Training: 3, Health: 4},
		Lifestyle:   catquiz.Lifestyle{ActivityTime: 2, AloneTime: 4, Space: 2},
		Cost:        catquiz.Cost{Initial: catquiz.CostMedium, Monthly: catquiz.CostLow},
		Size:        catquiz.SizeMedium, Coat: catquiz.CoatShort,
		Environment: []string{"apartment", "quiet-home"},
		Traits:      []string{"조용함", "한사람바라기", "수줍음"},
		Description: "은빛 털의 조용한 귀족 고양이. 낯가림이 있지만 한번 마음을 열면 집사만 바라보는 충성파예요.",
		KoreaPopularity: 88,
	},
	{
		ID: "persian", Name: "페르시안", NameEn: "Persian", Emoji: "😺", Rank: 3,
		Personality: catquiz.Personality{Activity: 1, Affection: 3, Social: 2, Quiet: 5, Loyalty: 3},
		Maintenance: catquiz.Maintenance{Grooming: 5, Training: 2, Health: 2},
		Lifestyle:   catquiz.Lifestyle{ActivityTime: 1, AloneTime: 3, Space: 2},
		Cost:        catquiz.Cost{Initial: catquiz.CostHigh, Monthly: catquiz.CostHigh},
		Size:        catquiz.SizeMedium, Coat: catquiz.CoatLong,
		Environment: []string{"apartment", "quiet-home"},
		Traits:      []string{"우아함", "차분함", "실내파"},
		Description: "긴 털과 납작한 얼굴의 대표 장모종. 하루 종일 소파 위에서 우아하게 지내는 인테리어의 완성이에요.",
		KoreaPopularity: 80,
	},
	{
		ID: "siamese", Name: "샴", NameEn: "Siamese", Emoji: "🐈‍⬛", Rank: 4,
		Personality: catquiz.Personality{Activity: 5, Affection: 5, Social: 5, Quiet: 1, Loyalty: 5},
		Maintenance: catquiz.Maintenance{Grooming: 1, Training: 4, Health: 4},
		Lifestyle:   catquiz.Lifestyle{ActivityTime: 5, AloneTime: 1, Space: 3},
		Cost:        catquiz.Cost{Initial: catquiz.CostMedium, Monthly: catquiz.CostMedium},
		Size:        catquiz.SizeMedium, Coat: catquiz.CoatShort,
		Environment: []string{"family", "talkative"},
		Traits:      []string{"수다쟁이", "애교쟁이", "분리불안주의"},
		Description: "말이 많기로 유명한 수다쟁이 고양이. 집사를 졸졸 따라다니며 하루 일과를 전부 이야기해 줘요.",
		KoreaPopularity: 72,
	},
	{
		ID: "munchkin", Name: "먼치킨", NameEn: "Munchkin", Emoji: "🐾", Rank: 5,
		Personality: catquiz.Personality{Activity: 4, Affection: 5, Social: 4, Quiet: 2, Loyalty: 4},
		Maintenance: catquiz.Maintenance{Grooming: 2, Training: 3, Health: 3},
		Lifestyle:   catquiz.Lifestyle{ActivityTime: 3, AloneTime: 2, Space: 1},
		Cost:        catquiz.Cost{Initial: catquiz.CostHigh, Monthly: catquiz.CostMedium},
		Size:        catquiz.SizeSmall, Coat: catquiz.CoatShort,
		Environment: []string{"apartment", "family"},
		Traits:      []string{"짧은다리", "호기심", "장난꾸러기"},
		Description: "짧은 다리로 뒤뚱뒤뚱 뛰어다니는 모습이 매력 포인트. 작은 집에서도 충분히 행복한 활발한 친구예요.",
		KoreaPopularity: 78,
	},
	{
		ID: "scottish-fold", Name: "스코티시 폴드", NameEn: "Scottish Fold", Emoji: "🙀", Rank: 6,
		Personality: catquiz.Personality{Activity: 2, Affection: 4, Social: 4, Quiet: 4, Loyalty: 4},
		Maintenance: catquiz.Maintenance{Grooming: 3, Training: 2, Health: 1},
		Lifestyle:   catquiz.Lifestyle{ActivityTime: 2, AloneTime: 3, Space: 1},
		Cost:        catquiz.Cost{Initial: catquiz.CostHigh, Monthly: catquiz.CostHigh},
		Size:        catquiz.SizeMedium, Coat: catquiz.CoatShort,
		Environment: []string{"apartment", "quiet-home"},
		Traits:      []string{"접힌귀", "온순함", "건강관리필수"},
		Description: "접힌 귀가 트레이드마크인 순둥이. 관절 질환이 흔해 정기 검진과 케어 비용을 꼭 생각해야 해요.",
		KoreaPopularity: 70,
	},
	{
		ID: "british-shorthair", Name: "브리티시 숏헤어", NameEn: "British Shorthair", Emoji: "😸", Rank: 7,
		Personality: catquiz.Personality{Activity: 2, Affection: 3, Social: 3, Quiet: 5, Loyalty: 3},
		Maintenance: catquiz.Maintenance{Grooming: 2, Training: 2, Health: 4},
		Lifestyle:   catquiz.Lifestyle{ActivityTime: 2, AloneTime: 5, Space: 2},
		Cost:        catquiz.Cost{Initial: catquiz.CostHigh, Monthly: catquiz.CostMedium},
		Size:        catquiz.SizeMedium, Coat: catquiz.CoatShort,
		Environment: []string{"apartment", "busy-owner"},
		Traits:      []string{"무덤덤", "독립적", "곰돌이상"},
		Description: "둥글둥글한 곰돌이 얼굴에 의젓한 성격. 혼자 있는 시간을 잘 버텨서 바쁜 직장인 집사와 잘 맞아요.",
		KoreaPopularity: 68,
	},
	{
		ID: "american-shorthair", Name: "아메리칸 숏헤어", NameEn: "American Shorthair", Emoji: "🐈", Rank: 8,
		Personality: catquiz.Personality{Activity: 4, Affection: 3, Social: 4, Quiet: 3, Loyalty: 3},
		Maintenance: catquiz.Maintenance{Grooming: 2, Training: 2, Health: 5},
		Lifestyle:   catquiz.Lifestyle{ActivityTime: 3, AloneTime: 4, Space: 3},
		Cost:        catquiz.Cost{Initial: catquiz.CostMedium, Monthly: catquiz.CostLow},
		Size:        catquiz.SizeMedium, Coat: catquiz.CoatShort,
		Environment: []string{"family", "first-time"},
		Traits:      []string{"튼튼함", "원만함", "사냥놀이"},
		Description: "고전 줄무늬가 매력적인 건강 체질. 아이들과도 잘 지내는 무난하고 원만한 가족 고양이예요.",
		KoreaPopularity: 65,
	},
	{
		ID: "maine-coon", Name: "메인쿤", NameEn: "Maine Coon", Emoji: "🦁", Rank: 9,
		Personality: catquiz.Personality{Activity: 3, Affection: 4, Social: 4, Quiet: 3, Loyalty: 4},
		Maintenance: catquiz.Maintenance{Grooming: 4, Training: 3, Health: 3},
		Lifestyle:   catquiz.Lifestyle{ActivityTime: 3, AloneTime: 3, Space: 5},
		Cost:        catquiz.Cost{Initial: catquiz.CostHigh, Monthly: catquiz.CostHigh},
		Size:        catquiz.SizeLarge, Coat: catquiz.CoatLong,
		Environment: []string{"house", "family"},
		Traits:      []string{"대형묘", "온화한거인", "개냥이"},
		Description: "고양이계의 온화한 거인. 몸집은 크지만 성격은 순하고 다정해서 '개냥이'라는 별명이 딱이에요.",
		KoreaPopularity: 55,
	},
	{
		ID: "ragdoll", Name: "랙돌", NameEn: "Ragdoll", Emoji: "😻", Rank: 10,
		Personality: catquiz.Personality{Activity: 2, Affection: 5, Social: 4, Quiet: 4, Loyalty: 5},
		Maintenance: catquiz.Maintenance{Grooming: 4, Training: 2, Health: 3},
		Lifestyle:   catquiz.Lifestyle{ActivityTime: 2, AloneTime: 2, Space: 3},
		Cost:        catquiz.Cost{Initial: catquiz.CostHigh, Monthly: catquiz.CostHigh},
		Size:        catquiz.SizeLarge, Coat: catquiz.CoatLong,
		Environment: []string{"apartment", "family"},
		Traits:      []string{"인형같음", "안기기좋아함", "순둥이"},
		Description: "안으면 봉제인형처럼 축 늘어지는 순둥이. 사람 품을 세상에서 제일 좋아하는 애정 만렙 고양이예요.",
		KoreaPopularity: 62,
	},
	{
		ID: "bengal", Name: "벵갈", NameEn: "Bengal", Emoji: "🐆", Rank: 11,
		Personality: catquiz.Personality{Activity: 5, Affection: 3, Social: 3, Quiet: 1, Loyalty: 3},
		Maintenance: catquiz.Maintenance{Grooming: 1, Training: 5, Health: 4},
		Lifestyle:   catquiz.Lifestyle{ActivityTime: 5, AloneTime: 2, Space: 5},
		Cost:        catquiz.Cost{Initial: catquiz.CostHigh, Monthly: catquiz.CostMedium},
		Size:        catquiz.SizeMedium, Coat: catquiz.CoatShort,
		Environment: []string{"house", "active"},
		Traits:      []string{"표범무늬", "에너자이저", "물좋아함"},
		Description: "표범 무늬의 에너자이저. 캣휠과 넓은 수직 공간이 필수라 운동을 즐기는 활동적인 집사에게 어울려요.",
		KoreaPopularity: 48,
	},
	{
		ID: "abyssinian", Name: "아비시니안", NameEn: "Abyssinian", Emoji: "🐅", Rank: 12,
		Personality: catquiz.Personality{Activity: 5, Affection: 4, Social: 4, Quiet: 2, Loyalty: 3},
		Maintenance: catquiz.Maintenance{Grooming: 1, Training: 4, Health: 4},
		Lifestyle:   catquiz.Lifestyle{ActivityTime: 4, AloneTime: 2, Space: 4},
		Cost:        catquiz.Cost{Initial: catquiz.CostMedium, Monthly: catquiz.CostMedium},
		Size:        catquiz.SizeMedium, Coat: catquiz.CoatShort,
		Environment: []string{"house", "active"},
		Traits:      []string{"날렵함", "호기심대왕", "높은곳사랑"},
		Description: "잠시도 가만있지 않는 호기심 대왕. 집안 가장 높은 곳에서 모든 것을 내려다봐야 직성이 풀려요.",
		KoreaPopularity: 42,
	},
	{
		ID: "norwegian-forest", Name: "노르웨이 숲", NameEn: "Norwegian Forest Cat", Emoji: "🌲", Rank: 13,
		Personality: catquiz.Personality{Activity: 3, Affection: 3, Social: 3, Quiet: 4, Loyalty: 4},
		Maintenance: catquiz.Maintenance{Grooming: 5, Training: 2, Health: 4},
		Lifestyle:   catquiz.Lifestyle{ActivityTime: 3, AloneTime: 4, Space: 4},
		Cost:        catquiz.Cost{Initial: catquiz.CostHigh, Monthly: catquiz.CostMedium},
		Size:        catquiz.SizeLarge, Coat: catquiz.CoatLong,
		Environment: []string{"house", "quiet-home"},
		Traits:      []string{"풍성한털", "숲의요정", "의젓함"},
		Description: "북유럽 숲에서 온 풍성한 털의 신사. 느긋하고 의젓하지만 털 관리에는 꽤 정성이 필요해요.",
		KoreaPopularity: 50,
	},
	{
		ID: "turkish-angora", Name: "터키시 앙고라", NameEn: "Turkish Angora", Emoji: "🤍", Rank: 14,
		Personality: catquiz.Personality{Activity: 4, Affection: 4, Social: 3, Quiet: 2, Loyalty: 5},
		Maintenance: catquiz.Maintenance{Grooming: 3, Training: 4, Health: 4},
		Lifestyle:   catquiz.Lifestyle{ActivityTime: 4, AloneTime: 3, Space: 3},
		Cost:        catquiz.Cost{Initial: catquiz.CostMedium, Monthly: catquiz.CostMedium},
		Size:        catquiz.SizeMedium, Coat: catquiz.CoatLong,
		Environment: []string{"apartment", "talkative"},
		Traits:      []string{"우아함", "영리함", "주인바라기"},
		Description: "새하얀 털의 우아한 발레리나. 영리하고 집사에 대한 애착이 강해 온 집안을 함께 누비고 싶어 해요.",
		KoreaPopularity: 58,
	},
	{
		ID: "sphynx", Name: "스핑크스", NameEn: "Sphynx", Emoji: "🦂", Rank: 15,
		Personality: catquiz.Personality{Activity: 4, Affection: 5, Social: 5, Quiet: 2, Loyalty: 4},
		Maintenance: catquiz.Maintenance{Grooming: 4, Training: 3, Health: 2},
		Lifestyle:   catquiz.Lifestyle{ActivityTime: 4, AloneTime: 1, Space: 2},
		Cost:        catquiz.Cost{Initial: catquiz.CostHigh, Monthly: catquiz.CostHigh},
		Size:        catquiz.SizeMedium, Coat: catquiz.CoatHairless,
		Environment: []string{"apartment", "warm-home"},
		Traits:      []string{"무모증", "따뜻함추구", "관종"},
		Description: "털이 없어 목욕과 보온 관리가 필수인 독특한 매력의 소유자. 사람 곁을 한시도 떠나지 않아요.",
		KoreaPopularity: 30,
	},
	{
		ID: "exotic-shorthair", Name: "엑조틱 숏헤어", NameEn: "Exotic Shorthair", Emoji: "😽", Rank: 16,
		Personality: catquiz.Personality{Activity: 1, Affection: 4, Social: 3, Quiet: 5, Loyalty: 3},
		Maintenance: catquiz.Maintenance{Grooming: 2, Training: 2, Health: 2},
		Lifestyle:   catquiz.Lifestyle{ActivityTime: 1, AloneTime: 3, Space: 1},
		Cost:        catquiz.Cost{Initial: catquiz.CostHigh, Monthly: catquiz.CostMedium},
		Size:        catquiz.SizeMedium, Coat: catquiz.CoatShort,
		Environment: []string{"apartment", "quiet-home"},
		Traits:      []string{"납작얼굴", "게으름뱅이", "순함"},
		Description: "짧은 털 페르시안이라 불리는 납작 얼굴 순둥이. 활동량이 적어 조용한 원룸 생활에도 잘 맞아요.",
		KoreaPopularity: 45,
	},
	{
		ID: "singapura", Name: "싱가푸라", NameEn: "Singapura", Emoji: "🐭", Rank: 17,
		Personality: catquiz.Personality{Activity: 4, Affection: 4, Social: 4, Quiet: 3, Loyalty: 4},
		Maintenance: catquiz.Maintenance{Grooming: 1, Training: 3, Health: 3},
		Lifestyle:   catquiz.Lifestyle{ActivityTime: 3, AloneTime: 2, Space: 1},
		Cost:        catquiz.Cost{Initial: catquiz.CostHigh, Monthly: catquiz.CostLow},
		Size:        catquiz.SizeSmall, Coat: catquiz.CoatShort,
		Environment: []string{"apartment", "first-time"},
		Traits:      []string{"세상에서가장작은고양이", "조심성", "애교"},
		Description: "세계에서 가장 작은 고양이 품종. 작은 몸으로 집사 어깨에 올라앉는 걸 좋아하는 애교쟁이예요.",
		KoreaPopularity: 35,
	},
	{
		ID: "devon-rex", Name: "데본 렉스", NameEn: "Devon Rex", Emoji: "🧝", Rank: 18,
		Personality: catquiz.Personality{Activity: 5, Affection: 5, Social: 5, Quiet: 2, Loyalty: 4},
		Maintenance: catquiz.Maintenance{Grooming: 2, Training: 4, Health: 3},
		Lifestyle:   catquiz.Lifestyle{ActivityTime: 4, AloneTime: 1, Space: 2},
		Cost:        catquiz.Cost{Initial: catquiz.CostHigh, Monthly: catquiz.CostMedium},
		Size:        catquiz.SizeSmall, Coat: catquiz.CoatCurly,
		Environment: []string{"apartment", "family"},
		Traits:      []string{"곱슬털", "요정귀", "장난꾸러기"},
		Description: "요정 같은 큰 귀와 곱슬곱슬한 털. 장난기가 넘치고 사람 무릎 위가 세상에서 제일 좋은 친구예요.",
		KoreaPopularity: 28,
	},
	{
		ID: "somali", Name: "소말리", NameEn: "Somali", Emoji: "🦊", Rank: 19,
		Personality: catquiz.Personality{Activity: 5, Affection: 4, Social: 4, Quiet: 2, Loyalty: 3},
		Maintenance: catquiz.Maintenance{Grooming: 4, Training: 4, Health: 4},
		Lifestyle:   catquiz.Lifestyle{ActivityTime: 4, AloneTime: 2, Space: 4},
		Cost:        catquiz.Cost{Initial: catquiz.CostMedium, Monthly: catquiz.CostMedium},
		Size:        catquiz.SizeMedium, Coat: catquiz.CoatLong,
		Environment: []string{"house", "active"},
		Traits:      []string{"여우꼬리", "활발함", "영리함"},
		Description: "여우 같은 풍성한 꼬리를 가진 장모 아비시니안. 높은 곳과 달리기를 사랑하는 활동파예요.",
		KoreaPopularity: 25,
	},
	{
		ID: "birman", Name: "버만", NameEn: "Birman", Emoji: "🧦", Rank: 20,
		Personality: catquiz.Personality{Activity: 2, Affection: 5, Social: 4, Quiet: 4, Loyalty: 4},
		Maintenance: catquiz.Maintenance{Grooming: 3, Training: 2, Health: 4},
		Lifestyle:   catquiz.Lifestyle{ActivityTime: 2, AloneTime: 2, Space: 2},
		Cost:        catquiz.Cost{Initial: catquiz.CostHigh, Monthly: catquiz.CostMedium},
		Size:        catquiz.SizeMedium, Coat: catquiz.CoatLong,
		Environment: []string{"apartment", "family"},
		Traits:      []string{"하얀장갑", "온화함", "균형잡힘"},
		Description: "네 발에 하얀 장갑을 낀 듯한 버마의 성묘(聖猫). 활발함과 차분함의 균형이 좋은 다정한 친구예요.",
		KoreaPopularity: 22,
	},
}
