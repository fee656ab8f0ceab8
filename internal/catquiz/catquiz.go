// Package catquiz defines the core domain types and scoring contracts.
// It has zero external dependencies — everything here is pure Go.
package catquiz

import "time"

// Category is one of the five scoring dimensions that compose an
// overall match score.
type Category string

const (
	CategoryLifestyle   Category = "lifestyle"
	CategoryPersonality Category = "personality"
	CategoryMaintenance Category = "maintenance"
	CategoryAppearance  Category = "appearance"
	CategoryCost        Category = "cost"
)

// Categories lists all scoring categories in display order.
var Categories = []Category{
	CategoryLifestyle,
	CategoryPersonality,
	CategoryMaintenance,
	CategoryAppearance,
	CategoryCost,
}

// CategoryWeights is the relative contribution of each category to the
// overall match percentage. Values are percentages and sum to 100 for
// the defaults, but the matching engine renormalizes over whichever
// categories actually received answers.
type CategoryWeights struct {
	Lifestyle   int `json:"lifestyle"`
	Personality int `json:"personality"`
	Maintenance int `json:"maintenance"`
	Appearance  int `json:"appearance"`
	Cost        int `json:"cost"`
}

// DefaultWeights are the authored category weights from the product's
// About page: lifestyle 30, personality 25, maintenance 20,
// appearance 15, cost 10.
func DefaultWeights() CategoryWeights {
	return CategoryWeights{
		Lifestyle:   30,
		Personality: 25,
		Maintenance: 20,
		Appearance:  15,
		Cost:        10,
	}
}

// Of returns the weight for a single category.
func (w CategoryWeights) Of(c Category) int {
	switch c {
	case CategoryLifestyle:
		return w.Lifestyle
	case CategoryPersonality:
		return w.Personality
	case CategoryMaintenance:
		return w.Maintenance
	case CategoryAppearance:
		return w.Appearance
	case CategoryCost:
		return w.Cost
	}
	return 0
}

// PersonalityDim is one axis of the five-dimensional personality
// vector, each ranged 1–5.
type PersonalityDim string

const (
	DimActivity  PersonalityDim = "activity"
	DimAffection PersonalityDim = "affection"
	DimSocial    PersonalityDim = "social"
	DimQuiet     PersonalityDim = "quiet"
	DimLoyalty   PersonalityDim = "loyalty"
)

// PersonalityDims lists the personality dimensions in canonical order.
var PersonalityDims = []PersonalityDim{
	DimActivity, DimAffection, DimSocial, DimQuiet, DimLoyalty,
}

// Personality is a breed's personality vector. Each attribute is 1–5.
type Personality struct {
	Activity  int `json:"activity"`
	Affection int `json:"affection"`
	Social    int `json:"social"`
	Quiet     int `json:"quiet"`
	Loyalty   int `json:"loyalty"`
}

// Dim returns the value of a single personality dimension.
func (p Personality) Dim(d PersonalityDim) int {
	switch d {
	case DimActivity:
		return p.Activity
	case DimAffection:
		return p.Affection
	case DimSocial:
		return p.Social
	case DimQuiet:
		return p.Quiet
	case DimLoyalty:
		return p.Loyalty
	}
	return 0
}

// MaintenanceDim is one axis of the maintenance vector, ranged 1–5.
type MaintenanceDim string

const (
	DimGrooming MaintenanceDim = "grooming"
	DimTraining MaintenanceDim = "training"
	DimHealth   MaintenanceDim = "health"
)

// MaintenanceDims lists the maintenance dimensions in canonical order.
var MaintenanceDims = []MaintenanceDim{DimGrooming, DimTraining, DimHealth}

// Maintenance describes how demanding a breed is to keep. Each
// attribute is 1–5 where 5 means most demanding (grooming, training)
// or most robust (health).
type Maintenance struct {
	Grooming int `json:"grooming"`
	Training int `json:"training"`
	Health   int `json:"health"`
}

// Dim returns the value of a single maintenance dimension.
func (m Maintenance) Dim(d MaintenanceDim) int {
	switch d {
	case DimGrooming:
		return m.Grooming
	case DimTraining:
		return m.Training
	case DimHealth:
		return m.Health
	}
	return 0
}

// LifestyleDim is one axis of the derived lifestyle-fit vector,
// ranged 1–5.
type LifestyleDim string

const (
	DimActivityTime LifestyleDim = "activityTime"
	DimAloneTime    LifestyleDim = "aloneTime"
	DimSpace        LifestyleDim = "space"
)

// LifestyleDims lists the lifestyle dimensions in canonical order.
var LifestyleDims = []LifestyleDim{DimActivityTime, DimAloneTime, DimSpace}

// Lifestyle is the breed-side lifestyle-fit vector: how much daily
// play time the breed needs, how well it tolerates being alone, and
// how much living space it wants. Each attribute is 1–5.
type Lifestyle struct {
	ActivityTime int `json:"activityTime"`
	AloneTime    int `json:"aloneTime"`
	Space        int `json:"space"`
}

// Dim returns the value of a single lifestyle dimension.
func (l Lifestyle) Dim(d LifestyleDim) int {
	switch d {
	case DimActivityTime:
		return l.ActivityTime
	case DimAloneTime:
		return l.AloneTime
	case DimSpace:
		return l.Space
	}
	return 0
}

// Size is a breed's categorical size class.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Sizes lists size values in ascending order.
var Sizes = []Size{SizeSmall, SizeMedium, SizeLarge}

// Coat is a breed's categorical coat type.
type Coat string

const (
	CoatShort    Coat = "short"
	CoatLong     Coat = "long"
	CoatCurly    Coat = "curly"
	CoatHairless Coat = "hairless"
)

// Coats lists coat values in declaration order.
var Coats = []Coat{CoatShort, CoatLong, CoatCurly, CoatHairless}

// CostLevel is an ordinal cost category.
type CostLevel string

const (
	CostLow    CostLevel = "low"
	CostMedium CostLevel = "medium"
	CostHigh   CostLevel = "high"
)

// CostLevels lists cost levels in ascending order.
var CostLevels = []CostLevel{CostLow, CostMedium, CostHigh}

// Cost is a breed's cost profile: one-time adoption/setup cost and
// recurring monthly cost.
type Cost struct {
	Initial CostLevel `json:"initial"`
	Monthly CostLevel `json:"monthly"`
}

// Breed is a static record describing one cat breed. Breeds are
// immutable after catalog load and never mutated at runtime.
type Breed struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	NameEn          string      `json:"nameEn"`
	Emoji           string      `json:"emoji"`
	Image           string      `json:"image,omitempty"`
	Rank            int         `json:"rank"`
	Personality     Personality `json:"personality"`
	Maintenance     Maintenance `json:"maintenance"`
	Lifestyle       Lifestyle   `json:"lifestyle"`
	Cost            Cost        `json:"cost"`
	Size            Size        `json:"size"`
	Coat            Coat        `json:"coat"`
	Environment     []string    `json:"environment"`
	Traits          []string    `json:"traits"`
	Description     string      `json:"description"`
	KoreaPopularity int         `json:"koreaPopularity"`
}

// ScoreDelta is the sparse set of scoring contributions one answer
// option carries. Numeric maps add toward a preferred level on that
// dimension; the categorical fields register one vote for a value
// (empty string means no vote).
type ScoreDelta struct {
	Personality map[PersonalityDim]int `json:"personality,omitempty"`
	Maintenance map[MaintenanceDim]int `json:"maintenance,omitempty"`
	Lifestyle   map[LifestyleDim]int   `json:"lifestyle,omitempty"`
	Size        Size                   `json:"size,omitempty"`
	Coat        Coat                   `json:"coat,omitempty"`
	CostInitial CostLevel              `json:"costInitial,omitempty"`
	CostMonthly CostLevel              `json:"costMonthly,omitempty"`
}

// Option is one selectable answer to a question.
type Option struct {
	ID    string     `json:"id"`
	Label string     `json:"label"`
	Delta ScoreDelta `json:"delta"`
}

// Question is one questionnaire item. Questions and options are
// immutable static data.
type Question struct {
	ID          string   `json:"id"`
	Category    Category `json:"category"`
	SubCategory string   `json:"subCategory,omitempty"`
	Text        string   `json:"text"`
	Options     []Option `json:"options"`
}

// AnswerScore records the user's choice for one question. An answer
// set holds at most one entry per question id; a later answer to the
// same question replaces the earlier one.
type AnswerScore struct {
	QuestionID string `json:"questionId"`
	AnswerID   string `json:"answerId"`
}

// MatchResult is a derived, ephemeral match between the user's answer
// set and one breed. Score and every breakdown value lie in [0, 100].
type MatchResult struct {
	Breed     Breed            `json:"breed"`
	Score     int              `json:"score"`
	Breakdown map[Category]int `json:"breakdown"`
}

// SimilarBreed is one entry of a breed-to-breed similarity ranking.
type SimilarBreed struct {
	Breed         Breed  `json:"breed"`
	Similarity    int    `json:"similarity"`
	KeyDifference string `json:"keyDifference"`
}

// Explanation is the natural-language rendering of a match result.
type Explanation struct {
	Summary string   `json:"summary"`
	Pros    []string `json:"pros"`
	Cons    []string `json:"cons"`
	Badges  []string `json:"badges"`
}

// HistoryEntry is one persisted quiz result in a profile's history.
type HistoryEntry struct {
	BreedID   string    `json:"breedId"`
	BreedName string    `json:"breedName"`
	Score     int       `json:"score"`
	TakenAt   time.Time `json:"takenAt"`
}
