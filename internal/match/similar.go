package match

import (
	"fmt"
	"math"

	"github.com/nyangbti/catquiz/internal/catquiz"
)

// maxPersonalityDistance is the largest possible Euclidean distance
// between two 5-dimensional personality vectors whose values range
// 1–5: sqrt(5 * 4^2).
var maxPersonalityDistance = math.Sqrt(80)

// dimLabels are the Korean display names of the personality
// dimensions, used in key-difference annotations.
var dimLabels = map[catquiz.PersonalityDim]string{
	catquiz.DimActivity:  "활동성",
	catquiz.DimAffection: "애정 표현",
	catquiz.DimSocial:    "사교성",
	catquiz.DimQuiet:     "차분함",
	catquiz.DimLoyalty:   "충성심",
}

// Similarity is the personality-only closeness of two breeds: an
// integer in [0, 100], 100 for identical vectors. It is symmetric and
// independent of any user session.
func Similarity(a, b catquiz.Breed) int {
	d := personalityDistance(a.Personality, b.Personality)
	s := 100 - d/maxPersonalityDistance*100
	if s < 0 {
		s = 0
	}
	return int(math.Round(s))
}

// RelatedBreeds returns the count most similar breeds to main,
// excluding main itself by id. Ordering is descending by similarity
// and stable among equal scores.
func RelatedBreeds(main catquiz.Breed, all []catquiz.Breed, count int) []catquiz.SimilarBreed {
	ranked := BySimilarity(main, all)
	if count < len(ranked) {
		ranked = ranked[:count]
	}
	return ranked
}

// BySimilarity is RelatedBreeds without truncation: the exhaustive
// ranking of every other breed against main.
func BySimilarity(main catquiz.Breed, all []catquiz.Breed) []catquiz.SimilarBreed {
	ranked := make([]catquiz.SimilarBreed, 0, len(all))
	for _, b := range all {
		if b.ID == main.ID {
			continue
		}
		ranked = append(ranked, catquiz.SimilarBreed{
			Breed:         b,
			Similarity:    Similarity(main, b),
			KeyDifference: keyDifference(main, b),
		})
	}

	// Insertion sort keeps input order among equal similarities.
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && ranked[j].Similarity > ranked[j-1].Similarity; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}
	return ranked
}

func personalityDistance(a, b catquiz.Personality) float64 {
	var sum float64
	for _, d := range catquiz.PersonalityDims {
		diff := float64(a.Dim(d) - b.Dim(d))
		sum += diff * diff
	}
	return math.Sqrt(sum)
}

// keyDifference names the personality dimension where the candidate
// differs most from the main breed. Near-identical vectors get a
// "very similar" label instead.
func keyDifference(main, other catquiz.Breed) string {
	var maxDim catquiz.PersonalityDim
	var maxDiff int
	maxAbs := -1
	for _, d := range catquiz.PersonalityDims {
		diff := other.Personality.Dim(d) - main.Personality.Dim(d)
		if a := absInt(diff); a > maxAbs {
			maxDim, maxDiff, maxAbs = d, diff, a
		}
	}

	if maxAbs < 1 {
		return "성격이 매우 비슷해요"
	}
	if maxDiff > 0 {
		return fmt.Sprintf("%s이 더 높은 편이에요", dimLabels[maxDim])
	}
	return fmt.Sprintf("%s이 더 낮은 편이에요", dimLabels[maxDim])
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
