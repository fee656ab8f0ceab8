// Package catalog holds the static breed and question datasets. The
// data is authored in Go literals, validated once at startup, and
// treated as read-only afterwards.
package catalog

import (
	"fmt"

	"github.com/nyangbti/catquiz/internal/catquiz"
)

// Breeds returns the full breed catalog in rank order.
func Breeds() []catquiz.Breed {
	return breeds
}

// Questions returns the ordered question bank.
func Questions() []catquiz.Question {
	return questions
}

// BreedByID looks up a breed by id.
func BreedByID(id string) (catquiz.Breed, bool) {
	for _, b := range breeds {
		if b.ID == id {
			return b, true
		}
	}
	return catquiz.Breed{}, false
}

// QuestionByID looks up a question by id.
func QuestionByID(id string) (catquiz.Question, bool) {
	for _, q := range questions {
		if q.ID == id {
			return q, true
		}
	}
	return catquiz.Question{}, false
}

// Validate checks the static datasets for structural defects: missing
// identities, out-of-range attribute vectors, duplicate ids, empty
// option lists. Malformed catalog data fails fast here instead of
// surfacing during per-request scoring.
func Validate() error {
	if len(breeds) == 0 {
		return fmt.Errorf("breed catalog is empty")
	}

	seen := make(map[string]bool, len(breeds))
	for _, b := range breeds {
		if b.ID == "" || b.Name == "" || b.NameEn == "" {
			return fmt.Errorf("breed %q: missing identity fields", b.ID)
		}
		if seen[b.ID] {
			return fmt.Errorf("breed %q: duplicate id", b.ID)
		}
		seen[b.ID] = true

		for _, d := range catquiz.PersonalityDims {
			if v := b.Personality.Dim(d); v < 1 || v > 5 {
				return fmt.Errorf("breed %q: personality.%s = %d out of range [1,5]", b.ID, d, v)
			}
		}
		for _, d := range catquiz.MaintenanceDims {
			if v := b.Maintenance.Dim(d); v < 1 || v > 5 {
				return fmt.Errorf("breed %q: maintenance.%s = %d out of range [1,5]", b.ID, d, v)
			}
		}
		for _, d := range catquiz.LifestyleDims {
			if v := b.Lifestyle.Dim(d); v < 1 || v > 5 {
				return fmt.Errorf("breed %q: lifestyle.%s = %d out of range [1,5]", b.ID, d, v)
			}
		}
		if !validCostLevel(b.Cost.Initial) || !validCostLevel(b.Cost.Monthly) {
			return fmt.Errorf("breed %q: invalid cost levels %q/%q", b.ID, b.Cost.Initial, b.Cost.Monthly)
		}
		if !validSize(b.Size) {
			return fmt.Errorf("breed %q: invalid size %q", b.ID, b.Size)
		}
		if !validCoat(b.Coat) {
			return fmt.Errorf("breed %q: invalid coat %q", b.ID, b.Coat)
		}
		if b.KoreaPopularity < 0 || b.KoreaPopularity > 100 {
			return fmt.Errorf("breed %q: koreaPopularity = %d out of range [0,100]", b.ID, b.KoreaPopularity)
		}
		if b.Rank < 1 {
			return fmt.Errorf("breed %q: rank must be >= 1", b.ID)
		}
	}

	if len(questions) == 0 {
		return fmt.Errorf("question bank is empty")
	}

	seenQ := make(map[string]bool, len(questions))
	for _, q := range questions {
		if q.ID == "" || q.Text == "" {
			return fmt.Errorf("question %q: missing identity fields", q.ID)
		}
		if seenQ[q.ID] {
			return fmt.Errorf("question %q: duplicate id", q.ID)
		}
		seenQ[q.ID] = true

		if q.Category == "" {
			return fmt.Errorf("question %q: missing category", q.ID)
		}
		if len(q.Options) < 2 {
			return fmt.Errorf("question %q: needs at least 2 options", q.ID)
		}
		seenO := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if o.ID == "" || o.Label == "" {
				return fmt.Errorf("question %q: option with missing id or label", q.ID)
			}
			if seenO[o.ID] {
				return fmt.Errorf("question %q: duplicate option id %q", q.ID, o.ID)
			}
			seenO[o.ID] = true
		}
	}

	return nil
}

func validCostLevel(c catquiz.CostLevel) bool {
	switch c {
	case catquiz.CostLow, catquiz.CostMedium, catquiz.CostHigh:
		return true
	}
	return false
}

func validSize(s catquiz.Size) bool {
	switch s {
	case catquiz.SizeSmall, catquiz.SizeMedium, catquiz.SizeLarge:
		return true
	}
	return false
}

func validCoat(c catquiz.Coat) bool {
	switch c {
	case catquiz.CoatShort, catquiz.CoatLong, catquiz.CoatCurly, catquiz.CoatHairless:
		return true
	}
	return false
}
