// Package match implements the breed matching engine, the
// breed-to-breed similarity engine, and the explanation generator.
// Everything here is pure: no I/O, no hidden state, deterministic
// output for a given input.
package match

import (
	"math"
	"sort"

	"github.com/nyangbti/catquiz/internal/catquiz"
)

// Engine converts answer sets into ranked breed matches. It is
// immutable after construction and safe for concurrent use.
type Engine struct {
	weights catquiz.CategoryWeights
	deltas  map[string]map[string]catquiz.ScoreDelta
}

// NewEngine builds an engine over a question bank. Answers referring
// to questions or options outside the bank are skipped at compute
// time.
func NewEngine(questions []catquiz.Question, weights catquiz.CategoryWeights) *Engine {
	deltas := make(map[string]map[string]catquiz.ScoreDelta, len(questions))
	for _, q := range questions {
		byOption := make(map[string]catquiz.ScoreDelta, len(q.Options))
		for _, o := range q.Options {
			byOption[o.ID] = o.Delta
		}
		deltas[q.ID] = byOption
	}
	return &Engine{weights: weights, deltas: deltas}
}

// dimAgg accumulates numeric deltas for one dimension.
type dimAgg struct {
	sum   int
	count int
}

func (a dimAgg) preference() float64 {
	p := float64(a.sum) / float64(a.count)
	return math.Min(5, math.Max(1, p))
}

// prefs is the aggregated user preference built from an answer set.
type prefs struct {
	personality map[catquiz.PersonalityDim]dimAgg
	maintenance map[catquiz.MaintenanceDim]dimAgg
	lifestyle   map[catquiz.LifestyleDim]dimAgg
	size        map[catquiz.Size]int
	coat        map[catquiz.Coat]int
	costInitial map[catquiz.CostLevel]int
	costMonthly map[catquiz.CostLevel]int
}

// Compute ranks every breed against the answer set. Answers may be
// partial; only categories with at least one contributing answer take
// part in the weighted overall score. With no contributing answers at
// all, breeds fall back to their Korea popularity as a prior. The
// result always contains one entry per breed, scores and breakdown
// values in [0, 100], sorted by score descending with catalog rank as
// the tie-break.
func (e *Engine) Compute(answers []catquiz.AnswerScore, breeds []catquiz.Breed) []catquiz.MatchResult {
	p := e.aggregate(answers)

	results := make([]catquiz.MatchResult, 0, len(breeds))
	for _, b := range breeds {
		results = append(results, e.scoreBreed(b, p))
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Breed.Rank < results[j].Breed.Rank
	})
	return results
}

// aggregate folds the answer set into category accumulators. At most
// one answer per question counts; a later entry for the same question
// replaces the earlier one. Unknown question or option ids are
// dropped.
func (e *Engine) aggregate(answers []catquiz.AnswerScore) prefs {
	chosen := make(map[string]catquiz.ScoreDelta)
	order := make([]string, 0, len(answers))
	for _, a := range answers {
		byOption, ok := e.deltas[a.QuestionID]
		if !ok {
			continue
		}
		d, ok := byOption[a.AnswerID]
		if !ok {
			continue
		}
		if _, seen := chosen[a.QuestionID]; !seen {
			order = append(order, a.QuestionID)
		}
		chosen[a.QuestionID] = d
	}

	p := prefs{
		personality: make(map[catquiz.PersonalityDim]dimAgg),
		maintenance: make(map[catquiz.MaintenanceDim]dimAgg),
		lifestyle:   make(map[catquiz.LifestyleDim]dimAgg),
		size:        make(map[catquiz.Size]int),
		coat:        make(map[catquiz.Coat]int),
		costInitial: make(map[catquiz.CostLevel]int),
		costMonthly: make(map[catquiz.CostLevel]int),
	}

	for _, qid := range order {
		d := chosen[qid]
		for dim, v := range d.Personality {
			a := p.personality[dim]
			a.sum += v
			a.count++
			p.personality[dim] = a
		}
		for dim, v := range d.Maintenance {
			a := p.maintenance[dim]
			a.sum += v
			a.count++
			p.maintenance[dim] = a
		}
		for dim, v := range d.Lifestyle {
			a := p.lifestyle[dim]
			a.sum += v
			a.count++
			p.lifestyle[dim] = a
		}
		if d.Size != "" {
			p.size[d.Size]++
		}
		if d.Coat != "" {
			p.coat[d.Coat]++
		}
		if d.CostInitial != "" {
			p.costInitial[d.CostInitial]++
		}
		if d.CostMonthly != "" {
			p.costMonthly[d.CostMonthly]++
		}
	}
	return p
}

func (e *Engine) scoreBreed(b catquiz.Breed, p prefs) catquiz.MatchResult {
	breakdown := map[catquiz.Category]int{
		catquiz.CategoryLifestyle:   0,
		catquiz.CategoryPersonality: 0,
		catquiz.CategoryMaintenance: 0,
		catquiz.CategoryAppearance:  0,
		catquiz.CategoryCost:        0,
	}

	var weighted, totalWeight int

	if len(p.lifestyle) > 0 {
		s := numericScore(catquiz.LifestyleDims, p.lifestyle, b.Lifestyle.Dim)
		breakdown[catquiz.CategoryLifestyle] = s
		weighted += s * e.weights.Lifestyle
		totalWeight += e.weights.Lifestyle
	}
	if len(p.personality) > 0 {
		s := numericScore(catquiz.PersonalityDims, p.personality, b.Personality.Dim)
		breakdown[catquiz.CategoryPersonality] = s
		weighted += s * e.weights.Personality
		totalWeight += e.weights.Personality
	}
	if len(p.maintenance) > 0 {
		s := numericScore(catquiz.MaintenanceDims, p.maintenance, b.Maintenance.Dim)
		breakdown[catquiz.CategoryMaintenance] = s
		weighted += s * e.weights.Maintenance
		totalWeight += e.weights.Maintenance
	}
	if len(p.size) > 0 || len(p.coat) > 0 {
		s := appearanceScore(b, p)
		breakdown[catquiz.CategoryAppearance] = s
		weighted += s * e.weights.Appearance
		totalWeight += e.weights.Appearance
	}
	if len(p.costInitial) > 0 || len(p.costMonthly) > 0 {
		s := costScore(b, p)
		breakdown[catquiz.CategoryCost] = s
		weighted += s * e.weights.Cost
		totalWeight += e.weights.Cost
	}

	score := b.KoreaPopularity // prior when nothing was answered
	if totalWeight > 0 {
		score = int(math.Round(float64(weighted) / float64(totalWeight)))
	}

	return catquiz.MatchResult{
		Breed:     b,
		Score:     clampScore(score),
		Breakdown: breakdown,
	}
}

// numericScore compares the accumulated preference vector against the
// breed's attribute vector over the answered dimensions. A smaller
// mean absolute difference yields a higher score; the maximum possible
// per-dimension difference is 4 (values range 1–5).
func numericScore[D comparable](dims []D, agg map[D]dimAgg, breedDim func(D) int) int {
	var totalDiff float64
	var n int
	for _, d := range dims {
		a, ok := agg[d]
		if !ok || a.count == 0 {
			continue
		}
		totalDiff += math.Abs(a.preference() - float64(breedDim(d)))
		n++
	}
	if n == 0 {
		return 0
	}
	s := 100 * (1 - (totalDiff/float64(n))/4)
	return clampScore(int(math.Round(s)))
}

const (
	categoricalMatch    = 100
	categoricalMismatch = 50
)

// appearanceScore scores size and coat by comparing the breed's value
// against the user's most-frequently-selected value, averaging over
// whichever of the two sub-fields received votes.
func appearanceScore(b catquiz.Breed, p prefs) int {
	var sum, n int
	if len(p.size) > 0 {
		sum += categoricalScore(mode(catquiz.Sizes, p.size) == b.Size)
		n++
	}
	if len(p.coat) > 0 {
		sum += categoricalScore(mode(catquiz.Coats, p.coat) == b.Coat)
		n++
	}
	return clampScore(int(math.Round(float64(sum) / float64(n))))
}

func costScore(b catquiz.Breed, p prefs) int {
	var sum, n int
	if len(p.costInitial) > 0 {
		sum += categoricalScore(mode(catquiz.CostLevels, p.costInitial) == b.Cost.Initial)
		n++
	}
	if len(p.costMonthly) > 0 {
		sum += categoricalScore(mode(catquiz.CostLevels, p.costMonthly) == b.Cost.Monthly)
		n++
	}
	return clampScore(int(math.Round(float64(sum) / float64(n))))
}

func categoricalScore(match bool) int {
	if match {
		return categoricalMatch
	}
	return categoricalMismatch
}

// mode returns the most-frequently-tallied value. Ties resolve to the
// value that comes first in the canonical ordering, keeping results
// deterministic.
func mode[V comparable](ordered []V, tally map[V]int) V {
	var best V
	bestCount := -1
	for _, v := range ordered {
		if c := tally[v]; c > bestCount {
			best = v
			bestCount = c
		}
	}
	return best
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
