package catalog

import (
	"math/rand"
	"sort"
	"time"

	"github.com/nyangbti/catquiz/internal/catquiz"
)

// DailyCount is the number of questions in the daily quiz.
const DailyCount = 5

// kst is fixed UTC+9; the daily quiz rolls over at Korean midnight.
var kst = time.FixedZone("KST", 9*60*60)

// Daily returns the daily quiz: a date-seeded subset of the question
// bank. Every caller gets the same set for a given KST calendar day,
// presented in bank order.
func Daily(now time.Time, n int) []catquiz.Question {
	if n <= 0 || n > len(questions) {
		n = len(questions)
	}

	day := now.In(kst)
	seed := int64(day.Year())*10000 + int64(day.Month())*100 + int64(day.Day())

	picked := rand.New(rand.NewSource(seed)).Perm(len(questions))[:n]
	sort.Ints(picked)

	out := make([]catquiz.Question, 0, n)
	for _, i := range picked {
		out = append(out, questions[i])
	}
	return out
}
