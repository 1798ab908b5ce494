package app

import (
	"math/rand/v2"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"skyfeedback/internal/domain"
	"skyfeedback/internal/shared"
)

// Generator fabricates airline reviews from the fixed pools in
// internal/shared. It has no error conditions: every pool is non-empty and
// the id source is random.
type Generator struct{}

func NewGenerator() *Generator { return &Generator{} }

func (g *Generator) Generate() domain.Review {
	return domain.Review{
		ReviewID: uuid.NewString(),
		Airline:  pick(shared.Airlines),
		Reviewer: gofakeit.Name(),
		Rating:   1 + rand.IntN(5),
		Date:     dateThisYear().Format("2006-01-02"),
		Title:    pick(shared.SampleTitles),
		Body:     pick(shared.SampleBodies),
	}
}

func pick(pool []string) string { return pool[rand.IntN(len(pool))] }

// dateThisYear draws a uniform instant between Jan 1 and now, so generated
// dates stay inside the current year and never land in the future.
func dateThisYear() time.Time {
	now := time.Now().UTC()
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	span := now.Sub(start)
	if span <= 0 {
		return start
	}
	return start.Add(time.Duration(rand.Int64N(int64(span))))
}
