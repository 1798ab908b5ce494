package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"skyfeedback/internal/adapters/observability"
	"skyfeedback/internal/domain"
)

// StreamService drives the emit loop: one synthetic review per interval,
// rendered to out as a two-line text block.
type StreamService struct {
	gen *Generator
	out io.Writer
	rl  *rate.Limiter
}

func NewStreamService(g *Generator, out io.Writer, interval time.Duration) *StreamService {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &StreamService{
		gen: g,
		out: out,
		rl:  rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Run emits until ctx is canceled. The limiter starts with one token, so the
// first block appears immediately and each later one after a full interval
// (emit-then-wait, not wait-then-emit).
func (s *StreamService) Run(ctx context.Context) error {
	for {
		if err := s.rl.Wait(ctx); err != nil {
			return err
		}
		rev := s.gen.Generate()
		s.render(rev)
		observability.ObserveReview(rev.Airline, rev.Rating)
		log.Debug().
			Str("review_id", rev.ReviewID).
			Str("airline", rev.Airline).
			Int("rating", rev.Rating).
			Msg("review emitted")
	}
}

// render writes the block in the emitter's historical format.
// TODO: the label says "Review ID" but the whole record is printed; confirm
// nothing downstream scrapes this line before narrowing it to just the id.
func (s *StreamService) render(r domain.Review) {
	fmt.Fprintf(s.out, "\nNew Review Generated:\n")
	fmt.Fprintf(s.out, "Review ID: %+v\n", r)
}
