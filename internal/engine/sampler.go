// Package engine picks free spots for new postcards by rejection
// sampling against the set of already-placed rectangles.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/piwi3910/DoorCard/internal/model"
)

// ErrDoesNotFit means the requested card is larger than the bounding
// region on at least one axis, so no valid placement exists.
var ErrDoesNotFit = errors.New("card does not fit inside the bound")

// ErrExhausted means the attempt cap was reached without finding a free
// spot. The door may simply be too crowded.
var ErrExhausted = errors.New("no free spot found")

// Sampler draws uniformly random candidate rectangles inside a bounding
// region until one is free of the occupied set.
type Sampler struct {
	bound       model.Rectangle
	maxAttempts int
	rng         *rand.Rand
}

// New creates a sampler for the given bounding region. maxAttempts caps
// the retry loop; zero or negative means unbounded. The rand source is
// injected so tests can run deterministically.
func New(bound model.Rectangle, maxAttempts int, rng *rand.Rand) *Sampler {
	return &Sampler{
		bound:       bound,
		maxAttempts: maxAttempts,
		rng:         rng,
	}
}

// Place finds a rectangle of the orientation's dimensions that lies
// entirely within the bound and overlaps none of the occupied
// rectangles. It fails fast with ErrDoesNotFit when the dimensions
// exceed the bound, and with ErrExhausted when the attempt cap runs out.
func (s *Sampler) Place(o model.Orientation, occupied []model.Rectangle) (model.Rectangle, error) {
	width, height := o.Dimensions()

	if width > s.bound.Width || height > s.bound.Height {
		return model.Rectangle{}, fmt.Errorf(
			"%w: card is %dx%d mm, bound is %dx%d mm",
			ErrDoesNotFit, width, height, s.bound.Width, s.bound.Height,
		)
	}

	for attempt := 1; s.maxAttempts <= 0 || attempt <= s.maxAttempts; attempt++ {
		candidate := model.Rectangle{
			X:      s.bound.X + s.rng.Intn(s.bound.Width-width+1),
			Z:      s.bound.Z + s.rng.Intn(s.bound.Height-height+1),
			Width:  width,
			Height: height,
		}

		// The draw range already keeps candidates inside the bound;
		// this guards against the invariant breaking.
		if candidate.Overflow(s.bound) {
			return model.Rectangle{}, fmt.Errorf(
				"candidate %s overflows bound %s", candidate, s.bound,
			)
		}

		if idx, hit := firstOverlap(candidate, occupied); hit {
			slog.Debug("candidate rejected",
				"attempt", attempt,
				"candidate", candidate.String(),
				"occupied", occupied[idx].String(),
			)
			continue
		}

		slog.Info("placement accepted", "attempt", attempt, "rect", candidate.String())
		return candidate, nil
	}

	return model.Rectangle{}, fmt.Errorf(
		"%w within %d attempts for a %dx%d mm card among %d placed",
		ErrExhausted, s.maxAttempts, width, height, len(occupied),
	)
}

// firstOverlap returns the index of the first occupied rectangle the
// candidate overlaps, if any.
func firstOverlap(candidate model.Rectangle, occupied []model.Rectangle) (int, bool) {
	for i, r := range occupied {
		if candidate.Overlap(r) {
			return i, true
		}
	}
	return -1, false
}
