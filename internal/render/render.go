// Package render turns an accepted placement into a human-readable
// coordinate string, in a coordinate system and units chosen at random.
package render

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/piwi3910/DoorCard/internal/model"
)

// Renderer formats rectangle positions. The rand source is injected so
// tests can pin the coordinate system and unit choices.
type Renderer struct {
	rng     *rand.Rand
	lengths []Unit
	angles  []Unit
}

// New creates a Renderer using the standard unit tables.
func New(rng *rand.Rand) *Renderer {
	return &Renderer{
		rng:     rng,
		lengths: LengthUnits,
		angles:  AngleUnits,
	}
}

// Render returns the rectangle's position as a coordinate string,
// choosing uniformly between a Cartesian and a polar rendering. The
// polar rendering fails for positions on the z axis, where the angle
// is undefined.
func (r *Renderer) Render(rect model.Rectangle) (string, error) {
	if r.rng.Intn(2) == 0 {
		return r.cartesian(rect), nil
	}
	return r.polar(rect)
}

// cartesian renders the origin corner with two independently chosen
// length units.
func (r *Renderer) cartesian(rect model.Rectangle) string {
	x, z := rect.Cartesian()
	xUnit := r.pickUnit(r.lengths)
	yUnit := r.pickUnit(r.lengths)

	return fmt.Sprintf("(x = %v %s, y = %v %s)",
		float64(x)/xUnit.Factor, xUnit.Name,
		float64(z)/yUnit.Factor, yUnit.Name,
	)
}

// polar renders the origin corner as radius and angle. The angle factor
// is relative to half a turn; a zero factor leaves the angle in radians.
func (r *Renderer) polar(rect model.Rectangle) (string, error) {
	radius, phi, err := rect.Polar()
	if err != nil {
		return "", err
	}

	rUnit := r.pickUnit(r.lengths)
	phiUnit := r.pickUnit(r.angles)

	if phiUnit.Factor != 0 {
		phi *= phiUnit.Factor / math.Pi
	}

	return fmt.Sprintf("(r = %v %s, phi = %v %s)",
		radius/rUnit.Factor, rUnit.Name,
		phi, phiUnit.Name,
	), nil
}

func (r *Renderer) pickUnit(units []Unit) Unit {
	return units[r.rng.Intn(len(units))]
}
