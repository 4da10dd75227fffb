// Package model defines the geometric primitives and record types for
// placing postcards on a door surface. All coordinates and dimensions
// are integer millimeters.
package model

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Orientation selects which of the two postcard dimensions is used as
// the width and which as the height.
type Orientation int

const (
	OrientationUndefined Orientation = iota
	OrientationLandscape
	OrientationPortrait
)

// Postcard dimensions in mm.
const (
	CardWidth  = 146
	CardHeight = 106
)

func (o Orientation) String() string {
	switch o {
	case OrientationLandscape:
		return "LANDSCAPE"
	case OrientationPortrait:
		return "PORTRAIT"
	default:
		return "UNDEFINED"
	}
}

// ParseOrientation converts a serialized orientation name back to its value.
// Unknown names are an error so malformed records never round-trip silently.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "UNDEFINED":
		return OrientationUndefined, nil
	case "LANDSCAPE":
		return OrientationLandscape, nil
	case "PORTRAIT":
		return OrientationPortrait, nil
	default:
		return OrientationUndefined, fmt.Errorf("unknown orientation %q", s)
	}
}

// Dimensions returns the card width and height for this orientation.
// An undefined orientation falls back to a square card using the long
// edge twice; historical records rely on this.
func (o Orientation) Dimensions() (width, height int) {
	switch o {
	case OrientationLandscape:
		return CardWidth, CardHeight
	case OrientationPortrait:
		return CardHeight, CardWidth
	default:
		return CardWidth, CardWidth
	}
}

// Rectangle is an axis-aligned rectangle in integer mm. The X axis runs
// across the door, the Z axis runs up the door.
type Rectangle struct {
	X      int `json:"x"`
	Z      int `json:"z"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// MaxX returns the exclusive right edge of the rectangle.
func (r Rectangle) MaxX() int { return r.X + r.Width }

// MaxZ returns the exclusive top edge of the rectangle.
func (r Rectangle) MaxZ() int { return r.Z + r.Height }

func (r Rectangle) String() string {
	return fmt.Sprintf("x=(%d, %d) z=(%d, %d)", r.X, r.MaxX(), r.Z, r.MaxZ())
}

// Overlap reports whether r and other share a positive-area intersection.
// The test is strict on both axes, so rectangles that merely touch along
// an edge or at a corner do not overlap.
func (r Rectangle) Overlap(other Rectangle) bool {
	return r.X < other.MaxX() && r.MaxX() > other.X &&
		r.Z < other.MaxZ() && r.MaxZ() > other.Z
}

// Overflow reports whether r extends outside bound on either axis.
func (r Rectangle) Overflow(bound Rectangle) bool {
	return r.X < bound.X || r.MaxX() > bound.MaxX() ||
		r.Z < bound.Z || r.MaxZ() > bound.MaxZ()
}

// Cartesian returns the origin corner of the rectangle.
func (r Rectangle) Cartesian() (x, z int) {
	return r.X, r.Z
}

// Polar returns the origin corner as radius and angle from the door
// origin. The angle is undefined on the z axis (x == 0).
func (r Rectangle) Polar() (radius, phi float64, err error) {
	if r.X == 0 {
		return 0, 0, fmt.Errorf("polar angle undefined for x = 0 (position %s)", r)
	}
	x := float64(r.X)
	z := float64(r.Z)
	return math.Sqrt(x*x + z*z), math.Atan(z / x), nil
}

// Door is the bounding region every placement must fit within.
var Door = Rectangle{X: 0, Z: 0, Width: 800, Height: 2000}

// Placement is one accepted postcard position: the occupied rectangle
// plus the orientation it was requested with.
type Placement struct {
	ID          string      `json:"id"`
	Rect        Rectangle   `json:"rect"`
	Orientation Orientation `json:"orientation"`
}

// NewPlacement tags an accepted rectangle with its orientation and a
// short random ID. The ID is only used by exports; the busy file format
// does not carry it.
func NewPlacement(rect Rectangle, o Orientation) Placement {
	return Placement{
		ID:          uuid.New().String()[:8],
		Rect:        rect,
		Orientation: o,
	}
}

// PlacementAt reconstructs a placement from a persisted origin and
// orientation, deriving the rectangle size from the orientation.
func PlacementAt(x, z int, o Orientation) Placement {
	w, h := o.Dimensions()
	return NewPlacement(Rectangle{X: x, Z: z, Width: w, Height: h}, o)
}
