package render

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/DoorCard/internal/model"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

// fixedRenderer pins both unit tables to a single entry so the output
// only depends on the rectangle.
func fixedRenderer(length, angle Unit) *Renderer {
	return &Renderer{
		rng:     testRand(),
		lengths: []Unit{length},
		angles:  []Unit{angle},
	}
}

func TestCartesian_Millimeters(t *testing.T) {
	r := fixedRenderer(Unit{"mm", 1.0}, Unit{"rad", 0})
	got := r.cartesian(model.Rectangle{X: 10, Z: 20, Width: 146, Height: 106})
	assert.Equal(t, "(x = 10 mm, y = 20 mm)", got)
}

func TestCartesian_ScalesByUnitFactor(t *testing.T) {
	r := fixedRenderer(Unit{"inch", 25.4}, Unit{"rad", 0})
	got := r.cartesian(model.Rectangle{X: 254, Z: 508, Width: 146, Height: 106})
	want := fmt.Sprintf("(x = %v inch, y = %v inch)", float64(254)/25.4, float64(508)/25.4)
	assert.Equal(t, want, got)
}

func TestPolar_Radians(t *testing.T) {
	r := fixedRenderer(Unit{"mm", 1.0}, Unit{"rad", 0})
	got, err := r.polar(model.Rectangle{X: 3, Z: 4, Width: 146, Height: 106})
	require.NoError(t, err)

	want := fmt.Sprintf("(r = %v mm, phi = %v rad)", 5.0, math.Atan(4.0/3.0))
	assert.Equal(t, want, got)
}

func TestPolar_DegreeConversion(t *testing.T) {
	r := fixedRenderer(Unit{"mm", 1.0}, Unit{"degree", 180.0})
	got, err := r.polar(model.Rectangle{X: 100, Z: 100, Width: 146, Height: 106})
	require.NoError(t, err)

	// atan(1) is 45 degrees.
	phi := math.Atan(1.0)
	phi *= 180.0 / math.Pi
	want := fmt.Sprintf("(r = %v mm, phi = %v degree)", math.Sqrt(20000), phi)
	assert.Equal(t, want, got)
	assert.InDelta(t, 45.0, phi, 1e-9)
}

func TestPolar_UndefinedOnZAxis(t *testing.T) {
	r := fixedRenderer(Unit{"mm", 1.0}, Unit{"rad", 0})
	_, err := r.polar(model.Rectangle{X: 0, Z: 50, Width: 146, Height: 106})
	assert.Error(t, err)
}

func TestRender_ProducesBothCoordinateSystems(t *testing.T) {
	r := New(testRand())
	rect := model.Rectangle{X: 120, Z: 340, Width: 146, Height: 106}

	sawCartesian := false
	sawPolar := false
	for i := 0; i < 100; i++ {
		got, err := r.Render(rect)
		require.NoError(t, err)
		switch {
		case strings.HasPrefix(got, "(x = "):
			sawCartesian = true
		case strings.HasPrefix(got, "(r = "):
			sawPolar = true
		default:
			t.Fatalf("unexpected rendering %q", got)
		}
	}
	assert.True(t, sawCartesian, "both coordinate systems should appear over 100 draws")
	assert.True(t, sawPolar, "both coordinate systems should appear over 100 draws")
}

func TestUnitTables(t *testing.T) {
	// The mm entry anchors the length table: everything scales from mm.
	assert.Equal(t, Unit{"mm", 1.0}, LengthUnits[0])
	assert.Len(t, LengthUnits, 38)

	// The rad entry has factor 0, meaning no conversion.
	assert.Equal(t, Unit{"rad", 0}, AngleUnits[0])
	assert.Len(t, AngleUnits, 14)

	for _, u := range LengthUnits {
		assert.Greater(t, u.Factor, 0.0, "length unit %q must have a positive factor", u.Name)
	}
	for _, u := range AngleUnits[1:] {
		assert.Greater(t, u.Factor, 0.0, "angle unit %q must have a positive factor", u.Name)
	}
}
