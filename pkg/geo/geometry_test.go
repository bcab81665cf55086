package geo

import (
	"math"
	"testing"

	"github.com/lintang-b-s/go-area-edit/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCentroid(t *testing.T) {
	t.Run("mean of each component", func(t *testing.T) {
		c, err := Centroid([][]float64{
			{0, 0},
			{10, 0},
			{10, 10},
			{0, 10},
		})
		require.NoError(t, err)
		assert.InDelta(t, 5.0, c[0], 1e-12)
		assert.InDelta(t, 5.0, c[1], 1e-12)
	})

	t.Run("component order preserved", func(t *testing.T) {
		c, err := Centroid([][]float64{
			{110.32, -7.82},
			{110.36, -7.74},
		})
		require.NoError(t, err)
		assert.InDelta(t, 110.34, c[0], 1e-12)
		assert.InDelta(t, -7.78, c[1], 1e-12)
	})

	t.Run("zero points rejected", func(t *testing.T) {
		_, err := Centroid(nil)
		assert.ErrorIs(t, err, pkg.ErrEmptyInput)
	})
}

func TestSignedArea(t *testing.T) {
	square := []PlanarPoint{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
	}

	t.Run("unit square counter clockwise", func(t *testing.T) {
		area, err := SignedArea(square)
		require.NoError(t, err)
		assert.InDelta(t, 100.0, area, 1e-12)
	})

	t.Run("clockwise winding flips the sign", func(t *testing.T) {
		reversed := make([]PlanarPoint, len(square))
		for i, p := range square {
			reversed[len(square)-1-i] = p
		}
		area, err := SignedArea(reversed)
		require.NoError(t, err)
		assert.InDelta(t, -100.0, area, 1e-12)

		abs, err := Area(reversed)
		require.NoError(t, err)
		assert.InDelta(t, 100.0, abs, 1e-12)
	})

	t.Run("triangle", func(t *testing.T) {
		area, err := Area([]PlanarPoint{
			{X: 0, Y: 0},
			{X: 4, Y: 0},
			{X: 0, Y: 3},
		})
		require.NoError(t, err)
		assert.InDelta(t, 6.0, area, 1e-12)
	})

	t.Run("fewer than three vertices rejected", func(t *testing.T) {
		_, err := SignedArea(square[:2])
		assert.ErrorIs(t, err, pkg.ErrDegeneratePolygon)

		_, err = Area(nil)
		assert.ErrorIs(t, err, pkg.ErrDegeneratePolygon)
	})
}

// scaling about the centroid by sqrt(target/current) must hit the target
// area exactly in the planar frame.
func TestScaleSquareToTargetArea(t *testing.T) {
	square := []PlanarPoint{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
	}

	current, err := Area(square)
	require.NoError(t, err)
	require.InDelta(t, 100.0, current, 1e-12)

	pairs := make([][]float64, len(square))
	for i, p := range square {
		pairs[i] = []float64{p.X, p.Y}
	}
	c, err := Centroid(pairs)
	require.NoError(t, err)

	scale := math.Sqrt(400.0 / current)
	scaled := make([]PlanarPoint, len(square))
	for i, p := range square {
		scaled[i] = NewPlanarPoint(c[0]+(p.X-c[0])*scale, c[1]+(p.Y-c[1])*scale)
	}

	area, err := Area(scaled)
	require.NoError(t, err)
	assert.InDelta(t, 400.0, area, 1e-9)

	// side 20, still centered on (5, 5)
	assert.InDelta(t, -5.0, scaled[0].X, 1e-12)
	assert.InDelta(t, -5.0, scaled[0].Y, 1e-12)
	assert.InDelta(t, 15.0, scaled[2].X, 1e-12)
	assert.InDelta(t, 15.0, scaled[2].Y, 1e-12)
}

func TestBoundingBox(t *testing.T) {
	lats := []float64{-7.82, -7.74, -7.76}
	lons := []float64{110.32, 110.36, 110.41}

	bb := NewBoundingBox(lats, lons)
	assert.True(t, bb.Contains(-7.78, 110.35))
	assert.False(t, bb.Contains(-7.70, 110.35))
	assert.Equal(t, []float64{-7.82, 110.32}, bb.GetMin())
	assert.Equal(t, []float64{-7.74, 110.41}, bb.GetMax())
}
