package geo

import (
	"testing"

	"github.com/lintang-b-s/go-area-edit/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a small quadrilateral south-west of Yogyakarta, well inside zone 49S
func testQuad() []GeoPoint {
	return []GeoPoint{
		NewGeoPoint(110.320, -7.823),
		NewGeoPoint(110.352, -7.829),
		NewGeoPoint(110.409, -7.786),
		NewGeoPoint(110.342, -7.742),
	}
}

func planarAreaOf(t *testing.T, vertices []GeoPoint, zone Zone) float64 {
	t.Helper()
	planar := make([]PlanarPoint, len(vertices))
	for i, v := range vertices {
		p, err := ToPlanar(v, zone)
		require.NoError(t, err)
		planar[i] = p
	}
	area, err := Area(planar)
	require.NoError(t, err)
	return area
}

func planarCentroidOf(t *testing.T, vertices []GeoPoint, zone Zone) (float64, float64) {
	t.Helper()
	pairs := make([][]float64, len(vertices))
	for i, v := range vertices {
		p, err := ToPlanar(v, zone)
		require.NoError(t, err)
		pairs[i] = []float64{p.X, p.Y}
	}
	c, err := Centroid(pairs)
	require.NoError(t, err)
	return c[0], c[1]
}

func TestNormalizeArea(t *testing.T) {
	quad := testQuad()
	centroid, err := GeographicCentroid(quad)
	require.NoError(t, err)
	zone := SelectZone(centroid.Lon, centroid.Lat)
	require.Equal(t, 49, zone.Number)
	require.False(t, zone.North)

	t.Run("output area matches the target", func(t *testing.T) {
		for _, target := range []float64{1e4, 2.5e6, 4e7} {
			normalized, err := NormalizeArea(quad, target, zone)
			require.NoError(t, err)
			require.Len(t, normalized, len(quad))

			area := planarAreaOf(t, normalized, zone)
			assert.InEpsilon(t, target, area, 1e-3)
		}
	})

	t.Run("planar centroid preserved", func(t *testing.T) {
		normalized, err := NormalizeArea(quad, 2.5e6, zone)
		require.NoError(t, err)

		origX, origY := planarCentroidOf(t, quad, zone)
		newX, newY := planarCentroidOf(t, normalized, zone)
		assert.InDelta(t, origX, newX, 1e-3)
		assert.InDelta(t, origY, newY, 1e-3)
	})

	t.Run("idempotent at the target area", func(t *testing.T) {
		once, err := NormalizeArea(quad, 2.5e6, zone)
		require.NoError(t, err)
		twice, err := NormalizeArea(once, 2.5e6, zone)
		require.NoError(t, err)

		for i := range once {
			assert.InDelta(t, once[i].Lon, twice[i].Lon, 1e-7)
			assert.InDelta(t, once[i].Lat, twice[i].Lat, 1e-7)
		}
	})

	t.Run("vertex order unchanged", func(t *testing.T) {
		normalized, err := NormalizeArea(quad, 1e6, zone)
		require.NoError(t, err)

		// shrinking: every vertex moves toward the centroid, none swap
		signedBefore := signedAreaOf(t, quad, zone)
		signedAfter := signedAreaOf(t, normalized, zone)
		assert.Equal(t, signedBefore > 0, signedAfter > 0)
	})

	t.Run("zero area input returned unchanged", func(t *testing.T) {
		// a spike that folds back on itself has exactly zero shoelace area
		spike := []GeoPoint{
			NewGeoPoint(110.30, -7.80),
			NewGeoPoint(110.32, -7.78),
			NewGeoPoint(110.30, -7.80),
		}
		out, err := NormalizeArea(spike, 1e6, zone)
		require.NoError(t, err)
		assert.Equal(t, spike, out)
	})

	t.Run("fewer than three vertices rejected", func(t *testing.T) {
		_, err := NormalizeArea(quad[:2], 1e6, zone)
		assert.ErrorIs(t, err, pkg.ErrDegeneratePolygon)
	})
}

func signedAreaOf(t *testing.T, vertices []GeoPoint, zone Zone) float64 {
	t.Helper()
	planar := make([]PlanarPoint, len(vertices))
	for i, v := range vertices {
		p, err := ToPlanar(v, zone)
		require.NoError(t, err)
		planar[i] = p
	}
	signed, err := SignedArea(planar)
	require.NoError(t, err)
	return signed
}

func TestGeographicCentroid(t *testing.T) {
	c, err := GeographicCentroid([]GeoPoint{
		NewGeoPoint(110.30, -7.80),
		NewGeoPoint(110.40, -7.70),
	})
	require.NoError(t, err)
	assert.InDelta(t, 110.35, c.Lon, 1e-12)
	assert.InDelta(t, -7.75, c.Lat, 1e-12)

	_, err = GeographicCentroid(nil)
	assert.ErrorIs(t, err, pkg.ErrEmptyInput)
}
