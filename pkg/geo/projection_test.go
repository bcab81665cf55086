package geo

import (
	"math"
	"testing"

	"github.com/lintang-b-s/go-area-edit/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectionRoundTrip(t *testing.T) {
	lats := []float64{-80, -45, -7.79, 0, 37.77, 51.5, 84}
	lonOffsets := []float64{-2.9, -1, 0, 1.3, 2.9}

	for _, lat := range lats {
		for _, off := range lonOffsets {
			lon := 9.0 + off // inside zone 32
			point := NewGeoPoint(lon, lat)
			zone := SelectZone(lon, lat)

			planar, err := ToPlanar(point, zone)
			require.NoError(t, err)

			back, err := ToGeographic(planar, zone)
			require.NoError(t, err)

			assert.InDelta(t, point.Lon, back.Lon, 1e-6)
			assert.InDelta(t, point.Lat, back.Lat, 1e-6)
		}
	}
}

func TestToPlanar(t *testing.T) {
	t.Run("central meridian maps to false easting", func(t *testing.T) {
		zone := Zone{Number: 49, North: true}
		planar, err := ToPlanar(NewGeoPoint(zone.CentralMeridian(), 10), zone)
		require.NoError(t, err)
		assert.InDelta(t, 500000.0, planar.X, 1e-6)
	})

	t.Run("equator maps to zero northing in the north", func(t *testing.T) {
		zone := Zone{Number: 49, North: true}
		planar, err := ToPlanar(NewGeoPoint(zone.CentralMeridian(), 0), zone)
		require.NoError(t, err)
		assert.InDelta(t, 0.0, planar.Y, 1e-6)
	})

	t.Run("southern hemisphere carries the false northing", func(t *testing.T) {
		zone := SelectZone(110.36, -7.79)
		planar, err := ToPlanar(NewGeoPoint(110.36, -7.79), zone)
		require.NoError(t, err)
		assert.Greater(t, planar.Y, 9000000.0)
		assert.Less(t, planar.Y, 10000000.0)
	})

	t.Run("one degree of latitude is about 110.6 km of northing", func(t *testing.T) {
		zone := Zone{Number: 31, North: true}
		lower, err := ToPlanar(NewGeoPoint(3, 48), zone)
		require.NoError(t, err)
		upper, err := ToPlanar(NewGeoPoint(3, 49), zone)
		require.NoError(t, err)
		assert.InDelta(t, 111.0e3, upper.Y-lower.Y, 1.0e3)
	})

	t.Run("non finite input rejected", func(t *testing.T) {
		zone := Zone{Number: 31, North: true}
		_, err := ToPlanar(NewGeoPoint(math.NaN(), 48), zone)
		assert.ErrorIs(t, err, pkg.ErrInvalidCoordinate)

		_, err = ToPlanar(NewGeoPoint(3, math.Inf(1)), zone)
		assert.ErrorIs(t, err, pkg.ErrInvalidCoordinate)
	})
}

func TestToGeographic(t *testing.T) {
	t.Run("non finite input rejected", func(t *testing.T) {
		zone := Zone{Number: 31, North: true}
		_, err := ToGeographic(NewPlanarPoint(math.NaN(), 0), zone)
		assert.ErrorIs(t, err, pkg.ErrInvalidCoordinate)
	})

	t.Run("false easting maps back to the central meridian", func(t *testing.T) {
		zone := Zone{Number: 31, North: true}
		point, err := ToGeographic(NewPlanarPoint(500000, 5400000), zone)
		assert.NoError(t, err)
		assert.InDelta(t, zone.CentralMeridian(), point.Lon, 1e-9)
	})
}
