package geo

import (
	"math"

	"github.com/lintang-b-s/go-area-edit/pkg"
)

// GeographicCentroid is the component-wise lon/lat mean of the vertices.
// This is a planar approximation, fine for polygons far smaller than a UTM
// zone; it is what the zone for a new polygon gets derived from.
func GeographicCentroid(vertices []GeoPoint) (GeoPoint, error) {
	pairs := make([][]float64, len(vertices))
	for i, v := range vertices {
		pairs[i] = []float64{v.Lon, v.Lat}
	}
	c, err := Centroid(pairs)
	if err != nil {
		return GeoPoint{}, err
	}
	return NewGeoPoint(c[0], c[1]), nil
}

// NormalizeArea uniformly rescales vertices about their planar centroid so
// that the polygon's planar area in zone equals targetArea, and returns the
// result in geographic coordinates, same vertex count and order.
//
// A degenerate input (collinear vertices, planar area <= 0) is returned
// unchanged: there is no scale factor that can give it area, and attempting
// one would divide by zero.
func NormalizeArea(vertices []GeoPoint, targetArea float64, zone Zone) ([]GeoPoint, error) {
	if len(vertices) < 3 {
		return nil, pkg.WrapErrorf(nil, pkg.ErrDegeneratePolygon,
			"normalizeArea of %d vertices", len(vertices))
	}

	planar := make([]PlanarPoint, len(vertices))
	for i, v := range vertices {
		p, err := ToPlanar(v, zone)
		if err != nil {
			return nil, err
		}
		planar[i] = p
	}

	currentArea, err := Area(planar)
	if err != nil {
		return nil, err
	}
	if currentArea <= 0 {
		out := make([]GeoPoint, len(vertices))
		copy(out, vertices)
		return out, nil
	}

	pairs := make([][]float64, len(planar))
	for i, p := range planar {
		pairs[i] = []float64{p.X, p.Y}
	}
	centroid, err := Centroid(pairs)
	if err != nil {
		return nil, err
	}
	cx, cy := centroid[0], centroid[1]

	// area scales with the square of a uniform linear scale
	scale := math.Sqrt(targetArea / currentArea)

	out := make([]GeoPoint, len(vertices))
	for i, p := range planar {
		scaled := NewPlanarPoint(
			cx+(p.X-cx)*scale,
			cy+(p.Y-cy)*scale,
		)
		g, err := ToGeographic(scaled, zone)
		if err != nil {
			return nil, err
		}
		out[i] = g
	}
	return out, nil
}
