package geo

import (
	"math"

	"github.com/golang/geo/s2"
)

// ProjectPointToSegment projects p onto the great-circle segment a-b and
// returns the closest point on the segment, in degrees.
func ProjectPointToSegment(a, b, p GeoPoint) GeoPoint {
	aS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(a.Lat, a.Lon))
	bS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(b.Lat, b.Lon))
	pS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(p.Lat, p.Lon))
	projection := s2.Project(pS2, aS2, bS2)
	projectLatLng := s2.LatLngFromPoint(projection)
	return NewGeoPoint(projectLatLng.Lng.Degrees(), projectLatLng.Lat.Degrees())
}

// SnapToNearestEdge projects p onto every boundary edge of the ring
// (including the closing edge) and returns the closest of those projections
// together with the index of the edge's first vertex. Used by the editor's
// insert-vertex-on-edge gesture.
func SnapToNearestEdge(vertices []GeoPoint, p GeoPoint) (GeoPoint, int) {
	best := vertices[0]
	bestEdge := 0
	bestDist := math.Inf(1)

	pS2 := s2.LatLngFromDegrees(p.Lat, p.Lon)
	for i := range vertices {
		j := (i + 1) % len(vertices)
		candidate := ProjectPointToSegment(vertices[i], vertices[j], p)
		dist := pS2.Distance(s2.LatLngFromDegrees(candidate.Lat, candidate.Lon)).Radians()
		if dist < bestDist {
			bestDist = dist
			best = candidate
			bestEdge = i
		}
	}
	return best, bestEdge
}
