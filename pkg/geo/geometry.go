package geo

import (
	"math"

	"github.com/lintang-b-s/go-area-edit/pkg"
)

type BoundingBox struct {
	min, max []float64 // lat, lon
}

func (bb *BoundingBox) GetMin() []float64 {
	return bb.min
}

func (bb *BoundingBox) GetMax() []float64 {
	return bb.max
}

func NewBoundingBox(lats, lons []float64) BoundingBox {
	min, max := []float64{lats[0], lons[0]}, []float64{lats[0], lons[0]}
	for i := 1; i < len(lats); i++ {
		if lats[i] < min[0] {
			min[0] = lats[i]
		}
		if lats[i] > max[0] {
			max[0] = lats[i]
		}
		if lons[i] < min[1] {
			min[1] = lons[i]
		}
		if lons[i] > max[1] {
			max[1] = lons[i]
		}
	}
	return BoundingBox{
		min: min,
		max: max,
	}
}

func (bb *BoundingBox) Contains(lat, lon float64) bool {
	if lat < bb.min[0] || lat > bb.max[0] {
		return false
	}
	if lon < bb.min[1] || lon > bb.max[1] {
		return false
	}
	return true
}

// Centroid averages index 0 and index 1 of every pair separately. It does
// not care whether the pairs are (lon, lat) or (x, y); callers keep the
// component order they passed in.
func Centroid(points [][]float64) ([]float64, error) {
	if len(points) == 0 {
		return nil, pkg.WrapErrorf(nil, pkg.ErrEmptyInput, "centroid of 0 points")
	}

	var sumA, sumB float64
	for _, p := range points {
		sumA += p[0]
		sumB += p[1]
	}
	n := float64(len(points))
	return []float64{sumA / n, sumB / n}, nil
}

// SignedArea computes the shoelace sum over an ordered planar ring,
// including the wraparound edge from the last vertex back to the first.
// Positive means counter-clockwise winding. Fewer than 3 vertices has no
// defined area and is rejected, not reported as zero.
func SignedArea(points []PlanarPoint) (float64, error) {
	n := len(points)
	if n < 3 {
		return 0, pkg.WrapErrorf(nil, pkg.ErrDegeneratePolygon,
			"signedArea of %d vertices", n)
	}

	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += points[i].X * points[j].Y
		area -= points[j].X * points[i].Y
	}
	return area / 2, nil
}

// Area returns the absolute shoelace area.
func Area(points []PlanarPoint) (float64, error) {
	signed, err := SignedArea(points)
	if err != nil {
		return 0, err
	}
	return math.Abs(signed), nil
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180.0
}

func radToDeg(r float64) float64 {
	return 180.0 * r / math.Pi
}
