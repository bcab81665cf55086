// Package geojson converts polygon records to and from GeoJSON Features so
// map clients can exchange them directly with the editor API.
package geojson

import (
	"github.com/lintang-b-s/go-area-edit/pkg"
	"github.com/lintang-b-s/go-area-edit/pkg/datastructure"
	"github.com/lintang-b-s/go-area-edit/pkg/geo"

	"github.com/paulmach/orb"
	orbgeojson "github.com/paulmach/orb/geojson"
)

// MarshalPolygon encodes a record as a GeoJSON Feature. The ring is closed
// per the GeoJSON spec; ref_area_m2, utm_zone and hemisphere ride along as
// properties, the bbox is derived from the vertices.
func MarshalPolygon(poly datastructure.Polygon) ([]byte, error) {
	if len(poly.Vertices) < 3 {
		return nil, pkg.WrapErrorf(nil, pkg.ErrDegeneratePolygon,
			"geojson export of polygon %d with %d vertices", poly.ID, len(poly.Vertices))
	}

	ring := make(orb.Ring, 0, len(poly.Vertices)+1)
	lats := make([]float64, len(poly.Vertices))
	lons := make([]float64, len(poly.Vertices))
	for i, v := range poly.Vertices {
		ring = append(ring, orb.Point{v[0], v[1]})
		lons[i] = v[0]
		lats[i] = v[1]
	}
	ring = append(ring, ring[0])

	feature := orbgeojson.NewFeature(orb.Polygon{ring})
	feature.ID = poly.ID
	feature.Properties = orbgeojson.Properties{
		"ref_area_m2": poly.RefArea,
		"utm_zone":    poly.ZoneNumber,
		"hemisphere":  hemisphere(poly.North),
	}

	bb := geo.NewBoundingBox(lats, lons)
	feature.BBox = orbgeojson.BBox{
		bb.GetMin()[1], bb.GetMin()[0],
		bb.GetMax()[1], bb.GetMax()[0],
	}

	return feature.MarshalJSON()
}

// UnmarshalPolygon decodes a GeoJSON Feature into vertex pairs, dropping
// the closing point of the outer ring. Only Polygon geometries are
// accepted; holes are not supported.
func UnmarshalPolygon(data []byte) ([][]float64, error) {
	feature, err := orbgeojson.UnmarshalFeature(data)
	if err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrBadParamInput, "geojson decode")
	}

	if feature.Geometry == nil {
		return nil, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "geojson feature has no geometry")
	}
	polygon, ok := feature.Geometry.(orb.Polygon)
	if !ok {
		return nil, pkg.WrapErrorf(nil, pkg.ErrBadParamInput,
			"geojson geometry is %s, want Polygon", feature.Geometry.GeoJSONType())
	}
	if len(polygon) == 0 {
		return nil, pkg.WrapErrorf(nil, pkg.ErrDegeneratePolygon, "geojson polygon has no ring")
	}

	ring := polygon[0]
	if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
		ring = ring[:len(ring)-1]
	}
	if len(ring) < 3 {
		return nil, pkg.WrapErrorf(nil, pkg.ErrDegeneratePolygon,
			"geojson ring has %d distinct vertices", len(ring))
	}

	vertices := make([][]float64, len(ring))
	for i, p := range ring {
		vertices[i] = []float64{p[0], p[1]}
	}
	return vertices, nil
}

func hemisphere(north bool) string {
	if north {
		return "N"
	}
	return "S"
}
