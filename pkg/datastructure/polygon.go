package datastructure

// Polygon model info
//
//	@Description	one user-drawn polygon together with the frame its reference area was computed in.
//
// Vertices are (lon, lat) degree pairs in boundary order. RefArea and the
// zone fields are fixed when the polygon is created and never change on
// later edits; every drag is re-normalized against them.
type Polygon struct {
	ID         int         `json:"id" msgpack:"id"`
	Vertices   [][]float64 `json:"vertices" msgpack:"vertices"`
	RefArea    float64     `json:"ref_area_m2" msgpack:"ref_area_m2"` // planar area in m^2 at creation time
	ZoneNumber int         `json:"zone_number" msgpack:"zone_number"`
	North      bool        `json:"is_north" msgpack:"is_north"`
}

func NewPolygon(id int, vertices [][]float64, refArea float64, zoneNumber int, north bool) Polygon {
	return Polygon{
		ID:         id,
		Vertices:   vertices,
		RefArea:    refArea,
		ZoneNumber: zoneNumber,
		North:      north,
	}
}
