package geo

// GeoPoint is a WGS84 geographic coordinate in degrees.
// Longitude in [-180, 180], latitude in [-90, 90].
type GeoPoint struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

func NewGeoPoint(lon, lat float64) GeoPoint {
	return GeoPoint{
		Lon: lon,
		Lat: lat,
	}
}

// PlanarPoint is an easting/northing pair in meters. It is only meaningful
// relative to the Zone it was projected in; points from different zones must
// never be combined.
type PlanarPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewPlanarPoint(x, y float64) PlanarPoint {
	return PlanarPoint{
		X: x,
		Y: y,
	}
}

// Zone identifies one UTM longitude band and hemisphere.
type Zone struct {
	Number int  `json:"zone_number"` // 1..60
	North  bool `json:"is_north"`
}
