package geo

import "math"

// SelectZone picks the UTM zone for a geographic point. The globe is split
// into 60 strips of 6 degrees longitude; latitude 0 falls in the northern
// hemisphere band. Any finite input produces a zone, out-of-range longitudes
// are not normalized.
func SelectZone(lon, lat float64) Zone {
	return Zone{
		Number: int(math.Floor((lon+180.0)/6.0)) + 1,
		North:  lat >= 0,
	}
}

// CentralMeridian returns the longitude (degrees) of the zone's central
// meridian, e.g. zone 31 -> 3.
func (z Zone) CentralMeridian() float64 {
	return float64(z.Number-1)*6.0 - 180.0 + 3.0
}
