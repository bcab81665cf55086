package geo

import (
	"math"

	"github.com/lintang-b-s/go-area-edit/pkg"
)

// WGS84 ellipsoid and the standard UTM transverse-Mercator parameters.
const (
	wgs84A  = 6378137.0             // semi-major axis (m)
	wgs84F  = 1 / 298.257223563     // flattening
	wgs84E2 = wgs84F * (2 - wgs84F) // first eccentricity squared

	utmScaleFactor    = 0.9996
	utmFalseEasting   = 500000.0
	utmFalseNorthingS = 10000000.0
)

// https://pubs.usgs.gov/pp/1395/report.pdf (Snyder, Map Projections: A
// Working Manual, eq. 8-9..8-25). Series form, accurate to well under a
// millimeter inside a zone.

// ToPlanar projects a geographic point into the planar frame of zone.
// Rejects non-finite input with ErrInvalidCoordinate.
func ToPlanar(p GeoPoint, zone Zone) (PlanarPoint, error) {
	if !isFinite(p.Lon) || !isFinite(p.Lat) {
		return PlanarPoint{}, pkg.WrapErrorf(nil, pkg.ErrInvalidCoordinate,
			"toPlanar: lon=%v lat=%v", p.Lon, p.Lat)
	}

	phi := degToRad(p.Lat)
	lambda := degToRad(p.Lon)
	lambda0 := degToRad(zone.CentralMeridian())

	e2 := wgs84E2
	ep2 := e2 / (1 - e2)

	sinPhi := math.Sin(phi)
	cosPhi := math.Cos(phi)
	tanPhi := math.Tan(phi)

	n := wgs84A / math.Sqrt(1-e2*sinPhi*sinPhi)
	t := tanPhi * tanPhi
	c := ep2 * cosPhi * cosPhi
	a := cosPhi * (lambda - lambda0)

	m := meridianArc(phi)

	a2 := a * a
	a3 := a2 * a
	a4 := a3 * a
	a5 := a4 * a
	a6 := a5 * a

	x := utmScaleFactor*n*(a+
		(1-t+c)*a3/6+
		(5-18*t+t*t+72*c-58*ep2)*a5/120) + utmFalseEasting

	y := utmScaleFactor * (m + n*tanPhi*(a2/2+
		(5-t+9*c+4*c*c)*a4/24+
		(61-58*t+t*t+600*c-330*ep2)*a6/720))

	if !zone.North {
		y += utmFalseNorthingS
	}

	if !isFinite(x) || !isFinite(y) {
		return PlanarPoint{}, pkg.WrapErrorf(nil, pkg.ErrInvalidCoordinate,
			"toPlanar: projection of lon=%v lat=%v is not finite", p.Lon, p.Lat)
	}

	return NewPlanarPoint(x, y), nil
}

// ToGeographic is the inverse of ToPlanar for the same zone.
func ToGeographic(p PlanarPoint, zone Zone) (GeoPoint, error) {
	if !isFinite(p.X) || !isFinite(p.Y) {
		return GeoPoint{}, pkg.WrapErrorf(nil, pkg.ErrInvalidCoordinate,
			"toGeographic: x=%v y=%v", p.X, p.Y)
	}

	e2 := wgs84E2
	ep2 := e2 / (1 - e2)

	x := p.X - utmFalseEasting
	y := p.Y
	if !zone.North {
		y -= utmFalseNorthingS
	}

	m := y / utmScaleFactor
	mu := m / (wgs84A * (1 - e2/4 - 3*e2*e2/64 - 5*e2*e2*e2/256))

	sqrtOneMinusE2 := math.Sqrt(1 - e2)
	e1 := (1 - sqrtOneMinusE2) / (1 + sqrtOneMinusE2)
	e1_2 := e1 * e1
	e1_3 := e1_2 * e1
	e1_4 := e1_3 * e1

	// footpoint latitude
	phi1 := mu +
		(3*e1/2-27*e1_3/32)*math.Sin(2*mu) +
		(21*e1_2/16-55*e1_4/32)*math.Sin(4*mu) +
		(151*e1_3/96)*math.Sin(6*mu) +
		(1097*e1_4/512)*math.Sin(8*mu)

	sinPhi1 := math.Sin(phi1)
	cosPhi1 := math.Cos(phi1)
	tanPhi1 := math.Tan(phi1)

	c1 := ep2 * cosPhi1 * cosPhi1
	t1 := tanPhi1 * tanPhi1
	oneMinusE2Sin2 := 1 - e2*sinPhi1*sinPhi1
	n1 := wgs84A / math.Sqrt(oneMinusE2Sin2)
	r1 := wgs84A * (1 - e2) / (oneMinusE2Sin2 * math.Sqrt(oneMinusE2Sin2))
	d := x / (n1 * utmScaleFactor)

	d2 := d * d
	d3 := d2 * d
	d4 := d3 * d
	d5 := d4 * d
	d6 := d5 * d

	phi := phi1 - (n1*tanPhi1/r1)*(d2/2-
		(5+3*t1+10*c1-4*c1*c1-9*ep2)*d4/24+
		(61+90*t1+298*c1+45*t1*t1-252*ep2-3*c1*c1)*d6/720)

	lambda := degToRad(zone.CentralMeridian()) +
		(d-
			(1+2*t1+c1)*d3/6+
			(5-2*c1+28*t1-3*c1*c1+8*ep2+24*t1*t1)*d5/120)/cosPhi1

	lon := radToDeg(lambda)
	lat := radToDeg(phi)

	if !isFinite(lon) || !isFinite(lat) {
		return GeoPoint{}, pkg.WrapErrorf(nil, pkg.ErrInvalidCoordinate,
			"toGeographic: inverse of x=%v y=%v is not finite", p.X, p.Y)
	}

	return NewGeoPoint(lon, lat), nil
}

// meridianArc returns the ellipsoidal meridian distance from the equator to
// latitude phi (radians).
func meridianArc(phi float64) float64 {
	e2 := wgs84E2
	e4 := e2 * e2
	e6 := e4 * e2

	return wgs84A * ((1-e2/4-3*e4/64-5*e6/256)*phi -
		(3*e2/8+3*e4/32+45*e6/1024)*math.Sin(2*phi) +
		(15*e4/256+45*e6/1024)*math.Sin(4*phi) -
		(35*e6/3072)*math.Sin(6*phi))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
