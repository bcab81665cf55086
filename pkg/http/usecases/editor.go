package usecases

import (
	"errors"

	"github.com/lintang-b-s/go-area-edit/pkg"
	"github.com/lintang-b-s/go-area-edit/pkg/datastructure"
	"github.com/lintang-b-s/go-area-edit/pkg/geo"
	"github.com/lintang-b-s/go-area-edit/pkg/kvdb"

	"go.uber.org/zap"
)

// EditorService owns every polygon record and drives the geometry core on
// the caller's create/drag events. The core itself stays stateless.
type EditorService struct {
	log   *zap.Logger
	store PolygonStore
}

func New(log *zap.Logger, store PolygonStore) *EditorService {
	return &EditorService{
		log:   log,
		store: store,
	}
}

// CreatePolygon freezes the polygon's reference frame: the zone comes from
// the lon/lat mean of the vertices and the planar area in that zone becomes
// the target every later edit is normalized to.
func (s *EditorService) CreatePolygon(vertices []geo.GeoPoint) (datastructure.Polygon, error) {
	if len(vertices) < 3 {
		return datastructure.Polygon{}, pkg.WrapErrorf(nil, pkg.ErrDegeneratePolygon,
			"createPolygon with %d vertices", len(vertices))
	}

	centroid, err := geo.GeographicCentroid(vertices)
	if err != nil {
		return datastructure.Polygon{}, err
	}
	zone := geo.SelectZone(centroid.Lon, centroid.Lat)

	planar := make([]geo.PlanarPoint, len(vertices))
	for i, v := range vertices {
		p, err := geo.ToPlanar(v, zone)
		if err != nil {
			return datastructure.Polygon{}, err
		}
		planar[i] = p
	}
	area, err := geo.Area(planar)
	if err != nil {
		return datastructure.Polygon{}, err
	}

	id, err := s.store.NextID()
	if err != nil {
		return datastructure.Polygon{}, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "createPolygon")
	}

	poly := datastructure.NewPolygon(id, toPairs(vertices), area, zone.Number, zone.North)
	if err := s.store.SavePolygon(poly); err != nil {
		return datastructure.Polygon{}, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "createPolygon")
	}

	s.log.Info("polygon created",
		zap.Int("id", poly.ID),
		zap.Float64("ref_area_m2", poly.RefArea),
		zap.Int("zone", poly.ZoneNumber),
		zap.Bool("north", poly.North))

	return poly, nil
}

// UpdateVertices is the drag-end event: the raw dragged vertices are
// rescaled so the polygon's planar area in its stored zone matches the
// stored reference area, then persisted. A degenerate drag result keeps
// the polygon in its last valid state.
func (s *EditorService) UpdateVertices(id int, vertices []geo.GeoPoint) (datastructure.Polygon, error) {
	poly, err := s.getPolygon(id)
	if err != nil {
		return datastructure.Polygon{}, err
	}

	zone := geo.Zone{Number: poly.ZoneNumber, North: poly.North}

	planar := make([]geo.PlanarPoint, len(vertices))
	for i, v := range vertices {
		p, err := geo.ToPlanar(v, zone)
		if err != nil {
			return datastructure.Polygon{}, err
		}
		planar[i] = p
	}
	current, err := geo.Area(planar)
	if err != nil {
		return datastructure.Polygon{}, err
	}
	if current <= 0 {
		// degenerate drag, keep the last valid vertices
		s.log.Warn("degenerate edit ignored", zap.Int("id", poly.ID))
		return poly, nil
	}

	normalized, err := geo.NormalizeArea(vertices, poly.RefArea, zone)
	if err != nil {
		return datastructure.Polygon{}, err
	}

	poly.Vertices = toPairs(normalized)
	if err := s.store.SavePolygon(poly); err != nil {
		return datastructure.Polygon{}, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "updateVertices")
	}

	return poly, nil
}

func (s *EditorService) GetPolygon(id int) (datastructure.Polygon, error) {
	return s.getPolygon(id)
}

func (s *EditorService) ListPolygons() ([]datastructure.Polygon, error) {
	polys, err := s.store.AllPolygons()
	if err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "listPolygons")
	}
	return polys, nil
}

func (s *EditorService) DeletePolygon(id int) error {
	if err := s.store.DeletePolygon(id); err != nil {
		if errors.Is(err, kvdb.ErrorsKeyNotExists) {
			return pkg.WrapErrorf(err, pkg.ErrNotFound, "deletePolygon %d", id)
		}
		return pkg.WrapErrorf(err, pkg.ErrInternalServerError, "deletePolygon %d", id)
	}
	return nil
}

// LookupZone is a passthrough for the map UI.
func (s *EditorService) LookupZone(lon, lat float64) geo.Zone {
	return geo.SelectZone(lon, lat)
}

// PlanarArea projects the vertices into the zone of their own centroid and
// returns the absolute shoelace area plus the zone used.
func (s *EditorService) PlanarArea(vertices []geo.GeoPoint) (float64, geo.Zone, error) {
	centroid, err := geo.GeographicCentroid(vertices)
	if err != nil {
		return 0, geo.Zone{}, err
	}
	zone := geo.SelectZone(centroid.Lon, centroid.Lat)

	planar := make([]geo.PlanarPoint, len(vertices))
	for i, v := range vertices {
		p, err := geo.ToPlanar(v, zone)
		if err != nil {
			return 0, geo.Zone{}, err
		}
		planar[i] = p
	}
	area, err := geo.Area(planar)
	if err != nil {
		return 0, geo.Zone{}, err
	}
	return area, zone, nil
}

// SnapToEdge returns the point on the polygon's nearest boundary edge, for
// the insert-vertex-on-edge gesture.
func (s *EditorService) SnapToEdge(id int, lon, lat float64) (geo.GeoPoint, int, error) {
	poly, err := s.getPolygon(id)
	if err != nil {
		return geo.GeoPoint{}, 0, err
	}
	snapped, edge := geo.SnapToNearestEdge(fromPairs(poly.Vertices), geo.NewGeoPoint(lon, lat))
	return snapped, edge, nil
}

func (s *EditorService) getPolygon(id int) (datastructure.Polygon, error) {
	poly, err := s.store.GetPolygon(id)
	if err != nil {
		if errors.Is(err, kvdb.ErrorsKeyNotExists) {
			return datastructure.Polygon{}, pkg.WrapErrorf(err, pkg.ErrNotFound, "polygon %d", id)
		}
		return datastructure.Polygon{}, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "polygon %d", id)
	}
	return poly, nil
}

func toPairs(vertices []geo.GeoPoint) [][]float64 {
	pairs := make([][]float64, len(vertices))
	for i, v := range vertices {
		pairs[i] = []float64{v.Lon, v.Lat}
	}
	return pairs
}

func fromPairs(pairs [][]float64) []geo.GeoPoint {
	vertices := make([]geo.GeoPoint, len(pairs))
	for i, p := range pairs {
		vertices[i] = geo.NewGeoPoint(p[0], p[1])
	}
	return vertices
}
