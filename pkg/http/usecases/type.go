package usecases

import (
	"github.com/lintang-b-s/go-area-edit/pkg/datastructure"
)

// PolygonStore is the persistence the editor runs on. The bbolt KVDB
// satisfies it; tests use an in-memory map.
type PolygonStore interface {
	NextID() (int, error)
	SavePolygon(poly datastructure.Polygon) error
	SavePolygons(polys []datastructure.Polygon) error
	GetPolygon(id int) (datastructure.Polygon, error)
	DeletePolygon(id int) error
	AllPolygons() ([]datastructure.Polygon, error)
}
