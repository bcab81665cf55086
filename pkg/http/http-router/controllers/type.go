package controllers

import (
	"github.com/lintang-b-s/go-area-edit/pkg/datastructure"
	"github.com/lintang-b-s/go-area-edit/pkg/geo"
)

type EditorService interface {
	CreatePolygon(vertices []geo.GeoPoint) (datastructure.Polygon, error)
	UpdateVertices(id int, vertices []geo.GeoPoint) (datastructure.Polygon, error)
	GetPolygon(id int) (datastructure.Polygon, error)
	ListPolygons() ([]datastructure.Polygon, error)
	DeletePolygon(id int) error
	LookupZone(lon, lat float64) geo.Zone
	PlanarArea(vertices []geo.GeoPoint) (float64, geo.Zone, error)
	SnapToEdge(id int, lon, lat float64) (geo.GeoPoint, int, error)
	ExportWorkspace() ([]byte, error)
	ImportWorkspace(data []byte) (int, error)
}
