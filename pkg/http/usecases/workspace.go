package usecases

import (
	"github.com/lintang-b-s/go-area-edit/pkg"
	"github.com/lintang-b-s/go-area-edit/pkg/datastructure"

	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
)

// workspaceDocument is the save-file format: every polygon record in one
// msgpack blob. Version gates future layout changes.
type workspaceDocument struct {
	Version  int                     `msgpack:"version"`
	Polygons []datastructure.Polygon `msgpack:"polygons"`
}

const workspaceVersion = 1

// ExportWorkspace packs all stored polygons into one document the client
// can hold on to as a saved map.
func (s *EditorService) ExportWorkspace() ([]byte, error) {
	polys, err := s.store.AllPolygons()
	if err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "exportWorkspace")
	}

	doc := workspaceDocument{
		Version:  workspaceVersion,
		Polygons: polys,
	}
	data, err := msgpack.Marshal(doc)
	if err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "exportWorkspace")
	}

	s.log.Info("workspace exported", zap.Int("polygons", len(polys)))
	return data, nil
}

// ImportWorkspace restores a saved document. Records keep their ids;
// existing records with the same id are overwritten.
func (s *EditorService) ImportWorkspace(data []byte) (int, error) {
	var doc workspaceDocument
	if err := msgpack.Unmarshal(data, &doc); err != nil {
		return 0, pkg.WrapErrorf(err, pkg.ErrBadParamInput, "importWorkspace: not a workspace document")
	}
	if doc.Version != workspaceVersion {
		return 0, pkg.WrapErrorf(nil, pkg.ErrBadParamInput,
			"importWorkspace: unsupported version %d", doc.Version)
	}

	if err := s.store.SavePolygons(doc.Polygons); err != nil {
		return 0, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "importWorkspace")
	}

	s.log.Info("workspace imported", zap.Int("polygons", len(doc.Polygons)))
	return len(doc.Polygons), nil
}
