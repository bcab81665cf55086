package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/lintang-b-s/go-area-edit/pkg/datastructure"
	"github.com/lintang-b-s/go-area-edit/pkg/geo"
	geojsonCodec "github.com/lintang-b-s/go-area-edit/pkg/geojson"
	helper "github.com/lintang-b-s/go-area-edit/pkg/http/http-router/router-helper"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"

	"go.uber.org/zap"
)

const maxImportBytes = 8 << 20

type editorAPI struct {
	editorService EditorService
	log           *zap.Logger
}

func New(editorService EditorService, log *zap.Logger) *editorAPI {
	return &editorAPI{
		editorService: editorService,
		log:           log,
	}
}

func (api *editorAPI) Routes(group *helper.RouteGroup) {
	group.POST("/polygons", api.createPolygon)
	group.GET("/polygons", api.listPolygons)
	group.GET("/polygons/:id", api.getPolygon)
	group.DELETE("/polygons/:id", api.deletePolygon)
	group.PUT("/polygons/:id/vertices", api.updateVertices)
	group.POST("/polygons/:id/snap", api.snapToEdge)
	group.GET("/polygons/:id/geojson", api.exportGeoJSON)
	group.POST("/polygons/geojson", api.importGeoJSON)
	group.GET("/zone", api.lookupZone)
	group.POST("/area", api.planarArea)
	group.GET("/workspace/export", api.exportWorkspace)
	group.POST("/workspace/import", api.importWorkspace)
}

type errorResponseBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// polygonRequest model info
//
//	@Description	request body carrying polygon vertices as (lon, lat) degree pairs in boundary order.
type polygonRequest struct {
	Vertices [][]float64 `json:"vertices" validate:"required,min=3,dive,len=2"` // ordered boundary vertices, each [lon, lat]
}

// polygonResponse model info
//
//	@Description	one stored polygon with its frozen reference area and zone.
type polygonResponse struct {
	Data datastructure.Polygon `json:"data"`
}

func (api *editorAPI) validateStruct(request interface{}) []string {
	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		return vvString
	}
	return nil
}

// createPolygon godoc
// @Summary		register a newly drawn polygon; its planar area and UTM zone are frozen as the reference for every later edit.
// @Description	register a newly drawn polygon; its planar area and UTM zone are frozen as the reference for every later edit.
// @Tags			polygons
// @ID create-polygon
// @Param			body	body	polygonRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/polygons [post]
// @Success		201	{object}	polygonResponse
// @Failure		400	{object}	errorResponseBody
// @Failure		500	{object}	errorResponseBody
func (api *editorAPI) createPolygon(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request polygonRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if vv := api.validateStruct(request); vv != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vv))
		return
	}

	poly, err := api.editorService.CreatePolygon(toGeoPoints(request.Vertices))
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusCreated, envelope{"data": poly}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// updateVertices godoc
// @Summary		apply a drag-end edit; the vertices are rescaled so the polygon keeps its reference ground area.
// @Description	apply a drag-end edit; the vertices are rescaled so the polygon keeps its reference ground area.
// @Tags			polygons
// @ID update-vertices
// @Param			body	body	polygonRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/polygons/{id}/vertices [put]
// @Success		200	{object}	polygonResponse
// @Failure		400	{object}	errorResponseBody
// @Failure		404	{object}	errorResponseBody
// @Failure		500	{object}	errorResponseBody
func (api *editorAPI) updateVertices(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("invalid polygon id: %v", ps.ByName("id")))
		return
	}

	var request polygonRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if vv := api.validateStruct(request); vv != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vv))
		return
	}

	poly, err := api.editorService.UpdateVertices(id, toGeoPoints(request.Vertices))
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": poly}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func (api *editorAPI) getPolygon(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("invalid polygon id: %v", ps.ByName("id")))
		return
	}

	poly, err := api.editorService.GetPolygon(id)
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": poly}, make(http.Header)); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func (api *editorAPI) listPolygons(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	polys, err := api.editorService.ListPolygons()
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": polys}, make(http.Header)); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func (api *editorAPI) deletePolygon(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("invalid polygon id: %v", ps.ByName("id")))
		return
	}

	if err := api.editorService.DeletePolygon(id); err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// snapRequest model info
//
//	@Description	a tapped map location to project onto the polygon's nearest boundary edge.
type snapRequest struct {
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
}

func (api *editorAPI) snapToEdge(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("invalid polygon id: %v", ps.ByName("id")))
		return
	}

	var request snapRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if vv := api.validateStruct(request); vv != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vv))
		return
	}

	snapped, edge, err := api.editorService.SnapToEdge(id, request.Lon, request.Lat)
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK,
		envelope{"data": envelope{"point": snapped, "edge": edge}}, make(http.Header)); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func (api *editorAPI) exportGeoJSON(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("invalid polygon id: %v", ps.ByName("id")))
		return
	}

	poly, err := api.editorService.GetPolygon(id)
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	data, err := geojsonCodec.MarshalPolygon(poly)
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		api.log.Error("failed to write geojson response", zap.Error(err))
	}
}

func (api *editorAPI) importGeoJSON(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	vertices, err := geojsonCodec.UnmarshalPolygon(body)
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	poly, err := api.editorService.CreatePolygon(toGeoPoints(vertices))
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusCreated, envelope{"data": poly}, make(http.Header)); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// lookupZone godoc
// @Summary		pick the UTM zone and hemisphere for a lon/lat, the frame a polygon drawn there would use.
// @Description	pick the UTM zone and hemisphere for a lon/lat, the frame a polygon drawn there would use.
// @Tags			zone
// @ID lookup-zone
// @Produce		application/json
// @Router			/api/zone [get]
// @Success		200	{object}	envelope
// @Failure		400	{object}	errorResponseBody
func (api *editorAPI) lookupZone(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	lon, err := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("invalid lon query param"))
		return
	}
	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("invalid lat query param"))
		return
	}

	zone := api.editorService.LookupZone(lon, lat)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": zone}, make(http.Header)); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func (api *editorAPI) planarArea(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request polygonRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if vv := api.validateStruct(request); vv != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vv))
		return
	}

	area, zone, err := api.editorService.PlanarArea(toGeoPoints(request.Vertices))
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK,
		envelope{"data": envelope{"area_m2": area, "zone": zone}}, make(http.Header)); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func (api *editorAPI) exportWorkspace(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	data, err := api.editorService.ExportWorkspace()
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		api.log.Error("failed to write workspace export", zap.Error(err))
	}
}

func (api *editorAPI) importWorkspace(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	n, err := api.editorService.ImportWorkspace(body)
	if err != nil {
		api.serviceErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": envelope{"imported": n}}, make(http.Header)); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	validatorErrs := err.(validator.ValidationErrors)
	for _, e := range validatorErrs {
		translatedErr := fmt.Errorf(e.Translate(trans))
		errs = append(errs, translatedErr)
	}
	return errs
}

func toGeoPoints(pairs [][]float64) []geo.GeoPoint {
	points := make([]geo.GeoPoint, len(pairs))
	for i, p := range pairs {
		points[i] = geo.NewGeoPoint(p[0], p[1])
	}
	return points
}
