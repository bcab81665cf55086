package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lintang-b-s/go-area-edit/pkg"

	"go.uber.org/zap"
)

type envelope map[string]interface{}

// writeJSON marshals data structure to encoded JSON response.
func (api *editorAPI) writeJSON(w http.ResponseWriter, status int, data envelope,
	headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}

	js = append(js, '\n')
	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(js); err != nil {
		api.log.Error("failed to write JSON response", zap.Error(err))
		return err
	}

	return nil
}

func (api *editorAPI) errorResponse(w http.ResponseWriter, r *http.Request,
	status int, message string) {
	body := errorResponseBody{}
	body.Error.Code = http.StatusText(status)
	body.Error.Message = message

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		api.log.Error("failed to write error response", zap.Error(err))
	}
}

func (api *editorAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (api *editorAPI) NotFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusNotFound, err.Error())
}

func (api *editorAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.log.Error("internal server error",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err))
	api.errorResponse(w, r, http.StatusInternalServerError, pkg.MessageInternalServerError)
}

// serviceErrorResponse maps the service's sentinel codes onto HTTP status
// codes.
func (api *editorAPI) serviceErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, pkg.ErrNotFound):
		api.NotFoundResponse(w, r, err)
	case errors.Is(err, pkg.ErrBadParamInput),
		errors.Is(err, pkg.ErrDegeneratePolygon),
		errors.Is(err, pkg.ErrEmptyInput),
		errors.Is(err, pkg.ErrInvalidCoordinate):
		api.BadRequestResponse(w, r, err)
	default:
		api.ServerErrorResponse(w, r, err)
	}
}
