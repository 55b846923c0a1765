package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"travelbook/atlas/internal/common"
	"travelbook/atlas/internal/constants"
	"travelbook/atlas/internal/logging"
	"travelbook/atlas/internal/middleware"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Query and form parameters. An empty value counts as absent.

func optionalString(r *http.Request, name string) *string {
	v := r.FormValue(name)
	if v == "" {
		return nil
	}
	return &v
}

func requiredString(r *http.Request, name string) (string, error) {
	v := r.FormValue(name)
	if v == "" {
		return "", fmt.Errorf("%s: %s", constants.MsgMissingQueryParameter, name)
	}
	return v, nil
}

func optionalFloat(r *http.Request, name string) (*float64, error) {
	v := r.FormValue(name)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %s must be a number", constants.MsgInvalidQueryParameter, name)
	}
	return &f, nil
}

func optionalInt(r *http.Request, name string) (*int, error) {
	v := r.FormValue(name)
	if v == "" {
		return nil, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %s must be an integer", constants.MsgInvalidQueryParameter, name)
	}
	return &i, nil
}

func requiredFloat(r *http.Request, name string) (float64, error) {
	f, err := optionalFloat(r, name)
	if err != nil {
		return 0, err
	}
	if f == nil {
		return 0, fmt.Errorf("%s: %s", constants.MsgMissingQueryParameter, name)
	}
	return *f, nil
}

func requiredInt(r *http.Request, name string) (int, error) {
	i, err := optionalInt(r, name)
	if err != nil {
		return 0, err
	}
	if i == nil {
		return 0, fmt.Errorf("%s: %s", constants.MsgMissingQueryParameter, name)
	}
	return *i, nil
}

func respondBadRequest(w http.ResponseWriter, initTime time.Time, err error) {
	common.RespondError(w, initTime, err, constants.MsgInvalidQueryParameter, http.StatusBadRequest)
}

// respondStoreFailure logs the cause and answers 500 without leaking it.
func respondStoreFailure(w http.ResponseWriter, r *http.Request, initTime time.Time, err error) {
	logging.WithRequest(middleware.RequestIDFromContext(r.Context()), r.URL.Path).
		Errorw("Store operation failed", "error", err)
	common.RespondError(w, initTime, nil, constants.MsgStoreFailure, http.StatusInternalServerError)
}

func respondNotFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
}
