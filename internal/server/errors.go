// Package server provides the HTTP REST API for the hiring coordinator.
package server

import (
	"net/http"

	"github.com/jonathan/hiring-coordinator/internal/types"
)

// httpStatus maps a classified operation error to an HTTP status code.
func httpStatus(err error) int {
	return kindStatus(types.KindOf(err))
}

// kindStatus maps an error kind to an HTTP status code.
func kindStatus(kind types.ErrorKind) int {
	switch kind {
	case types.KindMissingParameter, types.KindInvalidTimePeriod:
		return http.StatusBadRequest
	case types.KindNotFound, types.KindNoInterviews:
		return http.StatusNotFound
	case types.KindUnknownAction, types.KindUnknownMetric:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
