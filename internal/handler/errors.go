package handler

import (
	"errors"
	"net/http"

	"room-review-backend/internal/registry"
	"room-review-backend/internal/service"
	"room-review-backend/internal/storage"
	"room-review-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors to HTTP statuses. Validation failures
// are client errors; persistence failures are server errors but the
// in-memory mutation is already applied, so the message tells the caller
// a retry of the save may succeed.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, registry.ErrNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, registry.ErrUnknownOffice),
		errors.Is(err, registry.ErrUnknownFloor),
		errors.Is(err, service.ErrNothingSelected):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, registry.ErrFloorFull),
		errors.Is(err, registry.ErrDuplicateRoom):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, storage.ErrPersistence):
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, "internal error")
	}
}
