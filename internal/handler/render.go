package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pixelpost/internal/transport/httpdto"
	pixel_errors "pixelpost/pkg/errors"
)

// renderError maps domain errors onto status codes with a detail body.
func renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pixel_errors.ErrNotFound):
		c.JSON(http.StatusNotFound, httpdto.NewErrorResponse("Post not found"))
	case errors.Is(err, pixel_errors.ErrForbidden):
		c.JSON(http.StatusForbidden, httpdto.NewErrorResponse("Not authorized to perform this action"))
	case errors.Is(err, pixel_errors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized"))
	case errors.Is(err, pixel_errors.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid input"))
	case errors.Is(err, pixel_errors.ErrAlreadyExists):
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("already exists"))
	default:
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse(err.Error()))
	}
}
