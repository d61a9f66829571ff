package handler

import (
	"errors"

	"fieldmate/internal/apperr"
	"fieldmate/pkg/response"

	"github.com/gin-gonic/gin"
)

// respondError maps a typed failure onto the response envelope. Geofence
// rejections carry the computed distance so the UI can show it.
func respondError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)

	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		if appErr.Code == apperr.CodeGeofenceRejected {
			c.JSON(status, response.ErrorWithData(status, appErr.Message, gin.H{
				"distanceMeters": appErr.DistanceMeters,
			}))
			return
		}
		c.JSON(status, response.Error(status, appErr.Message))
		return
	}

	c.JSON(status, response.Error(status, err.Error()))
}
