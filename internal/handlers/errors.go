package handlers

import (
	"errors"
	"net/http"

	"journal-backend/internal/services"
	"journal-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// handleServiceError maps expected service failures onto the response
// envelope. Anything unrecognized is logged and reported as internal.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		utils.Conflict(c, err.Error())
	case errors.Is(err, services.ErrValidation):
		utils.Error(c, http.StatusBadRequest, err.Error())
	default:
		logrus.WithError(err).Error("service call failed")
		utils.InternalError(c)
	}
}

func currentUserID(c *gin.Context) string {
	userID, _ := c.Get("user_id")
	id, _ := userID.(string)
	return id
}
