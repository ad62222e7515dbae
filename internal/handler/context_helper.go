package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Jayantx07/Education-Point/internal/middleware"
	"github.com/Jayantx07/Education-Point/internal/models"
	appErrors "github.com/Jayantx07/Education-Point/pkg/errors"
	"github.com/Jayantx07/Education-Point/pkg/response"
)

func currentUser(c *gin.Context) *models.User {
	return middleware.CurrentUser(c)
}

// bindJSON decodes the body into dst and writes a 400 on failure.
func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message))
		return false
	}
	return true
}

// includeInactive honours ?includeInactive=true only for authenticated admins.
func includeInactive(c *gin.Context) bool {
	requested, _ := strconv.ParseBool(c.Query("includeInactive"))
	return requested && middleware.IsAdmin(c)
}
