package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
)

// RegisterExportRoutes registers the routes for exports with
// the RouterGroup that is passed.
func RegisterExportRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsExport)
		r.GET("", GetExport)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export
// @Description	Exports all transactions and budgets of a user as a snapshot. The response body can be sent to the import endpoint unchanged.
// @Tags			Export
// @Produce		json
// @Success		200		{object}	models.Snapshot
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			user	query		string	true	"ID of the user"
// @Router			/v1/export [get]
func GetExport(c *gin.Context) {
	user, err := httputil.UUIDFromString(c.Query("user"))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if user == uuid.Nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errUserParameterRequired.Error(),
		})
		return
	}

	snapshot, err := models.Export(models.DB, user)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
