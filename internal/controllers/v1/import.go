package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
)

// RegisterImportRoutes registers the routes for imports with
// the RouterGroup that is passed.
func RegisterImportRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsImport)
		r.POST("", PostImport)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Import
// @Description	Replaces all transactions and budgets of a user with the contents of the snapshot. Either the whole snapshot is restored or, if any record is invalid, nothing changes.
// @Tags			Import
// @Accept		json
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			user		query		string			true	"ID of the user"
// @Param			snapshot	body		models.Snapshot	true	"The snapshot to restore"
// @Router			/v1/import [post]
func PostImport(c *gin.Context) {
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

	var snapshot models.Snapshot
	err = httputil.BindData(c, &snapshot)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.Import(models.DB, user, snapshot)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
