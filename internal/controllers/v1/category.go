package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
)

type CategoryResponse struct {
	Data  *models.CategorySummary `json:"data"`  // The all-time category data
	Error *string                 `json:"error"` // The error, if any occurred
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsCategories)
		r.GET("", GetCategories)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategories(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get the category summary
// @Description	Returns the all-time income and spending per category for a user
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	CategoryResponse
// @Failure		400		{object}	CategoryResponse
// @Failure		500		{object}	CategoryResponse
// @Param			user	query		string	true	"ID of the user"
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	user, err := httputil.UUIDFromString(c.Query("user"))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &e,
		})
		return
	}

	if user == uuid.Nil {
		e := errUserParameterRequired.Error()
		c.JSON(http.StatusBadRequest, CategoryResponse{
			Error: &e,
		})
		return
	}

	summary, err := models.CategoryReport(models.DB, user)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: &summary})
}
