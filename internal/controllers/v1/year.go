package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
)

type YearResponse struct {
	Data  *models.YearlySummary `json:"data"`  // Data for the year
	Error *string               `json:"error"` // The error, if any occurred
}

type queryYear struct {
	Year int `form:"year" example:"2024"` // The calendar year
}

// RegisterYearRoutes registers the routes for years with
// the RouterGroup that is passed.
func RegisterYearRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsYear)
		r.GET("", GetYear)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Years
// @Success		204
// @Router			/v1/years [options]
func OptionsYear(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get the yearly report
// @Description	Returns the monthly summaries and year totals for a user and calendar year
// @Tags			Years
// @Produce		json
// @Success		200		{object}	YearResponse
// @Failure		400		{object}	YearResponse
// @Failure		500		{object}	YearResponse
// @Param			user	query		string	true	"ID of the user"
// @Param			year	query		int		true	"The calendar year"
// @Router			/v1/years [get]
func GetYear(c *gin.Context) {
	var query queryYear
	if err := c.BindQuery(&query); err != nil {
		e := errYearNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, YearResponse{
			Error: &e,
		})
		return
	}

	if query.Year < 1 {
		e := errYearNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, YearResponse{
			Error: &e,
		})
		return
	}

	user, err := httputil.UUIDFromString(c.Query("user"))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), YearResponse{
			Error: &e,
		})
		return
	}

	if user == uuid.Nil {
		e := errUserParameterRequired.Error()
		c.JSON(http.StatusBadRequest, YearResponse{
			Error: &e,
		})
		return
	}

	summary, err := models.YearlyReport(models.DB, user, query.Year)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), YearResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, YearResponse{Data: &summary})
}
