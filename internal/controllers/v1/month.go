package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
)

type MonthResponse struct {
	Data  *models.MonthlySummary `json:"data"`  // Data for the month
	Error *string                `json:"error"` // The error, if any occurred
}

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsMonth)
		r.GET("", GetMonth)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get the monthly report
// @Description	Returns the income, spending and budget data for a user and month
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			user	query		string	true	"ID of the user"
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Router			/v1/months [get]
func GetMonth(c *gin.Context) {
	user, month, err := parseMonthQuery(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &e,
		})
		return
	}

	summary, err := models.MonthlyReport(models.DB, user, month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, MonthResponse{Data: &summary})
}

// parseMonthQuery takes in the context and parses the user and month
// query parameters. Both are required.
func parseMonthQuery(c *gin.Context) (uuid.UUID, types.Month, error) {
	var query QueryMonth
	if err := c.BindQuery(&query); err != nil {
		return uuid.Nil, types.Month{}, errMonthNotSetInQuery
	}

	if query.Month.IsZero() {
		return uuid.Nil, types.Month{}, errMonthNotSetInQuery
	}

	user, err := httputil.UUIDFromString(c.Query("user"))
	if err != nil {
		return uuid.Nil, types.Month{}, err
	}

	if user == uuid.Nil {
		return uuid.Nil, types.Month{}, errUserParameterRequired
	}

	return user, types.MonthOf(query.Month), nil
}
