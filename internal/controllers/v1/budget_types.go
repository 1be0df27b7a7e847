package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
	ledger_uuid "github.com/pocketledger/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type BudgetEditable struct {
	UserID   uuid.UUID   `json:"userId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"` // ID of the user owning the budget
	Category string      `json:"category" example:"Food"`                               // The expense category the limit applies to
	Month    types.Month `json:"month" example:"2024-03"`                               // The month the limit applies to

	Limit decimal.Decimal `json:"limit" example:"270" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The spending limit
}

// model returns the database resource for the API representation of the editable fields
func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		UserID:   editable.UserID,
		Category: editable.Category,
		Month:    editable.Month,
		Limit:    editable.Limit,
	}
}

type BudgetLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/budgets/d430d7c3-d14c-4712-9336-ee56965a6673"` // The budget itself
}

// Budget is the representation of a Budget in API v1.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

// newBudget returns the API v1 representation of the resource
func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			UserID:   model.UserID,
			Category: model.Category,
			Month:    model.Month,
			Limit:    model.Limit,
		},
		Links: BudgetLinks{
			Self: fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
		},
	}
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`                                                          // List of budgets
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this budget
	Data  *Budget `json:"data"`                                                          // The Budget data
}

type BudgetQueryFilter struct {
	UserID   ledger_uuid.UUID `form:"user" filterField:"false"`  // ID of the user the budgets belong to
	Category string           `form:"category"`                  // Filter by category
	Month    types.Month      `form:"month" filterField:"false"` // Filter by month in YYYY-MM format
}

func (f BudgetQueryFilter) model() models.Budget {
	return models.Budget{
		Category: f.Category,
	}
}
