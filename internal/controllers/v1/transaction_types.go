package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/categories"
	"github.com/pocketledger/backend/internal/models"
	ledger_uuid "github.com/pocketledger/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	UserID uuid.UUID       `json:"userId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"` // ID of the user owning the transaction
	Kind   categories.Kind `json:"kind" example:"EXPENSE"`                                // INCOME or EXPENSE
	// The category the transaction belongs to. Must be allowed for the kind.
	Category string `json:"category" example:"Food"`

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"14.03" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount of the transaction, must be positive

	Date time.Time `json:"date" example:"2024-03-12T00:00:00Z"` // Date of the transaction. Time is ignored, only the day matters
	Note string    `json:"note" example:"Lunch" default:""`     // A note
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		UserID:   editable.UserID,
		Kind:     editable.Kind,
		Category: editable.Category,
		Amount:   editable.Amount,
		Date:     editable.Date,
		Note:     editable.Note,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			UserID:   model.UserID,
			Kind:     model.Kind,
			Category: model.Category,
			Amount:   model.Amount,
			Date:     model.Date,
			Note:     model.Note,
		},
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if creation was successful
}

type TransactionQueryFilter struct {
	UserID    ledger_uuid.UUID `form:"user" filterField:"false"`      // ID of the user the transactions belong to
	Kind      categories.Kind  `form:"kind"`                          // Filter by kind
	Category  string           `form:"category"`                      // Filter by category
	Note      string           `form:"note" filterField:"false"`      // Note contains this string
	FromDate  time.Time        `form:"fromDate" filterField:"false"`  // Transactions at and after this date. Time is ignored.
	UntilDate time.Time        `form:"untilDate" filterField:"false"` // Transactions before and at this date. Time is ignored.
	Offset    uint             `form:"offset" filterField:"false"`    // The offset of the first Transaction returned. Defaults to 0.
	Limit     int              `form:"limit" filterField:"false"`     // Maximum number of Transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	// The date and string meta fields are handled in the controller
	return models.Transaction{
		UserID:   f.UserID.UUID,
		Kind:     f.Kind,
		Category: f.Category,
	}
}
