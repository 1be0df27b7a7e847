package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
	"github.com/pocketledger/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestBudgetSet() {
	user := suite.createTestUser(models.User{})

	recorder := test.Request(suite.T(), http.MethodPut, "/v1/budgets", v1.BudgetEditable{
		UserID:   user.ID,
		Category: "Food",
		Month:    types.NewMonth(2024, 3),
		Limit:    decimal.NewFromFloat(270),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Food", response.Data.Category)
	suite.Assert().Contains(response.Data.Links.Self, "/v1/budgets/")

	// Setting the same category and month again updates the existing budget
	recorder = test.Request(suite.T(), http.MethodPut, "/v1/budgets", v1.BudgetEditable{
		UserID:   user.ID,
		Category: "Food",
		Month:    types.NewMonth(2024, 3),
		Limit:    decimal.NewFromFloat(300),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &updated)
	suite.Require().NotNil(updated.Data)
	suite.Assert().Equal(response.Data.ID, updated.Data.ID)
	suite.Assert().True(updated.Data.Limit.Equal(decimal.NewFromFloat(300)))
}

func (suite *TestSuiteStandard) TestBudgetSetInvalid() {
	user := suite.createTestUser(models.User{})

	tests := []struct {
		name string
		body any
	}{
		{"income category", v1.BudgetEditable{
			UserID: user.ID, Category: "Salary", Month: types.NewMonth(2024, 3), Limit: decimal.NewFromFloat(100),
		}},
		{"negative limit", v1.BudgetEditable{
			UserID: user.ID, Category: "Food", Month: types.NewMonth(2024, 3), Limit: decimal.NewFromFloat(-1),
		}},
		{"broken body", `{ "category": "Food"`},
		{"empty body", ""},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := test.Request(suite.T(), http.MethodPut, "/v1/budgets", tt.body)
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsGetList() {
	user := suite.createTestUser(models.User{})

	_ = suite.createTestBudget(models.Budget{
		UserID: user.ID, Category: "Rent", Month: types.NewMonth(2024, 3), Limit: decimal.NewFromFloat(700),
	})
	_ = suite.createTestBudget(models.Budget{
		UserID: user.ID, Category: "Food", Month: types.NewMonth(2024, 3), Limit: decimal.NewFromFloat(270),
	})
	_ = suite.createTestBudget(models.Budget{
		UserID: user.ID, Category: "Food", Month: types.NewMonth(2024, 4), Limit: decimal.NewFromFloat(280),
	})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/budgets?user=%s", user.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// Sorted by month, then category
	suite.Require().Len(response.Data, 3)
	suite.Assert().Equal("Food", response.Data[0].Category)
	suite.Assert().Equal("Rent", response.Data[1].Category)
	suite.Assert().Equal(types.NewMonth(2024, 4), response.Data[2].Month)

	// Filtered by month
	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/budgets?user=%s&month=2024-04", user.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("Food", response.Data[0].Category)
}

func (suite *TestSuiteStandard) TestBudgetsGetListRequiresUser() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetGet() {
	user := suite.createTestUser(models.User{})
	budget := suite.createTestBudget(models.Budget{
		UserID: user.ID, Category: "Food", Month: types.NewMonth(2024, 3), Limit: decimal.NewFromFloat(270),
	})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/budgets/%s", budget.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(budget.ID, response.Data.ID)

	// A budget of another user is not found when the request is scoped
	other := suite.createTestUser(models.User{})
	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/budgets/%s?user=%s", budget.ID, other.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetDelete() {
	user := suite.createTestUser(models.User{})
	budget := suite.createTestBudget(models.Budget{
		UserID: user.ID, Category: "Food", Month: types.NewMonth(2024, 3), Limit: decimal.NewFromFloat(270),
	})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/budgets/%s", budget.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/budgets/%s", budget.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
