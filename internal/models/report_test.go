package models_test

import (
	"time"

	"github.com/pocketledger/backend/internal/categories"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestMonthlyReport() {
	user := suite.createTestUser(models.User{})
	month := types.NewMonth(2024, 3)

	_ = suite.createTestTransaction(models.Transaction{
		UserID: user.ID, Kind: categories.KindExpense, Category: "Food",
		Amount: decimal.NewFromFloat(50), Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	})
	_ = suite.createTestTransaction(models.Transaction{
		UserID: user.ID, Kind: categories.KindExpense, Category: "Food",
		Amount: decimal.NewFromFloat(30), Date: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
	})
	_ = suite.createTestTransaction(models.Transaction{
		UserID: user.ID, Kind: categories.KindIncome, Category: "Salary",
		Amount: decimal.NewFromFloat(2000), Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	_ = suite.createTestBudget(models.Budget{
		UserID: user.ID, Category: "Food", Month: month, Limit: decimal.NewFromFloat(60),
	})

	summary, err := models.MonthlyReport(models.DB, user.ID, month)
	suite.Require().Nil(err)

	suite.Assert().True(summary.TotalIncome.Equal(decimal.NewFromFloat(2000)), "income is %s", summary.TotalIncome)
	suite.Assert().True(summary.TotalExpense.Equal(decimal.NewFromFloat(80)), "expense is %s", summary.TotalExpense)
	suite.Assert().True(summary.NetSavings.Equal(decimal.NewFromFloat(1920)), "net savings is %s", summary.NetSavings)

	suite.Require().Len(summary.Categories, 2)

	// Ordered by total, descending
	salary := summary.Categories[0]
	suite.Assert().Equal("Salary", salary.Category)
	suite.Assert().Equal(categories.KindIncome, salary.Kind)
	suite.Assert().Nil(salary.Limit)
	suite.Assert().False(salary.OverBudget)

	food := summary.Categories[1]
	suite.Assert().Equal("Food", food.Category)
	suite.Require().NotNil(food.Limit)
	suite.Require().NotNil(food.Remaining)
	suite.Assert().True(food.Limit.Equal(decimal.NewFromFloat(60)))
	suite.Assert().True(food.Remaining.Equal(decimal.NewFromFloat(-20)), "remaining is %s", food.Remaining)
	suite.Assert().True(food.OverBudget)
}

func (suite *TestSuiteStandard) TestMonthlyReportNoBudgetNoWarning() {
	user := suite.createTestUser(models.User{})
	month := types.NewMonth(2024, 3)

	_ = suite.createTestTransaction(models.Transaction{
		UserID: user.ID, Kind: categories.KindExpense, Category: "Travel",
		Amount: decimal.NewFromFloat(1550), Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	})

	summary, err := models.MonthlyReport(models.DB, user.ID, month)
	suite.Require().Nil(err)
	suite.Require().Len(summary.Categories, 1)

	// A category without a budget never warns, a missing budget is not
	// a zero limit
	travel := summary.Categories[0]
	suite.Assert().Nil(travel.Limit)
	suite.Assert().Nil(travel.Remaining)
	suite.Assert().False(travel.OverBudget)
}

func (suite *TestSuiteStandard) TestMonthlyReportBudgetedCategoryWithoutSpending() {
	user := suite.createTestUser(models.User{})
	month := types.NewMonth(2024, 3)

	_ = suite.createTestBudget(models.Budget{
		UserID: user.ID, Category: "Rent", Month: month, Limit: decimal.NewFromFloat(700),
	})

	summary, err := models.MonthlyReport(models.DB, user.ID, month)
	suite.Require().Nil(err)
	suite.Require().Len(summary.Categories, 1)

	rent := summary.Categories[0]
	suite.Assert().Equal("Rent", rent.Category)
	suite.Assert().True(rent.Total.IsZero())
	suite.Require().NotNil(rent.Remaining)
	suite.Assert().True(rent.Remaining.Equal(decimal.NewFromFloat(700)))
	suite.Assert().False(rent.OverBudget)
}

func (suite *TestSuiteStandard) TestMonthlyReportSpendingAtLimit() {
	user := suite.createTestUser(models.User{})
	month := types.NewMonth(2024, 3)

	_ = suite.createTestTransaction(models.Transaction{
		UserID: user.ID, Kind: categories.KindExpense, Category: "Food",
		Amount: decimal.NewFromFloat(60), Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	})
	_ = suite.createTestBudget(models.Budget{
		UserID: user.ID, Category: "Food", Month: month, Limit: decimal.NewFromFloat(60),
	})

	summary, err := models.MonthlyReport(models.DB, user.ID, month)
	suite.Require().Nil(err)
	suite.Require().Len(summary.Categories, 1)

	// Spending exactly the limit is not over budget
	suite.Assert().False(summary.Categories[0].OverBudget)
	suite.Assert().True(summary.Categories[0].Remaining.IsZero())
}

func (suite *TestSuiteStandard) TestMonthlyReportEmpty() {
	user := suite.createTestUser(models.User{})

	summary, err := models.MonthlyReport(models.DB, user.ID, types.NewMonth(2024, 3))
	suite.Require().Nil(err)

	suite.Assert().True(summary.TotalIncome.IsZero())
	suite.Assert().True(summary.TotalExpense.IsZero())
	suite.Assert().True(summary.NetSavings.IsZero())
	suite.Assert().Empty(summary.Categories)
}

func (suite *TestSuiteStandard) TestMonthlyReportIgnoresOtherMonthsAndUsers() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})

	_ = suite.createTestTransaction(models.Transaction{
		UserID: user.ID, Kind: categories.KindExpense, Category: "Food",
		Amount: decimal.NewFromFloat(10), Date: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	})

	// Other month and other user must not show up
	_ = suite.createTestTransaction(models.Transaction{
		UserID: user.ID, Kind: categories.KindExpense, Category: "Food",
		Amount: decimal.NewFromFloat(100), Date: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	_ = suite.createTestTransaction(models.Transaction{
		UserID: other.ID, Kind: categories.KindExpense, Category: "Food",
		Amount: decimal.NewFromFloat(1000), Date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	})

	summary, err := models.MonthlyReport(models.DB, user.ID, types.NewMonth(2024, 3))
	suite.Require().Nil(err)
	suite.Assert().True(summary.TotalExpense.Equal(decimal.NewFromFloat(10)), "expense is %s", summary.TotalExpense)
}

func (suite *TestSuiteStandard) TestYearlyReport() {
	user := suite.createTestUser(models.User{})

	for month := 1; month <= 12; month++ {
		_ = suite.createTestTransaction(models.Transaction{
			UserID: user.ID, Kind: categories.KindIncome, Category: "Salary",
			Amount: decimal.NewFromFloat(2000), Date: time.Date(2024, time.Month(month), 1, 0, 0, 0, 0, time.UTC),
		})
	}

	_ = suite.createTestTransaction(models.Transaction{
		UserID: user.ID, Kind: categories.KindExpense, Category: "Rent",
		Amount: decimal.NewFromFloat(700), Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	// The previous year must not be included
	_ = suite.createTestTransaction(models.Transaction{
		UserID: user.ID, Kind: categories.KindExpense, Category: "Travel",
		Amount: decimal.NewFromFloat(99), Date: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
	})

	summary, err := models.YearlyReport(models.DB, user.ID, 2024)
	suite.Require().Nil(err)

	suite.Assert().Equal(2024, summary.Year)
	suite.Require().Len(summary.Months, 12)

	suite.Assert().True(summary.TotalIncome.Equal(decimal.NewFromFloat(24000)), "income is %s", summary.TotalIncome)
	suite.Assert().True(summary.TotalExpense.Equal(decimal.NewFromFloat(700)), "expense is %s", summary.TotalExpense)
	suite.Assert().True(summary.NetSavings.Equal(decimal.NewFromFloat(23300)), "net savings is %s", summary.NetSavings)

	// The year totals equal the sum of the monthly totals
	total := decimal.Zero
	for i, monthly := range summary.Months {
		suite.Assert().Equal(types.NewMonth(2024, time.Month(i+1)), monthly.Month)
		total = total.Add(monthly.NetSavings)
	}
	suite.Assert().True(total.Equal(summary.NetSavings))

	// Year-level categories are computed from the full-year set
	suite.Require().Len(summary.Categories, 2)
	suite.Assert().Equal("Salary", summary.Categories[0].Category)
	suite.Assert().True(summary.Categories[0].Total.Equal(decimal.NewFromFloat(24000)))
	suite.Assert().Equal("Rent", summary.Categories[1].Category)
}

func (suite *TestSuiteStandard) TestCategoryReport() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{Name: "other-ledger"})

	// Transactions spanning several years, all of them count
	_ = suite.createTestTransaction(models.Transaction{
		UserID: user.ID, Kind: categories.KindIncome, Category: "Salary",
		Amount: decimal.NewFromFloat(2000), Date: time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC),
	})
	_ = suite.createTestTransaction(models.Transaction{
		UserID: user.ID, Kind: categories.KindIncome, Category: "Salary",
		Amount: decimal.NewFromFloat(2100), Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	_ = suite.createTestTransaction(models.Transaction{
		UserID: user.ID, Kind: categories.KindExpense, Category: "Food",
		Amount: decimal.NewFromFloat(50), Date: time.Date(2023, 11, 5, 0, 0, 0, 0, time.UTC),
	})
	_ = suite.createTestTransaction(models.Transaction{
		UserID: user.ID, Kind: categories.KindExpense, Category: "Food",
		Amount: decimal.NewFromFloat(30), Date: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
	})

	_ = suite.createTestTransaction(models.Transaction{
		UserID: other.ID, Kind: categories.KindExpense, Category: "Rent",
		Amount: decimal.NewFromFloat(700), Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	// A monthly budget has no effect on the lifetime view
	_ = suite.createTestBudget(models.Budget{
		UserID: user.ID, Category: "Food", Month: types.NewMonth(2024, 3), Limit: decimal.NewFromFloat(60),
	})

	summary, err := models.CategoryReport(models.DB, user.ID)
	suite.Require().Nil(err)

	suite.Assert().True(summary.TotalIncome.Equal(decimal.NewFromFloat(4100)), "income is %s", summary.TotalIncome)
	suite.Assert().True(summary.TotalExpense.Equal(decimal.NewFromFloat(80)), "expense is %s", summary.TotalExpense)
	suite.Assert().True(summary.NetSavings.Equal(decimal.NewFromFloat(4020)), "net savings is %s", summary.NetSavings)

	suite.Require().Len(summary.Categories, 2)

	salary := summary.Categories[0]
	suite.Assert().Equal("Salary", salary.Category)
	suite.Assert().Equal(categories.KindIncome, salary.Kind)
	suite.Assert().True(salary.Total.Equal(decimal.NewFromFloat(4100)))

	food := summary.Categories[1]
	suite.Assert().Equal("Food", food.Category)
	suite.Assert().True(food.Total.Equal(decimal.NewFromFloat(80)))
	suite.Assert().Nil(food.Limit)
	suite.Assert().Nil(food.Remaining)
	suite.Assert().False(food.OverBudget)
}

func (suite *TestSuiteStandard) TestCategoryReportEmpty() {
	user := suite.createTestUser(models.User{})

	summary, err := models.CategoryReport(models.DB, user.ID)
	suite.Require().Nil(err)

	suite.Assert().True(summary.TotalIncome.IsZero())
	suite.Assert().True(summary.TotalExpense.IsZero())
	suite.Assert().True(summary.NetSavings.IsZero())
	suite.Assert().Empty(summary.Categories)
}
