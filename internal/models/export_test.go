package models_test

import (
	"time"

	"github.com/pocketledger/backend/internal/categories"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestExportImportRoundTrip() {
	user := suite.createTestUser(models.User{})

	_ = suite.createTestTransaction(models.Transaction{
		UserID: user.ID, Kind: categories.KindIncome, Category: "Salary",
		Amount: decimal.NewFromFloat(2000), Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	_ = suite.createTestTransaction(models.Transaction{
		UserID: user.ID, Kind: categories.KindExpense, Category: "Food",
		Amount: decimal.NewFromFloat(17.23), Date: time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC), Note: "Lunch",
	})
	_ = suite.createTestBudget(models.Budget{
		UserID: user.ID, Category: "Food", Month: types.NewMonth(2024, 3), Limit: decimal.NewFromFloat(60),
	})

	snapshot, err := models.Export(models.DB, user.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(models.SnapshotVersion, snapshot.Version)
	suite.Require().Len(snapshot.Transactions, 2)
	suite.Require().Len(snapshot.Budgets, 1)

	err = models.Import(models.DB, user.ID, snapshot)
	suite.Require().Nil(err)

	restored, err := models.Export(models.DB, user.ID)
	suite.Require().Nil(err)

	// The restored ledger is identical, including the record IDs
	suite.Assert().Equal(snapshot.Transactions[0].ID, restored.Transactions[0].ID)
	suite.Assert().Equal(snapshot.Transactions[1].ID, restored.Transactions[1].ID)
	suite.Assert().Equal(snapshot.Budgets[0].ID, restored.Budgets[0].ID)
	suite.Assert().Equal(snapshot.Transactions[1].Note, restored.Transactions[1].Note)
	suite.Assert().True(snapshot.Transactions[1].Amount.Equal(restored.Transactions[1].Amount))
}

func (suite *TestSuiteStandard) TestImportReplacesLedger() {
	user := suite.createTestUser(models.User{})

	snapshot, err := models.Export(models.DB, user.ID)
	suite.Require().Nil(err)

	// Data created after the export is gone after the import
	_ = suite.createTestTransaction(models.Transaction{
		UserID: user.ID, Kind: categories.KindExpense, Category: "Food",
		Amount: decimal.NewFromFloat(30), Date: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
	})

	err = models.Import(models.DB, user.ID, snapshot)
	suite.Require().Nil(err)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Transaction{}).Where("user_id = ?", user.ID).Count(&count).Error)
	suite.Assert().Zero(count)
}

func (suite *TestSuiteStandard) TestImportInvalidRecordRollsBack() {
	user := suite.createTestUser(models.User{})

	existing := suite.createTestTransaction(models.Transaction{
		UserID: user.ID, Kind: categories.KindExpense, Category: "Food",
		Amount: decimal.NewFromFloat(30), Date: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
	})

	snapshot := models.Snapshot{
		Version: models.SnapshotVersion,
		Transactions: []models.Transaction{
			{
				UserID: user.ID, Kind: categories.KindIncome, Category: "Salary",
				Amount: decimal.NewFromFloat(2000), Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			},
			{
				// Invalid: negative amount
				UserID: user.ID, Kind: categories.KindExpense, Category: "Food",
				Amount: decimal.NewFromFloat(-1), Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	err := models.Import(models.DB, user.ID, snapshot)
	suite.Require().ErrorIs(err, models.ErrAmountNotPositive)

	// Nothing was written, the existing ledger is untouched
	var transactions []models.Transaction
	suite.Require().Nil(models.DB.Where("user_id = ?", user.ID).Find(&transactions).Error)
	suite.Require().Len(transactions, 1)
	suite.Assert().Equal(existing.ID, transactions[0].ID)
}

func (suite *TestSuiteStandard) TestImportVersionCheck() {
	user := suite.createTestUser(models.User{})

	err := models.Import(models.DB, user.ID, models.Snapshot{Version: "0"})
	suite.Assert().ErrorIs(err, models.ErrSnapshotVersion)

	err = models.Import(models.DB, user.ID, models.Snapshot{})
	suite.Assert().ErrorIs(err, models.ErrSnapshotVersion)
}

func (suite *TestSuiteStandard) TestImportOnlyTouchesImportingUser() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})

	foreign := suite.createTestTransaction(models.Transaction{
		UserID: other.ID, Kind: categories.KindExpense, Category: "Food",
		Amount: decimal.NewFromFloat(30), Date: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
	})

	err := models.Import(models.DB, user.ID, models.Snapshot{Version: models.SnapshotVersion})
	suite.Require().Nil(err)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Transaction{}).Where("user_id = ?", foreign.UserID).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}
