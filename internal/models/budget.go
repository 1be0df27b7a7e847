package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/categories"
	"github.com/pocketledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is the maximum intended spend for one expense category in one
// month. There is at most one budget per (user, category, month).
type Budget struct {
	DefaultModel
	UserID   uuid.UUID       `json:"userId" gorm:"index;uniqueIndex:budget_user_category_month"`
	User     User            `json:"-"`
	Category string          `json:"category" gorm:"uniqueIndex:budget_user_category_month"`
	Month    types.Month     `json:"month" gorm:"uniqueIndex:budget_user_category_month"`
	Limit    decimal.Decimal `json:"limit" gorm:"type:DECIMAL(20,8)"`
}

// BeforeSave validates the budget and normalizes its fields.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Category = strings.TrimSpace(b.Category)

	if b.UserID == uuid.Nil {
		return ErrUserNotSet
	}

	if b.Month.IsZero() {
		return ErrMonthNotSet
	}

	if b.Limit.IsNegative() {
		return ErrLimitNegative
	}

	if b.Category == "" {
		return ErrCategoryEmpty
	}

	// Budgets apply to spending, so the category has to be valid for
	// expense transactions
	canonical, ok := categories.Default.Canonical(categories.KindExpense, b.Category)
	if !ok {
		return fmt.Errorf("%w: %q", ErrCategoryNotAllowed, b.Category)
	}
	b.Category = canonical

	return nil
}

// SetBudget creates or replaces the budget for the (user, category, month)
// key. Setting an existing key overwrites the limit.
func SetBudget(db *gorm.DB, userID uuid.UUID, category string, month types.Month, limit decimal.Decimal) (Budget, error) {
	existing, err := GetBudget(db, userID, category, month)
	if err == nil {
		existing.Limit = limit
		err = db.Save(&existing).Error
		return existing, err
	}

	budget := Budget{
		UserID:   userID,
		Category: category,
		Month:    month,
		Limit:    limit,
	}

	err = db.Create(&budget).Error
	return budget, err
}

// GetBudget returns the budget for the (user, category, month) key.
// The category is matched in its canonical spelling.
func GetBudget(db *gorm.DB, userID uuid.UUID, category string, month types.Month) (Budget, error) {
	if canonical, ok := categories.Default.Canonical(categories.KindExpense, category); ok {
		category = canonical
	}

	var budget Budget
	err := db.
		Where(&Budget{UserID: userID, Category: category, Month: month}, "UserID", "Category", "Month").
		First(&budget).Error

	return budget, err
}

// BudgetsForMonth returns all budgets of a user for a month,
// ordered by category name.
func BudgetsForMonth(db *gorm.DB, userID uuid.UUID, month types.Month) ([]Budget, error) {
	var budgets []Budget
	err := db.
		Where(&Budget{UserID: userID, Month: month}, "UserID", "Month").
		Order("category ASC").
		Find(&budgets).Error

	return budgets, err
}

// BudgetsForUser returns all budgets of a user in a stable order.
func BudgetsForUser(db *gorm.DB, userID uuid.UUID) ([]Budget, error) {
	var budgets []Budget
	err := db.
		Where(&Budget{UserID: userID}).
		Order("month ASC, category ASC").
		Find(&budgets).Error

	return budgets, err
}
