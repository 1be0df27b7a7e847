package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/categories"
	"github.com/pocketledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryBreakdown is the aggregated result for one category in a period.
//
// The budget fields are only set for expense categories that have a budget
// in the period. No budget means no overspend warning, a missing budget is
// not an implicit zero limit.
type CategoryBreakdown struct {
	Kind       categories.Kind  `json:"kind" example:"EXPENSE"`
	Category   string           `json:"category" example:"Food"`
	Total      decimal.Decimal  `json:"total" example:"80"`
	Limit      *decimal.Decimal `json:"limit,omitempty" example:"60"`      // The budget limit, if a budget exists
	Remaining  *decimal.Decimal `json:"remaining,omitempty" example:"-20"` // Limit minus total, may be negative
	OverBudget bool             `json:"overBudget" example:"true"`
}

// MonthlySummary is the report for one calendar month.
type MonthlySummary struct {
	Month        types.Month         `json:"month" example:"2024-03"`
	TotalIncome  decimal.Decimal     `json:"totalIncome" example:"2000"`
	TotalExpense decimal.Decimal     `json:"totalExpense" example:"80"`
	NetSavings   decimal.Decimal     `json:"netSavings" example:"1920"`
	Categories   []CategoryBreakdown `json:"categories"`
}

// YearlySummary aggregates the twelve months of a calendar year.
//
// The year-level totals and category breakdowns are computed from the
// full-year transaction set, not by summing the monthly values, so they
// stay exact regardless of how the months round.
type YearlySummary struct {
	Year         int                 `json:"year" example:"2024"`
	TotalIncome  decimal.Decimal     `json:"totalIncome" example:"24000"`
	TotalExpense decimal.Decimal     `json:"totalExpense" example:"11200"`
	NetSavings   decimal.Decimal     `json:"netSavings" example:"12800"`
	Months       []MonthlySummary    `json:"months"`
	Categories   []CategoryBreakdown `json:"categories"` // Year totals per category, no budget comparison
}

// CategorySummary is the all-time per-category view of a user's ledger.
//
// It covers every transaction regardless of date, so there is no budget
// comparison, budgets are monthly and have no lifetime counterpart.
type CategorySummary struct {
	TotalIncome  decimal.Decimal     `json:"totalIncome" example:"24000"`
	TotalExpense decimal.Decimal     `json:"totalExpense" example:"11200"`
	NetSavings   decimal.Decimal     `json:"netSavings" example:"12800"`
	Categories   []CategoryBreakdown `json:"categories"`
}

// CategoryReport computes the lifetime category summary for one user.
func CategoryReport(db *gorm.DB, userID uuid.UUID) (CategorySummary, error) {
	var transactions []Transaction
	err := db.
		Where(&Transaction{UserID: userID}).
		Order("transactions.date ASC, transactions.id ASC").
		Find(&transactions).Error
	if err != nil {
		return CategorySummary{}, err
	}

	totals := newTotals()
	for _, transaction := range transactions {
		totals.add(transaction)
	}

	return CategorySummary{
		TotalIncome:  totals.income,
		TotalExpense: totals.expense,
		NetSavings:   totals.income.Sub(totals.expense),
		Categories:   totals.breakdowns(nil),
	}, nil
}

// MonthlyReport computes the summary for one user and month.
//
// Reports are pure functions of the stores at query time, nothing here
// is persisted.
func MonthlyReport(db *gorm.DB, userID uuid.UUID, month types.Month) (MonthlySummary, error) {
	transactions, err := transactionsInRange(db, userID, month.First(), month.Next())
	if err != nil {
		return MonthlySummary{}, err
	}

	budgets, err := BudgetsForMonth(db, userID, month)
	if err != nil {
		return MonthlySummary{}, err
	}

	return summarizeMonth(month, transactions, budgets), nil
}

// YearlyReport computes the summary for one user and calendar year.
func YearlyReport(db *gorm.DB, userID uuid.UUID, year int) (YearlySummary, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	until := from.AddDate(1, 0, 0)

	transactions, err := transactionsInRange(db, userID, from, until)
	if err != nil {
		return YearlySummary{}, err
	}

	summary := YearlySummary{
		Year:   year,
		Months: make([]MonthlySummary, 0, 12),
	}

	// Partition the year's transactions into their months. A month
	// without transactions still gets a summary, with all totals zero.
	byMonth := make(map[types.Month][]Transaction)
	for _, transaction := range transactions {
		m := types.MonthOf(transaction.Date)
		byMonth[m] = append(byMonth[m], transaction)
	}

	for _, month := range types.MonthsOfYear(year) {
		budgets, err := BudgetsForMonth(db, userID, month)
		if err != nil {
			return YearlySummary{}, err
		}

		summary.Months = append(summary.Months, summarizeMonth(month, byMonth[month], budgets))
	}

	// Year-level totals from the full-year set
	totals := newTotals()
	for _, transaction := range transactions {
		totals.add(transaction)
	}

	summary.TotalIncome = totals.income
	summary.TotalExpense = totals.expense
	summary.NetSavings = totals.income.Sub(totals.expense)
	summary.Categories = totals.breakdowns(nil)

	return summary, nil
}

// transactionsInRange returns all transactions of a user with
// from <= date < until, ordered by date, then ID.
func transactionsInRange(db *gorm.DB, userID uuid.UUID, from, until time.Time) ([]Transaction, error) {
	var transactions []Transaction
	err := db.
		Where(&Transaction{UserID: userID}).
		Where("transactions.date >= date(?) AND transactions.date < date(?)", from, until).
		Order("transactions.date ASC, transactions.id ASC").
		Find(&transactions).Error

	return transactions, err
}

// summarizeMonth aggregates one month's transactions against its budgets.
func summarizeMonth(month types.Month, transactions []Transaction, budgets []Budget) MonthlySummary {
	totals := newTotals()
	for _, transaction := range transactions {
		totals.add(transaction)
	}

	return MonthlySummary{
		Month:        month,
		TotalIncome:  totals.income,
		TotalExpense: totals.expense,
		NetSavings:   totals.income.Sub(totals.expense),
		Categories:   totals.breakdowns(budgets),
	}
}

type categoryKey struct {
	kind     categories.Kind
	category string
}

// totals accumulates decimal sums per kind and category.
type totals struct {
	income     decimal.Decimal
	expense    decimal.Decimal
	byCategory map[categoryKey]decimal.Decimal
}

func newTotals() *totals {
	return &totals{
		income:     decimal.Zero,
		expense:    decimal.Zero,
		byCategory: make(map[categoryKey]decimal.Decimal),
	}
}

func (t *totals) add(transaction Transaction) {
	key := categoryKey{kind: transaction.Kind, category: transaction.Category}
	t.byCategory[key] = t.byCategory[key].Add(transaction.Amount)

	if transaction.Kind == categories.KindIncome {
		t.income = t.income.Add(transaction.Amount)
	} else {
		t.expense = t.expense.Add(transaction.Amount)
	}
}

// breakdowns builds the ordered category breakdown list.
//
// Expense categories with a budget are included even when nothing was
// spent. Ordering is deterministic: total descending, then category name
// ascending.
func (t *totals) breakdowns(budgets []Budget) []CategoryBreakdown {
	limits := make(map[string]decimal.Decimal, len(budgets))
	for _, budget := range budgets {
		limits[budget.Category] = budget.Limit

		// A budgeted category with no spending still shows up
		key := categoryKey{kind: categories.KindExpense, category: budget.Category}
		if _, ok := t.byCategory[key]; !ok {
			t.byCategory[key] = decimal.Zero
		}
	}

	breakdowns := make([]CategoryBreakdown, 0, len(t.byCategory))
	for key, total := range t.byCategory {
		breakdown := CategoryBreakdown{
			Kind:     key.kind,
			Category: key.category,
			Total:    total,
		}

		if key.kind == categories.KindExpense {
			if limit, ok := limits[key.category]; ok {
				remaining := limit.Sub(total)
				breakdown.Limit = &limit
				breakdown.Remaining = &remaining
				breakdown.OverBudget = total.GreaterThan(limit)
			}
		}

		breakdowns = append(breakdowns, breakdown)
	}

	sort.Slice(breakdowns, func(i, j int) bool {
		if !breakdowns[i].Total.Equal(breakdowns[j].Total) {
			return breakdowns[i].Total.GreaterThan(breakdowns[j].Total)
		}

		return breakdowns[i].Category < breakdowns[j].Category
	})

	return breakdowns
}
