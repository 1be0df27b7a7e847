package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/categories"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction represents a single money movement in a user's ledger.
//
// The sign of the movement is implied by the Kind, the Amount is always
// positive.
type Transaction struct {
	DefaultModel
	UserID   uuid.UUID       `json:"userId" gorm:"index"`
	User     User            `json:"-"`
	Kind     categories.Kind `json:"kind"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Date     time.Time       `json:"date"` // Calendar date of the transaction. Time of day is ignored.
	Note     string          `json:"note,omitempty"`
}

// AfterFind updates the timestamps and the date to use UTC as
// timezone, not +0000. Yes, this is different.
func (t *Transaction) AfterFind(tx *gorm.DB) error {
	err := t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return nil
}

// BeforeSave validates the transaction and normalizes its fields.
//
// The rules here apply to every write, no matter whether it comes from
// the API or from a snapshot import.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Note = strings.TrimSpace(t.Note)
	t.Category = strings.TrimSpace(t.Category)

	if t.UserID == uuid.Nil {
		return ErrUserNotSet
	}

	if !t.Kind.Valid() {
		return ErrKindInvalid
	}

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if t.Date.IsZero() {
		return ErrDateNotSet
	}

	// Only the calendar date matters, normalize to midnight UTC so that
	// date range queries behave the same for every write path
	date := t.Date.In(time.UTC)
	t.Date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	if t.Category == "" {
		return ErrCategoryEmpty
	}

	canonical, ok := categories.Default.Canonical(t.Kind, t.Category)
	if !ok {
		return fmt.Errorf("%w: %q", ErrCategoryNotAllowed, t.Category)
	}
	t.Category = canonical

	return nil
}
