package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Validation errors. Every store operation re-checks these on writes,
// including writes that happen as part of a snapshot import.
var (
	ErrAmountNotPositive  = errors.New("the amount must be larger than zero")
	ErrKindInvalid        = errors.New("the transaction kind must be INCOME or EXPENSE")
	ErrCategoryEmpty      = errors.New("the category must not be empty")
	ErrCategoryNotAllowed = errors.New("the category is not allowed for this transaction kind")
	ErrDateNotSet         = errors.New("the date must be set")
	ErrLimitNegative      = errors.New("the budget limit must not be negative")
	ErrBudgetNotUnique    = errors.New("there already is a budget for this category and month")
	ErrMonthNotSet        = errors.New("the budget month must be set")
	ErrUserNotSet         = errors.New("the user ID must be set")
	ErrUsernameEmpty      = errors.New("the username must not be empty")
	ErrUsernameTaken      = errors.New("this username is already in use")
	ErrPasswordTooShort   = errors.New("the password must be at least 8 characters long")
	ErrCredentialsInvalid = errors.New("username or password is incorrect")
)

// Snapshot errors.
var (
	ErrSnapshotVersion = errors.New("the snapshot format version is not supported")
)
