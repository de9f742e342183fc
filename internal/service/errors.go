package service

import "errors"

// ErrValidation is wrapped by all errors for invalid input. Invalid input
// is rejected before the store is accessed.
var ErrValidation = errors.New("invalid input")

// ErrAlertCheckFailed is wrapped when an expense was written but its
// budget could not be checked afterwards.
var ErrAlertCheckFailed = errors.New("the expense was saved, but the budget could not be checked")

var (
	errAmountNotPositive = errors.New("the amount must be positive")
	errLimitNotPositive  = errors.New("the limit must be positive")
	errDateNotSet        = errors.New("the date must be set")
	errMonthNotSet       = errors.New("the month must be set")
	errCategoryNotSet    = errors.New("the category must be set")
	errDescriptionEmpty  = errors.New("the description must not be empty")
	errCategoryNameEmpty = errors.New("the category name must not be empty")
)
