package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

var ErrCategoryNameNotUnique = errors.New("the category name must be unique")

// ErrReferenceNotFound is returned when a write references a resource that
// does not exist, e.g. an expense for a deleted category.
var ErrReferenceNotFound = errors.New("a resource referenced in your request does not exist")
