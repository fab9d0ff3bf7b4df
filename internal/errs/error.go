package errs

import (
	"errors"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
	ErrNotShelved = errors.New("you must add this book to your shelf first")
)
