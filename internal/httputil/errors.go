package httputil

import "errors"

var (
	ErrInvalidBody      = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
	ErrInvalidIndex     = errors.New("the row index must be a non-negative integer")
	ErrInvalidAmount    = errors.New("amounts must be numbers with a dot as decimal separator")
)
