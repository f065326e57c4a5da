package parlo

import "errors"

var (
	ErrInvalidLocaleData = errors.New("parlo: invalid locale data")
	ErrLocaleMismatch    = errors.New("parlo: locale does not match filename")
)
