package pricing

import "errors"

var (
	ErrPriceNotFound = errors.New("no price entry for this combination")
	ErrEntryNotFound = errors.New("price entry not found")
	ErrInvalidValue  = errors.New("price value must not be negative")
)
