package period

import "errors"

var (
	ErrPeriodNotFound = errors.New("pay period not found")
	ErrInvalidPeriod  = errors.New("invalid pay period")
)
