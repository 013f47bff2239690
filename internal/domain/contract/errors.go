package contract

import "errors"

var (
	ErrNoActiveContract = errors.New("employee has no active employment contract")
	ErrInvalidContract  = errors.New("contract has non-positive salary or weekly hours")
)
