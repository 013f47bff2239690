package schedule

import "errors"

var ErrNoActiveSchedule = errors.New("contract has no active work schedule")
