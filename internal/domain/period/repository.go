package period

import "context"

type PeriodRepository interface {
	GetByID(ctx context.Context, id string) (PayPeriod, error)
}
