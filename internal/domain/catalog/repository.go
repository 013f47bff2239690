package catalog

import "context"

type StatusRepository interface {
	GetStatusIDByName(ctx context.Context, name string) (string, error)
}
