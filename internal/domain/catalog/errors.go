package catalog

import "errors"

var ErrStatusNotFound = errors.New("status not found")
