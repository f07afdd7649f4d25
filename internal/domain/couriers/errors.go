package couriers

import "errors"

var ErrCourierNotFound = errors.New("courier not found")
