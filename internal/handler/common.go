// Package handler implements the HTTP route handlers. Handlers read form
// input, call into the repository layer and answer with JSON; every error
// is recovered here and mapped onto a user-visible response.
package handler

import (
	"errors"
	"strconv"
	"time"
)

// getUserID converts the session middleware's user_id context value into
// a uint64. JWT numeric claims decode as float64, so a type switch covers
// the shapes the claim can arrive in.
func getUserID(v interface{}) (uint64, error) {
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// dbTimeout bounds every per-request database call.
const dbTimeout = 5 * time.Second
