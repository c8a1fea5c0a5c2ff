package utils

import (
	"strconv"
)

// ParseID converts a path segment to a row id, returning 0 when it is not a
// positive integer.
func ParseID(s string) int64 {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}
