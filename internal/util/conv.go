package util

import "strconv"

// ParseUintOrZero converts a path/query string to uint, returning 0 when
// it does not parse.
func ParseUintOrZero(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}
