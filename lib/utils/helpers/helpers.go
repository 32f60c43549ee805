package helpers

import (
	"context"
	"regexp"
	"strings"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

var nameEmailRe = regexp.MustCompile(`^(.*?)\s*\(([^()@\s]+@[^()\s]+)\)\s*$`)

// ParseNameEmail splits a legacy "Name (email)" interviewer string. When no
// parenthesized email is present the whole input is returned as the name and
// email is empty.
func ParseNameEmail(value string) (name, email string) {
	value = strings.TrimSpace(value)
	m := nameEmailRe.FindStringSubmatch(value)
	if m == nil {
		return value, ""
	}
	return strings.TrimSpace(m[1]), m[2]
}
