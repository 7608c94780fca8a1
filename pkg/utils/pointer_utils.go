package utils

import "time"

// SafeDeref safely dereferences a string pointer and returns empty string if nil
func SafeDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// SafeTime dereferences a time pointer and returns the zero time if nil
func SafeTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// SafeBool dereferences a bool pointer and returns false if nil
func SafeBool(b *bool) bool {
	return b != nil && *b
}
