package common

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateUUID generates a UUID string.
func GenerateUUID() string {
	return uuid.New().String()
}

// SafeString trims surrounding whitespace.
func SafeString(value string) string {
	return strings.TrimSpace(value)
}

// SafeLink trims a link field and caps it at 1024 characters.
func SafeLink(value string) string {
	return Truncate(strings.TrimSpace(value), 1024)
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
