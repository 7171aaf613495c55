package utils

import (
	"strings"
	"time"
)

// DateOrDefault lê uma data YYYY-MM-DD; texto vazio devolve fallback
func DateOrDefault(value string, fallback time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}

	return time.Parse(time.DateOnly, value)
}
