package config

import (
	"fmt"
	"strings"
)

// ConfigurationError indica que faltam chaves obrigatórias
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("not configured: missing %s", strings.Join(e.Missing, ", "))
}
