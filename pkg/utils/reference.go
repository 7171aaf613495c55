package utils

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	referenceAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	referenceLength   = 6
)

// Reference gera um código curto legível, ex.: PAY-7KQ2XM
func Reference(prefix string) (string, error) {
	code, err := gonanoid.Generate(referenceAlphabet, referenceLength)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s-%s", prefix, code), nil
}
