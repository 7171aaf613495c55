package utils

import "math"

// RoundMoney arredonda para centavos
func RoundMoney(amount float64) float64 {
	if amount == 0 {
		return 0
	}

	return math.Round(amount*100) / 100
}
