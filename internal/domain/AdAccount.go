package domain

import "strings"

// AdAccount é uma conta de anúncios descoberta no Meta. Nunca é persistida.
type AdAccount struct {
	ID   string `json:"account_id"`
	Name string `json:"account_name"`
}

// CanonicalAccountID remove o prefixo act_ do id da conta
func CanonicalAccountID(accountID string) string {
	return strings.TrimPrefix(strings.TrimSpace(accountID), "act_")
}
