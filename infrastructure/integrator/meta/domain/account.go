package metadomain

type AdAccount struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
}

// TokenOwner é o dono do token retornado por /me
type TokenOwner struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
