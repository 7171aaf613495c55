package domain

import "time"

type Client struct {
	ID                int       `json:"id"`
	AccountID         string    `json:"account_id"`
	AccountName       string    `json:"account_name"`
	AvatarURL         *string   `json:"avatar_url"`
	MonthlyBudget     float64   `json:"monthly_budget"`
	StartDate         string    `json:"start_date"`
	MonthlyPaymentAZN float64   `json:"monthly_payment_azn"`
	TotalPaid         float64   `json:"total_paid"`
	LastPaymentAt     *string   `json:"last_payment_at"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type CreateClientRequest struct {
	AccountID         string  `json:"account_id" validate:"required"`
	AccountName       string  `json:"account_name" validate:"required"`
	AvatarURL         *string `json:"avatar_url" validate:"omitempty,url"`
	MonthlyBudget     float64 `json:"monthly_budget" validate:"gte=0"`
	StartDate         string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	MonthlyPaymentAZN float64 `json:"monthly_payment_azn" validate:"gte=0"`
}

type UpdateClientRequest struct {
	AccountName       *string  `json:"account_name" validate:"omitempty,min=1"`
	AvatarURL         *string  `json:"avatar_url" validate:"omitempty,url"`
	MonthlyBudget     *float64 `json:"monthly_budget" validate:"omitempty,gte=0"`
	StartDate         *string  `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	MonthlyPaymentAZN *float64 `json:"monthly_payment_azn" validate:"omitempty,gte=0"`
}

func (r UpdateClientRequest) IsEmpty() bool {
	return r.AccountName == nil && r.AvatarURL == nil && r.MonthlyBudget == nil &&
		r.StartDate == nil && r.MonthlyPaymentAZN == nil
}

type Payment struct {
	ID        int       `json:"id"`
	AccountID string    `json:"account_id"`
	Amount    float64   `json:"amount"`
	PaidAt    string    `json:"paid_at"`
	Note      *string   `json:"note"`
	Reference string    `json:"reference"`
	CreatedAt time.Time `json:"created_at"`
}

type CreatePaymentRequest struct {
	Amount float64 `json:"amount" validate:"gt=0"`
	PaidAt string  `json:"paid_at" validate:"omitempty,datetime=2006-01-02"`
	Note   *string `json:"note" validate:"omitempty,max=500"`
}

type AvatarSetting struct {
	ID        int       `json:"id"`
	AccountID string    `json:"accountId"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateAvatarRequest struct {
	AccountID string `json:"accountId" validate:"required"`
	ImageURL  string `json:"imageUrl" validate:"required,url"`
}

// DiscoveredAccount é uma conta do Meta oferecida para cadastro como cliente
type DiscoveredAccount struct {
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
	Registered  bool   `json:"registered"`
}
