package domain

const (
	StatusActive = "ACTIVE"
	StatusPaused = "PAUSED"

	ObjectiveNotAvailable = "N/A"
)

type AdSet struct {
	ID           string `json:"adset_id"`
	Name         string `json:"adset_name"`
	CampaignName string `json:"campaign_name"`
	Objective    string `json:"objective"`
	Status       string `json:"status"`
}

type Ad struct {
	ID           string `json:"ad_id"`
	Name         string `json:"ad_name"`
	Status       string `json:"status"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// AggregatedAdSetRecord é a linha do dashboard: conta + ad set + métricas
type AggregatedAdSetRecord struct {
	AccountID    string  `json:"account_id"`
	AccountName  string  `json:"account_name"`
	AvatarURL    string  `json:"avatarUrl"`
	AdSetID      string  `json:"adset_id"`
	AdSetName    string  `json:"adset_name"`
	CampaignName string  `json:"campaign_name"`
	Status       string  `json:"status"`
	Objective    string  `json:"objective"`
	Spend        float64 `json:"spend"`
	Leads        int     `json:"leads"`
	CPL          float64 `json:"cpl"`
	CPM          float64 `json:"cpm"`
	CTRAll       float64 `json:"ctr_all"`
	LinkClicks   int     `json:"link_clicks"`
	Impressions  int     `json:"impressions"`
	Frequency    float64 `json:"frequency"`
}

// AdRecord é a linha de um anúncio dentro de um ad set
type AdRecord struct {
	AdID         string  `json:"ad_id"`
	AdName       string  `json:"ad_name"`
	Status       string  `json:"status"`
	ThumbnailURL string  `json:"thumbnail_url"`
	Spend        float64 `json:"spend"`
	Impressions  int     `json:"impressions"`
	Clicks       int     `json:"clicks"`
	LinkClicks   int     `json:"link_clicks"`
	Leads        int     `json:"leads"`
	CPA          float64 `json:"cpa"`
	CTR          float64 `json:"ctr"`
	CTRLink      float64 `json:"ctr_link"`
	CPM          float64 `json:"cpm"`
	Frequency    float64 `json:"frequency"`
}

type AdSetDailyStat struct {
	Date        string  `json:"date"`
	Spent       float64 `json:"spent"`
	Leads       int     `json:"leads"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	LinkClicks  int     `json:"link_clicks"`
	Frequency   float64 `json:"frequency"`
	CPL         float64 `json:"cpl"`
}

const (
	BudgetTypeDaily    = "daily"
	BudgetTypeLifetime = "lifetime"
	BudgetTypeNone     = "none"
)

// AdSetDetails traz orçamento em unidades maiores (moeda) e agenda
type AdSetDetails struct {
	ID              string  `json:"id"`
	AccountID       string  `json:"account_id"`
	Name            string  `json:"name"`
	Status          string  `json:"status"`
	BudgetType      string  `json:"budget_type"`
	DailyBudget     float64 `json:"daily_budget"`
	LifetimeBudget  float64 `json:"lifetime_budget"`
	BudgetRemaining float64 `json:"budget_remaining"`
	StartTime       string  `json:"start_time,omitempty"`
	EndTime         string  `json:"end_time,omitempty"`
}

type AdSetActivity struct {
	EventType  string `json:"event_type"`
	EventLabel string `json:"event_label"`
	EventTime  string `json:"event_time"`
	ActorName  string `json:"actor_name"`
	ObjectName string `json:"object_name"`
	ExtraData  string `json:"extra_data,omitempty"`
}

// BudgetUpdate usa unidades menores (centavos), como o Meta espera
type BudgetUpdate struct {
	DailyBudget    *int64  `json:"daily_budget" validate:"omitempty,gt=0"`
	LifetimeBudget *int64  `json:"lifetime_budget" validate:"omitempty,gt=0"`
	EndTime        *string `json:"end_time" validate:"omitempty"`
}

func (b BudgetUpdate) IsEmpty() bool {
	return b.DailyBudget == nil && b.LifetimeBudget == nil && (b.EndTime == nil || *b.EndTime == "")
}

// AdSetSettings é o ad set como vem do Meta, com orçamento em unidades menores
type AdSetSettings struct {
	ID              string
	AccountID       string
	Name            string
	Status          string
	DailyBudget     any
	LifetimeBudget  any
	BudgetRemaining any
	StartTime       string
	EndTime         string
}
