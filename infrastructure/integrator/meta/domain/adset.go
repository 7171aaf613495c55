package metadomain

type Campaign struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Objective string `json:"objective"`
}

type AdSet struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Status          string    `json:"status"`
	EffectiveStatus string    `json:"effective_status"`
	Campaign        *Campaign `json:"campaign"`
}

// AdSetDetails traz orçamento e agenda. Orçamentos vêm em unidades menores (centavos).
type AdSetDetails struct {
	ID              string `json:"id"`
	AccountID       string `json:"account_id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	EffectiveStatus string `json:"effective_status"`
	DailyBudget     any    `json:"daily_budget"`
	LifetimeBudget  any    `json:"lifetime_budget"`
	BudgetRemaining any    `json:"budget_remaining"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
}

type Activity struct {
	EventType           string `json:"event_type"`
	TranslatedEventType string `json:"translated_event_type"`
	EventTime           string `json:"event_time"`
	ActorName           string `json:"actor_name"`
	ObjectID            string `json:"object_id"`
	ObjectName          string `json:"object_name"`
	ExtraData           string `json:"extra_data"`
}

type Ad struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Status          string    `json:"status"`
	EffectiveStatus string    `json:"effective_status"`
	Creative        *Creative `json:"creative"`
}

type Creative struct {
	ID           string `json:"id"`
	ThumbnailURL string `json:"thumbnail_url"`
	ImageURL     string `json:"image_url"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors  Cursors `json:"cursors"`
	Next     string  `json:"next"`
	Previous string  `json:"previous"`
}
