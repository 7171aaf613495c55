package domain

type Recommendation struct {
	Priority string `json:"priority"`
	Text     string `json:"text"`
}

type AnalysisReport struct {
	Summary         string           `json:"summary"`
	Insights        string           `json:"insights"`
	Recommendations []Recommendation `json:"recommendations"`
}

// AdSetAnalysisRequest identifica o ad set a ser analisado em detalhe
type AdSetAnalysisRequest struct {
	AdSetID      string `json:"adset_id"`
	AdSetName    string `json:"adset_name"`
	CampaignName string `json:"campaign_name"`
	Objective    string `json:"objective"`
}
