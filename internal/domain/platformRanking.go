package domain

import "time"

// PlatformRankingItem representa a posição de uma plataforma no ranking de participação na receita
type PlatformRankingItem struct {
	Platform         Platform `json:"platform"`
	Label            string   `json:"label"`
	Color            string   `json:"color"`
	Income           float64  `json:"income"`
	Share            float64  `json:"share"`
	PreviousShare    float64  `json:"previous_share"`
	ShareDelta       float64  `json:"share_delta"`
	Growth           float64  `json:"growth"`
	Position         int      `json:"position"`
	PreviousPosition int      `json:"previous_position"`
	PositionChange   int      `json:"position_change"`
}

type PlatformRankingResponse struct {
	Period     InsightPeriod         `json:"period"`
	Ranking    []PlatformRankingItem `json:"ranking"`
	LastUpdate time.Time             `json:"last_update"`
}
