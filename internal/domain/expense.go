package domain

import "time"

// Expense representa uma saída de caixa, opcionalmente vinculada a uma plataforma
type Expense struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Platform    *Platform `json:"platform,omitempty"`
	ChannelID   int       `json:"channel_id,omitempty"`
}

func (e Expense) RecordDate() time.Time {
	return e.Date
}

func (e Expense) RecordPlatform() (Platform, bool) {
	if e.Platform == nil {
		return "", false
	}
	return *e.Platform, true
}
