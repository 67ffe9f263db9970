package domain

import "time"

type PayoutStatus string

const (
	PayoutStatusReceived   PayoutStatus = "received"
	PayoutStatusPending    PayoutStatus = "pending"
	PayoutStatusProcessing PayoutStatus = "processing"
	PayoutStatusFailed     PayoutStatus = "failed"
)

var statusLabels = map[PayoutStatus]string{
	PayoutStatusReceived:   "Received",
	PayoutStatusPending:    "Pending",
	PayoutStatusProcessing: "Processing",
	PayoutStatusFailed:     "Failed",
}

func (s PayoutStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// IsExpected indica se o repasse ainda não foi liquidado
func (s PayoutStatus) IsExpected() bool {
	return s == PayoutStatusPending || s == PayoutStatusProcessing
}

// Payout representa um repasse de uma plataforma de vendas, recebido ou esperado.
// NetAmount deve ser GrossAmount - Fees.
type Payout struct {
	ID            string       `json:"id"`
	Platform      Platform     `json:"platform"`
	ChannelID     int          `json:"channel_id,omitempty"`
	GrossAmount   float64      `json:"gross_amount"`
	Fees          float64      `json:"fees"`
	NetAmount     float64      `json:"net_amount"`
	Date          time.Time    `json:"date"`
	Status        PayoutStatus `json:"status"`
	Probability   *float64     `json:"probability,omitempty"`
	TransactionID string       `json:"transaction_id,omitempty"`
	Description   string       `json:"description,omitempty"`
}

func (p Payout) RecordDate() time.Time {
	return p.Date
}

func (p Payout) RecordPlatform() (Platform, bool) {
	return p.Platform, true
}
