package domain

import "time"

// Channel é um canal de vendas cadastrado na API financeira
type Channel struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Platform Platform `json:"platform,omitempty"`
}

// FinancialFilters delimita a janela e os canais de uma busca de dados financeiros
type FinancialFilters struct {
	StartDate  time.Time
	EndDate    time.Time
	ChannelIDs []int
}

// FinancialData é o retrato de repasses e despesas de uma janela
type FinancialData struct {
	Payouts  []Payout
	Expenses []Expense
	Source   string
	Fallback bool
}

// DayTransactions detalha as movimentações de um dia do gráfico.
// Os totais não aplicam probabilidade aos repasses esperados.
type DayTransactions struct {
	Date            string    `json:"date"`
	ReceivedPayouts []Payout  `json:"received_payouts"`
	ExpectedPayouts []Payout  `json:"expected_payouts"`
	Expenses        []Expense `json:"expenses"`
	TotalReceived   float64   `json:"total_received"`
	TotalExpected   float64   `json:"total_expected"`
	TotalExpenses   float64   `json:"total_expenses"`
}

// Dashboard agrega KPIs, gráfico e insights de um mesmo período
type Dashboard struct {
	Period   DateRange        `json:"period"`
	KPIs     KPIData          `json:"kpis"`
	Chart    []ChartDataPoint `json:"chart"`
	Insights []Insight        `json:"insights"`
	Source   string           `json:"source"`
	Fallback bool             `json:"fallback"`
}
