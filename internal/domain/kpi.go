package domain

// KPIMetric é o total do período com a variação em relação ao período anterior
type KPIMetric struct {
	Total            float64 `json:"total"`
	Change           float64 `json:"change"`
	ChangePercentage float64 `json:"change_percentage"`
}

type KPIData struct {
	Received KPIMetric `json:"received"`
	Expected KPIMetric `json:"expected"`
	Expenses KPIMetric `json:"expenses"`
}

type ChartInterval string

const (
	ChartIntervalDaily  ChartInterval = "daily"
	ChartIntervalWeekly ChartInterval = "weekly"
)

func (i ChartInterval) IsValid() bool {
	return i == ChartIntervalDaily || i == ChartIntervalWeekly
}

// ChartDataPoint é um balde do gráfico. Date é o início do balde em YYYY-MM-DD.
type ChartDataPoint struct {
	Date     string   `json:"date"`
	Received *float64 `json:"received,omitempty"`
	Expected *float64 `json:"expected,omitempty"`
	Expenses *float64 `json:"expenses,omitempty"`
}
