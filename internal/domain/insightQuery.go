package domain

// InsightQuery reúne os filtros aceitos pelas consultas de KPIs, gráfico e insights.
// Platforms filtra KPIs e gráfico; os insights usam apenas o período.
type InsightQuery struct {
	DateRange  DateRange
	Platforms  []Platform
	ChannelIDs []int
	Interval   ChartInterval
	Categories []InsightCategory
	Dismissed  []string
}
