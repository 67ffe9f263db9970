package domain

import "time"

// ChannelDto é o canal de vendas como a API financeira devolve em /api/Channels
type ChannelDto struct {
	ID   int     `json:"id"`
	Name *string `json:"name"`
}

// FinancialRecordDto é um lançamento de receita ou despesa. Date vem em ISO 8601.
type FinancialRecordDto struct {
	Date        string  `json:"date"`
	Value       float64 `json:"value"`
	ChannelID   int     `json:"channelId"`
	ChannelName *string `json:"channelName"`
}

type InsightPeriodDto struct {
	From *string `json:"from"`
	To   *string `json:"to"`
}

type InsightDto struct {
	ID         *string          `json:"id"`
	Category   *string          `json:"category"`
	Title      *string          `json:"title"`
	Message    *string          `json:"message"`
	Severity   *string          `json:"severity"`
	Metric     *string          `json:"metric"`
	Value      float64          `json:"value"`
	Delta      *float64         `json:"delta"`
	Period     InsightPeriodDto `json:"period"`
	Confidence float64          `json:"confidence"`
	Evidence   []string         `json:"evidence"`
	Actions    []string         `json:"actions"`
}

type InsightResponseDto struct {
	Insights []InsightDto `json:"insights"`
}

// FinancialQueryParams são os filtros aceitos pelos endpoints /api/Financial/*
type FinancialQueryParams struct {
	StartDate  time.Time
	EndDate    time.Time
	ChannelIDs []int
}
