package domain

import (
	"fmt"
	"time"
)

// DateRange é um intervalo fechado [StartDate, EndDate]
type DateRange struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Label     string    `json:"label,omitempty"`
}

func (r DateRange) Duration() time.Duration {
	return r.EndDate.Sub(r.StartDate)
}

func (r DateRange) Validate() error {
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return fmt.Errorf("%w: datas de início e fim são obrigatórias", ErrInvalidDateRange)
	}
	if r.EndDate.Before(r.StartDate) {
		return fmt.Errorf("%w: data final anterior à data inicial", ErrInvalidDateRange)
	}
	return nil
}

type DateRangePreset string

const (
	PresetLastMonth  DateRangePreset = "last_month"
	PresetLast7Days  DateRangePreset = "last_7_days"
	PresetLast30Days DateRangePreset = "last_30_days"
	PresetLast90Days DateRangePreset = "last_90_days"
)

const DefaultDatePreset = PresetLastMonth

// RangeFromPreset resolve um preset relativo à data de referência.
// last_month vai do primeiro ao último dia do mês anterior, os demais terminam hoje.
func RangeFromPreset(preset DateRangePreset, now time.Time) (DateRange, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch preset {
	case "", PresetLastMonth:
		firstDayLastMonth := time.Date(today.Year(), today.Month()-1, 1, 0, 0, 0, 0, today.Location())
		lastDayLastMonth := time.Date(today.Year(), today.Month(), 0, 0, 0, 0, 0, today.Location())
		return DateRange{StartDate: firstDayLastMonth, EndDate: lastDayLastMonth, Label: "Last month"}, nil
	case PresetLast7Days:
		return DateRange{StartDate: today.AddDate(0, 0, -7), EndDate: today, Label: "Last 7 days"}, nil
	case PresetLast30Days:
		return DateRange{StartDate: today.AddDate(0, 0, -30), EndDate: today, Label: "Last 30 days"}, nil
	case PresetLast90Days:
		return DateRange{StartDate: today.AddDate(0, 0, -90), EndDate: today, Label: "Last 90 days"}, nil
	default:
		return DateRange{}, fmt.Errorf("%w: preset %q desconhecido", ErrInvalidDateRange, preset)
	}
}
