// Package repository contém as consultas de leitura sobre as tabelas financeiras
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/payout-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/payout-insights-api/internal/domain"
)

const (
	SourceName = "postgres"

	payoutsTable  = "payouts p"
	expensesTable = "expenses e"
	channelsTable = "channels c"
)

type FinancialRepository interface {
	ListChannels(ctx context.Context) ([]domain.Channel, error)
	ListPayouts(ctx context.Context, filters domain.FinancialFilters) ([]domain.Payout, error)
	ListExpenses(ctx context.Context, filters domain.FinancialFilters) ([]domain.Expense, error)
	GetFinancialData(ctx context.Context, filters domain.FinancialFilters) (*domain.FinancialData, error)
}

type financialRepository struct {
	conn postgres.Queryer
}

func NewFinancialRepository(conn postgres.Queryer) FinancialRepository {
	return &financialRepository{
		conn: conn,
	}
}

func (r *financialRepository) ListChannels(ctx context.Context) ([]domain.Channel, error) {
	query, args, err := buildChannelsQuery()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar canais: %w", err)
	}
	defer rows.Close()

	channels := make([]domain.Channel, 0)
	for rows.Next() {
		var (
			channel  domain.Channel
			platform string
		)
		if err := rows.Scan(&channel.ID, &channel.Name, &platform); err != nil {
			return nil, fmt.Errorf("erro ao escanear canal: %w", err)
		}
		channel.Platform = domain.Platform(platform)
		channels = append(channels, channel)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return channels, nil
}

func (r *financialRepository) ListPayouts(ctx context.Context, filters domain.FinancialFilters) ([]domain.Payout, error) {
	query, args, err := buildPayoutsQuery(filters)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar repasses: %w", err)
	}
	defer rows.Close()

	payouts := make([]domain.Payout, 0)
	for rows.Next() {
		payout, err := scanPayout(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear repasse: %w", err)
		}
		payouts = append(payouts, *payout)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return payouts, nil
}

func (r *financialRepository) ListExpenses(ctx context.Context, filters domain.FinancialFilters) ([]domain.Expense, error) {
	query, args, err := buildExpensesQuery(filters)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar despesas: %w", err)
	}
	defer rows.Close()

	expenses := make([]domain.Expense, 0)
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear despesa: %w", err)
		}
		expenses = append(expenses, *expense)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return expenses, nil
}

func (r *financialRepository) GetFinancialData(ctx context.Context, filters domain.FinancialFilters) (*domain.FinancialData, error) {
	payouts, err := r.ListPayouts(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}

	expenses, err := r.ListExpenses(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}

	return &domain.FinancialData{
		Payouts:  payouts,
		Expenses: expenses,
		Source:   SourceName,
	}, nil
}

func buildChannelsQuery() (string, []interface{}, error) {
	return squirrel.
		Select("c.id", "c.name", "c.platform").
		From(channelsTable).
		OrderBy("c.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildPayoutsQuery(filters domain.FinancialFilters) (string, []interface{}, error) {
	queryBuilder := squirrel.
		Select(
			"p.id",
			"p.platform",
			"p.channel_id",
			"p.gross_amount",
			"p.fees",
			"p.net_amount",
			"p.date",
			"p.status",
			"p.probability",
			"p.transaction_id",
			"p.description",
		).
		From(payoutsTable).
		OrderBy("p.date ASC", "p.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = queryBuilder.Where(windowFilter("p", filters))

	return queryBuilder.ToSql()
}

func buildExpensesQuery(filters domain.FinancialFilters) (string, []interface{}, error) {
	queryBuilder := squirrel.
		Select(
			"e.id",
			"e.amount",
			"e.date",
			"e.category",
			"e.description",
			"e.platform",
			"e.channel_id",
		).
		From(expensesTable).
		OrderBy("e.date ASC", "e.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = queryBuilder.Where(windowFilter("e", filters))

	return queryBuilder.ToSql()
}

// windowFilter monta o filtro fechado [StartDate, EndDate] e a lista de canais
func windowFilter(alias string, filters domain.FinancialFilters) squirrel.And {
	conditions := squirrel.And{}

	if !filters.StartDate.IsZero() {
		conditions = append(conditions, squirrel.GtOrEq{alias + ".date": filters.StartDate})
	}
	if !filters.EndDate.IsZero() {
		conditions = append(conditions, squirrel.LtOrEq{alias + ".date": filters.EndDate})
	}
	if len(filters.ChannelIDs) > 0 {
		conditions = append(conditions, squirrel.Eq{alias + ".channel_id": filters.ChannelIDs})
	}

	return conditions
}

func scanPayout(rows *sql.Rows) (*domain.Payout, error) {
	var (
		payout        domain.Payout
		platform      string
		status        string
		probability   sql.NullFloat64
		transactionID sql.NullString
		description   sql.NullString
		date          time.Time
	)

	err := rows.Scan(
		&payout.ID,
		&platform,
		&payout.ChannelID,
		&payout.GrossAmount,
		&payout.Fees,
		&payout.NetAmount,
		&date,
		&status,
		&probability,
		&transactionID,
		&description,
	)
	if err != nil {
		return nil, err
	}

	payout.Platform = domain.Platform(platform)
	payout.Status = domain.PayoutStatus(status)
	payout.Date = date.UTC()
	payout.TransactionID = transactionID.String
	payout.Description = description.String

	if probability.Valid {
		value := probability.Float64
		payout.Probability = &value
	}

	return &payout, nil
}

func scanExpense(rows *sql.Rows) (*domain.Expense, error) {
	var (
		expense     domain.Expense
		description sql.NullString
		platform    sql.NullString
		channelID   sql.NullInt64
		date        time.Time
	)

	err := rows.Scan(
		&expense.ID,
		&expense.Amount,
		&date,
		&expense.Category,
		&description,
		&platform,
		&channelID,
	)
	if err != nil {
		return nil, err
	}

	expense.Date = date.UTC()
	expense.Description = description.String
	expense.ChannelID = int(channelID.Int64)

	if platform.Valid && platform.String != "" {
		p := domain.Platform(platform.String)
		expense.Platform = &p
	}

	return &expense, nil
}
