package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/payout-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/payout-insights-api/infrastructure/mockdata"
	"github.com/vfg2006/payout-insights-api/internal/config"
	"github.com/vfg2006/payout-insights-api/internal/domain"
	"github.com/vfg2006/payout-insights-api/pkg/log"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS channels (
		id INTEGER PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		platform VARCHAR(20) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS payouts (
		id VARCHAR(64) PRIMARY KEY,
		platform VARCHAR(20) NOT NULL,
		channel_id INTEGER NOT NULL REFERENCES channels (id),
		gross_amount NUMERIC(12, 2) NOT NULL,
		fees NUMERIC(12, 2) NOT NULL,
		net_amount NUMERIC(12, 2) NOT NULL,
		date TIMESTAMPTZ NOT NULL,
		status VARCHAR(20) NOT NULL,
		probability NUMERIC(4, 3),
		transaction_id VARCHAR(32),
		description TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS payouts_date_idx ON payouts (date)`,
	`CREATE TABLE IF NOT EXISTS expenses (
		id VARCHAR(64) PRIMARY KEY,
		amount NUMERIC(12, 2) NOT NULL,
		date TIMESTAMPTZ NOT NULL,
		category VARCHAR(50) NOT NULL,
		description TEXT,
		platform VARCHAR(20),
		channel_id INTEGER
	)`,
	`CREATE INDEX IF NOT EXISTS expenses_date_idx ON expenses (date)`,
}

func createSchema(ctx context.Context, conn *postgres.Connection) error {
	logrus.Info("Criando tabelas...")

	for _, statement := range schema {
		if _, err := conn.Exec(ctx, statement); err != nil {
			return err
		}
	}

	logrus.Info("Tabelas criadas com sucesso")
	return nil
}

func hasData(ctx context.Context, conn *postgres.Connection) (bool, error) {
	var exists bool
	err := conn.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM payouts)`).Scan(&exists)
	return exists, err
}

func insertChannels(tx *sql.Tx) error {
	stmt, err := tx.Prepare(`INSERT INTO channels (id, name, platform) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, channel := range mockdata.Channels {
		if _, err := stmt.Exec(channel.ID, channel.Name, string(channel.Platform)); err != nil {
			return err
		}
	}

	logrus.Infof("%d canais inseridos", len(mockdata.Channels))
	return nil
}

func insertPayouts(tx *sql.Tx, payouts []domain.Payout) error {
	logrus.Infof("Iniciando inserção de %d repasses...", len(payouts))
	startTime := time.Now()

	stmt, err := tx.Prepare(`INSERT INTO payouts (id, platform, channel_id, gross_amount, fees, net_amount, date, status, probability, transaction_id, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, payout := range payouts {
		var probability sql.NullFloat64
		if payout.Probability != nil {
			probability = sql.NullFloat64{Float64: *payout.Probability, Valid: true}
		}

		_, err := stmt.Exec(
			payout.ID,
			string(payout.Platform),
			payout.ChannelID,
			payout.GrossAmount,
			payout.Fees,
			payout.NetAmount,
			payout.Date,
			string(payout.Status),
			probability,
			payout.TransactionID,
			payout.Description,
		)
		if err != nil {
			return err
		}

		if i > 0 && i%500 == 0 {
			logrus.Infof("Progresso: %d/%d repasses processados", i, len(payouts))
		}
	}

	logrus.Infof("Inserção de repasses concluída em %v", time.Since(startTime))
	return nil
}

func insertExpenses(tx *sql.Tx, expenses []domain.Expense) error {
	logrus.Infof("Iniciando inserção de %d despesas...", len(expenses))
	startTime := time.Now()

	stmt, err := tx.Prepare(`INSERT INTO expenses (id, amount, date, category, description, platform, channel_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, expense := range expenses {
		var (
			platform  sql.NullString
			channelID sql.NullInt64
		)
		if expense.Platform != nil {
			platform = sql.NullString{String: string(*expense.Platform), Valid: true}
			channelID = sql.NullInt64{Int64: int64(expense.ChannelID), Valid: true}
		}

		_, err := stmt.Exec(expense.ID, expense.Amount, expense.Date, expense.Category, expense.Description, platform, channelID)
		if err != nil {
			return err
		}
	}

	logrus.Infof("Inserção de despesas concluída em %v", time.Since(startTime))
	return nil
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("Erro ao carregar configuração: %v", err)
	}
	log.Configure(cfg.App.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	logrus.Info("Conectando ao banco de dados...")
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()
	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	if err := createSchema(ctx, conn); err != nil {
		logrus.Fatalf("ERRO ao criar tabelas: %v", err)
	}

	seeded, err := hasData(ctx, conn)
	if err != nil {
		logrus.Fatalf("ERRO ao verificar dados existentes: %v", err)
	}
	if seeded {
		logrus.Info("Tabelas já possuem dados, carga ignorada")
		return
	}

	generator := mockdata.NewGenerator(mockdata.Options{
		Seed:             cfg.MockData.Seed,
		PayoutsPerMonth:  cfg.MockData.PayoutsPerMonth,
		ExpensesPerMonth: cfg.MockData.ExpensesPerMonth,
	})
	payouts, expenses := generator.Generate()

	startTime := time.Now()
	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := insertChannels(tx); err != nil {
			return err
		}
		if err := insertPayouts(tx, payouts); err != nil {
			return err
		}
		return insertExpenses(tx, expenses)
	})
	if err != nil {
		logrus.Errorf("ERRO na carga inicial, transação revertida: %v", err)
		os.Exit(1)
	}

	logrus.Infof("Carga inicial concluída em %v!", time.Since(startTime))
}
