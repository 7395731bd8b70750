package database

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/nexscore-api/internal/config"
)

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS nex_score (
		id SERIAL PRIMARY KEY,
		market VARCHAR(50) NOT NULL,
		region VARCHAR(50) NOT NULL,
		detractor_count INTEGER NOT NULL,
		neutral_count INTEGER NOT NULL,
		influencer_count INTEGER NOT NULL,
		total INTEGER NOT NULL,
		detractor_perc DOUBLE PRECISION NOT NULL,
		neutral_perc DOUBLE PRECISION NOT NULL,
		influencer_perc DOUBLE PRECISION NOT NULL,
		update_date DATE NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_nex_score_market_region_date ON nex_score (market, region, update_date)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS nex_score (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		market TEXT NOT NULL,
		region TEXT NOT NULL,
		detractor_count INTEGER NOT NULL,
		neutral_count INTEGER NOT NULL,
		influencer_count INTEGER NOT NULL,
		total INTEGER NOT NULL,
		detractor_perc REAL NOT NULL,
		neutral_perc REAL NOT NULL,
		influencer_perc REAL NOT NULL,
		update_date DATE NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_nex_score_market_region_date ON nex_score (market, region, update_date)`,
}

// EnsureSchema cria a tabela nex_score caso ainda não exista
func EnsureSchema(ctx context.Context, conn *Connection) error {
	statements := postgresSchema
	if conn.Driver == config.DriverSQLite {
		statements = sqliteSchema
	}

	for _, statement := range statements {
		if _, err := conn.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("erro ao criar schema: %w", err)
		}
	}

	logrus.WithField("driver", conn.Driver).Info("Schema nex_score verificado")
	return nil
}
