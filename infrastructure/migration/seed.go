// Package migration carrega cargas de NexScore no banco para ambientes locais
package migration

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/nexscore-api/infrastructure/database"
	"github.com/vfg2006/nexscore-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var insertColumns = []string{
	"market",
	"region",
	"detractor_count",
	"neutral_count",
	"influencer_count",
	"total",
	"detractor_perc",
	"neutral_perc",
	"influencer_perc",
	"update_date",
}

// ReadNexScores lê um array JSON no mesmo formato retornado por /nex-score/excel
func ReadNexScores(r io.Reader) ([]domain.NexScore, error) {
	var records []domain.NexScore
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("erro ao ler registros: %w", err)
	}

	for i, record := range records {
		if record.Market == "" || record.Region == "" || record.UpdateDate.IsZero() {
			return nil, fmt.Errorf("registro %d incompleto: market, region e update_date são obrigatórios", i)
		}
	}

	return records, nil
}

// LoadNexScores insere os registros em uma única transação. Os IDs do arquivo
// são ignorados e gerados pelo banco.
func LoadNexScores(ctx context.Context, conn *database.Connection, records []domain.NexScore) (int, error) {
	logrus.Infof("Iniciando inserção de %d registros de NexScore...", len(records))
	startTime := time.Now()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("erro ao iniciar transação: %w", err)
	}

	for i, record := range records {
		sqlQuery, args, err := squirrel.
			Insert("nex_score").
			Columns(insertColumns...).
			Values(
				record.Market,
				record.Region,
				record.DetractorCount,
				record.NeutralCount,
				record.InfluencerCount,
				record.Total,
				record.DetractorPerc,
				record.NeutralPerc,
				record.InfluencerPerc,
				record.UpdateDate.String(),
			).
			PlaceholderFormat(conn.Placeholder).
			ToSql()
		if err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logrus.WithError(rbErr).Error("Erro ao reverter transação")
			}
			return 0, fmt.Errorf("erro ao inserir registro %d (%s/%s): %w", i, record.Region, record.Market, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("erro ao confirmar transação: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"records": len(records),
		"elapsed": time.Since(startTime).String(),
	}).Info("Carga de NexScore concluída")

	return len(records), nil
}
