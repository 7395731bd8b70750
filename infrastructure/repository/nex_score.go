// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/nexscore-api/infrastructure/database"
	"github.com/vfg2006/nexscore-api/internal/domain"
)

const (
	nexScoreTable = "nex_score ns"

	// Subconsulta com a data mais recente de cada par mercado/região
	latestPerMarketJoin = `(
		SELECT market, region, MAX(update_date) AS latest_update
		FROM nex_score
		GROUP BY market, region
	) latest ON ns.market = latest.market
		AND ns.region = latest.region
		AND ns.update_date = latest.latest_update`
)

var nexScoreColumns = []string{
	"ns.id",
	"ns.market",
	"ns.region",
	"ns.detractor_count",
	"ns.neutral_count",
	"ns.influencer_count",
	"ns.total",
	"ns.detractor_perc",
	"ns.neutral_perc",
	"ns.influencer_perc",
	"ns.update_date",
}

//go:generate mockgen -source=nex_score.go -destination=mocks/nex_score.go -package=mocks

type NexScoreRepository interface {
	Find(ctx context.Context, filter domain.NexScoreFilter) ([]domain.NexScore, error)
	FindLatestPerMarket(ctx context.Context, region string) ([]domain.NexScore, error)
	MaxUpdateDate(ctx context.Context) (*domain.Date, error)
	DistinctMarketRegions(ctx context.Context) ([]domain.MarketRegion, error)
	Count(ctx context.Context) (int64, error)
}

type nexScoreRepository struct {
	db          database.Queryer
	placeholder squirrel.PlaceholderFormat
}

func NewNexScoreRepository(conn *database.Connection) NexScoreRepository {
	return &nexScoreRepository{
		db:          conn,
		placeholder: conn.Placeholder,
	}
}

// Find busca os registros que batem exatamente com os filtros informados,
// ordenados por data de atualização
func (r *nexScoreRepository) Find(ctx context.Context, filter domain.NexScoreFilter) ([]domain.NexScore, error) {
	query := squirrel.
		Select(nexScoreColumns...).
		From(nexScoreTable).
		OrderBy("ns.update_date ASC", "ns.id ASC").
		PlaceholderFormat(r.placeholder)

	if filter.Region != "" {
		query = query.Where(squirrel.Eq{"ns.region": filter.Region})
	}
	if filter.Market != "" {
		query = query.Where(squirrel.Eq{"ns.market": filter.Market})
	}
	if filter.UpdateDate != nil {
		query = query.Where(squirrel.Eq{"ns.update_date": filter.UpdateDate.String()})
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryScores(ctx, sqlQuery, args...)
}

// FindLatestPerMarket busca o snapshot mais recente de cada par mercado/região.
// Se duas linhas do mesmo par compartilham a data máxima, ambas são retornadas.
func (r *nexScoreRepository) FindLatestPerMarket(ctx context.Context, region string) ([]domain.NexScore, error) {
	query := squirrel.
		Select(nexScoreColumns...).
		From(nexScoreTable).
		Join(latestPerMarketJoin).
		OrderBy("ns.region ASC", "ns.market ASC", "ns.id ASC").
		PlaceholderFormat(r.placeholder)

	if region != "" {
		query = query.Where(squirrel.Eq{"ns.region": region})
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryScores(ctx, sqlQuery, args...)
}

// MaxUpdateDate retorna a data de atualização mais recente da tabela, ou nil se vazia
func (r *nexScoreRepository) MaxUpdateDate(ctx context.Context) (*domain.Date, error) {
	sqlQuery, args, err := squirrel.
		Select("MAX(ns.update_date)").
		From(nexScoreTable).
		PlaceholderFormat(r.placeholder).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var latest domain.Date
	if err := r.db.QueryRowContext(ctx, sqlQuery, args...).Scan(&latest); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar data mais recente: %w", err)
	}

	if latest.IsZero() {
		return nil, nil
	}

	return &latest, nil
}

func (r *nexScoreRepository) DistinctMarketRegions(ctx context.Context) ([]domain.MarketRegion, error) {
	sqlQuery, args, err := squirrel.
		Select("ns.market", "ns.region").
		Distinct().
		From(nexScoreTable).
		OrderBy("ns.region ASC", "ns.market ASC").
		PlaceholderFormat(r.placeholder).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	values := make([]domain.MarketRegion, 0)
	for rows.Next() {
		var value domain.MarketRegion
		if err := rows.Scan(&value.Market, &value.Region); err != nil {
			return nil, fmt.Errorf("erro ao escanear mercado/região: %w", err)
		}
		values = append(values, value)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return values, nil
}

func (r *nexScoreRepository) Count(ctx context.Context) (int64, error) {
	sqlQuery, args, err := squirrel.
		Select("COUNT(*)").
		From(nexScoreTable).
		PlaceholderFormat(r.placeholder).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, sqlQuery, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar registros: %w", err)
	}

	return count, nil
}

func (r *nexScoreRepository) queryScores(ctx context.Context, sqlQuery string, args ...interface{}) ([]domain.NexScore, error) {
	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	scores := make([]domain.NexScore, 0)
	for rows.Next() {
		score, err := r.scanNexScore(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear nex score: %w", err)
		}
		scores = append(scores, *score)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return scores, nil
}

func (r *nexScoreRepository) scanNexScore(rows *sql.Rows) (*domain.NexScore, error) {
	score := &domain.NexScore{}

	err := rows.Scan(
		&score.ID,
		&score.Market,
		&score.Region,
		&score.DetractorCount,
		&score.NeutralCount,
		&score.InfluencerCount,
		&score.Total,
		&score.DetractorPerc,
		&score.NeutralPerc,
		&score.InfluencerPerc,
		&score.UpdateDate,
	)
	if err != nil {
		return nil, err
	}

	return score, nil
}
