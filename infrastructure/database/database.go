package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/nexscore-api/internal/config"
	_ "modernc.org/sqlite"
)

// Connection envolve o *sql.DB junto do formato de placeholder do driver
type Connection struct {
	*sql.DB
	Driver      string
	Placeholder squirrel.PlaceholderFormat
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	driver := strings.ToLower(cfg.Driver)
	if driver == "postgresql" {
		driver = config.DriverPostgres
	}

	if driver != config.DriverPostgres && driver != config.DriverSQLite {
		return nil, fmt.Errorf("database: driver não suportado: %s", cfg.Driver)
	}

	db, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return NewFromDB(db, driver), nil
}

// NewFromDB cria uma Connection a partir de um *sql.DB já aberto
func NewFromDB(db *sql.DB, driver string) *Connection {
	var placeholder squirrel.PlaceholderFormat = squirrel.Dollar
	if driver == config.DriverSQLite {
		placeholder = squirrel.Question
		// Com :memory: cada conexão abriria um banco diferente
		db.SetMaxOpenConns(1)
	}

	return &Connection{
		DB:          db,
		Driver:      driver,
		Placeholder: placeholder,
	}
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}
