package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/HungEzz/surfsui/internal/config"
)

// Conn is the connection surface the repositories depend on. The service is
// read-only, so there is no transaction support.
type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
	Stats() sql.DBStats
}

// Connection wraps the database/sql pool shared across requests.
type Connection struct {
	*sql.DB
}

// NewConnection opens the bounded connection pool. Acquisition blocks on the
// request context when the pool is exhausted; callers release connections via
// rows.Close on every exit path.
func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.PoolMaxOpen)
	db.SetMaxIdleConns(cfg.PoolMaxIdle)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}
