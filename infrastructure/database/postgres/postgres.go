package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
)

type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
}

var _ Conn = (*Connection)(nil)

type Connection struct {
	*sql.DB
}

// NewConnection opens a postgres-protocol connection. Both the application
// database and the analytics warehouse speak this protocol.
func NewConnection(ctx context.Context, dsn string) (*Connection, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}
