package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/database"
)

// Options tunes a Connection.
type Options struct {
	// AccessKey replaces the password in the connection URL when set.
	AccessKey string
	// MaxConns caps the pool size. Zero keeps the pgx default.
	MaxConns int32
	// QueryTimeout bounds every repository call. Zero disables it.
	QueryTimeout time.Duration
	// Migrate applies pending schema migrations before returning.
	Migrate bool
}

type Connection struct {
	*pgxpool.Pool
	connConfig   *pgx.ConnConfig
	queryTimeout time.Duration
}

func NewConnection(ctx context.Context, dsn string, opts Options) (*Connection, error) {
	conf, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres dsn: %w", err)
	}
	if opts.AccessKey != "" {
		conf.ConnConfig.Password = opts.AccessKey
	}
	if opts.MaxConns > 0 {
		conf.MaxConns = opts.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection pool: %w", err)
	}

	conn := &Connection{
		Pool:         pool,
		connConfig:   conf.ConnConfig,
		queryTimeout: opts.QueryTimeout,
	}

	if opts.Migrate {
		if err := conn.Migrate(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
	}

	return conn, nil
}

// OpenSQL opens a database/sql handle for the same server, for tools such as
// goose that need one. The caller closes it.
func OpenSQL(dsn, accessKey string) (*sql.DB, error) {
	conf, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres dsn: %w", err)
	}
	if accessKey != "" {
		conf.Password = accessKey
	}
	return stdlib.OpenDB(*conf), nil
}

// Migrate applies pending schema migrations over a short-lived database/sql handle.
func (s *Connection) Migrate(ctx context.Context) error {
	db := stdlib.OpenDB(*s.connConfig)
	defer db.Close()

	return database.Migrate(ctx, db)
}

func (s *Connection) Close() error {
	if s.Pool != nil {
		s.Pool.Close()
	}
	return nil
}

func (s *Connection) Ping(ctx context.Context) error {
	if s.Pool == nil {
		return fmt.Errorf("connection pool is nil")
	}
	return s.Pool.Ping(ctx)
}

// withTimeout derives the per-call context for repository operations.
func (s *Connection) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}
