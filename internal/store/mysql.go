package store

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jekabolt/sales-panel/internal/dependency"
	"github.com/jmoiron/sqlx"
	migrate "github.com/rubenv/sql-migrate"
)

const (
	tlsConfigName   = "custom"
	migrationsTable = "sales_panel_migrations"
)

// Config defines configurations to connect database
type Config struct {
	DSN                string        `mapstructure:"dsn"`
	Automigrate        bool          `mapstructure:"automigrate"`
	MaxOpenConnections int           `mapstructure:"max_open_connections"`
	MaxIdleConnections int           `mapstructure:"max_idle_connections"`
	ConnMaxLifetime    time.Duration `mapstructure:"conn_max_lifetime"`
	TLSCAPath          string        `mapstructure:"tls_ca_path"`
}

// MYSQLStore implements methods to access MYSQL database
type MYSQLStore struct {
	db    dependency.DB
	tx    *sqlx.Tx
	ts    time.Time
	close context.CancelFunc
}

//go:embed sql
var migrations embed.FS

// dsn normalizes the configured DSN: timestamps are parsed into time.Time in
// UTC and the custom TLS config is used when a CA is configured.
func dsn(cfg Config) (string, error) {
	c, err := mysql.ParseDSN(cfg.DSN)
	if err != nil {
		return "", fmt.Errorf("invalid mysql dsn: %w", err)
	}
	c.ParseTime = true
	c.Loc = time.UTC
	if cfg.TLSCAPath != "" && c.TLSConfig == "" {
		c.TLSConfig = tlsConfigName
	}
	return c.FormatDSN(), nil
}

func registerTLSConfig(caPath string) error {
	if caPath == "" {
		return nil
	}
	pem, err := os.ReadFile(caPath)
	if err != nil {
		return fmt.Errorf("can't read CA certificate %s: %w", caPath, err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return fmt.Errorf("no certificates found in %s", caPath)
	}
	return mysql.RegisterTLSConfig(tlsConfigName, &tls.Config{
		RootCAs:    pool,
		MinVersion: tls.VersionTLS12,
	})
}

// New connects to the database, applies migrations when enabled and returns
// a store whose connections are closed by Close or when ctx is done.
func New(ctx context.Context, cfg Config) (*MYSQLStore, error) {
	if err := registerTLSConfig(cfg.TLSCAPath); err != nil {
		return nil, err
	}
	source, err := dsn(cfg)
	if err != nil {
		return nil, err
	}

	d, err := sqlx.Open("mysql", source)
	if err != nil {
		return nil, fmt.Errorf("couldn't open database: %w", err)
	}
	if cfg.MaxOpenConnections > 0 {
		d.SetMaxOpenConns(cfg.MaxOpenConnections)
	}
	if cfg.MaxIdleConnections > 0 {
		d.SetMaxIdleConns(cfg.MaxIdleConnections)
	}
	lifetime := cfg.ConnMaxLifetime
	if lifetime <= 0 {
		lifetime = 2 * time.Minute
	}
	d.SetConnMaxLifetime(lifetime)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := d.PingContext(pingCtx); err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if cfg.Automigrate {
		if err := Migrate(ctx, d.DB); err != nil {
			d.Close()
			return nil, err
		}
	}

	ctx, stop := context.WithCancel(ctx)
	go func() {
		<-ctx.Done()
		d.Close()
	}()

	return &MYSQLStore{
		db:    d,
		close: stop,
	}, nil
}

// Migrate applies the embedded migrations. sql-migrate has no context
// support, so a cancelled ctx only stops the wait.
func Migrate(ctx context.Context, db *sql.DB) error {
	set := migrate.MigrationSet{TableName: migrationsTable}
	src := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrations,
		Root:       "sql",
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	type result struct {
		n   int
		err error
	}
	done := make(chan result, 1)
	go func() {
		n, err := set.Exec(db, "mysql", src, migrate.Up)
		done <- result{n: n, err: err}
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("migrations interrupted: %w", ctx.Err())
	case res := <-done:
		if res.err != nil {
			return fmt.Errorf("db migrations have failed: %w", res.err)
		}
		slog.Default().InfoContext(ctx, "applied migrations",
			slog.Int("count", res.n),
		)
		return nil
	}
}

func (ms *MYSQLStore) Close() {
	ms.close()
}

// Ping checks that the database answers within five seconds.
func (ms *MYSQLStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var one int
	if err := ms.db.GetContext(ctx, &one, "SELECT 1"); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}
