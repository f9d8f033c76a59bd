package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const dbPingTimeout = 3 * time.Second

// openDatabase connects to Postgres and waits for the instance to accept
// pings, doubling the delay between attempts until cfg.DBConnectWait runs
// out. Fresh docker-compose stacks bring the database up after the app.
func openDatabase(ctx context.Context, cfg Config) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxConns)
	db.SetConnMaxIdleTime(5 * time.Minute)

	deadline := time.Now().Add(cfg.DBConnectWait)
	delay := 250 * time.Millisecond

	for {
		pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
		err = db.PingContext(pingCtx)
		cancel()
		if err == nil {
			return db, nil
		}

		if ctx.Err() != nil || time.Now().Add(delay).After(deadline) {
			break
		}

		time.Sleep(delay)
		if delay < 2*time.Second {
			delay *= 2
		}
	}

	_ = db.Close()
	return nil, fmt.Errorf("database not reachable within %s: %w", cfg.DBConnectWait, err)
}
