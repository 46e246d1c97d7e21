// Command cleanup-sessions deletes expired login sessions. It is intended
// to be invoked by an external cron job, not as an in-process goroutine.
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daybook-app/daybook/internal/adapter/postgres/session"
)

func main() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	n, err := session.NewRepo(pool).DeleteExpired(ctx)
	if err != nil {
		log.Fatalf("cleanup sessions: %v", err)
	}

	fmt.Printf("Deleted %d expired sessions.\n", n)
}
