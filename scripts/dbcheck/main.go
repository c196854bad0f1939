// Command dbcheck verifies database connectivity and that the schema exists.
//
// Usage: go run ./scripts/dbcheck
package main

import (
	"context"
	"fmt"
	"os"

	"duka/internal/config"

	"github.com/jackc/pgx/v5"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, cfg.Database.ConnectionString())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	var dbName string
	if err := conn.QueryRow(ctx, "SELECT current_database()").Scan(&dbName); err != nil {
		fmt.Fprintf(os.Stderr, "QueryRow failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Connected to database: %s\n", dbName)

	for _, table := range []string{"customers", "products", "orders"} {
		var count int64
		if err := conn.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count); err != nil {
			fmt.Fprintf(os.Stderr, "Table %s not reachable: %v\n", table, err)
			os.Exit(1)
		}
		fmt.Printf("Table %-10s rows: %d\n", table, count)
	}
}
