package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// executeSQLDir replays every *.sql file of dir, in lexical order, against the
// given pool. Used by the /initialize reset on both shards.
func executeSQLDir(ctx context.Context, pool *pgxpool.Pool, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read SQL directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		script, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read SQL file %s: %w", path, err)
		}
		if _, err := pool.Exec(ctx, string(script)); err != nil {
			return fmt.Errorf("failed to execute SQL file %s: %w", path, err)
		}
	}

	return nil
}
