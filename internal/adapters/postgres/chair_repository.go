package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const chairColumns = "id, name, description, thumbnail, price, height, width, depth, color, features, kind, popularity, stock"

// ChairRepository is the chair-shard adapter. It owns the shard's pool and the
// chair condition catalog used to resolve range facets.
type ChairRepository struct {
	pool      *pgxpool.Pool
	condition *domain.ChairSearchCondition
}

func NewChairRepository(pool *pgxpool.Pool, condition *domain.ChairSearchCondition) (*ChairRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	if condition == nil {
		return nil, fmt.Errorf("chair search condition cannot be nil")
	}
	return &ChairRepository{pool: pool, condition: condition}, nil
}

func scanChair(row pgx.Row) (*domain.Chair, error) {
	var c domain.Chair
	err := row.Scan(
		&c.ID, &c.Name, &c.Description, &c.Thumbnail, &c.Price, &c.Height,
		&c.Width, &c.Depth, &c.Color, &c.Features, &c.Kind, &c.Popularity, &c.Stock,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func collectChairs(rows pgx.Rows) ([]domain.Chair, error) {
	defer rows.Close()

	chairs := make([]domain.Chair, 0)
	for rows.Next() {
		c, err := scanChair(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chair: %w", err)
		}
		chairs = append(chairs, *c)
	}
	return chairs, rows.Err()
}

// Search runs the count query and the page query for the same predicate set
// inside one transaction.
func (r *ChairRepository) Search(ctx context.Context, filters domain.ChairSearchFilters, page domain.Pagination) (*domain.ChairSearchResult, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "ChairRepository",
		"method":    "Search",
	})

	where, args, err := buildChairConditions(r.condition, filters)
	if err != nil {
		return nil, err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	countQuery := "SELECT COUNT(*) FROM chair WHERE " + where
	var totalCount int64
	if err := tx.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		logger.Error("Failed to count chairs", err, port.Fields{"query": countQuery})
		return nil, fmt.Errorf("failed to count chairs: %w", err)
	}

	dataQuery := fmt.Sprintf(
		"SELECT %s FROM chair WHERE %s ORDER BY popularity DESC, id ASC LIMIT $%d OFFSET $%d",
		chairColumns, where, len(args)+1, len(args)+2,
	)
	rows, err := tx.Query(ctx, dataQuery, append(args, page.Limit(), page.Offset())...)
	if err != nil {
		logger.Error("Failed to query chair page", err, port.Fields{"query": dataQuery})
		return nil, fmt.Errorf("failed to query chair page: %w", err)
	}

	chairs, err := collectChairs(rows)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.Debug("Chair search executed", port.Fields{"total": totalCount, "page_rows": len(chairs)})
	return &domain.ChairSearchResult{Count: totalCount, Chairs: chairs}, nil
}

// GetByID returns the chair row regardless of stock.
func (r *ChairRepository) GetByID(ctx context.Context, id int64) (*domain.Chair, error) {
	query := fmt.Sprintf("SELECT %s FROM chair WHERE id = $1", chairColumns)
	chair, err := scanChair(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get chair %d: %w", id, err)
	}
	return chair, nil
}

// LowPriced returns the cheapest chairs still in stock.
func (r *ChairRepository) LowPriced(ctx context.Context, limit int) ([]domain.Chair, error) {
	query := fmt.Sprintf("SELECT %s FROM chair WHERE stock > 0 ORDER BY price ASC, id ASC LIMIT $1", chairColumns)
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query low priced chairs: %w", err)
	}
	return collectChairs(rows)
}

// BulkInsert writes all rows with a single multi-row INSERT inside a
// transaction; any database error rolls the whole batch back.
func (r *ChairRepository) BulkInsert(ctx context.Context, chairs []domain.Chair) error {
	if len(chairs) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var placeholders strings.Builder
	args := make([]interface{}, 0, len(chairs)*13)
	for i, c := range chairs {
		if i > 0 {
			placeholders.WriteString(",")
		}
		base := i * 13
		fmt.Fprintf(&placeholders, "($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7,
			base+8, base+9, base+10, base+11, base+12, base+13,
		)
		args = append(args,
			c.ID, c.Name, c.Description, c.Thumbnail, c.Price, c.Height,
			c.Width, c.Depth, c.Color, c.Features, c.Kind, c.Popularity, c.Stock,
		)
	}

	query := fmt.Sprintf(
		"INSERT INTO chair(%s) VALUES %s",
		chairColumns, placeholders.String(),
	)
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert chairs: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Purchase decrements the stock by one with a guarded single-statement update.
// The row-level atomicity of that UPDATE is the only concurrency control; a
// chair already at zero stock leaves the row unchanged and still succeeds.
func (r *ChairRepository) Purchase(ctx context.Context, id int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var existing int64
	if err := tx.QueryRow(ctx, "SELECT id FROM chair WHERE id = $1", id).Scan(&existing); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to look up chair %d: %w", id, err)
	}

	if _, err := tx.Exec(ctx, "UPDATE chair SET stock = stock - 1 WHERE id = $1 AND stock > 0", id); err != nil {
		return fmt.Errorf("failed to decrement stock for chair %d: %w", id, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// LoadSchema replays the schema/seed SQL files against the chair shard.
func (r *ChairRepository) LoadSchema(ctx context.Context, dir string) error {
	return executeSQLDir(ctx, r.pool, dir)
}
