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

const estateColumns = "id, name, description, thumbnail, address, latitude, longitude, rent, door_height, door_width, features, popularity"

// EstateRepository is the estate-shard adapter. The stored point and geohash
// columns are written here and never scanned back out.
type EstateRepository struct {
	pool      *pgxpool.Pool
	condition *domain.EstateSearchCondition
}

func NewEstateRepository(pool *pgxpool.Pool, condition *domain.EstateSearchCondition) (*EstateRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	if condition == nil {
		return nil, fmt.Errorf("estate search condition cannot be nil")
	}
	return &EstateRepository{pool: pool, condition: condition}, nil
}

func scanEstate(row pgx.Row) (*domain.Estate, error) {
	var e domain.Estate
	err := row.Scan(
		&e.ID, &e.Name, &e.Description, &e.Thumbnail, &e.Address, &e.Latitude,
		&e.Longitude, &e.Rent, &e.DoorHeight, &e.DoorWidth, &e.Features, &e.Popularity,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func collectEstates(rows pgx.Rows) ([]domain.Estate, error) {
	defer rows.Close()

	estates := make([]domain.Estate, 0)
	for rows.Next() {
		e, err := scanEstate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan estate: %w", err)
		}
		estates = append(estates, *e)
	}
	return estates, rows.Err()
}

// Search runs the count query and the page query for the same predicate set
// inside one transaction.
func (r *EstateRepository) Search(ctx context.Context, filters domain.EstateSearchFilters, page domain.Pagination) (*domain.EstateSearchResult, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "EstateRepository",
		"method":    "Search",
	})

	where, args, err := buildEstateConditions(r.condition, filters)
	if err != nil {
		return nil, err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	countQuery := "SELECT COUNT(*) FROM estate WHERE " + where
	var totalCount int64
	if err := tx.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		logger.Error("Failed to count estates", err, port.Fields{"query": countQuery})
		return nil, fmt.Errorf("failed to count estates: %w", err)
	}

	dataQuery := fmt.Sprintf(
		"SELECT %s FROM estate WHERE %s ORDER BY popularity DESC, id ASC LIMIT $%d OFFSET $%d",
		estateColumns, where, len(args)+1, len(args)+2,
	)
	rows, err := tx.Query(ctx, dataQuery, append(args, page.Limit(), page.Offset())...)
	if err != nil {
		logger.Error("Failed to query estate page", err, port.Fields{"query": dataQuery})
		return nil, fmt.Errorf("failed to query estate page: %w", err)
	}

	estates, err := collectEstates(rows)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.Debug("Estate search executed", port.Fields{"total": totalCount, "page_rows": len(estates)})
	return &domain.EstateSearchResult{Count: totalCount, Estates: estates}, nil
}

func (r *EstateRepository) GetByID(ctx context.Context, id int64) (*domain.Estate, error) {
	query := fmt.Sprintf("SELECT %s FROM estate WHERE id = $1", estateColumns)
	estate, err := scanEstate(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get estate %d: %w", id, err)
	}
	return estate, nil
}

func (r *EstateRepository) LowPriced(ctx context.Context, limit int) ([]domain.Estate, error) {
	query := fmt.Sprintf("SELECT %s FROM estate ORDER BY rent ASC, id ASC LIMIT $1", estateColumns)
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query low priced estates: %w", err)
	}
	return collectEstates(rows)
}

// BulkInsert writes all rows with a single multi-row INSERT inside a
// transaction. The spatial point and the geohash are derived from
// latitude/longitude here, at write time.
func (r *EstateRepository) BulkInsert(ctx context.Context, estates []domain.Estate) error {
	if len(estates) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var placeholders strings.Builder
	args := make([]interface{}, 0, len(estates)*13)
	for i, e := range estates {
		if i > 0 {
			placeholders.WriteString(",")
		}
		base := i * 13
		// The point reuses the latitude/longitude placeholders; axis order is
		// (latitude, longitude) to match the nazotte polygon literal.
		fmt.Fprintf(&placeholders,
			"($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,ST_MakePoint($%d,$%d),$%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7,
			base+8, base+9, base+10, base+11, base+12, base+6, base+7, base+13,
		)
		args = append(args,
			e.ID, e.Name, e.Description, e.Thumbnail, e.Address, e.Latitude,
			e.Longitude, e.Rent, e.DoorHeight, e.DoorWidth, e.Features, e.Popularity,
			locationHash(e.Latitude, e.Longitude),
		)
	}

	query := fmt.Sprintf(
		"INSERT INTO estate(%s, point, geohash) VALUES %s",
		estateColumns, placeholders.String(),
	)
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert estates: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// SearchInPolygon returns estates whose stored point lies within the closed
// ring built from coords.
func (r *EstateRepository) SearchInPolygon(ctx context.Context, coords []domain.Coordinate, limit int) ([]domain.Estate, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM estate WHERE ST_Contains(ST_GeomFromText($1), point) ORDER BY popularity DESC, id ASC LIMIT $2",
		estateColumns,
	)
	rows, err := r.pool.Query(ctx, query, polygonText(coords), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query estates in polygon: %w", err)
	}
	return collectEstates(rows)
}

// RecommendForChair matches the chair's three dimensions against the door
// opening in every orientation.
func (r *EstateRepository) RecommendForChair(ctx context.Context, chair *domain.Chair, limit int) ([]domain.Estate, error) {
	w, h, d := chair.Width, chair.Height, chair.Depth
	query := fmt.Sprintf(`SELECT %s FROM estate
		WHERE (door_width >= $1 AND door_height >= $2)
		   OR (door_width >= $3 AND door_height >= $4)
		   OR (door_width >= $5 AND door_height >= $6)
		   OR (door_width >= $7 AND door_height >= $8)
		   OR (door_width >= $9 AND door_height >= $10)
		   OR (door_width >= $11 AND door_height >= $12)
		ORDER BY popularity DESC, id ASC LIMIT $13`, estateColumns)

	rows, err := r.pool.Query(ctx, query, w, h, w, d, h, w, h, d, d, w, d, h, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recommended estates: %w", err)
	}
	return collectEstates(rows)
}

// LoadSchema replays the schema/seed SQL files against the estate shard.
func (r *EstateRepository) LoadSchema(ctx context.Context, dir string) error {
	return executeSQLDir(ctx, r.pool, dir)
}
