package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"itemstore/internal/domain/item"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

// ItemRepository is the Postgres-backed item store. Ids come from a
// sequence, so they are unique and never reused even across restarts.
type ItemRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewItemRepository(pool *pgxpool.Pool, log *slog.Logger) *ItemRepository {
	return &ItemRepository{
		pool: pool,
		log:  log.With("component", "item_repository"),
	}
}

func (r *ItemRepository) Create(ctx context.Context, draft item.Draft) (*item.Item, error) {
	const query = `
		INSERT INTO items (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description, created_at, updated_at`

	row := r.pool.QueryRow(ctx, query, draft.Name, draft.Description)

	it, err := scanItem(row)
	if err != nil {
		r.log.Error("failed to create item", "name", draft.Name, "error", err)
		return nil, fmt.Errorf("create item: %w", err)
	}
	return it, nil
}

func (r *ItemRepository) Get(ctx context.Context, id string) (*item.Item, error) {
	numID, err := parseID(id)
	if err != nil {
		return nil, item.ErrNotFound
	}

	const query = `
		SELECT id, name, description, created_at, updated_at
		FROM items
		WHERE id = $1`

	it, err := scanItem(r.pool.QueryRow(ctx, query, numID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, item.ErrNotFound
		}
		r.log.Error("failed to get item", "item_id", id, "error", err)
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

func (r *ItemRepository) List(ctx context.Context) ([]item.Item, error) {
	const query = `
		SELECT id, name, description, created_at, updated_at
		FROM items
		ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list items", "error", err)
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := make([]item.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Update merges the patch in SQL: NULL parameters keep the stored
// value, so absent patch fields never touch the row. updated_at uses
// clock_timestamp() and is bumped past its old value to stay strictly
// increasing within a transaction timestamp tie.
func (r *ItemRepository) Update(ctx context.Context, id string, patch item.Patch) (*item.Item, error) {
	numID, err := parseID(id)
	if err != nil {
		return nil, item.ErrNotFound
	}

	const query = `
		UPDATE items
		SET name        = COALESCE($1, name),
		    description = COALESCE($2, description),
		    updated_at  = GREATEST(clock_timestamp(), updated_at + interval '1 microsecond')
		WHERE id = $3
		RETURNING id, name, description, created_at, updated_at`

	it, err := scanItem(r.pool.QueryRow(ctx, query, patch.Name, patch.Description, numID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, item.ErrNotFound
		}
		r.log.Error("failed to update item", "item_id", id, "error", err)
		return nil, fmt.Errorf("update item: %w", err)
	}
	return it, nil
}

func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	numID, err := parseID(id)
	if err != nil {
		return item.ErrNotFound
	}

	const query = `DELETE FROM items WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, numID)
	if err != nil {
		r.log.Error("failed to delete item", "item_id", id, "error", err)
		return fmt.Errorf("delete item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return item.ErrNotFound
	}
	return nil
}

func parseID(id string) (int64, error) {
	return strconv.ParseInt(id, 10, 64)
}

func scanItem(row pgx.Row) (*item.Item, error) {
	var (
		it    item.Item
		numID int64
	)
	if err := row.Scan(&numID, &it.Name, &it.Description, &it.CreatedAt, &it.UpdatedAt); err != nil {
		return nil, err
	}
	it.ID = strconv.FormatInt(numID, 10)
	return &it, nil
}
