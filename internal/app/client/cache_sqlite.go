package client

import (
	"database/sql"
	"fmt"

	"itemstore/internal/domain/item"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteCache keeps a local copy of items fetched from the server so
// `item list --cached` works without a connection.
type SQLiteCache struct {
	db *sql.DB
}

func NewSQLiteCache(path string) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	cache := &SQLiteCache{db: db}
	if err := cache.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init cache tables: %w", err)
	}
	return cache, nil
}

func (c *SQLiteCache) initTables() error {
	_, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS items (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_at  DATETIME NOT NULL,
			updated_at  DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_items_name ON items(name);
	`)
	return err
}

func (c *SQLiteCache) SaveItem(it *item.Item) error {
	_, err := c.db.Exec(`
		INSERT INTO items (id, name, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at
	`, it.ID, it.Name, it.Description, it.CreatedAt, it.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save item: %w", err)
	}
	return nil
}

func (c *SQLiteCache) SaveItems(items []item.Item) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("begin cache transaction: %w", err)
	}
	defer tx.Rollback()

	for i := range items {
		it := items[i]
		if _, err := tx.Exec(`
			INSERT INTO items (id, name, description, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				name = excluded.name,
				description = excluded.description,
				created_at = excluded.created_at,
				updated_at = excluded.updated_at
		`, it.ID, it.Name, it.Description, it.CreatedAt, it.UpdatedAt); err != nil {
			return fmt.Errorf("save item %s: %w", it.ID, err)
		}
	}
	return tx.Commit()
}

func (c *SQLiteCache) ListItems() ([]item.Item, error) {
	rows, err := c.db.Query(`
		SELECT id, name, description, created_at, updated_at
		FROM items
		ORDER BY CAST(id AS INTEGER)
	`)
	if err != nil {
		return nil, fmt.Errorf("list cached items: %w", err)
	}
	defer rows.Close()

	var items []item.Item
	for rows.Next() {
		var it item.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cached item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (c *SQLiteCache) DeleteItem(id string) error {
	_, err := c.db.Exec(`DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete cached item: %w", err)
	}
	return nil
}

func (c *SQLiteCache) Close() error {
	return c.db.Close()
}
