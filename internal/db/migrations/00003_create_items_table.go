package migrations

import (
	"context"
	"database/sql"
	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(UpItemsTable, DownItemsTable)
}

func UpItemsTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `CREATE TABLE items
(
    id SERIAL PRIMARY KEY,
    restaurant_id INT REFERENCES restaurants (id) ON DELETE CASCADE NOT NULL,
    name VARCHAR(255) NOT NULL,
    stock INT DEFAULT 0 NOT NULL,
    price DOUBLE PRECISION NOT NULL
);`)
	return err
}

func DownItemsTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, "DROP TABLE items;")
	return err
}
