package migrations

import (
	"context"
	"database/sql"
	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(UpOrderedItemsTable, DownOrderedItemsTable)
}

func UpOrderedItemsTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `CREATE TABLE ordered_items
(
    order_id INT REFERENCES orders (id) ON DELETE CASCADE NOT NULL,
    item_id INT NOT NULL,
    quantity INT NOT NULL,
    PRIMARY KEY (order_id, item_id)
);`)
	return err
}

func DownOrderedItemsTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, "DROP TABLE ordered_items;")
	return err
}
