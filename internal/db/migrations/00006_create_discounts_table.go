package migrations

import (
	"context"
	"database/sql"
	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(UpDiscountsTable, DownDiscountsTable)
}

func UpDiscountsTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `CREATE TABLE discounts
(
    id SERIAL PRIMARY KEY,
    restaurant_id INT REFERENCES restaurants (id) ON DELETE CASCADE NOT NULL,
    min_item_count INT NOT NULL,
    percentage INT NOT NULL
);`)
	return err
}

func DownDiscountsTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, "DROP TABLE discounts;")
	return err
}
