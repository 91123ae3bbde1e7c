package migrations

import (
	"context"
	"database/sql"
	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(UpRatingsTable, DownRatingsTable)
}

func UpRatingsTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `CREATE TABLE ratings
(
    id SERIAL PRIMARY KEY,
    user_id INT REFERENCES users (id) NOT NULL,
    restaurant_id INT REFERENCES restaurants (id) ON DELETE CASCADE NOT NULL,
    rate INT NOT NULL
);`)
	return err
}

func DownRatingsTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, "DROP TABLE ratings;")
	return err
}
