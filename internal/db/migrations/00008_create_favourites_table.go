package migrations

import (
	"context"
	"database/sql"
	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(UpFavouritesTable, DownFavouritesTable)
}

func UpFavouritesTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `CREATE TABLE favourites
(
    user_id INT REFERENCES users (id) NOT NULL,
    restaurant_id INT REFERENCES restaurants (id) ON DELETE CASCADE NOT NULL,
    PRIMARY KEY (user_id, restaurant_id)
);`)
	return err
}

func DownFavouritesTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, "DROP TABLE favourites;")
	return err
}
