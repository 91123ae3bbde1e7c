package db

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/andreeabea/FoodDeliveryAppServer/config"
	_ "github.com/andreeabea/FoodDeliveryAppServer/internal/db/migrations"
	"github.com/andreeabea/FoodDeliveryAppServer/models"
)

type Manager struct {
	DB *sql.DB
}

func NewManager(cfg *config.Config) (*Manager, error) {
	database, err := sql.Open("pgx", cfg.DatabaseURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err = database.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	manager := &Manager{
		DB: database,
	}

	if err = goose.Up(database, "./internal/db/migrations"); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	return manager, nil
}

func notFoundOr(err error, op string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (m *Manager) CreateUser(user models.User) (models.User, error) {
	err := m.DB.QueryRow(`
        INSERT INTO users (name, username, password, wallet, user_type)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `, user.Name, user.Username, user.Password, user.Wallet, user.UserType).Scan(&user.ID)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

func (m *Manager) UserByID(id int) (models.User, error) {
	var user models.User

	err := m.DB.QueryRow(`
		SELECT id, name, username, password, wallet, user_type
		FROM users
		WHERE id = $1
	`, id).Scan(&user.ID, &user.Name, &user.Username, &user.Password, &user.Wallet, &user.UserType)
	if err != nil {
		return user, notFoundOr(err, "failed to get user")
	}

	return user, nil
}

func (m *Manager) UserByUsername(username string) (models.User, error) {
	var user models.User

	err := m.DB.QueryRow(`
		SELECT id, name, username, password, wallet, user_type
		FROM users
		WHERE username = $1
	`, username).Scan(&user.ID, &user.Name, &user.Username, &user.Password, &user.Wallet, &user.UserType)
	if err != nil {
		return user, notFoundOr(err, "failed to get user")
	}

	return user, nil
}

func (m *Manager) UsersByType(userType models.UserType) ([]models.User, error) {
	rows, err := m.DB.Query(`
		SELECT id, name, username, password, wallet, user_type
		FROM users
		WHERE user_type = $1
		ORDER BY id
	`, userType)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err = rows.Scan(&user.ID, &user.Name, &user.Username, &user.Password, &user.Wallet, &user.UserType); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (m *Manager) SaveUser(user models.User) error {
	_, err := m.DB.Exec(`
		UPDATE users
		SET name = $2, username = $3, password = $4, wallet = $5, user_type = $6
		WHERE id = $1
	`, user.ID, user.Name, user.Username, user.Password, user.Wallet, user.UserType)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

func (m *Manager) CreateRestaurant(restaurant models.Restaurant) (models.Restaurant, error) {
	err := m.DB.QueryRow(`
        INSERT INTO restaurants (name)
        VALUES ($1)
        RETURNING id
    `, restaurant.Name).Scan(&restaurant.ID)
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("failed to insert restaurant: %w", err)
	}

	return restaurant, nil
}

func (m *Manager) RestaurantByID(id int) (models.Restaurant, error) {
	var restaurant models.Restaurant

	err := m.DB.QueryRow(`
		SELECT id, name
		FROM restaurants
		WHERE id = $1
	`, id).Scan(&restaurant.ID, &restaurant.Name)
	if err != nil {
		return restaurant, notFoundOr(err, "failed to get restaurant")
	}

	return restaurant, nil
}

func (m *Manager) RestaurantByName(name string) (models.Restaurant, error) {
	var restaurant models.Restaurant

	err := m.DB.QueryRow(`
		SELECT id, name
		FROM restaurants
		WHERE name = $1
	`, name).Scan(&restaurant.ID, &restaurant.Name)
	if err != nil {
		return restaurant, notFoundOr(err, "failed to get restaurant")
	}

	return restaurant, nil
}

func (m *Manager) Restaurants() ([]models.Restaurant, error) {
	rows, err := m.DB.Query(`
		SELECT id, name
		FROM restaurants
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	defer rows.Close()

	restaurants := make([]models.Restaurant, 0)
	for rows.Next() {
		var restaurant models.Restaurant
		if err = rows.Scan(&restaurant.ID, &restaurant.Name); err != nil {
			return nil, fmt.Errorf("failed to scan restaurant: %w", err)
		}
		restaurants = append(restaurants, restaurant)
	}

	return restaurants, rows.Err()
}

func (m *Manager) SaveRestaurant(restaurant models.Restaurant) error {
	_, err := m.DB.Exec(`
		UPDATE restaurants
		SET name = $2
		WHERE id = $1
	`, restaurant.ID, restaurant.Name)
	if err != nil {
		return fmt.Errorf("failed to update restaurant: %w", err)
	}

	return nil
}

func (m *Manager) DeleteRestaurant(id int) error {
	_, err := m.DB.Exec(`DELETE FROM restaurants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete restaurant: %w", err)
	}

	return nil
}

func (m *Manager) CreateItem(item models.Item) (models.Item, error) {
	err := m.DB.QueryRow(`
        INSERT INTO items (restaurant_id, name, stock, price)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `, item.RestaurantID, item.Name, item.Stock, item.Price).Scan(&item.ID)
	if err != nil {
		return models.Item{}, fmt.Errorf("failed to insert item: %w", err)
	}

	return item, nil
}

func (m *Manager) ItemByID(id int) (models.Item, error) {
	var item models.Item

	err := m.DB.QueryRow(`
		SELECT id, restaurant_id, name, stock, price
		FROM items
		WHERE id = $1
	`, id).Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Stock, &item.Price)
	if err != nil {
		return item, notFoundOr(err, "failed to get item")
	}

	return item, nil
}

func (m *Manager) ItemsByRestaurant(restaurantID int) ([]models.Item, error) {
	rows, err := m.DB.Query(`
		SELECT id, restaurant_id, name, stock, price
		FROM items
		WHERE restaurant_id = $1
		ORDER BY id
	`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		var item models.Item
		if err = rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Stock, &item.Price); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (m *Manager) SaveItem(item models.Item) error {
	_, err := m.DB.Exec(`
		UPDATE items
		SET restaurant_id = $2, name = $3, stock = $4, price = $5
		WHERE id = $1
	`, item.ID, item.RestaurantID, item.Name, item.Stock, item.Price)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	return nil
}

func (m *Manager) DeleteItem(id int) error {
	_, err := m.DB.Exec(`DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	return nil
}

func (m *Manager) CreateOrder(order models.Order) (models.Order, error) {
	err := m.DB.QueryRow(`
        INSERT INTO orders (customer_id, courier_id, datetime, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `, order.CustomerID, order.CourierID, order.Datetime, order.Status).Scan(&order.ID)
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}

	for _, line := range order.Items {
		_, err = m.DB.Exec(`
			INSERT INTO ordered_items (order_id, item_id, quantity)
			VALUES ($1, $2, $3)
		`, order.ID, line.ItemID, line.Quantity)
		if err != nil {
			return models.Order{}, fmt.Errorf("failed to insert ordered item: %w", err)
		}
	}

	return order, nil
}

func (m *Manager) orderItems(orderID int) ([]models.OrderedItem, error) {
	rows, err := m.DB.Query(`
		SELECT item_id, quantity
		FROM ordered_items
		WHERE order_id = $1
		ORDER BY item_id
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ordered items: %w", err)
	}
	defer rows.Close()

	lines := make([]models.OrderedItem, 0)
	for rows.Next() {
		var line models.OrderedItem
		if err = rows.Scan(&line.ItemID, &line.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan ordered item: %w", err)
		}
		lines = append(lines, line)
	}

	return lines, rows.Err()
}

func (m *Manager) OrderByID(id int) (models.Order, error) {
	var order models.Order

	err := m.DB.QueryRow(`
		SELECT id, customer_id, courier_id, datetime, status
		FROM orders
		WHERE id = $1
	`, id).Scan(&order.ID, &order.CustomerID, &order.CourierID, &order.Datetime, &order.Status)
	if err != nil {
		return order, notFoundOr(err, "failed to get order")
	}

	order.Items, err = m.orderItems(order.ID)
	if err != nil {
		return models.Order{}, err
	}

	return order, nil
}

func (m *Manager) Orders() ([]models.Order, error) {
	rows, err := m.DB.Query(`
		SELECT id, customer_id, courier_id, datetime, status
		FROM orders
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]models.Order, 0)
	for rows.Next() {
		var order models.Order
		if err = rows.Scan(&order.ID, &order.CustomerID, &order.CourierID, &order.Datetime, &order.Status); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Items, err = m.orderItems(orders[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return orders, nil
}

func (m *Manager) SaveOrder(order models.Order) error {
	_, err := m.DB.Exec(`
		UPDATE orders
		SET customer_id = $2, courier_id = $3, datetime = $4, status = $5
		WHERE id = $1
	`, order.ID, order.CustomerID, order.CourierID, order.Datetime, order.Status)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	return nil
}

func (m *Manager) CreateDiscount(discount models.Discount) (models.Discount, error) {
	err := m.DB.QueryRow(`
        INSERT INTO discounts (restaurant_id, min_item_count, percentage)
        VALUES ($1, $2, $3)
        RETURNING id
    `, discount.RestaurantID, discount.MinItemCount, discount.Percentage).Scan(&discount.ID)
	if err != nil {
		return models.Discount{}, fmt.Errorf("failed to insert discount: %w", err)
	}

	return discount, nil
}

func (m *Manager) DiscountByID(id int) (models.Discount, error) {
	var discount models.Discount

	err := m.DB.QueryRow(`
		SELECT id, restaurant_id, min_item_count, percentage
		FROM discounts
		WHERE id = $1
	`, id).Scan(&discount.ID, &discount.RestaurantID, &discount.MinItemCount, &discount.Percentage)
	if err != nil {
		return discount, notFoundOr(err, "failed to get discount")
	}

	return discount, nil
}

func (m *Manager) DiscountsByRestaurant(restaurantID int) ([]models.Discount, error) {
	rows, err := m.DB.Query(`
		SELECT id, restaurant_id, min_item_count, percentage
		FROM discounts
		WHERE restaurant_id = $1
		ORDER BY id
	`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list discounts: %w", err)
	}
	defer rows.Close()

	discounts := make([]models.Discount, 0)
	for rows.Next() {
		var discount models.Discount
		if err = rows.Scan(&discount.ID, &discount.RestaurantID, &discount.MinItemCount, &discount.Percentage); err != nil {
			return nil, fmt.Errorf("failed to scan discount: %w", err)
		}
		discounts = append(discounts, discount)
	}

	return discounts, rows.Err()
}

func (m *Manager) DeleteDiscount(id int) error {
	_, err := m.DB.Exec(`DELETE FROM discounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete discount: %w", err)
	}

	return nil
}

func (m *Manager) CreateRating(rating models.Rating) (models.Rating, error) {
	err := m.DB.QueryRow(`
        INSERT INTO ratings (user_id, restaurant_id, rate)
        VALUES ($1, $2, $3)
        RETURNING id
    `, rating.UserID, rating.RestaurantID, rating.Rate).Scan(&rating.ID)
	if err != nil {
		return models.Rating{}, fmt.Errorf("failed to insert rating: %w", err)
	}

	return rating, nil
}

func (m *Manager) RatingByID(id int) (models.Rating, error) {
	var rating models.Rating

	err := m.DB.QueryRow(`
		SELECT id, user_id, restaurant_id, rate
		FROM ratings
		WHERE id = $1
	`, id).Scan(&rating.ID, &rating.UserID, &rating.RestaurantID, &rating.Rate)
	if err != nil {
		return rating, notFoundOr(err, "failed to get rating")
	}

	return rating, nil
}

func (m *Manager) ratingsWhere(clause string, arg int) ([]models.Rating, error) {
	rows, err := m.DB.Query(`
		SELECT id, user_id, restaurant_id, rate
		FROM ratings
		WHERE `+clause+`
		ORDER BY id
	`, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	defer rows.Close()

	ratings := make([]models.Rating, 0)
	for rows.Next() {
		var rating models.Rating
		if err = rows.Scan(&rating.ID, &rating.UserID, &rating.RestaurantID, &rating.Rate); err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		ratings = append(ratings, rating)
	}

	return ratings, rows.Err()
}

func (m *Manager) RatingsByUser(userID int) ([]models.Rating, error) {
	return m.ratingsWhere("user_id = $1", userID)
}

func (m *Manager) RatingsByRestaurant(restaurantID int) ([]models.Rating, error) {
	return m.ratingsWhere("restaurant_id = $1", restaurantID)
}

func (m *Manager) SaveRating(rating models.Rating) error {
	_, err := m.DB.Exec(`
		UPDATE ratings
		SET user_id = $2, restaurant_id = $3, rate = $4
		WHERE id = $1
	`, rating.ID, rating.UserID, rating.RestaurantID, rating.Rate)
	if err != nil {
		return fmt.Errorf("failed to update rating: %w", err)
	}

	return nil
}

func (m *Manager) DeleteRating(id int) error {
	_, err := m.DB.Exec(`DELETE FROM ratings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete rating: %w", err)
	}

	return nil
}

func (m *Manager) AddFavourite(userID, restaurantID int) error {
	_, err := m.DB.Exec(`
		INSERT INTO favourites (user_id, restaurant_id)
		VALUES ($1, $2)
	`, userID, restaurantID)
	if err != nil {
		return fmt.Errorf("failed to insert favourite: %w", err)
	}

	return nil
}

func (m *Manager) DeleteFavourite(userID, restaurantID int) error {
	result, err := m.DB.Exec(`
		DELETE FROM favourites
		WHERE user_id = $1 AND restaurant_id = $2
	`, userID, restaurantID)
	if err != nil {
		return fmt.Errorf("failed to delete favourite: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (m *Manager) FavouritesByUser(userID int) ([]models.Restaurant, error) {
	rows, err := m.DB.Query(`
		SELECT r.id, r.name
		FROM restaurants r
		JOIN favourites f ON f.restaurant_id = r.id
		WHERE f.user_id = $1
		ORDER BY r.id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favourites: %w", err)
	}
	defer rows.Close()

	restaurants := make([]models.Restaurant, 0)
	for rows.Next() {
		var restaurant models.Restaurant
		if err = rows.Scan(&restaurant.ID, &restaurant.Name); err != nil {
			return nil, fmt.Errorf("failed to scan favourite: %w", err)
		}
		restaurants = append(restaurants, restaurant)
	}

	return restaurants, rows.Err()
}

func (m *Manager) Ping() error {
	return m.DB.Ping()
}

func (m *Manager) Close() error {
	return m.DB.Close()
}
