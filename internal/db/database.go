package db

import (
	"errors"

	"github.com/andreeabea/FoodDeliveryAppServer/models"
)

// ErrNotFound is returned by lookups that miss. Callers translate it into
// the client-facing fault taxonomy.
var ErrNotFound = errors.New("entity not found")

// Database is the persistence gateway. Every operation is individually
// durable; there is no multi-step transaction, callers serialise
// read-modify-write sequences themselves.
type Database interface {
	CreateUser(user models.User) (models.User, error)
	UserByID(id int) (models.User, error)
	UserByUsername(username string) (models.User, error)
	UsersByType(userType models.UserType) ([]models.User, error)
	SaveUser(user models.User) error

	CreateRestaurant(restaurant models.Restaurant) (models.Restaurant, error)
	RestaurantByID(id int) (models.Restaurant, error)
	RestaurantByName(name string) (models.Restaurant, error)
	Restaurants() ([]models.Restaurant, error)
	SaveRestaurant(restaurant models.Restaurant) error
	DeleteRestaurant(id int) error

	CreateItem(item models.Item) (models.Item, error)
	ItemByID(id int) (models.Item, error)
	ItemsByRestaurant(restaurantID int) ([]models.Item, error)
	SaveItem(item models.Item) error
	DeleteItem(id int) error

	CreateOrder(order models.Order) (models.Order, error)
	OrderByID(id int) (models.Order, error)
	Orders() ([]models.Order, error)
	SaveOrder(order models.Order) error

	CreateDiscount(discount models.Discount) (models.Discount, error)
	DiscountByID(id int) (models.Discount, error)
	DiscountsByRestaurant(restaurantID int) ([]models.Discount, error)
	DeleteDiscount(id int) error

	CreateRating(rating models.Rating) (models.Rating, error)
	RatingByID(id int) (models.Rating, error)
	RatingsByUser(userID int) ([]models.Rating, error)
	RatingsByRestaurant(restaurantID int) ([]models.Rating, error)
	SaveRating(rating models.Rating) error
	DeleteRating(id int) error

	AddFavourite(userID, restaurantID int) error
	DeleteFavourite(userID, restaurantID int) error
	FavouritesByUser(userID int) ([]models.Restaurant, error)

	Ping() error
	Close() error
}
