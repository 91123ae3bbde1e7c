package service

import (
	"strconv"

	"github.com/andreeabea/FoodDeliveryAppServer/internal/apperr"
	"github.com/andreeabea/FoodDeliveryAppServer/internal/db"
	"github.com/andreeabea/FoodDeliveryAppServer/models"
)

func parseInt(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// parseID accepts only positive integers encoded as decimal strings.
func parseID(s string) (int, error) {
	n, ok := parseInt(s)
	if !ok || n <= 0 {
		return 0, apperr.New(apperr.InvalidData, "The given id is invalid!")
	}
	return n, nil
}

func restaurantDTO(database db.Database, restaurant models.Restaurant) (models.RestaurantDTO, error) {
	items, err := database.ItemsByRestaurant(restaurant.ID)
	if err != nil {
		return models.RestaurantDTO{}, err
	}
	ratings, err := database.RatingsByRestaurant(restaurant.ID)
	if err != nil {
		return models.RestaurantDTO{}, err
	}
	return models.NewRestaurantDTO(restaurant, items, ratings), nil
}
