package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreeabea/FoodDeliveryAppServer/internal/db"
	"github.com/andreeabea/FoodDeliveryAppServer/logging"
	"github.com/andreeabea/FoodDeliveryAppServer/models"
)

func newRestaurantsService() (*Restaurants, *db.Memory) {
	database := db.NewMemory()
	return NewRestaurants(database, logging.GetSugaredLogger()), database
}

func TestCreateRestaurant(t *testing.T) {
	restaurants, _ := newRestaurantsService()

	require.NoError(t, restaurants.Create("Trattoria"))

	err := restaurants.Create("Trattoria")
	assert.EqualError(t, err, "Invalid restaurant name! Restaurant Trattoria already exists!")

	err = restaurants.Create("")
	assert.EqualError(t, err, "Invalid restaurant name")
}

func TestFindRestaurantRatingDisplay(t *testing.T) {
	restaurants, database := newRestaurantsService()
	require.NoError(t, restaurants.Create("Trattoria"))

	found, err := restaurants.Find("1")
	require.NoError(t, err)
	assert.Equal(t, "0.0", found.Rating)

	_, err = database.CreateRating(models.Rating{UserID: 1, RestaurantID: 1, Rate: 5})
	require.NoError(t, err)
	_, err = database.CreateRating(models.Rating{UserID: 2, RestaurantID: 1, Rate: 4})
	require.NoError(t, err)

	found, err = restaurants.Find("1")
	require.NoError(t, err)
	assert.Equal(t, "4.5 (2)", found.Rating)

	_, err = restaurants.Find("9")
	assert.EqualError(t, err, "Restaurant not found!")

	_, err = restaurants.Find("zero")
	assert.EqualError(t, err, "The given id is invalid!")
}

func TestDiscountAdministration(t *testing.T) {
	restaurants, _ := newRestaurantsService()
	require.NoError(t, restaurants.Create("Trattoria"))

	require.NoError(t, restaurants.AddDiscount("1", "5", "20"))

	err := restaurants.AddDiscount("1", "5", "20")
	assert.EqualError(t, err, "Discount already exists for this restaurant!")
	assert.EqualError(t, restaurants.AddDiscount("1", "five", "20"), "The given minimum number of items is invalid!")
	assert.EqualError(t, restaurants.AddDiscount("1", "5", "pct"), "The given discount percentage is invalid!")
	assert.EqualError(t, restaurants.AddDiscount("1", "0", "20"), "The given input is invalid!")
	assert.EqualError(t, restaurants.AddDiscount("9", "5", "20"), "Restaurant not found!")

	discounts, err := restaurants.Discounts("1")
	require.NoError(t, err)
	require.Len(t, discounts, 1)
	assert.Equal(t, "5+ items: 20%", discounts[0].Discount)

	// Deleting through the wrong restaurant must not work.
	assert.EqualError(t, restaurants.DeleteDiscount("2", "1"), "Discount not found!")
	require.NoError(t, restaurants.DeleteDiscount("1", "1"))
	assert.EqualError(t, restaurants.DeleteDiscount("1", "1"), "Discount not found!")
}

func TestDeleteRestaurantCascades(t *testing.T) {
	restaurants, database := newRestaurantsService()
	require.NoError(t, restaurants.Create("Trattoria"))

	_, err := database.CreateItem(models.Item{RestaurantID: 1, Name: "pizza", Stock: 5, Price: 10})
	require.NoError(t, err)
	_, err = database.CreateDiscount(models.Discount{RestaurantID: 1, MinItemCount: 2, Percentage: 10})
	require.NoError(t, err)

	require.NoError(t, restaurants.Delete("1"))

	items, err := database.ItemsByRestaurant(1)
	require.NoError(t, err)
	assert.Empty(t, items)
	discounts, err := database.DiscountsByRestaurant(1)
	require.NoError(t, err)
	assert.Empty(t, discounts)

	assert.EqualError(t, restaurants.Delete("1"), "Restaurant not found!")
}
