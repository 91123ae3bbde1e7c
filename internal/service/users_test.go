package service

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreeabea/FoodDeliveryAppServer/internal/apperr"
	"github.com/andreeabea/FoodDeliveryAppServer/internal/db"
	"github.com/andreeabea/FoodDeliveryAppServer/logging"
	"github.com/andreeabea/FoodDeliveryAppServer/models"
)

func newUsersService() (*Users, *db.Memory) {
	database := db.NewMemory()
	return NewUsers(database, logging.GetSugaredLogger()), database
}

func TestRegisterAndLogin(t *testing.T) {
	users, _ := newUsersService()

	registered, err := users.Register("Ana", "ana", "secret", "secret", "50")
	require.NoError(t, err)
	assert.Equal(t, models.UserTypeRegular, registered.UserType)
	assert.Equal(t, float64(50), registered.Wallet)
	assert.NotEqual(t, "secret", registered.Password, "stored password must be hashed")

	logged, err := users.Login("ana", "secret")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, logged.ID)

	_, err = users.Login("ana", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Password for user is incorrect! Try again.", err.Error())
	kind, ok := apperr.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, apperr.IncorrectPassword, kind)

	_, err = users.Login("nobody", "secret")
	assert.EqualError(t, err, "User does not exist!")
}

func TestRegisterValidation(t *testing.T) {
	users, _ := newUsersService()
	_, err := users.Register("Ana", "ana", "secret", "secret", "50")
	require.NoError(t, err)

	cases := []struct {
		name    string
		args    [5]string
		message string
	}{
		{"empty username", [5]string{"Ana", "", "p", "p", "10"}, "Invalid username!"},
		{"duplicate username", [5]string{"Ana", "ana", "p", "p", "10"}, "Invalid username!"},
		{"empty name", [5]string{"", "bob", "p", "p", "10"}, "Name field is empty!"},
		{"empty password", [5]string{"Bob", "bob", "", "p", "10"}, "Password field is empty!"},
		{"empty second password", [5]string{"Bob", "bob", "p", "", "10"}, "Second password field is empty!"},
		{"bad wallet", [5]string{"Bob", "bob", "p", "p", "abc"}, "Invalid wallet amount!"},
		{"negative wallet", [5]string{"Bob", "bob", "p", "p", "-1"}, "Invalid wallet amount!"},
		{"password mismatch", [5]string{"Bob", "bob", "p", "q", "10"}, "The passwords doesn't match!"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := users.Register(tc.args[0], tc.args[1], tc.args[2], tc.args[3], tc.args[4])
			assert.EqualError(t, err, tc.message)
		})
	}
}

func TestUpdateWallet(t *testing.T) {
	users, database := newUsersService()

	registered, err := users.Register("Ana", "ana", "secret", "secret", "50")
	require.NoError(t, err)
	courier, err := database.CreateUser(models.User{
		Name: "Mihai", Username: "mihai.curier", Password: "x",
		UserType: models.UserTypeDelivery,
	})
	require.NoError(t, err)

	require.NoError(t, users.UpdateWallet("1", "120.5"))
	user, err := database.UserByID(registered.ID)
	require.NoError(t, err)
	assert.Equal(t, 120.5, user.Wallet)

	assert.EqualError(t, users.UpdateWallet("1", "-3"), "Invalid input data!")
	assert.EqualError(t, users.UpdateWallet("abc", "10"), "Invalid input data!")
	assert.EqualError(t, users.UpdateWallet("99", "10"), "Regular user not found!")

	// Couriers have no wallet to edit.
	err = users.UpdateWallet(strconv.Itoa(courier.ID), "10")
	assert.EqualError(t, err, "Regular user not found!")
}

func TestFavouriteRestaurants(t *testing.T) {
	users, database := newUsersService()

	registered, err := users.Register("Ana", "ana", "secret", "secret", "50")
	require.NoError(t, err)
	restaurant, err := database.CreateRestaurant(models.Restaurant{Name: "Trattoria"})
	require.NoError(t, err)

	userID := strconv.Itoa(registered.ID)
	restID := strconv.Itoa(restaurant.ID)

	_, err = users.AddFavourite(restID, userID)
	require.NoError(t, err)

	favourites, err := users.FavouriteRestaurants(userID)
	require.NoError(t, err)
	require.Len(t, favourites, 1)
	assert.Equal(t, "Trattoria", favourites[0].Name)

	_, err = users.AddFavourite(restID, userID)
	assert.EqualError(t, err, "This restaurant is already in the favourite list!")

	_, err = users.DeleteFavourite(restID, userID)
	require.NoError(t, err)
	_, err = users.DeleteFavourite(restID, userID)
	assert.EqualError(t, err, "This restaurant is not in the favourite list!")

	_, err = users.AddFavourite("42", userID)
	assert.EqualError(t, err, "Restaurant not found!")
}

func TestRateRestaurantUpserts(t *testing.T) {
	users, database := newUsersService()

	registered, err := users.Register("Ana", "ana", "secret", "secret", "50")
	require.NoError(t, err)
	restaurant, err := database.CreateRestaurant(models.Restaurant{Name: "Trattoria"})
	require.NoError(t, err)

	userID := strconv.Itoa(registered.ID)
	restID := strconv.Itoa(restaurant.ID)

	_, err = users.RateRestaurant(restID, "4", userID)
	require.NoError(t, err)
	_, err = users.RateRestaurant(restID, "2", userID)
	require.NoError(t, err)

	ratings, err := database.RatingsByUser(registered.ID)
	require.NoError(t, err)
	require.Len(t, ratings, 1, "rating the same restaurant twice must overwrite")
	assert.Equal(t, 2, ratings[0].Rate)
}
