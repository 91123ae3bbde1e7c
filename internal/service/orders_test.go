package service

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreeabea/FoodDeliveryAppServer/internal/apperr"
	"github.com/andreeabea/FoodDeliveryAppServer/internal/db"
	"github.com/andreeabea/FoodDeliveryAppServer/logging"
	"github.com/andreeabea/FoodDeliveryAppServer/models"
)

type orderFixture struct {
	database *db.Memory
	orders   *Orders
	customer models.User
	courier  models.User
	pizza    models.Item
	cola     models.Item
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	database := db.NewMemory()
	logger := logging.GetSugaredLogger()

	customer, err := database.CreateUser(models.User{
		Name: "Ana", Username: "ana", Password: "x",
		Wallet: 100, UserType: models.UserTypeRegular,
	})
	require.NoError(t, err)

	courier, err := database.CreateUser(models.User{
		Name: "Mihai", Username: "mihai.curier", Password: "x",
		UserType: models.UserTypeDelivery,
	})
	require.NoError(t, err)

	restaurant, err := database.CreateRestaurant(models.Restaurant{Name: "Trattoria"})
	require.NoError(t, err)

	pizza, err := database.CreateItem(models.Item{
		RestaurantID: restaurant.ID, Name: "pizza", Stock: 10, Price: 10,
	})
	require.NoError(t, err)

	cola, err := database.CreateItem(models.Item{
		RestaurantID: restaurant.ID, Name: "cola", Stock: 3, Price: 2,
	})
	require.NoError(t, err)

	return &orderFixture{
		database: database,
		orders:   NewOrders(database, logger),
		customer: customer,
		courier:  courier,
		pizza:    pizza,
		cola:     cola,
	}
}

func (f *orderFixture) customerDTO() models.UserDTO {
	return models.NewUserDTO(f.customer)
}

func (f *orderFixture) restaurantDTO() models.RestaurantDTO {
	return models.RestaurantDTO{ID: f.pizza.RestaurantID, Name: "Trattoria"}
}

func TestPlaceOrder(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.orders.Place(f.customerDTO(), f.restaurantDTO(), map[string]string{
		"1": "2",
	})
	require.NoError(t, err)

	assert.Equal(t, models.OrderCreated, order.Status)
	assert.Equal(t, "ana", order.Customer.Username)
	assert.Equal(t, "mihai.curier", order.Courier.Username)
	assert.Equal(t, float64(80), order.Customer.Wallet)

	item, err := f.database.ItemByID(f.pizza.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, item.Stock)

	user, err := f.database.UserByID(f.customer.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(80), user.Wallet)
}

func TestPlaceOrderAppliesDiscount(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.database.CreateDiscount(models.Discount{
		RestaurantID: f.pizza.RestaurantID, MinItemCount: 5, Percentage: 20,
	})
	require.NoError(t, err)

	// 5 pizzas at 10 = 50, minus 20% = 40.
	_, err = f.orders.Place(f.customerDTO(), f.restaurantDTO(), map[string]string{
		"1": "5",
	})
	require.NoError(t, err)

	user, err := f.database.UserByID(f.customer.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(60), user.Wallet)
}

func TestPlaceOrderInsufficientWallet(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.orders.Place(f.customerDTO(), f.restaurantDTO(), map[string]string{
		"1": "10", "2": "1",
	})
	require.Error(t, err)
	assert.Equal(t, "Not enough money to order!", err.Error())

	// Nothing committed.
	item, err := f.database.ItemByID(f.pizza.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, item.Stock)
	orders, err := f.database.Orders()
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestPlaceOrderOutOfStockMutatesNothing(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.orders.Place(f.customerDTO(), f.restaurantDTO(), map[string]string{
		"2": "4",
	})
	require.Error(t, err)
	assert.Equal(t, "Invalid quantity for item cola. Not enough in stock.", err.Error())

	item, err := f.database.ItemByID(f.cola.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, item.Stock)
	user, err := f.database.UserByID(f.customer.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(100), user.Wallet)
}

func TestPlaceOrderUnknownItem(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.orders.Place(f.customerDTO(), f.restaurantDTO(), map[string]string{
		"99": "1",
	})
	require.Error(t, err)
	assert.Equal(t, "Selected item not found!", err.Error())
}

func TestPlaceOrderRejectsNonRegularCustomer(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.orders.Place(models.NewUserDTO(f.courier), f.restaurantDTO(), map[string]string{
		"1": "1",
	})
	require.Error(t, err)
	assert.Equal(t, "Regular user not found!", err.Error())
}

func TestPlaceOrderNoCourier(t *testing.T) {
	f := newOrderFixture(t)
	require.NoError(t, f.database.SaveUser(models.User{
		ID: f.courier.ID, Name: f.courier.Name, Username: f.courier.Username,
		Password: "x", UserType: models.UserTypeAdmin,
	}))

	_, err := f.orders.Place(f.customerDTO(), f.restaurantDTO(), map[string]string{
		"1": "1",
	})
	require.Error(t, err)
	assert.Equal(t, "No courier available!", err.Error())
}

func TestPlaceOrderConcurrentOversell(t *testing.T) {
	f := newOrderFixture(t)

	// Two customers race for the full cola stock. Only one order can win.
	other, err := f.database.CreateUser(models.User{
		Name: "Bob", Username: "bob", Password: "x",
		Wallet: 100, UserType: models.UserTypeRegular,
	})
	require.NoError(t, err)

	customers := []models.UserDTO{f.customerDTO(), models.NewUserDTO(other)}
	results := make([]error, len(customers))
	var wg sync.WaitGroup
	for i, customer := range customers {
		wg.Add(1)
		go func(i int, customer models.UserDTO) {
			defer wg.Done()
			_, results[i] = f.orders.Place(customer, f.restaurantDTO(), map[string]string{
				"2": "3",
			})
		}(i, customer)
	}
	wg.Wait()

	failures := 0
	for _, err := range results {
		if err != nil {
			failures++
			assert.Equal(t, "Invalid quantity for item cola. Not enough in stock.", err.Error())
		}
	}
	assert.Equal(t, 1, failures, "exactly one of the two racing orders must fail")

	item, err := f.database.ItemByID(f.cola.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, item.Stock)
}

func TestRoundRobinCourierAssignment(t *testing.T) {
	f := newOrderFixture(t)

	second, err := f.database.CreateUser(models.User{
		Name: "Vlad", Username: "vlad.curier", Password: "x",
		UserType: models.UserTypeDelivery,
	})
	require.NoError(t, err)

	first, err := f.orders.Place(f.customerDTO(), f.restaurantDTO(), map[string]string{"1": "1"})
	require.NoError(t, err)
	next, err := f.orders.Place(first.Customer, f.restaurantDTO(), map[string]string{"1": "1"})
	require.NoError(t, err)
	third, err := f.orders.Place(next.Customer, f.restaurantDTO(), map[string]string{"1": "1"})
	require.NoError(t, err)

	assert.Equal(t, f.courier.Username, first.Courier.Username)
	assert.Equal(t, second.Username, next.Courier.Username)
	assert.Equal(t, f.courier.Username, third.Courier.Username)
}

func TestChangeOrderStatus(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.orders.Place(f.customerDTO(), f.restaurantDTO(), map[string]string{"1": "1"})
	require.NoError(t, err)
	id := strconv.Itoa(order.ID)

	err = f.orders.ChangeStatus(id, "CREATED")
	assert.EqualError(t, err, "Invalid status. The order was already created!")

	err = f.orders.ChangeStatus(id, "DELIVERED")
	assert.EqualError(t, err, "Invalid status. The order must be in progress first, then to be delivered!")

	require.NoError(t, f.orders.ChangeStatus(id, "IN_PROGRESS"))
	require.NoError(t, f.orders.ChangeStatus(id, "DELIVERED"))

	err = f.orders.ChangeStatus(id, "IN_PROGRESS")
	assert.EqualError(t, err, "Invalid status. The order cannot be in progress, it was already delivered!")

	err = f.orders.ChangeStatus(id, "LOST")
	assert.EqualError(t, err, "Invalid status!")

	err = f.orders.ChangeStatus("77", "IN_PROGRESS")
	assert.EqualError(t, err, "Order not found!")

	kind, ok := apperr.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, apperr.EntityNotFound, kind)
}

func TestApplicableDiscount(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.database.CreateDiscount(models.Discount{
		RestaurantID: f.pizza.RestaurantID, MinItemCount: 2, Percentage: 10,
	})
	require.NoError(t, err)

	percentage, ok, err := f.orders.ApplicableDiscount("1", "4")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 10, percentage)

	_, ok, err = f.orders.ApplicableDiscount("1", "1")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = f.orders.ApplicableDiscount("abc", "4")
	assert.EqualError(t, err, "The given id is invalid!")
}
