package db

import (
	"sort"
	"sync"

	"github.com/andreeabea/FoodDeliveryAppServer/models"
)

// Memory implements Database over plain maps. Used for local runs without
// PostgreSQL and by the service tests.
type Memory struct {
	mu sync.RWMutex

	users       map[int]models.User
	restaurants map[int]models.Restaurant
	items       map[int]models.Item
	orders      map[int]models.Order
	discounts   map[int]models.Discount
	ratings     map[int]models.Rating
	favourites  map[int]map[int]bool

	nextUserID       int
	nextRestaurantID int
	nextItemID       int
	nextOrderID      int
	nextDiscountID   int
	nextRatingID     int
}

func NewMemory() *Memory {
	return &Memory{
		users:       make(map[int]models.User),
		restaurants: make(map[int]models.Restaurant),
		items:       make(map[int]models.Item),
		orders:      make(map[int]models.Order),
		discounts:   make(map[int]models.Discount),
		ratings:     make(map[int]models.Rating),
		favourites:  make(map[int]map[int]bool),
	}
}

func (m *Memory) CreateUser(user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextUserID++
	user.ID = m.nextUserID
	m.users[user.ID] = user
	return user, nil
}

func (m *Memory) UserByID(id int) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return user, nil
}

func (m *Memory) UserByUsername(username string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (m *Memory) UsersByType(userType models.UserType) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]models.User, 0)
	for _, user := range m.users {
		if user.UserType == userType {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (m *Memory) SaveUser(user models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.ID]; !ok {
		return ErrNotFound
	}
	m.users[user.ID] = user
	return nil
}

func (m *Memory) CreateRestaurant(restaurant models.Restaurant) (models.Restaurant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextRestaurantID++
	restaurant.ID = m.nextRestaurantID
	m.restaurants[restaurant.ID] = restaurant
	return restaurant, nil
}

func (m *Memory) RestaurantByID(id int) (models.Restaurant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	restaurant, ok := m.restaurants[id]
	if !ok {
		return models.Restaurant{}, ErrNotFound
	}
	return restaurant, nil
}

func (m *Memory) RestaurantByName(name string) (models.Restaurant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, restaurant := range m.restaurants {
		if restaurant.Name == name {
			return restaurant, nil
		}
	}
	return models.Restaurant{}, ErrNotFound
}

func (m *Memory) Restaurants() ([]models.Restaurant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	restaurants := make([]models.Restaurant, 0, len(m.restaurants))
	for _, restaurant := range m.restaurants {
		restaurants = append(restaurants, restaurant)
	}
	sort.Slice(restaurants, func(i, j int) bool { return restaurants[i].ID < restaurants[j].ID })
	return restaurants, nil
}

func (m *Memory) SaveRestaurant(restaurant models.Restaurant) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.restaurants[restaurant.ID]; !ok {
		return ErrNotFound
	}
	m.restaurants[restaurant.ID] = restaurant
	return nil
}

func (m *Memory) DeleteRestaurant(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.restaurants[id]; !ok {
		return ErrNotFound
	}
	delete(m.restaurants, id)
	for itemID, item := range m.items {
		if item.RestaurantID == id {
			delete(m.items, itemID)
		}
	}
	for discountID, discount := range m.discounts {
		if discount.RestaurantID == id {
			delete(m.discounts, discountID)
		}
	}
	return nil
}

func (m *Memory) CreateItem(item models.Item) (models.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextItemID++
	item.ID = m.nextItemID
	m.items[item.ID] = item
	return item, nil
}

func (m *Memory) ItemByID(id int) (models.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	item, ok := m.items[id]
	if !ok {
		return models.Item{}, ErrNotFound
	}
	return item, nil
}

func (m *Memory) ItemsByRestaurant(restaurantID int) ([]models.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]models.Item, 0)
	for _, item := range m.items {
		if item.RestaurantID == restaurantID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (m *Memory) SaveItem(item models.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[item.ID]; !ok {
		return ErrNotFound
	}
	m.items[item.ID] = item
	return nil
}

func (m *Memory) DeleteItem(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *Memory) CreateOrder(order models.Order) (models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextOrderID++
	order.ID = m.nextOrderID
	m.orders[order.ID] = order
	return order, nil
}

func (m *Memory) OrderByID(id int) (models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	order, ok := m.orders[id]
	if !ok {
		return models.Order{}, ErrNotFound
	}
	return order, nil
}

func (m *Memory) Orders() ([]models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	orders := make([]models.Order, 0, len(m.orders))
	for _, order := range m.orders {
		orders = append(orders, order)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (m *Memory) SaveOrder(order models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.orders[order.ID]; !ok {
		return ErrNotFound
	}
	m.orders[order.ID] = order
	return nil
}

func (m *Memory) CreateDiscount(discount models.Discount) (models.Discount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextDiscountID++
	discount.ID = m.nextDiscountID
	m.discounts[discount.ID] = discount
	return discount, nil
}

func (m *Memory) DiscountByID(id int) (models.Discount, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	discount, ok := m.discounts[id]
	if !ok {
		return models.Discount{}, ErrNotFound
	}
	return discount, nil
}

func (m *Memory) DiscountsByRestaurant(restaurantID int) ([]models.Discount, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	discounts := make([]models.Discount, 0)
	for _, discount := range m.discounts {
		if discount.RestaurantID == restaurantID {
			discounts = append(discounts, discount)
		}
	}
	sort.Slice(discounts, func(i, j int) bool { return discounts[i].ID < discounts[j].ID })
	return discounts, nil
}

func (m *Memory) DeleteDiscount(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.discounts[id]; !ok {
		return ErrNotFound
	}
	delete(m.discounts, id)
	return nil
}

func (m *Memory) CreateRating(rating models.Rating) (models.Rating, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextRatingID++
	rating.ID = m.nextRatingID
	m.ratings[rating.ID] = rating
	return rating, nil
}

func (m *Memory) RatingByID(id int) (models.Rating, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rating, ok := m.ratings[id]
	if !ok {
		return models.Rating{}, ErrNotFound
	}
	return rating, nil
}

func (m *Memory) RatingsByUser(userID int) ([]models.Rating, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ratings := make([]models.Rating, 0)
	for _, rating := range m.ratings {
		if rating.UserID == userID {
			ratings = append(ratings, rating)
		}
	}
	sort.Slice(ratings, func(i, j int) bool { return ratings[i].ID < ratings[j].ID })
	return ratings, nil
}

func (m *Memory) RatingsByRestaurant(restaurantID int) ([]models.Rating, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ratings := make([]models.Rating, 0)
	for _, rating := range m.ratings {
		if rating.RestaurantID == restaurantID {
			ratings = append(ratings, rating)
		}
	}
	sort.Slice(ratings, func(i, j int) bool { return ratings[i].ID < ratings[j].ID })
	return ratings, nil
}

func (m *Memory) SaveRating(rating models.Rating) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.ratings[rating.ID]; !ok {
		return ErrNotFound
	}
	m.ratings[rating.ID] = rating
	return nil
}

func (m *Memory) DeleteRating(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.ratings[id]; !ok {
		return ErrNotFound
	}
	delete(m.ratings, id)
	return nil
}

func (m *Memory) AddFavourite(userID, restaurantID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.favourites[userID] == nil {
		m.favourites[userID] = make(map[int]bool)
	}
	m.favourites[userID][restaurantID] = true
	return nil
}

func (m *Memory) DeleteFavourite(userID, restaurantID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.favourites[userID][restaurantID] {
		return ErrNotFound
	}
	delete(m.favourites[userID], restaurantID)
	return nil
}

func (m *Memory) FavouritesByUser(userID int) ([]models.Restaurant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	restaurants := make([]models.Restaurant, 0)
	for restaurantID := range m.favourites[userID] {
		if restaurant, ok := m.restaurants[restaurantID]; ok {
			restaurants = append(restaurants, restaurant)
		}
	}
	sort.Slice(restaurants, func(i, j int) bool { return restaurants[i].ID < restaurants[j].ID })
	return restaurants, nil
}

func (m *Memory) Ping() error {
	return nil
}

func (m *Memory) Close() error {
	return nil
}
