package service

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/andreeabea/FoodDeliveryAppServer/internal/apperr"
	"github.com/andreeabea/FoodDeliveryAppServer/internal/db"
	"github.com/andreeabea/FoodDeliveryAppServer/models"
)

// Orders is the order transaction engine. Place runs validate-then-commit
// under mu, so two concurrent orders cannot both pass stock validation
// before either commits.
type Orders struct {
	Database db.Database
	Logger   *zap.SugaredLogger

	mu         sync.Mutex
	courierSeq int
}

func NewOrders(database db.Database, logger *zap.SugaredLogger) *Orders {
	return &Orders{
		Database: database,
		Logger:   logger,
	}
}

type pickedItem struct {
	item     models.Item
	quantity int
}

// Place validates the whole request first, mutating nothing, then commits:
// stock decrements, the order row, and the wallet debit net of the
// applicable discount. The wallet check is against the pre-discount total,
// which is conservative.
func (s *Orders) Place(customer models.UserDTO, restaurant models.RestaurantDTO, itemsToOrder map[string]string) (models.OrderDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if customer.UserType != models.UserTypeRegular {
		return models.OrderDTO{}, apperr.New(apperr.EntityNotFound, "Regular user not found!")
	}
	user, err := s.Database.UserByID(customer.ID)
	if errors.Is(err, db.ErrNotFound) {
		return models.OrderDTO{}, apperr.New(apperr.EntityNotFound, "Regular user not found!")
	}
	if err != nil {
		return models.OrderDTO{}, err
	}
	if _, err = s.Database.RestaurantByID(restaurant.ID); errors.Is(err, db.ErrNotFound) {
		return models.OrderDTO{}, apperr.New(apperr.EntityNotFound, "Selected restaurant not found!")
	} else if err != nil {
		return models.OrderDTO{}, err
	}

	var totalPrice float64
	var totalItems int
	picks := make([]pickedItem, 0, len(itemsToOrder))

	for idString, quantityString := range itemsToOrder {
		if quantityString == "" {
			return models.OrderDTO{}, apperr.New(apperr.InvalidData, "Invalid quantity!")
		}
		id, idOK := parseInt(idString)
		quantity, quantityOK := parseInt(quantityString)
		if !idOK || !quantityOK || id <= 0 || quantity <= 0 {
			return models.OrderDTO{}, apperr.New(apperr.InvalidData, "Invalid input data!")
		}

		item, err := s.Database.ItemByID(id)
		if errors.Is(err, db.ErrNotFound) || (err == nil && item.RestaurantID != restaurant.ID) {
			return models.OrderDTO{}, apperr.New(apperr.EntityNotFound, "Selected item not found!")
		}
		if err != nil {
			return models.OrderDTO{}, err
		}
		if quantity > item.Stock {
			return models.OrderDTO{}, apperr.New(apperr.InvalidData,
				"Invalid quantity for item "+item.Name+". Not enough in stock.")
		}

		totalPrice += float64(quantity) * item.Price
		totalItems += quantity
		picks = append(picks, pickedItem{item: item, quantity: quantity})
	}

	if user.Wallet-totalPrice < 0 {
		return models.OrderDTO{}, apperr.New(apperr.InvalidData, "Not enough money to order!")
	}

	courier, err := s.nextCourier()
	if err != nil {
		return models.OrderDTO{}, err
	}

	order := models.Order{
		CustomerID: user.ID,
		CourierID:  courier.ID,
		Datetime:   time.Now().Format(models.DatetimeLayout),
		Status:     models.OrderCreated,
	}
	for _, pick := range picks {
		pick.item.Stock -= pick.quantity
		if err = s.Database.SaveItem(pick.item); err != nil {
			return models.OrderDTO{}, err
		}
		order.Items = append(order.Items, models.OrderedItem{ItemID: pick.item.ID, Quantity: pick.quantity})
	}

	order, err = s.Database.CreateOrder(order)
	if err != nil {
		return models.OrderDTO{}, err
	}

	discounts, err := s.Database.DiscountsByRestaurant(restaurant.ID)
	if err != nil {
		return models.OrderDTO{}, err
	}
	finalPrice := totalPrice
	if tier, ok := SelectDiscount(discounts, totalItems); ok {
		finalPrice = totalPrice - totalPrice*float64(tier.Percentage)/100
	}

	user.Wallet -= finalPrice
	if err = s.Database.SaveUser(user); err != nil {
		return models.OrderDTO{}, err
	}

	s.Logger.Infow("order placed", "id", order.ID, "customer", user.Username,
		"courier", courier.Username, "total", finalPrice)

	return models.NewOrderDTO(order, user, courier), nil
}

// nextCourier assigns couriers round-robin over delivery users ordered by
// id. Caller holds mu.
func (s *Orders) nextCourier() (models.User, error) {
	couriers, err := s.Database.UsersByType(models.UserTypeDelivery)
	if err != nil {
		return models.User{}, err
	}
	if len(couriers) == 0 {
		return models.User{}, apperr.New(apperr.EntityNotFound, "No courier available!")
	}

	courier := couriers[s.courierSeq%len(couriers)]
	s.courierSeq++
	return courier, nil
}

// ApplicableDiscount reports the percentage unlocked by itemCount at the
// given restaurant, and whether any tier applies at all.
func (s *Orders) ApplicableDiscount(restaurantID, itemCountString string) (int, bool, error) {
	restID, err := parseID(restaurantID)
	if err != nil {
		return 0, false, err
	}
	itemCount, ok := parseInt(itemCountString)
	if !ok {
		return 0, false, apperr.New(apperr.InvalidData, "Invalid input data!")
	}

	discounts, err := s.Database.DiscountsByRestaurant(restID)
	if err != nil {
		return 0, false, err
	}

	tier, ok := SelectDiscount(discounts, itemCount)
	if !ok {
		return 0, false, nil
	}
	return tier.Percentage, true, nil
}

func (s *Orders) All() ([]models.OrderDTO, error) {
	orders, err := s.Database.Orders()
	if err != nil {
		return nil, err
	}

	dtos := make([]models.OrderDTO, 0, len(orders))
	for _, order := range orders {
		customer, err := s.Database.UserByID(order.CustomerID)
		if err != nil {
			return nil, err
		}
		courier, err := s.Database.UserByID(order.CourierID)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, models.NewOrderDTO(order, customer, courier))
	}
	return dtos, nil
}

// ChangeStatus advances an order through CREATED -> IN_PROGRESS ->
// DELIVERED. Moving backwards or skipping IN_PROGRESS is rejected.
func (s *Orders) ChangeStatus(idString, statusString string) error {
	id, err := parseID(idString)
	if err != nil {
		return err
	}

	order, err := s.Database.OrderByID(id)
	if errors.Is(err, db.ErrNotFound) {
		return apperr.New(apperr.EntityNotFound, "Order not found!")
	}
	if err != nil {
		return err
	}

	newStatus := models.OrderStatus(statusString)
	switch newStatus {
	case models.OrderCreated:
		return apperr.New(apperr.InvalidData, "Invalid status. The order was already created!")
	case models.OrderInProgress:
		if order.Status == models.OrderDelivered {
			return apperr.New(apperr.InvalidData,
				"Invalid status. The order cannot be in progress, it was already delivered!")
		}
	case models.OrderDelivered:
		if order.Status != models.OrderInProgress {
			return apperr.New(apperr.InvalidData,
				"Invalid status. The order must be in progress first, then to be delivered!")
		}
	default:
		return apperr.New(apperr.InvalidData, "Invalid status!")
	}

	order.Status = newStatus
	return s.Database.SaveOrder(order)
}
