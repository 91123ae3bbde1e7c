package session

import (
	"encoding/json"
	"strconv"

	"github.com/andreeabea/FoodDeliveryAppServer/internal/apperr"
	"github.com/andreeabea/FoodDeliveryAppServer/models"
)

// ackMessage is the reply of fire-and-acknowledge commands, keeping the
// one-line-request one-line-response pairing observable.
var ackMessage = models.Message{Header: "ok", ObjectsJSON: []string{}}

func arg(payload []string, index int) (string, error) {
	if index >= len(payload) {
		return "", apperr.New(apperr.InvalidData, "Invalid input data!")
	}
	return payload[index], nil
}

func decodeArg[T any](payload []string, index int) (T, error) {
	var value T
	raw, err := arg(payload, index)
	if err != nil {
		return value, err
	}
	if err = json.Unmarshal([]byte(raw), &value); err != nil {
		return value, apperr.New(apperr.InvalidData, "Invalid input data!")
	}
	return value, nil
}

func encodeMessage[T any](header string, objects ...T) (models.Message, error) {
	message := models.Message{Header: header, ObjectsJSON: make([]string, 0, len(objects))}
	for _, object := range objects {
		data, err := json.Marshal(object)
		if err != nil {
			return models.Message{}, err
		}
		message.ObjectsJSON = append(message.ObjectsJSON, string(data))
	}
	return message, nil
}

// dispatch routes one decoded message to its handler. The command set is
// closed; anything unknown is answered with InvalidData rather than
// dropping the connection.
func (s *Session) dispatch(received models.Message) (models.Message, error) {
	payload := received.ObjectsJSON

	switch received.Header {
	case "login":
		return s.handleLogin(payload)
	case "getUser":
		return s.handleGetUser(payload)
	case "getRestaurants":
		return s.handleGetRestaurants()
	case "getSelRestaurant":
		return s.handleGetSelRestaurant(payload)
	case "orderItems":
		return s.handleOrderItems(payload)
	case "getItems":
		return s.handleGetItems(payload)
	case "register":
		return s.handleRegister(payload)
	case "getUsers":
		return s.handleGetUsers()
	case "editWallet":
		return s.handleEditWallet(payload)
	case "createRestaurant":
		return s.handleCreateRestaurant(payload)
	case "updateRestaurant":
		return s.handleUpdateRestaurant(payload)
	case "deleteRestaurant":
		return s.handleDeleteRestaurant(payload)
	case "addItem":
		return s.handleAddItem(payload)
	case "updateItem":
		return s.handleUpdateItem(payload)
	case "deleteItem":
		return s.handleDeleteItem(payload)
	case "getItem":
		return s.handleGetItem(payload)
	case "getOrders":
		return s.handleGetOrders()
	case "changeOrderStatus":
		return s.handleChangeOrderStatus(payload)
	case "getFavouriteRestaurants":
		return s.handleGetFavouriteRestaurants(payload)
	case "addFavouriteRestaurant":
		return s.handleAddFavouriteRestaurant(payload)
	case "deleteFavouriteRestaurant":
		return s.handleDeleteFavouriteRestaurant(payload)
	case "rateRestaurant":
		return s.handleRateRestaurant(payload)
	case "getRatings":
		return s.handleGetRatings(payload)
	case "addRating":
		return s.handleAddRating(payload)
	case "deleteRating":
		return s.handleDeleteRating(payload)
	case "updateRating":
		return s.handleUpdateRating(payload)
	case "getDiscounts":
		return s.handleGetDiscounts(payload)
	case "addDiscount":
		return s.handleAddDiscount(payload)
	case "deleteDiscount":
		return s.handleDeleteDiscount(payload)
	case "getDiscount":
		return s.handleGetDiscount(payload)
	default:
		return models.Message{}, apperr.New(apperr.InvalidData, "unknown command "+received.Header)
	}
}

func (s *Session) handleLogin(payload []string) (models.Message, error) {
	credentials, err := decodeArg[models.UserDTO](payload, 0)
	if err != nil {
		return models.Message{}, err
	}

	user, err := s.services.Users.Login(credentials.Username, credentials.Password)
	if err != nil {
		return models.Message{}, err
	}

	if user.UserType == models.UserTypeDelivery {
		s.courierID = user.ID
		s.hub.Subscribe(user.ID, s)
		s.logger.Infow("courier subscribed", "session", s.ID, "courier", user.Username)
	}

	return encodeMessage("UserDTO", user)
}

func (s *Session) handleGetUser(payload []string) (models.Message, error) {
	idString, err := arg(payload, 0)
	if err != nil {
		return models.Message{}, err
	}

	user, err := s.services.Users.Get(idString)
	if err != nil {
		return models.Message{}, err
	}
	return encodeMessage("UserDTO", user)
}

func (s *Session) handleGetRestaurants() (models.Message, error) {
	restaurants, err := s.services.Restaurants.All()
	if err != nil {
		return models.Message{}, err
	}
	return encodeMessage("RestaurantDTO", restaurants...)
}

func (s *Session) handleGetSelRestaurant(payload []string) (models.Message, error) {
	idString, err := arg(payload, 0)
	if err != nil {
		return models.Message{}, err
	}

	restaurant, err := s.services.Restaurants.Find(idString)
	if err != nil {
		return models.Message{}, err
	}
	return encodeMessage("RestaurantDTO", restaurant)
}

func (s *Session) handleOrderItems(payload []string) (models.Message, error) {
	customer, err := decodeArg[models.UserDTO](payload, 0)
	if err != nil {
		return models.Message{}, err
	}
	restaurant, err := decodeArg[models.RestaurantDTO](payload, 1)
	if err != nil {
		return models.Message{}, err
	}
	itemsToOrder, err := decodeArg[map[string]string](payload, 2)
	if err != nil {
		return models.Message{}, err
	}

	order, err := s.services.Orders.Place(customer, restaurant, itemsToOrder)
	if err != nil {
		return models.Message{}, err
	}

	s.hub.Publish(order)

	return encodeMessage("currentUser", order.Customer)
}

func (s *Session) handleGetItems(payload []string) (models.Message, error) {
	idString, err := arg(payload, 0)
	if err != nil {
		return models.Message{}, err
	}

	items, err := s.services.Restaurants.Items(idString)
	if err != nil {
		return models.Message{}, err
	}
	return encodeMessage("ItemDTO", items...)
}

func (s *Session) handleRegister(payload []string) (models.Message, error) {
	fields := make([]string, 5)
	for i := range fields {
		field, err := arg(payload, i)
		if err != nil {
			return models.Message{}, err
		}
		fields[i] = field
	}

	user, err := s.services.Users.Register(fields[0], fields[1], fields[2], fields[3], fields[4])
	if err != nil {
		return models.Message{}, err
	}
	return encodeMessage("UserDTO", user)
}

func (s *Session) handleGetUsers() (models.Message, error) {
	users, err := s.services.Users.RegularUsers()
	if err != nil {
		return models.Message{}, err
	}
	return encodeMessage("UserDTO", users...)
}

func (s *Session) handleEditWallet(payload []string) (models.Message, error) {
	idString, err := arg(payload, 0)
	if err != nil {
		return models.Message{}, err
	}
	amountString, err := arg(payload, 1)
	if err != nil {
		return models.Message{}, err
	}

	if err = s.services.Users.UpdateWallet(idString, amountString); err != nil {
		return models.Message{}, err
	}
	return ackMessage, nil
}

func (s *Session) handleCreateRestaurant(payload []string) (models.Message, error) {
	name, err := arg(payload, 0)
	if err != nil {
		return models.Message{}, err
	}

	if err = s.services.Restaurants.Create(name); err != nil {
		return models.Message{}, err
	}
	return ackMessage, nil
}

func (s *Session) handleUpdateRestaurant(payload []string) (models.Message, error) {
	idString, err := arg(payload, 0)
	if err != nil {
		return models.Message{}, err
	}
	name, err := arg(payload, 1)
	if err != nil {
		return models.Message{}, err
	}

	if err = s.services.Restaurants.Update(idString, name); err != nil {
		return models.Message{}, err
	}
	return ackMessage, nil
}

func (s *Session) handleDeleteRestaurant(payload []string) (models.Message, error) {
	idString, err := arg(payload, 0)
	if err != nil {
		return models.Message{}, err
	}

	if err = s.services.Restaurants.Delete(idString); err != nil {
		return models.Message{}, err
	}
	return ackMessage, nil
}

func (s *Session) handleAddItem(payload []string) (models.Message, error) {
	restaurant, err := decodeArg[models.RestaurantDTO](payload, 0)
	if err != nil {
		return models.Message{}, err
	}
	name, err := arg(payload, 1)
	if err != nil {
		return models.Message{}, err
	}
	stockString, err := arg(payload, 2)
	if err != nil {
		return models.Message{}, err
	}
	priceString, err := arg(payload, 3)
	if err != nil {
		return models.Message{}, err
	}

	if err = s.services.Items.Add(restaurant, name, stockString, priceString); err != nil {
		return models.Message{}, err
	}
	return ackMessage, nil
}

func (s *Session) handleUpdateItem(payload []string) (models.Message, error) {
	restaurant, err := decodeArg[models.RestaurantDTO](payload, 0)
	if err != nil {
		return models.Message{}, err
	}
	fields := make([]string, 4)
	for i := range fields {
		field, err := arg(payload, i+1)
		if err != nil {
			return models.Message{}, err
		}
		fields[i] = field
	}

	if err = s.services.Items.Update(restaurant, fields[0], fields[1], fields[2], fields[3]); err != nil {
		return models.Message{}, err
	}
	return ackMessage, nil
}

func (s *Session) handleDeleteItem(payload []string) (models.Message, error) {
	restaurant, err := decodeArg[models.RestaurantDTO](payload, 0)
	if err != nil {
		return models.Message{}, err
	}
	idString, err := arg(payload, 1)
	if err != nil {
		return models.Message{}, err
	}

	if err = s.services.Items.Delete(restaurant, idString); err != nil {
		return models.Message{}, err
	}
	return ackMessage, nil
}

func (s *Session) handleGetItem(payload []string) (models.Message, error) {
	restaurant, err := decodeArg[models.RestaurantDTO](payload, 0)
	if err != nil {
		return models.Message{}, err
	}
	idString, err := arg(payload, 1)
	if err != nil {
		return models.Message{}, err
	}

	item, err := s.services.Items.Find(idString, restaurant)
	if err != nil {
		return models.Message{}, err
	}
	return encodeMessage("ItemDTO", item)
}

func (s *Session) handleGetOrders() (models.Message, error) {
	orders, err := s.services.Orders.All()
	if err != nil {
		return models.Message{}, err
	}
	return encodeMessage("OrderDTO", orders...)
}

func (s *Session) handleChangeOrderStatus(payload []string) (models.Message, error) {
	idString, err := arg(payload, 0)
	if err != nil {
		return models.Message{}, err
	}
	statusString, err := arg(payload, 1)
	if err != nil {
		return models.Message{}, err
	}

	if err = s.services.Orders.ChangeStatus(idString, statusString); err != nil {
		return models.Message{}, err
	}
	return ackMessage, nil
}

func (s *Session) handleGetFavouriteRestaurants(payload []string) (models.Message, error) {
	idString, err := arg(payload, 0)
	if err != nil {
		return models.Message{}, err
	}

	restaurants, err := s.services.Users.FavouriteRestaurants(idString)
	if err != nil {
		return models.Message{}, err
	}
	return encodeMessage("RestaurantDTO", restaurants...)
}

func (s *Session) handleAddFavouriteRestaurant(payload []string) (models.Message, error) {
	restaurantID, err := arg(payload, 0)
	if err != nil {
		return models.Message{}, err
	}
	userID, err := arg(payload, 1)
	if err != nil {
		return models.Message{}, err
	}

	user, err := s.services.Users.AddFavourite(restaurantID, userID)
	if err != nil {
		return models.Message{}, err
	}
	return encodeMessage("UserDTO", user)
}

func (s *Session) handleDeleteFavouriteRestaurant(payload []string) (models.Message, error) {
	restaurantID, err := arg(payload, 0)
	if err != nil {
		return models.Message{}, err
	}
	userID, err := arg(payload, 1)
	if err != nil {
		return models.Message{}, err
	}

	user, err := s.services.Users.DeleteFavourite(restaurantID, userID)
	if err != nil {
		return models.Message{}, err
	}
	return encodeMessage("UserDTO", user)
}

func (s *Session) handleRateRestaurant(payload []string) (models.Message, error) {
	restaurantID, err := arg(payload, 0)
	if err != nil {
		return models.Message{}, err
	}
	rateString, err := arg(payload, 1)
	if err != nil {
		return models.Message{}, err
	}
	userID, err := arg(payload, 2)
	if err != nil {
		return models.Message{}, err
	}

	user, err := s.services.Users.RateRestaurant(restaurantID, rateString, userID)
	if err != nil {
		return models.Message{}, err
	}
	return encodeMessage("UserDTO", user)
}

func (s *Session) handleGetRatings(payload []string) (models.Message, error) {
	idString, err := arg(payload, 0)
	if err != nil {
		return models.Message{}, err
	}

	ratings, err := s.services.Ratings.ByUser(idString)
	if err != nil {
		return models.Message{}, err
	}
	return encodeMessage("RatingDTO", ratings...)
}

func (s *Session) handleAddRating(payload []string) (models.Message, error) {
	restaurantID, err := arg(payload, 0)
	if err != nil {
		return models.Message{}, err
	}
	rateString, err := arg(payload, 1)
	if err != nil {
		return models.Message{}, err
	}
	userID, err := arg(payload, 2)
	if err != nil {
		return models.Message{}, err
	}

	user, err := s.services.Ratings.Add(restaurantID, rateString, userID)
	if err != nil {
		return models.Message{}, err
	}
	return encodeMessage("UserDTO", user)
}

func (s *Session) handleDeleteRating(payload []string) (models.Message, error) {
	idString, err := arg(payload, 0)
	if err != nil {
		return models.Message{}, err
	}
	user, err := decodeArg[models.UserDTO](payload, 1)
	if err != nil {
		return models.Message{}, err
	}

	if err = s.services.Ratings.Delete(idString, user); err != nil {
		return models.Message{}, err
	}
	return ackMessage, nil
}

func (s *Session) handleUpdateRating(payload []string) (models.Message, error) {
	idString, err := arg(payload, 0)
	if err != nil {
		return models.Message{}, err
	}
	rateString, err := arg(payload, 1)
	if err != nil {
		return models.Message{}, err
	}
	user, err := decodeArg[models.UserDTO](payload, 2)
	if err != nil {
		return models.Message{}, err
	}

	if err = s.services.Ratings.Update(idString, rateString, user); err != nil {
		return models.Message{}, err
	}
	return ackMessage, nil
}

func (s *Session) handleGetDiscounts(payload []string) (models.Message, error) {
	idString, err := arg(payload, 0)
	if err != nil {
		return models.Message{}, err
	}

	discounts, err := s.services.Restaurants.Discounts(idString)
	if err != nil {
		return models.Message{}, err
	}
	return encodeMessage("DiscountDTO", discounts...)
}

func (s *Session) handleAddDiscount(payload []string) (models.Message, error) {
	fields := make([]string, 3)
	for i := range fields {
		field, err := arg(payload, i)
		if err != nil {
			return models.Message{}, err
		}
		fields[i] = field
	}

	if err := s.services.Restaurants.AddDiscount(fields[0], fields[1], fields[2]); err != nil {
		return models.Message{}, err
	}
	return ackMessage, nil
}

func (s *Session) handleDeleteDiscount(payload []string) (models.Message, error) {
	restaurantID, err := arg(payload, 0)
	if err != nil {
		return models.Message{}, err
	}
	discountID, err := arg(payload, 1)
	if err != nil {
		return models.Message{}, err
	}

	if err = s.services.Restaurants.DeleteDiscount(restaurantID, discountID); err != nil {
		return models.Message{}, err
	}
	return ackMessage, nil
}

// handleGetDiscount keeps the "percentage" header either way; an empty
// payload means no tier applies.
func (s *Session) handleGetDiscount(payload []string) (models.Message, error) {
	restaurantID, err := arg(payload, 0)
	if err != nil {
		return models.Message{}, err
	}
	itemCountString, err := arg(payload, 1)
	if err != nil {
		return models.Message{}, err
	}

	percentage, ok, err := s.services.Orders.ApplicableDiscount(restaurantID, itemCountString)
	if err != nil {
		return models.Message{}, err
	}

	message := models.Message{Header: "percentage", ObjectsJSON: []string{}}
	if ok {
		message.ObjectsJSON = append(message.ObjectsJSON, strconv.Itoa(percentage))
	}
	return message, nil
}
