package service

import (
	"errors"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/andreeabea/FoodDeliveryAppServer/internal/apperr"
	"github.com/andreeabea/FoodDeliveryAppServer/internal/db"
	"github.com/andreeabea/FoodDeliveryAppServer/models"
)

type Users struct {
	Database db.Database
	Logger   *zap.SugaredLogger
}

func NewUsers(database db.Database, logger *zap.SugaredLogger) *Users {
	return &Users{
		Database: database,
		Logger:   logger,
	}
}

func (s *Users) Login(username, password string) (models.UserDTO, error) {
	user, err := s.Database.UserByUsername(username)
	if errors.Is(err, db.ErrNotFound) {
		return models.UserDTO{}, apperr.New(apperr.UserNotFound, "User does not exist!")
	}
	if err != nil {
		return models.UserDTO{}, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.UserDTO{}, apperr.New(apperr.IncorrectPassword, "Password for user is incorrect! Try again.")
	}

	return models.NewUserDTO(user), nil
}

func (s *Users) Get(idString string) (models.UserDTO, error) {
	id, ok := parseInt(idString)
	if !ok {
		return models.UserDTO{}, apperr.New(apperr.InvalidData, "Invalid user id!")
	}

	user, err := s.Database.UserByID(id)
	if errors.Is(err, db.ErrNotFound) {
		return models.UserDTO{}, apperr.New(apperr.UserNotFound, "User does not exist!")
	}
	if err != nil {
		return models.UserDTO{}, err
	}

	return models.NewUserDTO(user), nil
}

// Register creates a regular user. The wallet amount arrives as a decimal
// string; the two passwords must match.
func (s *Users) Register(name, username, password, password2, walletString string) (models.UserDTO, error) {
	if username == "" {
		return models.UserDTO{}, apperr.New(apperr.InvalidData, "Invalid username!")
	}
	if _, err := s.Database.UserByUsername(username); err == nil {
		return models.UserDTO{}, apperr.New(apperr.InvalidData, "Invalid username!")
	} else if !errors.Is(err, db.ErrNotFound) {
		return models.UserDTO{}, err
	}
	if name == "" {
		return models.UserDTO{}, apperr.New(apperr.InvalidData, "Name field is empty!")
	}
	if password == "" {
		return models.UserDTO{}, apperr.New(apperr.InvalidData, "Password field is empty!")
	}
	if password2 == "" {
		return models.UserDTO{}, apperr.New(apperr.InvalidData, "Second password field is empty!")
	}

	wallet, err := strconv.ParseFloat(walletString, 64)
	if err != nil || wallet < 0 {
		return models.UserDTO{}, apperr.New(apperr.InvalidData, "Invalid wallet amount!")
	}
	if password != password2 {
		return models.UserDTO{}, apperr.New(apperr.InvalidData, "The passwords doesn't match!")
	}

	passwordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.UserDTO{}, err
	}

	user, err := s.Database.CreateUser(models.User{
		Name:     name,
		Username: username,
		Password: string(passwordBytes),
		Wallet:   wallet,
		UserType: models.UserTypeRegular,
	})
	if err != nil {
		return models.UserDTO{}, err
	}

	s.Logger.Infow("registered user", "id", user.ID, "username", user.Username)
	return models.NewUserDTO(user), nil
}

func (s *Users) RegularUsers() ([]models.UserDTO, error) {
	users, err := s.Database.UsersByType(models.UserTypeRegular)
	if err != nil {
		return nil, err
	}

	dtos := make([]models.UserDTO, 0, len(users))
	for _, user := range users {
		dtos = append(dtos, models.NewUserDTO(user))
	}
	return dtos, nil
}

// UpdateWallet sets a regular user's balance to a new amount (admin op).
func (s *Users) UpdateWallet(idString, newAmountString string) error {
	id, ok := parseInt(idString)
	amount, err := strconv.ParseFloat(newAmountString, 64)
	if !ok || err != nil || id <= 0 || amount < 0 {
		return apperr.New(apperr.InvalidData, "Invalid input data!")
	}

	user, err := s.Database.UserByID(id)
	if errors.Is(err, db.ErrNotFound) || (err == nil && user.UserType != models.UserTypeRegular) {
		return apperr.New(apperr.EntityNotFound, "Regular user not found!")
	}
	if err != nil {
		return err
	}

	user.Wallet = amount
	return s.Database.SaveUser(user)
}

func (s *Users) FavouriteRestaurants(idString string) ([]models.RestaurantDTO, error) {
	id, err := parseID(idString)
	if err != nil {
		return nil, err
	}

	restaurants, err := s.Database.FavouritesByUser(id)
	if err != nil {
		return nil, err
	}

	dtos := make([]models.RestaurantDTO, 0, len(restaurants))
	for _, restaurant := range restaurants {
		dto, err := restaurantDTO(s.Database, restaurant)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, dto)
	}
	return dtos, nil
}

func (s *Users) AddFavourite(restaurantID, userID string) (models.UserDTO, error) {
	restID, err := parseID(restaurantID)
	if err != nil {
		return models.UserDTO{}, err
	}
	id, err := parseID(userID)
	if err != nil {
		return models.UserDTO{}, err
	}

	if _, err = s.Database.RestaurantByID(restID); errors.Is(err, db.ErrNotFound) {
		return models.UserDTO{}, apperr.New(apperr.EntityNotFound, "Restaurant not found!")
	} else if err != nil {
		return models.UserDTO{}, err
	}

	user, err := s.Database.UserByID(id)
	if errors.Is(err, db.ErrNotFound) {
		return models.UserDTO{}, apperr.New(apperr.UserNotFound, "User does not exist!")
	}
	if err != nil {
		return models.UserDTO{}, err
	}

	favourites, err := s.Database.FavouritesByUser(id)
	if err != nil {
		return models.UserDTO{}, err
	}
	for _, favourite := range favourites {
		if favourite.ID == restID {
			return models.UserDTO{}, apperr.New(apperr.InvalidData, "This restaurant is already in the favourite list!")
		}
	}

	if err = s.Database.AddFavourite(id, restID); err != nil {
		return models.UserDTO{}, err
	}
	return models.NewUserDTO(user), nil
}

func (s *Users) DeleteFavourite(restaurantID, userID string) (models.UserDTO, error) {
	restID, err := parseID(restaurantID)
	if err != nil {
		return models.UserDTO{}, err
	}
	id, err := parseID(userID)
	if err != nil {
		return models.UserDTO{}, err
	}

	if _, err = s.Database.RestaurantByID(restID); errors.Is(err, db.ErrNotFound) {
		return models.UserDTO{}, apperr.New(apperr.EntityNotFound, "Restaurant not found!")
	} else if err != nil {
		return models.UserDTO{}, err
	}

	user, err := s.Database.UserByID(id)
	if errors.Is(err, db.ErrNotFound) {
		return models.UserDTO{}, apperr.New(apperr.UserNotFound, "User does not exist!")
	}
	if err != nil {
		return models.UserDTO{}, err
	}

	if err = s.Database.DeleteFavourite(id, restID); errors.Is(err, db.ErrNotFound) {
		return models.UserDTO{}, apperr.New(apperr.InvalidData, "This restaurant is not in the favourite list!")
	} else if err != nil {
		return models.UserDTO{}, err
	}
	return models.NewUserDTO(user), nil
}

// RateRestaurant upserts the user's rating of a restaurant: an existing
// rating for the same restaurant is overwritten, otherwise a new one is
// created.
func (s *Users) RateRestaurant(restaurantID, rateString, userID string) (models.UserDTO, error) {
	restID, err := parseID(restaurantID)
	if err != nil {
		return models.UserDTO{}, err
	}
	rate, ok := parseInt(rateString)
	if !ok {
		return models.UserDTO{}, apperr.New(apperr.InvalidData, "Invalid input data!")
	}
	id, err := parseID(userID)
	if err != nil {
		return models.UserDTO{}, err
	}

	if _, err = s.Database.RestaurantByID(restID); errors.Is(err, db.ErrNotFound) {
		return models.UserDTO{}, apperr.New(apperr.EntityNotFound, "Restaurant not found!")
	} else if err != nil {
		return models.UserDTO{}, err
	}

	user, err := s.Database.UserByID(id)
	if errors.Is(err, db.ErrNotFound) {
		return models.UserDTO{}, apperr.New(apperr.UserNotFound, "User does not exist!")
	}
	if err != nil {
		return models.UserDTO{}, err
	}

	ratings, err := s.Database.RatingsByUser(id)
	if err != nil {
		return models.UserDTO{}, err
	}

	for _, rating := range ratings {
		if rating.RestaurantID == restID {
			rating.Rate = rate
			if err = s.Database.SaveRating(rating); err != nil {
				return models.UserDTO{}, err
			}
			return models.NewUserDTO(user), nil
		}
	}

	_, err = s.Database.CreateRating(models.Rating{UserID: id, RestaurantID: restID, Rate: rate})
	if err != nil {
		return models.UserDTO{}, err
	}
	return models.NewUserDTO(user), nil
}
