package service

import (
	"errors"

	"go.uber.org/zap"

	"github.com/andreeabea/FoodDeliveryAppServer/internal/apperr"
	"github.com/andreeabea/FoodDeliveryAppServer/internal/db"
	"github.com/andreeabea/FoodDeliveryAppServer/models"
)

type Ratings struct {
	Database db.Database
	Logger   *zap.SugaredLogger
}

func NewRatings(database db.Database, logger *zap.SugaredLogger) *Ratings {
	return &Ratings{
		Database: database,
		Logger:   logger,
	}
}

func (s *Ratings) ByUser(idString string) ([]models.RatingDTO, error) {
	id, err := parseID(idString)
	if err != nil {
		return nil, err
	}

	ratings, err := s.Database.RatingsByUser(id)
	if err != nil {
		return nil, err
	}

	dtos := make([]models.RatingDTO, 0, len(ratings))
	for _, rating := range ratings {
		user, err := s.Database.UserByID(rating.UserID)
		if err != nil {
			return nil, err
		}
		restaurant, err := s.Database.RestaurantByID(rating.RestaurantID)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, models.NewRatingDTO(rating, user, restaurant))
	}
	return dtos, nil
}

// Add rejects a second rating of the same restaurant by the same user;
// rateRestaurant is the upserting variant.
func (s *Ratings) Add(restaurantID, rateString, userID string) (models.UserDTO, error) {
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
			return models.UserDTO{}, apperr.New(apperr.InvalidData, "Rating on this restaurant already exists!")
		}
	}

	_, err = s.Database.CreateRating(models.Rating{UserID: id, RestaurantID: restID, Rate: rate})
	if err != nil {
		return models.UserDTO{}, err
	}
	return models.NewUserDTO(user), nil
}

func (s *Ratings) Update(idString, rateString string, user models.UserDTO) error {
	rate, ok := parseInt(rateString)
	if !ok {
		return apperr.New(apperr.InvalidData, "Invalid input data!")
	}
	id, err := parseID(idString)
	if err != nil {
		return err
	}

	rating, err := s.Database.RatingByID(id)
	if errors.Is(err, db.ErrNotFound) || (err == nil && rating.UserID != user.ID) {
		return apperr.New(apperr.EntityNotFound, "Rating not found for user "+user.Username+".")
	}
	if err != nil {
		return err
	}

	rating.Rate = rate
	return s.Database.SaveRating(rating)
}

func (s *Ratings) Delete(idString string, user models.UserDTO) error {
	id, err := parseID(idString)
	if err != nil {
		return err
	}

	rating, err := s.Database.RatingByID(id)
	if errors.Is(err, db.ErrNotFound) || (err == nil && rating.UserID != user.ID) {
		return apperr.New(apperr.EntityNotFound, "Rating not found for user "+user.Username+".")
	}
	if err != nil {
		return err
	}

	return s.Database.DeleteRating(rating.ID)
}
