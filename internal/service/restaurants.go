package service

import (
	"errors"

	"go.uber.org/zap"

	"github.com/andreeabea/FoodDeliveryAppServer/internal/apperr"
	"github.com/andreeabea/FoodDeliveryAppServer/internal/db"
	"github.com/andreeabea/FoodDeliveryAppServer/models"
)

type Restaurants struct {
	Database db.Database
	Logger   *zap.SugaredLogger
}

func NewRestaurants(database db.Database, logger *zap.SugaredLogger) *Restaurants {
	return &Restaurants{
		Database: database,
		Logger:   logger,
	}
}

func (s *Restaurants) All() ([]models.RestaurantDTO, error) {
	restaurants, err := s.Database.Restaurants()
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

func (s *Restaurants) Find(idString string) (models.RestaurantDTO, error) {
	id, err := parseID(idString)
	if err != nil {
		return models.RestaurantDTO{}, err
	}

	restaurant, err := s.Database.RestaurantByID(id)
	if errors.Is(err, db.ErrNotFound) {
		return models.RestaurantDTO{}, apperr.New(apperr.EntityNotFound, "Restaurant not found!")
	}
	if err != nil {
		return models.RestaurantDTO{}, err
	}

	return restaurantDTO(s.Database, restaurant)
}

func (s *Restaurants) Create(name string) error {
	if name == "" {
		return apperr.New(apperr.InvalidData, "Invalid restaurant name")
	}
	if _, err := s.Database.RestaurantByName(name); err == nil {
		return apperr.New(apperr.InvalidData, "Invalid restaurant name! Restaurant "+name+" already exists!")
	} else if !errors.Is(err, db.ErrNotFound) {
		return err
	}

	_, err := s.Database.CreateRestaurant(models.Restaurant{Name: name})
	return err
}

func (s *Restaurants) Update(idString, name string) error {
	id, err := parseID(idString)
	if err != nil {
		return err
	}
	if name == "" {
		return apperr.New(apperr.InvalidData, "Invalid restaurant name")
	}

	restaurant, err := s.Database.RestaurantByID(id)
	if errors.Is(err, db.ErrNotFound) {
		return apperr.New(apperr.EntityNotFound, "Restaurant not found!")
	}
	if err != nil {
		return err
	}

	restaurant.Name = name
	return s.Database.SaveRestaurant(restaurant)
}

func (s *Restaurants) Delete(idString string) error {
	id, err := parseID(idString)
	if err != nil {
		return err
	}

	if _, err = s.Database.RestaurantByID(id); errors.Is(err, db.ErrNotFound) {
		return apperr.New(apperr.EntityNotFound, "Restaurant not found!")
	} else if err != nil {
		return err
	}

	return s.Database.DeleteRestaurant(id)
}

func (s *Restaurants) Items(idString string) ([]models.ItemDTO, error) {
	id, err := parseID(idString)
	if err != nil {
		return nil, err
	}

	if _, err = s.Database.RestaurantByID(id); errors.Is(err, db.ErrNotFound) {
		return nil, apperr.New(apperr.EntityNotFound, "Restaurant not found!")
	} else if err != nil {
		return nil, err
	}

	items, err := s.Database.ItemsByRestaurant(id)
	if err != nil {
		return nil, err
	}

	dtos := make([]models.ItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, models.NewItemDTO(item))
	}
	return dtos, nil
}

func (s *Restaurants) Discounts(idString string) ([]models.DiscountDTO, error) {
	id, err := parseID(idString)
	if err != nil {
		return nil, err
	}

	discounts, err := s.Database.DiscountsByRestaurant(id)
	if err != nil {
		return nil, err
	}

	dtos := make([]models.DiscountDTO, 0, len(discounts))
	for _, discount := range discounts {
		dtos = append(dtos, models.NewDiscountDTO(discount))
	}
	return dtos, nil
}

func (s *Restaurants) AddDiscount(idString, minItemsString, percentageString string) error {
	id, err := parseID(idString)
	if err != nil {
		return err
	}
	minItems, ok := parseInt(minItemsString)
	if !ok {
		return apperr.New(apperr.InvalidData, "The given minimum number of items is invalid!")
	}
	percentage, ok := parseInt(percentageString)
	if !ok {
		return apperr.New(apperr.InvalidData, "The given discount percentage is invalid!")
	}
	if minItems <= 0 || percentage <= 0 {
		return apperr.New(apperr.InvalidData, "The given input is invalid!")
	}

	if _, err = s.Database.RestaurantByID(id); errors.Is(err, db.ErrNotFound) {
		return apperr.New(apperr.EntityNotFound, "Restaurant not found!")
	} else if err != nil {
		return err
	}

	discounts, err := s.Database.DiscountsByRestaurant(id)
	if err != nil {
		return err
	}
	for _, discount := range discounts {
		if discount.MinItemCount == minItems && discount.Percentage == percentage {
			return apperr.New(apperr.InvalidData, "Discount already exists for this restaurant!")
		}
	}

	_, err = s.Database.CreateDiscount(models.Discount{
		RestaurantID: id,
		MinItemCount: minItems,
		Percentage:   percentage,
	})
	return err
}

func (s *Restaurants) DeleteDiscount(restaurantID, discountID string) error {
	id, err := parseID(discountID)
	if err != nil {
		return err
	}
	restID, ok := parseInt(restaurantID)
	if !ok {
		return apperr.New(apperr.InvalidData, "The given id is invalid!")
	}

	discount, err := s.Database.DiscountByID(id)
	if errors.Is(err, db.ErrNotFound) || (err == nil && discount.RestaurantID != restID) {
		return apperr.New(apperr.EntityNotFound, "Discount not found!")
	}
	if err != nil {
		return err
	}

	return s.Database.DeleteDiscount(id)
}
