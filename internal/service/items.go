package service

import (
	"errors"
	"strconv"

	"go.uber.org/zap"

	"github.com/andreeabea/FoodDeliveryAppServer/internal/apperr"
	"github.com/andreeabea/FoodDeliveryAppServer/internal/db"
	"github.com/andreeabea/FoodDeliveryAppServer/models"
)

type Items struct {
	Database db.Database
	Logger   *zap.SugaredLogger
}

func NewItems(database db.Database, logger *zap.SugaredLogger) *Items {
	return &Items{
		Database: database,
		Logger:   logger,
	}
}

func (s *Items) Find(idString string, restaurant models.RestaurantDTO) (models.ItemDTO, error) {
	id, ok := parseInt(idString)
	if !ok {
		return models.ItemDTO{}, apperr.New(apperr.InvalidData, "Invalid input data")
	}
	if id <= 0 {
		return models.ItemDTO{}, apperr.New(apperr.InvalidData, "Invalid id")
	}

	item, err := s.Database.ItemByID(id)
	if errors.Is(err, db.ErrNotFound) || (err == nil && item.RestaurantID != restaurant.ID) {
		return models.ItemDTO{}, apperr.New(apperr.EntityNotFound, "Item "+idString+" doesn't exist!")
	}
	if err != nil {
		return models.ItemDTO{}, err
	}

	return models.NewItemDTO(item), nil
}

func (s *Items) Add(restaurant models.RestaurantDTO, name, stockString, priceString string) error {
	if name == "" {
		return apperr.New(apperr.InvalidData, "Invalid input data")
	}
	stock, ok := parseInt(stockString)
	price, err := strconv.ParseFloat(priceString, 64)
	if !ok || err != nil || stock <= 0 || price <= 0 {
		return apperr.New(apperr.InvalidData, "Invalid input data")
	}

	if _, err = s.Database.RestaurantByID(restaurant.ID); errors.Is(err, db.ErrNotFound) {
		return apperr.New(apperr.EntityNotFound, "Restaurant not found!")
	} else if err != nil {
		return err
	}

	items, err := s.Database.ItemsByRestaurant(restaurant.ID)
	if err != nil {
		return err
	}
	for _, item := range items {
		if item.Name == name {
			return apperr.New(apperr.InvalidData, "Item "+name+" already exists!")
		}
	}

	_, err = s.Database.CreateItem(models.Item{
		RestaurantID: restaurant.ID,
		Name:         name,
		Stock:        stock,
		Price:        price,
	})
	return err
}

func (s *Items) Update(restaurant models.RestaurantDTO, idString, name, stockString, priceString string) error {
	id, ok := parseInt(idString)
	if !ok || name == "" {
		return apperr.New(apperr.InvalidData, "Invalid input data")
	}
	if id <= 0 {
		return apperr.New(apperr.InvalidData, "Invalid id")
	}
	stock, ok := parseInt(stockString)
	price, err := strconv.ParseFloat(priceString, 64)
	if !ok || err != nil || stock <= 0 || price <= 0 {
		return apperr.New(apperr.InvalidData, "Invalid input data")
	}

	item, err := s.Database.ItemByID(id)
	if errors.Is(err, db.ErrNotFound) || (err == nil && item.RestaurantID != restaurant.ID) {
		return apperr.New(apperr.EntityNotFound, "Item "+idString+" doesn't exist!")
	}
	if err != nil {
		return err
	}

	item.Name = name
	item.Stock = stock
	item.Price = price
	return s.Database.SaveItem(item)
}

func (s *Items) Delete(restaurant models.RestaurantDTO, idString string) error {
	id, err := parseID(idString)
	if err != nil {
		return err
	}

	item, err := s.Database.ItemByID(id)
	if errors.Is(err, db.ErrNotFound) || (err == nil && item.RestaurantID != restaurant.ID) {
		return apperr.New(apperr.EntityNotFound, "Item not found!")
	}
	if err != nil {
		return err
	}

	return s.Database.DeleteItem(id)
}
