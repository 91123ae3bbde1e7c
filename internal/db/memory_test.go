package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreeabea/FoodDeliveryAppServer/models"
)

func TestMemoryLookupMiss(t *testing.T) {
	memory := NewMemory()

	_, err := memory.UserByID(1)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = memory.UserByUsername("ghost")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = memory.RestaurantByID(1)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, memory.DeleteFavourite(1, 1), ErrNotFound)
}

func TestMemoryListsAreOrderedByID(t *testing.T) {
	memory := NewMemory()

	for _, name := range []string{"c", "a", "b"} {
		_, err := memory.CreateUser(models.User{
			Name: name, Username: name, UserType: models.UserTypeDelivery,
		})
		require.NoError(t, err)
	}

	couriers, err := memory.UsersByType(models.UserTypeDelivery)
	require.NoError(t, err)
	require.Len(t, couriers, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{couriers[0].ID, couriers[1].ID, couriers[2].ID})
}

func TestMemorySaveUnknownEntity(t *testing.T) {
	memory := NewMemory()

	assert.ErrorIs(t, memory.SaveUser(models.User{ID: 9}), ErrNotFound)
	assert.ErrorIs(t, memory.SaveItem(models.Item{ID: 9}), ErrNotFound)
	assert.ErrorIs(t, memory.SaveOrder(models.Order{ID: 9}), ErrNotFound)
}
