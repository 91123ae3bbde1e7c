package models

type Rating struct {
	ID           int `json:"id"`
	UserID       int `json:"userId"`
	RestaurantID int `json:"restaurantId"`
	Rate         int `json:"rate"`
}

type RatingDTO struct {
	ID         int    `json:"id"`
	Username   string `json:"username"`
	Restaurant string `json:"restaurant"`
	Rate       int    `json:"rate"`
}

func NewRatingDTO(r Rating, user User, restaurant Restaurant) RatingDTO {
	return RatingDTO{
		ID:         r.ID,
		Username:   user.Username,
		Restaurant: restaurant.Name,
		Rate:       r.Rate,
	}
}
