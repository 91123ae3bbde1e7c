package models

import "strconv"

type Restaurant struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type RestaurantDTO struct {
	ID     int       `json:"id"`
	Name   string    `json:"name"`
	Items  []ItemDTO `json:"items"`
	Rating string    `json:"rating"`
}

// NewRestaurantDTO flattens a restaurant together with its menu and the
// ratings it received. The rating field is a display string of the form
// "<average> (<count>)", or "0.0" when nobody rated yet.
func NewRestaurantDTO(r Restaurant, items []Item, ratings []Rating) RestaurantDTO {
	dto := RestaurantDTO{
		ID:     r.ID,
		Name:   r.Name,
		Items:  make([]ItemDTO, 0, len(items)),
		Rating: "0.0",
	}
	for _, item := range items {
		dto.Items = append(dto.Items, NewItemDTO(item))
	}
	if len(ratings) > 0 {
		sum := 0.0
		for _, rating := range ratings {
			sum += float64(rating.Rate)
		}
		avg := sum / float64(len(ratings))
		dto.Rating = strconv.FormatFloat(avg, 'f', -1, 32) + " (" + strconv.Itoa(len(ratings)) + ")"
	}
	return dto
}
