package models

import "strconv"

// Discount is one tier of a restaurant's discount ladder: ordering at
// least MinItemCount items unlocks Percentage off. Tiers are not
// cumulative, the highest qualifying one wins.
type Discount struct {
	ID           int `json:"id"`
	RestaurantID int `json:"restaurantId"`
	MinItemCount int `json:"minItemCount"`
	Percentage   int `json:"percentage"`
}

type DiscountDTO struct {
	ID       int    `json:"id"`
	Discount string `json:"discount"`
}

func NewDiscountDTO(d Discount) DiscountDTO {
	return DiscountDTO{
		ID:       d.ID,
		Discount: strconv.Itoa(d.MinItemCount) + "+ items: " + strconv.Itoa(d.Percentage) + "%",
	}
}
