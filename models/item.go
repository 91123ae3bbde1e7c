package models

type Item struct {
	ID           int     `json:"id"`
	RestaurantID int     `json:"restaurantId"`
	Name         string  `json:"name"`
	Stock        int     `json:"stock"`
	Price        float64 `json:"price"`
}

// ItemDTO carries a menu item on the wire. Quantity is only filled by
// clients composing an order and is echoed back untouched.
type ItemDTO struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Stock    int     `json:"stock"`
	Price    float64 `json:"price"`
	Quantity string  `json:"quantity"`
}

func NewItemDTO(item Item) ItemDTO {
	return ItemDTO{
		ID:    item.ID,
		Name:  item.Name,
		Stock: item.Stock,
		Price: item.Price,
	}
}
