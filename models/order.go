package models

type OrderStatus string

// Order lifecycle. Status only ever advances forward.
const (
	OrderCreated    OrderStatus = "CREATED"
	OrderInProgress OrderStatus = "IN_PROGRESS"
	OrderDelivered  OrderStatus = "DELIVERED"
)

// DatetimeLayout is the wire format of order timestamps (dd.MM.yyyy hh:mm:ss).
const DatetimeLayout = "02.01.2006 03:04:05"

type OrderedItem struct {
	ItemID   int `json:"itemId"`
	Quantity int `json:"quantity"`
}

type Order struct {
	ID         int           `json:"id"`
	CustomerID int           `json:"customerId"`
	CourierID  int           `json:"courierId"`
	Items      []OrderedItem `json:"items"`
	Datetime   string        `json:"datetime"`
	Status     OrderStatus   `json:"status"`
}

type OrderDTO struct {
	ID       int         `json:"id"`
	Customer UserDTO     `json:"customer"`
	Courier  UserDTO     `json:"courier"`
	Datetime string      `json:"datetime"`
	Status   OrderStatus `json:"status"`
}

func NewOrderDTO(order Order, customer, courier User) OrderDTO {
	return OrderDTO{
		ID:       order.ID,
		Customer: NewUserDTO(customer),
		Courier:  NewUserDTO(courier),
		Datetime: order.Datetime,
		Status:   order.Status,
	}
}
