package models

type UserType string

const (
	UserTypeRegular  UserType = "REGULAR"
	UserTypeDelivery UserType = "DELIVERY"
	UserTypeAdmin    UserType = "ADMIN"
)

type User struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Username string   `json:"username"`
	Password string   `json:"password"`
	Wallet   float64  `json:"wallet"`
	UserType UserType `json:"userType"`
}

// UserDTO is the transport projection of a user. Wallet is only
// meaningful for regular users.
type UserDTO struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Username string   `json:"username"`
	Password string   `json:"password"`
	Wallet   float64  `json:"wallet"`
	UserType UserType `json:"userType"`
}

func NewUserDTO(u User) UserDTO {
	dto := UserDTO{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Password: u.Password,
		UserType: u.UserType,
	}
	if u.UserType == UserTypeRegular {
		dto.Wallet = u.Wallet
	}
	return dto
}
