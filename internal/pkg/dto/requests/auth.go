package requests

type RegisterUser struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"password"`
	DisplayName string `json:"display_name" validate:"required,not_blank,max=60"`
}

type LoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LogoutUser struct {
	SessionData string
}
