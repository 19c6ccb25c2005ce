package requests

type CreateShareLink struct {
	SessionData string
}

type RevokeShareLink struct {
	SessionData string
}

type GetPublicPage struct {
	Token string `validate:"required,uuid4"`
}

type SendEncouragement struct {
	Token   string `validate:"required,uuid4"`
	Name    string `json:"name" validate:"required,not_blank,max=60"`
	Message string `json:"message" validate:"required,not_blank,max=280"`
}

type ListEncouragements struct {
	Page        int
	PageSize    int
	SessionData string
}
