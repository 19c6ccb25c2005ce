package requests

type GetProfile struct {
	SessionData string
}

type UpdateProfile struct {
	DisplayName     string `json:"display_name" validate:"required,not_blank,max=60"`
	Avatar          string `json:"avatar,omitempty"`
	AvatarData      []byte `json:"-"`
	AvatarExtension string `json:"-"`
	SessionData     string
}
