package auth

type LoginRequest struct {
	Password string `json:"password"`
}
