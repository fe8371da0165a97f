package dto

// LoginRequest defines the body for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued JWT access token.
type LoginResponse struct {
	Token string `json:"token"`
}
