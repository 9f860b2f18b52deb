package dto

// LoginRequest credenciales de acceso al back office.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse usuario autenticado (sin hash).
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// LoginResponse token JWT + usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
