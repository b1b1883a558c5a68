package dto

// LoginRequest credenciales del formulario de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginData payload que devuelve POST /Auth/Login dentro del envelope.
// Algunas versiones de la API devuelven el token directamente como string.
type LoginData struct {
	Token string `json:"token"`
}

// Identity identidad del usuario autenticado guardada en sesión.
type Identity struct {
	UserID   string `json:"id"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
