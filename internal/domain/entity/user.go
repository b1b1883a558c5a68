package entity

// Roles válidos para User (los asigna la API de backend).
const (
	RoleAdmin     = "Admin"
	RoleLibrarian = "Bibliotecario"
	RoleReader    = "Lector"
)

// User usuario del sistema tal como lo expone la API de backend.
type User struct {
	ID       int    `json:"id"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
}

// Role rol asignable a usuarios.
type Role struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
