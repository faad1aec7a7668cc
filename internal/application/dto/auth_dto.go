package dto

// LoginRequest entrada de inicio de sesión; se reenvía tal cual a la
// plataforma de clubes.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UsuarioPlataforma usuario tal como lo devuelve la plataforma en el login.
type UsuarioPlataforma struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    string `json:"rol"` // "admin" | "usuario"
}

// LoginResponse payload de éxito del endpoint /auth/login de la plataforma.
// Es la única entrada válida para construir una sesión.
type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	Usuario     UsuarioPlataforma `json:"usuario"`
}

// RegisterRequest entrada de registro; celular es opcional.
type RegisterRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Apellido string `json:"apellido" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Celular  string `json:"celular" validate:"omitempty"`
	Password string `json:"password" validate:"required,min=6"`
}

// SesionResponse lo que la consola devuelve tras un login correcto:
// los datos de despliegue del usuario, nunca el token de la plataforma.
type SesionResponse struct {
	UsuarioID int    `json:"usuario_id"`
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
	Rol       string `json:"rol"`
}
