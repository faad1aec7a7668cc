package entity

// Roles que la plataforma asigna a un usuario. Son mutuamente excluyentes
// y no cambian durante la vida de una sesión: un cambio de rol requiere
// iniciar sesión de nuevo.
const (
	RolAdmin   = "admin"
	RolUsuario = "usuario"
)

// Sesion es el registro de la identidad autenticada en la consola.
// Token es la credencial bearer emitida por la plataforma de clubes;
// la consola nunca la interpreta, solo la adjunta a las llamadas que
// proxea. Su validez la decide la plataforma (típicamente con un 401).
type Sesion struct {
	UsuarioID int    `json:"usuario_id"`
	Token     string `json:"-"`
	Rol       string `json:"rol"`
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
}

// Completa indica si la sesión tiene todos los campos obligatorios.
// Una sesión parcial (por ejemplo token sin rol) se trata como ausente:
// preferimos forzar un nuevo login antes que adivinar el estado.
func (s Sesion) Completa() bool {
	return s.UsuarioID > 0 && s.Token != "" && s.Rol != "" && s.Nombre != "" && s.Email != ""
}

// EsAdmin indica si el rol de la sesión es admin.
func (s Sesion) EsAdmin() bool {
	return s.Rol == RolAdmin
}
