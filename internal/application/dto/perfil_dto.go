package dto

// CambiarContrasenaRequest entrada para cambio de contraseña del usuario
// autenticado. La verificación de la contraseña actual la hace la plataforma.
type CambiarContrasenaRequest struct {
	ContrasenaActual string `json:"contrasena_actual" validate:"required"`
	ContrasenaNueva  string `json:"contrasena_nueva" validate:"required,min=6"`
}

// ActualizarFotoRequest entrada para actualizar la foto de perfil.
type ActualizarFotoRequest struct {
	FotoPerfil string `json:"foto_perfil" validate:"required,url"`
}

// AsignarRolRequest entrada para asignar un rol institucional a una persona.
type AsignarRolRequest struct {
	UsuarioID int `json:"ID_Usuario" validate:"required"`
	RolID     int `json:"ID_Rol" validate:"required"`
}
