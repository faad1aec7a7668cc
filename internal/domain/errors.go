package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrCredencialesInvalidas = errors.New("credenciales inválidas")
	ErrNoAutorizado          = errors.New("no autorizado")
	ErrCuentaInactiva        = errors.New("cuenta inactiva o suspendida")
	ErrSesionIncompleta      = errors.New("respuesta de login incompleta")
	ErrEntradaInvalida       = errors.New("entrada inválida")
	ErrPlataforma            = errors.New("la plataforma de clubes no está disponible")
)
