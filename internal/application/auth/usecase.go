package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ucampus/consola-clubes/internal/application/dto"
	"github.com/ucampus/consola-clubes/internal/domain"
	"github.com/ucampus/consola-clubes/internal/domain/entity"
	"github.com/ucampus/consola-clubes/internal/domain/repository"
)

// Plataforma es el contrato mínimo que el caso de uso necesita de la API
// remota. La interfaz evita acoplar la aplicación a la infraestructura;
// la implementa *plataforma.Client.
type Plataforma interface {
	Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error)
	Registrar(ctx context.Context, in dto.RegisterRequest) error
}

// UseCase gestiona el ciclo de vida de la sesión de consola: es el único
// dueño del estado "quién está autenticado". Toda mutación pasa por
// IniciarSesion / CerrarSesion; nadie escribe la sesión directamente.
type UseCase struct {
	plataforma Plataforma
	store      repository.SesionStore
}

// NewUseCase construye el caso de uso.
func NewUseCase(p Plataforma, store repository.SesionStore) *UseCase {
	return &UseCase{plataforma: p, store: store}
}

// IniciarSesion autentica contra la plataforma y, con el payload de
// éxito, crea y persiste una sesión nueva. Un login posterior reemplaza
// la sesión completa, nunca la actualiza en sitio. Devuelve el id de la
// sesión creada y los datos de despliegue del usuario.
func (uc *UseCase) IniciarSesion(ctx context.Context, in dto.LoginRequest) (string, *dto.SesionResponse, error) {
	if in.Email == "" || in.Password == "" {
		return "", nil, domain.ErrEntradaInvalida
	}

	resp, err := uc.plataforma.Login(ctx, in)
	if err != nil {
		return "", nil, err
	}

	sesion := entity.Sesion{
		UsuarioID: resp.Usuario.ID,
		Token:     resp.AccessToken,
		Rol:       resp.Usuario.Rol,
		Nombre:    resp.Usuario.Nombre,
		Email:     resp.Usuario.Email,
	}
	// Defensa contra payloads a medias: no se persisten sesiones parciales.
	if !sesion.Completa() {
		return "", nil, domain.ErrSesionIncompleta
	}

	id := uuid.New().String()
	if err := uc.store.Save(ctx, id, sesion); err != nil {
		return "", nil, fmt.Errorf("guardar sesión: %w", err)
	}

	return id, &dto.SesionResponse{
		UsuarioID: sesion.UsuarioID,
		Nombre:    sesion.Nombre,
		Email:     sesion.Email,
		Rol:       sesion.Rol,
	}, nil
}

// CerrarSesion elimina la sesión persistida. Es segura con sesión ya
// cerrada o id vacío: cerrar dos veces no es un error. La navegación a
// /login la resuelve el handler, no este caso de uso.
func (uc *UseCase) CerrarSesion(ctx context.Context, sesionID string) error {
	if sesionID == "" {
		return nil
	}
	return uc.store.Clear(ctx, sesionID)
}

// Recuperar rehidrata la sesión persistida. Devuelve nil (sin error) si
// no existe o quedó incompleta en el store.
func (uc *UseCase) Recuperar(ctx context.Context, sesionID string) (*entity.Sesion, error) {
	if sesionID == "" {
		return nil, nil
	}
	return uc.store.Load(ctx, sesionID)
}

// Registrar reenvía el alta de usuario a la plataforma. No inicia sesión:
// tras el alta el usuario vuelve a /login e ingresa con sus credenciales.
func (uc *UseCase) Registrar(ctx context.Context, in dto.RegisterRequest) error {
	if in.Nombre == "" || in.Apellido == "" || in.Email == "" || in.Password == "" {
		return domain.ErrEntradaInvalida
	}
	if len(in.Password) < 6 {
		return domain.ErrEntradaInvalida
	}
	return uc.plataforma.Registrar(ctx, in)
}
