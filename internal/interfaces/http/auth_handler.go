package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ucampus/consola-clubes/internal/application/auth"
	"github.com/ucampus/consola-clubes/internal/application/dto"
	"github.com/ucampus/consola-clubes/internal/domain"
	"github.com/ucampus/consola-clubes/internal/infrastructure/plataforma"
	pkgjwt "github.com/ucampus/consola-clubes/pkg/jwt"
)

// CookieConfig parámetros de emisión de la cookie de sesión.
type CookieConfig struct {
	Secret     string
	Issuer     string
	TTLMinutes int
	Secure     bool
}

// AuthHandler maneja login, registro, logout y consulta de sesión.
type AuthHandler struct {
	uc     *auth.UseCase
	cookie CookieConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.UseCase, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{uc: uc, cookie: cookie}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.SesionResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}

	sesionID, usuario, err := h.uc.IniciarSesion(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCredencialesInvalidas):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		case errors.Is(err, domain.ErrCuentaInactiva):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "cuenta inactiva o suspendida"})
		case errors.Is(err, domain.ErrSesionIncompleta):
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "PLATAFORMA", Message: "respuesta de login incompleta"})
		case errors.Is(err, domain.ErrPlataforma):
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "PLATAFORMA", Message: domain.ErrPlataforma.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}

	firmada, err := pkgjwt.Generate(h.cookie.Secret, sesionID, h.cookie.Issuer, h.cookie.TTLMinutes)
	if err != nil {
		// La sesión quedó guardada pero no podemos referenciarla: deshacer.
		_ = h.uc.CerrarSesion(c.Context(), sesionID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "firmar cookie de sesión"})
	}
	setSesionCookie(c, firmada, h.cookie.TTLMinutes, h.cookie.Secure)

	return c.JSON(usuario)
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "nombre, apellido, email, celular, password"
// @Success      201   {object}  dto.MensajeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	if err := h.uc.Registrar(c.Context(), in); err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre, apellido, email y password (mínimo 6 caracteres) son requeridos"})
		}
		var perr *plataforma.Error
		if errors.As(err, &perr) {
			return c.Status(perr.Status).Type("json").Send(perr.Body)
		}
		if errors.Is(err, domain.ErrPlataforma) {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "PLATAFORMA", Message: domain.ErrPlataforma.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MensajeResponse{Mensaje: "usuario registrado, inicia sesión"})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Success      303  "redirige a /login"
// @Router       /api/auth/logout [post]
//
// Cerrar una sesión ya cerrada no es un error: limpia la cookie y
// redirige igual.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	cx := Current(c)
	if err := h.uc.CerrarSesion(c.Context(), cx.SesionID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	clearSesionCookie(c, h.cookie.Secure)
	return c.Redirect(RutaLogin, fiber.StatusSeeOther)
}

// Sesion godoc
// @Summary      Sesión actual
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SesionResponse
// @Router       /api/auth/sesion [get]
//
// Acceso de solo lectura a rol/nombre/email para las páginas; nunca
// expone el token de la plataforma.
func (h *AuthHandler) Sesion(c *fiber.Ctx) error {
	s := Current(c).Sesion
	return c.JSON(dto.SesionResponse{
		UsuarioID: s.UsuarioID,
		Nombre:    s.Nombre,
		Email:     s.Email,
		Rol:       s.Rol,
	})
}
