package http

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ucampus/consola-clubes/internal/application/auth"
	"github.com/ucampus/consola-clubes/internal/application/dto"
	"github.com/ucampus/consola-clubes/internal/domain"
	"github.com/ucampus/consola-clubes/internal/infrastructure/plataforma"
)

// proxyBase comparte entre los handlers de entidades el cliente de la
// plataforma y la política de respuesta del proxy.
type proxyBase struct {
	api    *plataforma.Client
	uc     *auth.UseCase
	secure bool // flag Secure de la cookie al limpiarla
}

// token devuelve la credencial bearer de la sesión actual.
func (b proxyBase) token(c *fiber.Ctx) string {
	return Current(c).Sesion.Token
}

// responder traduce el resultado de una llamada proxeada:
//   - éxito: reenvía el cuerpo JSON tal cual;
//   - 401 de la plataforma: la credencial quedó obsoleta, así que se
//     cierra la sesión (store + cookie) y se redirige a /login para que
//     el estado de la consola no mienta;
//   - otros errores remotos: se reenvían con su estado y cuerpo originales;
//   - fallo de red: 502.
func (b proxyBase) responder(c *fiber.Ctx, body json.RawMessage, err error) error {
	if err == nil {
		return c.Type("json").Send(body)
	}

	if errors.Is(err, domain.ErrNoAutorizado) {
		cx := Current(c)
		_ = b.uc.CerrarSesion(c.Context(), cx.SesionID)
		clearSesionCookie(c, b.secure)
		return c.Redirect(RutaLogin, fiber.StatusSeeOther)
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

// cuerpo devuelve el body crudo de la petición para reenviarlo opaco.
func cuerpo(c *fiber.Ctx) json.RawMessage {
	return json.RawMessage(c.Body())
}
