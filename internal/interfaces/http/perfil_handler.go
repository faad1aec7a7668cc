package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ucampus/consola-clubes/internal/application/dto"
)

// PerfilHandler proxea la pantalla "Mi Perfil" del usuario autenticado.
type PerfilHandler struct {
	proxyBase
}

// NewPerfilHandler construye el handler.
func NewPerfilHandler(base proxyBase) *PerfilHandler {
	return &PerfilHandler{proxyBase: base}
}

// Ver godoc
// @Summary      Perfil del usuario autenticado
// @Tags         perfil
// @Produce      json
// @Router       /api/perfil [get]
func (h *PerfilHandler) Ver(c *fiber.Ctx) error {
	body, err := h.api.Get(c.Context(), h.token(c), "/persona/obtener_perfil")
	return h.responder(c, body, err)
}

// Actualizar godoc
// @Summary      Actualizar datos del perfil
// @Tags         perfil
// @Accept       json
// @Produce      json
// @Router       /api/perfil [put]
func (h *PerfilHandler) Actualizar(c *fiber.Ctx) error {
	body, err := h.api.Put(c.Context(), h.token(c), "/persona/actualizar_perfil", cuerpo(c))
	return h.responder(c, body, err)
}

// CambiarContrasena godoc
// @Summary      Cambiar contraseña
// @Tags         perfil
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CambiarContrasenaRequest  true  "contrasena_actual, contrasena_nueva"
// @Router       /api/perfil/contrasena [put]
func (h *PerfilHandler) CambiarContrasena(c *fiber.Ctx) error {
	var in dto.CambiarContrasenaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ContrasenaActual == "" || len(in.ContrasenaNueva) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la contraseña nueva debe tener al menos 6 caracteres"})
	}
	body, err := h.api.Put(c.Context(), h.token(c), "/usuarios/cambiar_contrasena", in)
	return h.responder(c, body, err)
}

// ActualizarFoto godoc
// @Summary      Actualizar foto de perfil
// @Tags         perfil
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ActualizarFotoRequest  true  "foto_perfil (URL)"
// @Router       /api/perfil/foto [put]
func (h *PerfilHandler) ActualizarFoto(c *fiber.Ctx) error {
	var in dto.ActualizarFotoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.FotoPerfil == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "foto_perfil es requerida"})
	}
	body, err := h.api.Put(c.Context(), h.token(c), "/persona/actualizar_foto_perfil", in)
	return h.responder(c, body, err)
}
