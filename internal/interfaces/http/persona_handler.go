package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ucampus/consola-clubes/internal/application/dto"
)

// PersonaHandler proxea la administración de personas (solo admin).
type PersonaHandler struct {
	proxyBase
}

// NewPersonaHandler construye el handler.
func NewPersonaHandler(base proxyBase) *PersonaHandler {
	return &PersonaHandler{proxyBase: base}
}

// Listar godoc
// @Summary      Listar personas registradas
// @Tags         personas
// @Produce      json
// @Router       /api/personas [get]
func (h *PersonaHandler) Listar(c *fiber.Ctx) error {
	body, err := h.api.Get(c.Context(), h.token(c), "/persona/listar_usuarios")
	return h.responder(c, body, err)
}

// Actualizar godoc
// @Summary      Actualizar datos de una persona
// @Tags         personas
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "ID del usuario"
// @Router       /api/personas/{id} [put]
func (h *PersonaHandler) Actualizar(c *fiber.Ctx) error {
	body, err := h.api.Put(c.Context(), h.token(c), "/auth/actualizar_usuario/"+c.Params("id"), cuerpo(c))
	return h.responder(c, body, err)
}

// Eliminar godoc
// @Summary      Eliminar una persona
// @Tags         personas
// @Param        id  path  string  true  "ID del usuario"
// @Router       /api/personas/{id} [delete]
func (h *PersonaHandler) Eliminar(c *fiber.Ctx) error {
	body, err := h.api.Delete(c.Context(), h.token(c), "/auth/eliminar_usuario/"+c.Params("id"))
	return h.responder(c, body, err)
}

// AsignarRol godoc
// @Summary      Asignar rol institucional a una persona
// @Tags         personas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AsignarRolRequest  true  "ID_Usuario, ID_Rol"
// @Router       /api/personas/asignar_rol [post]
func (h *PersonaHandler) AsignarRol(c *fiber.Ctx) error {
	var in dto.AsignarRolRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UsuarioID == 0 || in.RolID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ID_Usuario e ID_Rol son requeridos"})
	}
	body, err := h.api.Post(c.Context(), h.token(c), "/persona/asignar_rol", in)
	return h.responder(c, body, err)
}
