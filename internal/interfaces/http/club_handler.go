package http

import "github.com/gofiber/fiber/v2"

// ClubHandler proxea las pantallas de clubes. Los registros de club son
// payloads opacos de la plataforma; la consola no los interpreta.
type ClubHandler struct {
	proxyBase
}

// NewClubHandler construye el handler.
func NewClubHandler(base proxyBase) *ClubHandler {
	return &ClubHandler{proxyBase: base}
}

// Listar godoc
// @Summary      Listar clubes
// @Tags         clubes
// @Produce      json
// @Success      200  {array}  object
// @Router       /api/clubes [get]
func (h *ClubHandler) Listar(c *fiber.Ctx) error {
	body, err := h.api.Get(c.Context(), h.token(c), "/club/listar_clubes")
	return h.responder(c, body, err)
}

// Crear godoc
// @Summary      Crear club
// @Tags         clubes
// @Accept       json
// @Produce      json
// @Success      201  {object}  object
// @Router       /api/clubes [post]
func (h *ClubHandler) Crear(c *fiber.Ctx) error {
	body, err := h.api.Post(c.Context(), h.token(c), "/club/crear_club", cuerpo(c))
	return h.responder(c, body, err)
}

// Actualizar godoc
// @Summary      Actualizar club
// @Tags         clubes
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "ID del club"
// @Router       /api/clubes/{id} [put]
func (h *ClubHandler) Actualizar(c *fiber.Ctx) error {
	body, err := h.api.Put(c.Context(), h.token(c), "/club/actualizar_club/"+c.Params("id"), cuerpo(c))
	return h.responder(c, body, err)
}

// Eliminar godoc
// @Summary      Eliminar club
// @Tags         clubes
// @Param        id  path  string  true  "ID del club"
// @Router       /api/clubes/{id} [delete]
func (h *ClubHandler) Eliminar(c *fiber.Ctx) error {
	body, err := h.api.Delete(c.Context(), h.token(c), "/club/eliminar_club/"+c.Params("id"))
	return h.responder(c, body, err)
}

// Inscritos godoc
// @Summary      Inscritos de un club (activos e inactivos)
// @Tags         clubes
// @Produce      json
// @Param        id  path  string  true  "ID del club"
// @Router       /api/clubes/{id}/inscritos [get]
func (h *ClubHandler) Inscritos(c *fiber.Ctx) error {
	body, err := h.api.Get(c.Context(), h.token(c), "/inscripcion/club/"+c.Params("id")+"/inscritos")
	return h.responder(c, body, err)
}
