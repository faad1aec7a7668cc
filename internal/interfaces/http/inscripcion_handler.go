package http

import "github.com/gofiber/fiber/v2"

// InscripcionHandler proxea las inscripciones del usuario a clubes.
type InscripcionHandler struct {
	proxyBase
}

// NewInscripcionHandler construye el handler.
func NewInscripcionHandler(base proxyBase) *InscripcionHandler {
	return &InscripcionHandler{proxyBase: base}
}

// Mias godoc
// @Summary      Inscripciones del usuario autenticado
// @Tags         inscripciones
// @Produce      json
// @Router       /api/inscripciones [get]
func (h *InscripcionHandler) Mias(c *fiber.Ctx) error {
	body, err := h.api.Get(c.Context(), h.token(c), "/inscripcion/mis_inscripciones")
	return h.responder(c, body, err)
}

// Verificar godoc
// @Summary      Verificar inscripción a un club
// @Tags         inscripciones
// @Produce      json
// @Param        clubID  path  string  true  "ID del club"
// @Router       /api/inscripciones/verificar/{clubID} [get]
func (h *InscripcionHandler) Verificar(c *fiber.Ctx) error {
	body, err := h.api.Get(c.Context(), h.token(c), "/inscripcion/verificar_inscripcion/"+c.Params("clubID"))
	return h.responder(c, body, err)
}

// Inscribirse godoc
// @Summary      Inscribirse a un club
// @Tags         inscripciones
// @Produce      json
// @Param        clubID  path  string  true  "ID del club"
// @Router       /api/inscripciones/{clubID} [post]
func (h *InscripcionHandler) Inscribirse(c *fiber.Ctx) error {
	body, err := h.api.Post(c.Context(), h.token(c), "/inscripcion/inscribirse/"+c.Params("clubID"), nil)
	return h.responder(c, body, err)
}

// Cancelar godoc
// @Summary      Cancelar inscripción a un club
// @Tags         inscripciones
// @Produce      json
// @Param        clubID  path  string  true  "ID del club"
// @Router       /api/inscripciones/{clubID} [delete]
func (h *InscripcionHandler) Cancelar(c *fiber.Ctx) error {
	body, err := h.api.Delete(c.Context(), h.token(c), "/inscripcion/cancelar_inscripcion/"+c.Params("clubID"))
	return h.responder(c, body, err)
}
