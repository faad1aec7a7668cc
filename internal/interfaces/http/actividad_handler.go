package http

import "github.com/gofiber/fiber/v2"

// ActividadHandler proxea la pantalla de actividades.
type ActividadHandler struct {
	proxyBase
}

// NewActividadHandler construye el handler.
func NewActividadHandler(base proxyBase) *ActividadHandler {
	return &ActividadHandler{proxyBase: base}
}

// Listar godoc
// @Summary      Listar actividades
// @Tags         actividades
// @Produce      json
// @Router       /api/actividades [get]
func (h *ActividadHandler) Listar(c *fiber.Ctx) error {
	body, err := h.api.Get(c.Context(), h.token(c), "/actividad/listar_actividades")
	return h.responder(c, body, err)
}

// Crear godoc
// @Summary      Crear actividad
// @Tags         actividades
// @Accept       json
// @Produce      json
// @Router       /api/actividades [post]
func (h *ActividadHandler) Crear(c *fiber.Ctx) error {
	body, err := h.api.Post(c.Context(), h.token(c), "/actividad/crear_actividad", cuerpo(c))
	return h.responder(c, body, err)
}

// Actualizar godoc
// @Summary      Actualizar actividad
// @Tags         actividades
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "ID de la actividad"
// @Router       /api/actividades/{id} [put]
func (h *ActividadHandler) Actualizar(c *fiber.Ctx) error {
	body, err := h.api.Put(c.Context(), h.token(c), "/actividad/actualizar_actividad/"+c.Params("id"), cuerpo(c))
	return h.responder(c, body, err)
}

// Eliminar godoc
// @Summary      Eliminar actividad
// @Tags         actividades
// @Param        id  path  string  true  "ID de la actividad"
// @Router       /api/actividades/{id} [delete]
func (h *ActividadHandler) Eliminar(c *fiber.Ctx) error {
	body, err := h.api.Delete(c.Context(), h.token(c), "/actividad/eliminar_actividad/"+c.Params("id"))
	return h.responder(c, body, err)
}
