package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

// ResumenResponse datos del dashboard de administración.
type ResumenResponse struct {
	TotalClubes      int             `json:"total_clubes"`
	TotalActividades int             `json:"total_actividades"`
	TotalPersonas    int             `json:"total_personas"`
	Clubes           json.RawMessage `json:"clubes"`
}

// DashboardHandler arma el resumen del aterrizaje de admin agregando
// los listados de la plataforma.
type DashboardHandler struct {
	proxyBase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(base proxyBase) *DashboardHandler {
	return &DashboardHandler{proxyBase: base}
}

// Resumen godoc
// @Summary      Resumen del dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  ResumenResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Resumen(c *fiber.Ctx) error {
	token := h.token(c)

	clubes, err := h.api.Get(c.Context(), token, "/club/listar_clubes")
	if err != nil {
		return h.responder(c, nil, err)
	}
	actividades, err := h.api.Get(c.Context(), token, "/actividad/listar_actividades")
	if err != nil {
		return h.responder(c, nil, err)
	}
	personas, err := h.api.Get(c.Context(), token, "/persona/listar_usuarios")
	if err != nil {
		return h.responder(c, nil, err)
	}

	return c.JSON(ResumenResponse{
		TotalClubes:      contarElementos(clubes),
		TotalActividades: contarElementos(actividades),
		TotalPersonas:    contarElementos(personas),
		Clubes:           clubes,
	})
}

// contarElementos cuenta los elementos de un array JSON opaco; un cuerpo
// que no sea array cuenta como cero.
func contarElementos(raw json.RawMessage) int {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return 0
	}
	return len(items)
}
