package http

import (
	"github.com/gofiber/fiber/v2"
)

// catalogo describe un recurso de catálogo simple (nombre/descripcion)
// y sus rutas RPC en la plataforma. Sedes, facultades, categorías, roles
// y estados comparten el mismo CRUD, así que un solo handler los sirve.
type catalogo struct {
	ruta       string // segmento en la consola, ej. "sedes"
	listar     string
	crear      string
	actualizar string // se concatena el id
	eliminar   string // se concatena el id
}

var catalogos = []catalogo{
	{
		ruta:       "sedes",
		listar:     "/sede/listar_sedes",
		crear:      "/sede/crear_sede",
		actualizar: "/sede/actualizar_sede/",
		eliminar:   "/sede/eliminar_sede/",
	},
	{
		ruta:       "facultades",
		listar:     "/facultad/listar_facultades",
		crear:      "/facultad/crear_facultad",
		actualizar: "/facultad/actualizar_facultad/",
		eliminar:   "/facultad/eliminar_facultad/",
	},
	{
		ruta:       "categorias",
		listar:     "/categoria/listar_categorias",
		crear:      "/categoria/crear_categoria",
		actualizar: "/categoria/actualizar_categoria/",
		eliminar:   "/categoria/eliminar_categoria/",
	},
	{
		ruta:       "roles",
		listar:     "/rol/listar_roles",
		crear:      "/rol/crear_rol",
		actualizar: "/rol/actualizar_rol/",
		eliminar:   "/rol/eliminar_rol/",
	},
	{
		ruta:       "estados",
		listar:     "/estado/listar_estados",
		crear:      "/estado/crear_estado",
		actualizar: "/estado/actualizar_estado/",
		eliminar:   "/estado/eliminar_estado/",
	},
}

// CatalogoHandler proxea los catálogos administrativos.
type CatalogoHandler struct {
	proxyBase
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(base proxyBase) *CatalogoHandler {
	return &CatalogoHandler{proxyBase: base}
}

// Registrar monta el CRUD de cada catálogo bajo el router dado
// (ej. GET/POST /sedes, PUT/DELETE /sedes/:id).
func (h *CatalogoHandler) Registrar(r fiber.Router) {
	for _, cat := range catalogos {
		grupo := r.Group("/" + cat.ruta)
		grupo.Get("/", func(c *fiber.Ctx) error {
			body, err := h.api.Get(c.Context(), h.token(c), cat.listar)
			return h.responder(c, body, err)
		})
		grupo.Post("/", func(c *fiber.Ctx) error {
			body, err := h.api.Post(c.Context(), h.token(c), cat.crear, cuerpo(c))
			return h.responder(c, body, err)
		})
		grupo.Put("/:id", func(c *fiber.Ctx) error {
			body, err := h.api.Put(c.Context(), h.token(c), cat.actualizar+c.Params("id"), cuerpo(c))
			return h.responder(c, body, err)
		})
		grupo.Delete("/:id", func(c *fiber.Ctx) error {
			body, err := h.api.Delete(c.Context(), h.token(c), cat.eliminar+c.Params("id"))
			return h.responder(c, body, err)
		})
	}
}
