package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ucampus/consola-clubes/internal/application/auth"
	"github.com/ucampus/consola-clubes/internal/infrastructure/plataforma"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC *auth.UseCase
	API    *plataforma.Client
	Cookie CookieConfig
}

// Router registra las rutas de la consola. El SesionMiddleware corre
// antes que cualquier handler o guard, así que ninguno observa una
// sesión a medio resolver.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(SesionMiddleware(deps.Cookie.Secret, deps.AuthUC))

	base := proxyBase{api: deps.API, uc: deps.AuthUC, secure: deps.Cookie.Secure}

	// Raíz: manda a cada quien a su aterrizaje según el estado de sesión.
	app.Get("/", func(c *fiber.Ctx) error {
		cx := Current(c)
		switch {
		case !cx.EstaAutenticado():
			return c.Redirect(RutaLogin, fiber.StatusSeeOther)
		case cx.EsAdmin():
			return c.Redirect(RutaInicioAdmin, fiber.StatusSeeOther)
		default:
			return c.Redirect(RutaInicioUsuario, fiber.StatusSeeOther)
		}
	})

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)

	// Rutas autenticadas (ambos roles)
	protegido := api.Group("/", RequireAutenticado())
	protegido.Post("/auth/logout", authHandler.Logout)
	protegido.Get("/auth/sesion", authHandler.Sesion)

	clubes := protegido.Group("/clubes")
	clubHandler := NewClubHandler(base)
	clubes.Get("/", clubHandler.Listar)
	clubes.Post("/", clubHandler.Crear)
	clubes.Put("/:id", clubHandler.Actualizar)
	clubes.Delete("/:id", clubHandler.Eliminar)
	clubes.Get("/:id/inscritos", clubHandler.Inscritos)

	actividades := protegido.Group("/actividades")
	actividadHandler := NewActividadHandler(base)
	actividades.Get("/", actividadHandler.Listar)
	actividades.Post("/", actividadHandler.Crear)
	actividades.Put("/:id", actividadHandler.Actualizar)
	actividades.Delete("/:id", actividadHandler.Eliminar)

	inscripciones := protegido.Group("/inscripciones")
	inscripcionHandler := NewInscripcionHandler(base)
	inscripciones.Get("/", inscripcionHandler.Mias)
	inscripciones.Get("/verificar/:clubID", inscripcionHandler.Verificar)
	inscripciones.Post("/:clubID", inscripcionHandler.Inscribirse)
	inscripciones.Delete("/:clubID", inscripcionHandler.Cancelar)

	perfil := protegido.Group("/perfil")
	perfilHandler := NewPerfilHandler(base)
	perfil.Get("/", perfilHandler.Ver)
	perfil.Put("/", perfilHandler.Actualizar)
	perfil.Put("/contrasena", perfilHandler.CambiarContrasena)
	perfil.Put("/foto", perfilHandler.ActualizarFoto)

	// Rutas solo-admin (la autenticación se comprueba antes que el rol)
	admin := api.Group("/", RequireAdmin())

	dashboardHandler := NewDashboardHandler(base)
	admin.Get("/dashboard", dashboardHandler.Resumen)

	personas := admin.Group("/personas")
	personaHandler := NewPersonaHandler(base)
	personas.Get("/", personaHandler.Listar)
	personas.Post("/asignar_rol", personaHandler.AsignarRol)
	personas.Put("/:id", personaHandler.Actualizar)
	personas.Delete("/:id", personaHandler.Eliminar)

	catalogoHandler := NewCatalogoHandler(base)
	catalogoHandler.Registrar(admin)
}
