package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ucampus/consola-clubes/internal/application/auth"
	"github.com/ucampus/consola-clubes/internal/domain/repository"
	"github.com/ucampus/consola-clubes/internal/infrastructure/memoria"
	"github.com/ucampus/consola-clubes/internal/infrastructure/plataforma"
	infraredis "github.com/ucampus/consola-clubes/internal/infrastructure/redis"
	consolehttp "github.com/ucampus/consola-clubes/internal/interfaces/http"
	"github.com/ucampus/consola-clubes/pkg/config"
	"github.com/ucampus/consola-clubes/pkg/logger"
	"github.com/ucampus/consola-clubes/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("plataforma", cfg.Plataforma.BaseURL).
		Msg("iniciando consola")

	// Sesiones: Redis en cualquier entorno con REDIS_ADDR alcanzable;
	// en development cae a memoria si Redis no responde.
	var store repository.SesionStore
	redisClient, err := infraredis.NewClient(cfg.Redis)
	switch {
	case err == nil:
		store = infraredis.NewSesionStore(redisClient, cfg.Sesion.TTLMinutes)
		defer redisClient.Close()
	case cfg.App.Env == "development":
		log.Warn().Err(err).Msg("Redis no disponible, usando sesiones en memoria")
		store = memoria.NewSesionStore()
	default:
		log.Fatal().Err(err).Msg("conexión a Redis")
	}

	api := plataforma.NewClient(cfg.Plataforma.BaseURL, cfg.Plataforma.TimeoutSeconds)
	authUC := auth.NewUseCase(api, store)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(metrics.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Consola Clubes",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", metrics.Handler())

	consolehttp.Router(app, consolehttp.RouterDeps{
		AuthUC: authUC,
		API:    api,
		Cookie: consolehttp.CookieConfig{
			Secret:     cfg.Sesion.Secret,
			Issuer:     cfg.App.Name,
			TTLMinutes: cfg.Sesion.TTLMinutes,
			Secure:     cfg.Sesion.CookieSecure,
		},
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("consola detenida")
}
