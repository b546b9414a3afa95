package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/arquetipo/clientes-api/internal/application/customer"
	"github.com/arquetipo/clientes-api/internal/application/mapper"
	"github.com/arquetipo/clientes-api/internal/application/usecase"
	"github.com/arquetipo/clientes-api/internal/infrastructure/operations"
	"github.com/arquetipo/clientes-api/internal/infrastructure/postgres"
	httpRouter "github.com/arquetipo/clientes-api/internal/interfaces/http"
	"github.com/arquetipo/clientes-api/pkg/config"
	"github.com/arquetipo/clientes-api/pkg/jwt"
	"github.com/arquetipo/clientes-api/pkg/logger"
	"github.com/arquetipo/clientes-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	tokens, err := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, time.Duration(cfg.JWT.Expiration)*time.Minute)
	if err != nil {
		log.Fatal().Err(err).Msg("JWT_SECRET requerido")
	}

	customerRepo := postgres.NewCustomerRepository(pool)
	customerHandler := customer.NewHandler(customerRepo, mapper.NewCustomerMapper())

	// API de operaciones: opcional. Sin base address las rutas /operations responden 503.
	var operationsUC *usecase.OperationsUseCase
	if cfg.OperationsAPI.BaseAddress != "" {
		opsClient, err := operations.NewClient(operations.Config{
			BaseAddress: cfg.OperationsAPI.BaseAddress,
			Username:    cfg.OperationsAPI.Username,
			Password:    cfg.OperationsAPI.Password,
			Timeout:     cfg.OperationsAPI.Timeout,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("cliente API de operaciones")
		}
		operationsUC = usecase.NewOperationsUseCase(opsClient, cfg.OperationsAPI.Timeout)
		log.Info().Str("base_address", cfg.OperationsAPI.BaseAddress).Msg("API de operaciones configurada")
	} else {
		log.Warn().Msg("OPERATIONS_API_BASE_ADDRESS vacío: API de operaciones deshabilitada")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 35,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log))

	m := metrics.New("clientes")
	app.Use(httpRouter.MetricsMiddleware(m))
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Clientes API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Customers:    customerHandler,
		OperationsUC: operationsUC,
		Tokens:       tokens,
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

	log.Info().Msg("aplicación detenida")
}
