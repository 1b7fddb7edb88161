package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/semillero-api/internal/application/auth"
	"github.com/jhoicas/semillero-api/internal/application/draft"
	"github.com/jhoicas/semillero-api/internal/application/project"
	infrapdf "github.com/jhoicas/semillero-api/internal/infrastructure/pdf"
	"github.com/jhoicas/semillero-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/semillero-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/semillero-api/internal/interfaces/http"
	"github.com/jhoicas/semillero-api/pkg/config"
	"github.com/jhoicas/semillero-api/pkg/logger"
)

// margen para cabeceras y el envoltorio {"step","data"} del borrador
const bodyLimitSlack = 64 << 10

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
		Str("db", postgres.Describe(cfg.DB)).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	if len(applied) > 0 {
		log.Info().Strs("scripts", applied).Msg("migraciones aplicadas")
	}

	userRepo := postgres.NewUserRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	projectUC := project.NewProjectUseCase(projectRepo, log)

	// PDF: plan de negocio con las tablas de la sección 7
	reportGenerator := infrapdf.NewMarotoReportGenerator(cfg.Report.Author, cfg.Report.CurrencySymbol)
	reportUC := project.NewReportUseCase(projectRepo, reportGenerator, log)

	// Autoguardado: solo si hay Redis configurado; sin él las rutas responden 503.
	var draftUC *draft.DraftUseCase
	if cfg.Redis.Addr != "" {
		rdb, err := infraredis.New(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("conexión a Redis")
		}
		defer rdb.Close()
		store := infraredis.NewDraftStore(rdb, cfg.Draft.MaxBytes, cfg.Draft.TTL())
		draftUC = draft.NewDraftUseCase(store, log)
	} else {
		log.Warn().Msg("REDIS_ADDR vacío: autoguardado deshabilitado")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		// el borrador se rechaza con 413 QUOTA_EXCEEDED en la capa de aplicación, no aquí
		BodyLimit: cfg.Draft.MaxBytes + bodyLimitSlack,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProjectUC:   projectUC,
		ReportUC:    reportUC,
		DraftUC:     draftUC,
		JWTSecret:   cfg.JWT.Secret,
		AppName:     cfg.App.Name,
		SwaggerFile: "./docs/swagger.json",
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
