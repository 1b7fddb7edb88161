package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/semillero-api/internal/application/auth"
	"github.com/jhoicas/semillero-api/internal/application/draft"
	"github.com/jhoicas/semillero-api/internal/application/project"
	"github.com/jhoicas/semillero-api/internal/domain/entity"
)

// RouterDeps dependencias para el router. DraftUC puede ser nil.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProjectUC   *project.ProjectUseCase
	ReportUC    *project.ReportUseCase
	DraftUC     *draft.DraftUseCase
	JWTSecret   string
	AppName     string
	SwaggerFile string // p. ej. ./docs/swagger.json; si no existe no se monta /docs
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Swagger UI en local: http://localhost:<port>/docs
	if deps.SwaggerFile != "" {
		if _, err := os.Stat(deps.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: deps.SwaggerFile,
				Path:     "docs",
				Title:    deps.AppName,
			}))
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	projects := protected.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC, deps.ReportUC)
	projects.Post("/", RequireRole(entity.RoleEntrepreneur), projectHandler.Create)
	projects.Get("/", projectHandler.List)
	projects.Get("/:id", projectHandler.GetByID)
	projects.Delete("/:id", projectHandler.Delete)
	projects.Put("/:id/sections/:section", projectHandler.UpdateSection)
	projects.Put("/:id/cost-structure", projectHandler.UpdateCostStructure)
	projects.Get("/:id/projection", projectHandler.GetProjection)
	projects.Get("/:id/report.pdf", projectHandler.DownloadReport)

	// El autoguardado es del formulario del emprendedor.
	drafts := protected.Group("/drafts", RequireRole(entity.RoleEntrepreneur))
	draftHandler := NewDraftHandler(deps.DraftUC)
	drafts.Put("/current", draftHandler.Save)
	drafts.Get("/current", draftHandler.Get)
	drafts.Delete("/current", draftHandler.Delete)
}
