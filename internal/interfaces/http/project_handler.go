package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/semillero-api/internal/application/dto"
	"github.com/jhoicas/semillero-api/internal/application/project"
)

// ProjectHandler perfil del plan de negocio, estructura de costos y reporte (protegido).
type ProjectHandler struct {
	uc     *project.ProjectUseCase
	report *project.ReportUseCase
}

// NewProjectHandler construye el handler.
func NewProjectHandler(uc *project.ProjectUseCase, report *project.ReportUseCase) *ProjectHandler {
	return &ProjectHandler{uc: uc, report: report}
}

// Create godoc
// @Summary      Crear proyecto
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateProjectRequest  true  "datos generales y narrativas"
// @Success      201   {object}  dto.ProjectResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), actorFrom(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar mis proyectos
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máximo 100"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.ProjectListResponse
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.uc.List(c.UserContext(), actorFrom(c), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener proyecto
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {object}  dto.ProjectResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id} [get]
func (h *ProjectHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), actorFrom(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar proyecto
// @Tags         projects
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del proyecto"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/projects/{id} [delete]
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), actorFrom(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateSection godoc
// @Summary      Actualizar una sección del perfil
// @Description  general-data, team o una narrativa ({"text": "..."}).
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string  true  "ID del proyecto"
// @Param        section  path  string  true  "sección"
// @Success      200  {object}  dto.ProjectResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/sections/{section} [put]
func (h *ProjectHandler) UpdateSection(c *fiber.Ctx) error {
	body := c.Body()
	in := dto.UpdateSectionRequest{
		Section: c.Params("section"),
		Body:    append([]byte(nil), body...),
	}
	out, err := h.uc.UpdateSection(c.UserContext(), actorFrom(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateCostStructure godoc
// @Summary      Guardar estructura de costos y recalcular la proyección
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID del proyecto"
// @Param        body  body  dto.CostStructureRequest  true  "entradas de la sección 7"
// @Success      200  {object}  dto.CostStructureResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/cost-structure [put]
func (h *ProjectHandler) UpdateCostStructure(c *fiber.Ctx) error {
	var in dto.CostStructureRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateCostStructure(c.UserContext(), actorFrom(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetProjection godoc
// @Summary      Tablas derivadas vigentes
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {object}  dto.ProjectionResponse
// @Router       /api/projects/{id}/projection [get]
func (h *ProjectHandler) GetProjection(c *fiber.Ctx) error {
	out, err := h.uc.GetProjection(c.UserContext(), actorFrom(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DownloadReport godoc
// @Summary      Descargar el plan de negocio en PDF
// @Tags         projects
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {file}    binary
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/report.pdf [get]
func (h *ProjectHandler) DownloadReport(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.report.DownloadReportPDF(c.UserContext(), actorFrom(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
