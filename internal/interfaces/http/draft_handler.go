package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/semillero-api/internal/application/draft"
	"github.com/jhoicas/semillero-api/internal/application/dto"
)

// DraftHandler autoguardado del formulario del usuario autenticado.
type DraftHandler struct {
	uc *draft.DraftUseCase
}

// NewDraftHandler uc nil responde 503 en todas las rutas (Redis no configurado).
func NewDraftHandler(uc *draft.DraftUseCase) *DraftHandler {
	return &DraftHandler{uc: uc}
}

func (h *DraftHandler) unavailable(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "DRAFTS_DISABLED", Message: "el autoguardado no está habilitado"})
}

// Save godoc
// @Summary      Guardar borrador
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SaveDraftRequest  true  "paso y datos del formulario"
// @Success      200  {object}  dto.DraftResponse
// @Failure      413  {object}  dto.ErrorResponse
// @Router       /api/drafts/current [put]
func (h *DraftHandler) Save(c *fiber.Ctx) error {
	if h.uc == nil {
		return h.unavailable(c)
	}
	var in dto.SaveDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Save(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener borrador
// @Tags         drafts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/drafts/current [get]
func (h *DraftHandler) Get(c *fiber.Ctx) error {
	if h.uc == nil {
		return h.unavailable(c)
	}
	out, err := h.uc.Get(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Descartar borrador
// @Tags         drafts
// @Security     BearerAuth
// @Success      204
// @Router       /api/drafts/current [delete]
func (h *DraftHandler) Delete(c *fiber.Ctx) error {
	if h.uc == nil {
		return h.unavailable(c)
	}
	if err := h.uc.Delete(c.UserContext(), GetUserID(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
