package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/application/dto"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/application/usecase"
)

// OrdenCompraHandler maneja las peticiones HTTP para órdenes de compra (protegido).
type OrdenCompraHandler struct {
	uc *usecase.OrdenCompraUseCase
}

// NewOrdenCompraHandler construye el handler.
func NewOrdenCompraHandler(uc *usecase.OrdenCompraUseCase) *OrdenCompraHandler {
	return &OrdenCompraHandler{uc: uc}
}

// Create godoc
// @Summary      Crear orden de compra (nace PENDIENTE, número generado por el servidor)
// @Tags         orden-compra
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrdenCompraRequest  true  "Datos de la orden"
// @Success      201   {object}  dto.OrdenCompraResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orden-compra [post]
func (h *OrdenCompraHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrdenCompraRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener orden de compra por ID
// @Tags         orden-compra
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrdenCompraResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orden-compra/{id} [get]
func (h *OrdenCompraHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden de compra no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar órdenes de compra (opcionalmente por estado)
// @Tags         orden-compra
// @Security     Bearer
// @Produce      json
// @Param        estado  query  string  false  "PENDIENTE | ENVIADA | FINALIZADA | CANCELADA"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.OrdenCompraListResponse
// @Router       /api/orden-compra [get]
func (h *OrdenCompraHandler) List(c *fiber.Ctx) error {
	limit, offset := pagina(c)
	out, err := h.uc.List(c.Query("estado"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Estadisticas godoc
// @Summary      Estadísticas de órdenes por estado
// @Tags         orden-compra
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EstadisticasOrdenesResponse
// @Router       /api/orden-compra/estadisticas [get]
func (h *OrdenCompraHandler) Estadisticas(c *fiber.Ctx) error {
	out, err := h.uc.Estadisticas(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cantidad, precio o cargos (el total se recalcula)
// @Tags         orden-compra
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.UpdateOrdenCompraRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.OrdenCompraResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orden-compra/{id} [put]
func (h *OrdenCompraHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrdenCompraRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden de compra no encontrada"})
	}
	return c.JSON(out)
}

// CambiarEstado godoc
// @Summary      Transicionar el estado de la orden
// @Tags         orden-compra
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.CambiarEstadoRequest  true  "Estado destino"
// @Success      200   {object}  dto.OrdenCompraResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orden-compra/{id}/estado [put]
func (h *OrdenCompraHandler) CambiarEstado(c *fiber.Ctx) error {
	var in dto.CambiarEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Estado == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado es requerido"})
	}
	out, err := h.uc.CambiarEstado(c.Params("id"), in.Estado)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar orden de compra (solo PENDIENTE)
// @Tags         orden-compra
// @Security     Bearer
// @Param        id  path  string  true  "ID de la orden"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orden-compra/{id} [delete]
func (h *OrdenCompraHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
