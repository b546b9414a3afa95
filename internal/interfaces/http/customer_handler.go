package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/arquetipo/clientes-api/internal/application/customer"
	"github.com/arquetipo/clientes-api/internal/application/dto"
	"github.com/arquetipo/clientes-api/internal/domain"
)

// maxBatchSize tope de clientes por POST.
const maxBatchSize = 1000

// CustomerHandler expone el CRUD de clientes en /api/v1 y /api/v2.
type CustomerHandler struct {
	h *customer.Handler
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(h *customer.Handler) *CustomerHandler {
	return &CustomerHandler{h: h}
}

// ListV1 godoc
// @Summary      Listar clientes (v1)
// @Description  Devuelve todos los clientes dentro del sobre {status, comment, sessionId, data}.
// @Tags         customers-v1
// @Produce      json
// @Success      200  {object}  dto.Envelope[dto.CustomerResponse]
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/customers [get]
func (h *CustomerHandler) ListV1(c *fiber.Ctx) error {
	env, err := h.h.GetAllV1(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(env)
}

// GetByIDV1 godoc
// @Summary      Obtener cliente por ID (v1)
// @Description  Si el cliente no existe responde 200 con data vacío.
// @Tags         customers-v1
// @Produce      json
// @Param        id   path      int  true  "ID del cliente"
// @Success      200  {object}  dto.Envelope[dto.CustomerResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/customers/{id} [get]
func (h *CustomerHandler) GetByIDV1(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	env, err := h.h.GetByIDV1(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(env)
}

// CreateV1 godoc
// @Summary      Crear clientes en lote (v1)
// @Description  Inserta el arreglo completo en una transacción: si una fila falla no se crea ninguna.
// @Tags         customers-v1
// @Security     Bearer
// @Accept       json
// @Param        body  body  []dto.CreateCustomerRequestV1  true  "Clientes a crear"
// @Success      201
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/customers [post]
func (h *CustomerHandler) CreateV1(c *fiber.Ctx) error {
	var in []dto.CreateCustomerRequestV1
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if n := len(in); n == 0 || n > maxBatchSize {
		return batchSizeError(c, n)
	}
	if issues := validateBatch(in); len(issues) > 0 {
		return validationError(c, issues)
	}
	if err := h.h.CreateV1(c.UserContext(), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// UpdateV1 godoc
// @Summary      Reemplazar cliente (v1)
// @Tags         customers-v1
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.UpdateCustomerRequestV1  true  "Cliente completo con id"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/customers [put]
func (h *CustomerHandler) UpdateV1(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequestV1
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if issues := validateStruct(in); len(issues) > 0 {
		return validationError(c, issues)
	}
	updated, err := h.h.UpdateV1(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	if !updated {
		return respondError(c, fmt.Errorf("cliente %d: %w", in.ID, domain.ErrNotFound))
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListV2 godoc
// @Summary      Listar clientes (v2)
// @Description  Paginado por page/pageSize. Con email filtra por ese email e ignora la paginación.
// @Tags         customers-v2
// @Produce      json
// @Param        page      query  int     false  "Página (desde 1)"
// @Param        pageSize  query  int     false  "Tamaño de página (máx. 100)"
// @Param        email     query  string  false  "Filtro exacto por email"
// @Success      200  {object}  dto.Envelope[dto.CustomerResponseV2]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v2/customers [get]
func (h *CustomerHandler) ListV2(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "page y pageSize deben ser enteros"})
	}
	if issues := validateStruct(page); len(issues) > 0 {
		return validationError(c, issues)
	}
	var email *string
	if v := c.Query("email"); v != "" {
		email = &v
	}
	env, err := h.h.GetAllV2(c.UserContext(), page.Page, page.PageSize, email)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(env)
}

// GetByIDV2 godoc
// @Summary      Obtener cliente por ID (v2)
// @Tags         customers-v2
// @Produce      json
// @Param        id   path      int  true  "ID del cliente"
// @Success      200  {object}  dto.Envelope[dto.CustomerResponseV2]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v2/customers/{id} [get]
func (h *CustomerHandler) GetByIDV2(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	env, err := h.h.GetByIDV2(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(env)
}

// CreateV2 godoc
// @Summary      Crear clientes en lote (v2)
// @Tags         customers-v2
// @Security     Bearer
// @Accept       json
// @Param        body  body  []dto.CreateCustomerRequestV2  true  "Clientes a crear"
// @Success      201
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v2/customers [post]
func (h *CustomerHandler) CreateV2(c *fiber.Ctx) error {
	var in []dto.CreateCustomerRequestV2
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if n := len(in); n == 0 || n > maxBatchSize {
		return batchSizeError(c, n)
	}
	if issues := validateBatch(in); len(issues) > 0 {
		return validationError(c, issues)
	}
	if err := h.h.CreateV2(c.UserContext(), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// PatchV2 godoc
// @Summary      Actualizar cliente parcialmente (v2)
// @Description  Solo se modifican los campos presentes en el body.
// @Tags         customers-v2
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.UpdateCustomerRequestV2  true  "id y campos a modificar"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v2/customers [patch]
func (h *CustomerHandler) PatchV2(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequestV2
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if issues := validateStruct(in); len(issues) > 0 {
		return validationError(c, issues)
	}
	updated, err := h.h.UpdateV2(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	if !updated {
		return respondError(c, fmt.Errorf("cliente %d: %w", in.ID, domain.ErrNotFound))
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar cliente
// @Description  Mismo comportamiento en v1 y v2. Requiere rol admin.
// @Tags         customers-v1, customers-v2
// @Security     Bearer
// @Param        id   path  int  true  "ID del cliente"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/customers/{id} [delete]
// @Router       /api/v2/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	deleted, err := h.h.Delete(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	if !deleted {
		return respondError(c, fmt.Errorf("cliente %d: %w", id, domain.ErrNotFound))
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero positivo"})
}

// batchSizeError responde al lote vacío (400) o que supera maxBatchSize (413).
func batchSizeError(c *fiber.Ctx, n int) error {
	if n == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el lote de clientes está vacío"})
	}
	return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{
		Code:    "BATCH_TOO_LARGE",
		Message: "máximo " + strconv.Itoa(maxBatchSize) + " clientes por petición",
	})
}
