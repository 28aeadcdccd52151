package handlers

import (
	"errors"
	"net/http"

	request "bitacora_materiales/internal/adapter/http/dto/request"
	response "bitacora_materiales/internal/adapter/http/dto/response"
	"bitacora_materiales/internal/domain/entities"
	"bitacora_materiales/internal/usecase"
	"bitacora_materiales/internal/usecase/interfaces"
	"bitacora_materiales/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidMaterialPayload = pkg.NewDomainErrorSimple("MISSING_DATA", "Faltan datos", http.StatusBadRequest)
)

// MaterialHandler handles the material lines of a bitácora.
//
// Failure bodies always carry {ok:false, error}; the field pages show
// `error` to the operator as-is.

type MaterialHandler struct {
	usecase usecase.IMaterialUseCase
}

func NewMaterialHandler(uc usecase.IMaterialUseCase) *MaterialHandler {
	return &MaterialHandler{usecase: uc}
}

// ListMaterials godoc
// @Summary      List the materials recorded on a logbook
// @Description  Newest first; created_at is formatted as YYYY-MM-DD HH:MM.
// @Tags         materiales
// @Produce      json
// @Param        bitacora_id  path      string  true  "bitacora id"
// @Success      200          {object}  response.MaterialListResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      500          {object}  pkg.HTTPError
// @Router       /materiales/listar/{bitacora_id} [get]
func (h *MaterialHandler) ListMaterials(c *gin.Context) {
	items, err := h.usecase.ListByBitacoraID(c.Request.Context(), c.Param("bitacora_id"))
	if err != nil {
		appErr := mapMaterialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.MaterialListResponse{OK: true, Items: response.FromMaterials(items)})
}

// SaveMaterial godoc
// @Summary      Record one material line
// @Tags         materiales
// @Accept       json
// @Produce      json
// @Param        payload  body      request.SaveMaterialRequest  true  "material line"
// @Success      200      {object}  response.MaterialItemResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /materiales/guardar [post]
func (h *MaterialHandler) SaveMaterial(c *gin.Context) {
	var payload request.SaveMaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMaterialPayload.HTTPStatus, errInvalidMaterialPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Save(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapMaterialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.MaterialItemResponse{OK: true, Item: response.FromMaterial(created)})
}

// SaveBatch godoc
// @Summary      Record a whole cart in one transaction
// @Tags         materiales
// @Accept       json
// @Produce      json
// @Param        payload  body      request.SaveBatchRequest  true  "cart"
// @Success      201      {object}  response.MaterialListResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /materiales/guardar-lote [post]
func (h *MaterialHandler) SaveBatch(c *gin.Context) {
	var payload request.SaveBatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMaterialPayload.HTTPStatus, errInvalidMaterialPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.SaveBatch(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapMaterialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.MaterialListResponse{OK: true, Items: response.FromMaterials(created)})
}

// DeleteMaterial godoc
// @Summary      Delete a recorded material line
// @Tags         materiales
// @Produce      json
// @Param        id   path      string  true  "material entry id"
// @Success      200  {object}  response.OKResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /materiales/borrar/{id} [delete]
func (h *MaterialHandler) DeleteMaterial(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapMaterialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OKResponse{OK: true})
}

func mapMaterialError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingData), errors.Is(err, usecase.ErrEmptyBatch):
		return errInvalidMaterialPayload
	case errors.Is(err, usecase.ErrInvalidBitacoraID), errors.Is(err, usecase.ErrInvalidMaterialID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Solicitud inválida", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidOrigin):
		return pkg.NewDomainErrorSimple("INVALID_ORIGIN", "Origen inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCrewNotAssigned):
		return pkg.NewDomainErrorSimple("CREW_NOT_ASSIGNED", "Seleccione una brigada", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_QUANTITY", "La cantidad debe ser mayor a cero", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrFractionalQuantity):
		return pkg.NewDomainErrorSimple("INVALID_QUANTITY", "La unidad no admite decimales", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrBatchTooLarge):
		return pkg.NewDomainErrorSimple("BATCH_TOO_LARGE", "Demasiados materiales en un solo envío", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrDuplicateBatchLine):
		return pkg.NewDomainErrorSimple("DUPLICATE_LINE", "Material repetido en el envío", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrBitacoraNotFound):
		return pkg.NewDomainErrorSimple("BITACORA_NOT_FOUND", "Bitácora no encontrada", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMaterialNotFound):
		return pkg.NewDomainErrorSimple("MATERIAL_NOT_FOUND", "Registro no encontrado", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrDuplicateEntry):
		return pkg.NewDomainError("DUPLICATE_ENTRY", "Registro duplicado", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Error guardando en BD", err, http.StatusInternalServerError)
	}
}
