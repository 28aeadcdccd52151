package handlers

import (
	"errors"
	"net/http"

	response "bitacora_materiales/internal/adapter/http/dto/response"
	"bitacora_materiales/internal/usecase"
	"bitacora_materiales/pkg"

	"github.com/gin-gonic/gin"
)

type BitacoraHandler struct {
	usecase usecase.IBitacoraUseCase
}

func NewBitacoraHandler(uc usecase.IBitacoraUseCase) *BitacoraHandler {
	return &BitacoraHandler{usecase: uc}
}

// GetBitacora godoc
// @Summary      Get a logbook and its crews
// @Tags         bitacoras
// @Produce      json
// @Param        id   path      string  true  "bitacora id"
// @Success      200  {object}  response.BitacoraItemResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /bitacoras/{id} [get]
func (h *BitacoraHandler) GetBitacora(c *gin.Context) {
	b, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBitacoraError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.BitacoraItemResponse{OK: true, Item: response.FromBitacora(b)})
}

func mapBitacoraError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBitacoraID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Bitácora inválida", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBitacoraNotFound):
		return pkg.NewDomainErrorSimple("BITACORA_NOT_FOUND", "Bitácora no encontrada", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Error interno", err, http.StatusInternalServerError)
	}
}
