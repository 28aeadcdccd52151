package handlers

import (
	"errors"
	"net/http"

	response "bitacora_materiales/internal/adapter/http/dto/response"
	"bitacora_materiales/internal/domain/entities"
	"bitacora_materiales/internal/usecase"
	"bitacora_materiales/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the material lookup used by the search box.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// Search godoc
// @Summary      Search the material catalog
// @Description  Case-insensitive match over code, description and simple name. Terms under 3 characters return an empty list.
// @Tags         materiales
// @Produce      json
// @Param        origen  query     string  true  "claro | cicsa"
// @Param        q       query     string  true  "search term"
// @Success      200     {object}  response.CatalogSearchResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      500     {object}  pkg.HTTPError
// @Router       /materiales/buscar [get]
func (h *CatalogHandler) Search(c *gin.Context) {
	items, err := h.usecase.Search(c.Request.Context(), c.Query("origen"), c.Query("q"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.CatalogSearchResponse{OK: true, Items: response.FromCatalogItems(items)})
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrInvalidOrigin):
		return pkg.NewDomainErrorSimple("INVALID_ORIGIN", "Origen inválido", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Error interno", err, http.StatusInternalServerError)
	}
}
