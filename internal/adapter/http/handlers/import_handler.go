package handlers

import (
	"errors"
	"net/http"

	response "bitacora_materiales/internal/adapter/http/dto/response"
	"bitacora_materiales/internal/domain/entities"
	"bitacora_materiales/internal/infrastructure/spreadsheet"
	"bitacora_materiales/internal/usecase"
	"bitacora_materiales/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MaxImportFileSize bounds the uploaded catalog workbook.
const MaxImportFileSize = 20 << 20

var (
	errMissingImportFile = pkg.NewDomainErrorSimple("MISSING_FILE", "Adjunte el archivo xlsx en el campo file", http.StatusBadRequest)
	errUnreadableFile    = pkg.NewDomainErrorSimple("INVALID_FILE", "No se pudo leer el archivo xlsx", http.StatusBadRequest)
)

// ImportHandler loads provider catalog workbooks.
type ImportHandler struct {
	usecase usecase.IImportUseCase
	log     *zap.Logger
}

func NewImportHandler(uc usecase.IImportUseCase) *ImportHandler {
	return &ImportHandler{usecase: uc, log: zap.L().Named("import.handler")}
}

// ImportCatalog godoc
// @Summary      Upsert an origin catalog from an xlsx workbook
// @Description  Reads the first sheet. Rows without Codigo are skipped; failed batches are counted and reported.
// @Tags         catalogo
// @Accept       multipart/form-data
// @Produce      json
// @Param        origen  query     string  true  "claro | cicsa"
// @Param        file    formData  file    true  "xlsx workbook"
// @Success      200     {object}  response.ImportResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      207     {object}  response.ImportResponse
// @Router       /catalogo/importar [post]
func (h *ImportHandler) ImportCatalog(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(errMissingImportFile.HTTPStatus, errMissingImportFile.ToHTTPError())
		return
	}
	if fh.Size > MaxImportFileSize {
		appErr := pkg.NewDomainErrorSimple("FILE_TOO_LARGE", "El archivo supera el tamaño permitido", http.StatusRequestEntityTooLarge)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(errUnreadableFile.HTTPStatus, errUnreadableFile.ToHTTPError())
		return
	}
	defer f.Close()

	tbl, err := spreadsheet.Read(f)
	if err != nil {
		h.log.Info("unreadable workbook", zap.String("filename", fh.Filename), zap.Error(err))
		c.JSON(errUnreadableFile.HTTPStatus, errUnreadableFile.ToHTTPError())
		return
	}

	report, err := h.usecase.ImportCatalog(c.Request.Context(), c.Query("origen"), tbl.Header, tbl.Rows)
	if err != nil && report.Written == 0 && report.Failed == 0 {
		appErr := mapImportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if err != nil {
		c.JSON(http.StatusMultiStatus, response.ImportResponse{OK: false, Report: response.FromImportReport(report), Error: "Algunos lotes no se pudieron guardar"})
		return
	}
	c.JSON(http.StatusOK, response.ImportResponse{OK: true, Report: response.FromImportReport(report)})
}

func mapImportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrInvalidOrigin):
		return pkg.NewDomainErrorSimple("INVALID_ORIGIN", "Origen inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrImportNoHeader), errors.Is(err, usecase.ErrImportMissingCode):
		return pkg.NewDomainError("INVALID_FILE", "El archivo no tiene la columna Codigo", err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Error interno", err, http.StatusInternalServerError)
	}
}
