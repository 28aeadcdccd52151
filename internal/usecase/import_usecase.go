package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"bitacora_materiales/internal/domain/entities"
	"bitacora_materiales/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const ImportBatchSize = 100

var (
	ErrImportNoHeader    = errors.New("spreadsheet has no header row")
	ErrImportMissingCode = errors.New("spreadsheet has no Codigo column")
)

// catalogColumns maps spreadsheet headers (as exported by the provider) to
// catalog fields.
var catalogColumns = map[string]string{
	"categoria":    "categoria",
	"subcategoria": "subcategoria",
	"codigo":       "codigo",
	"partidas de materiales utilizadas por mantenimiento pext": "descripcion",
	"descripcion":   "descripcion",
	"unidad":        "unidad",
	"nombre simple": "nombre_simple",
	"nombre_simple": "nombre_simple",
	"moneda":        "moneda",
	"codigo2":       "codigo_secundario",
	"costo":         "costo",
	"subcategoria2": "subcategoria_secundaria",
}

var nonCostChars = regexp.MustCompile(`[^\d.]`)

// ImportReport summarises a catalog import.
type ImportReport struct {
	Read    int
	Skipped int
	Written int
	Failed  int
}

type IImportUseCase interface {
	ImportCatalog(ctx context.Context, origin string, header []string, rows [][]string) (ImportReport, error)
}

type ImportUseCase struct {
	repo interfaces.ICatalogRepository
	log  *zap.Logger
}

var _ IImportUseCase = (*ImportUseCase)(nil)

func NewImportUseCase(repo interfaces.ICatalogRepository) *ImportUseCase {
	return &ImportUseCase{repo: repo, log: zap.L().Named("import.usecase")}
}

// ImportCatalog upserts spreadsheet rows into the origin catalog in batches.
// A failed batch is reported and the import continues with the next one.
func (u *ImportUseCase) ImportCatalog(ctx context.Context, origin string, header []string, rows [][]string) (ImportReport, error) {
	o, err := entities.ParseOrigin(origin)
	if err != nil {
		return ImportReport{}, err
	}
	items, skipped, err := RowsToCatalogItems(header, rows)
	if err != nil {
		return ImportReport{}, err
	}

	report := ImportReport{Read: len(rows), Skipped: skipped}
	u.log.Info("import start", zap.String("origen", string(o)), zap.Int("rows", len(rows)), zap.Int("items", len(items)))

	var errs []error
	for start := 0; start < len(items); start += ImportBatchSize {
		end := min(start+ImportBatchSize, len(items))
		batch := items[start:end]
		if err := u.repo.UpsertBatch(ctx, o, batch); err != nil {
			u.log.Error("import batch failed", zap.Int("batch", start/ImportBatchSize+1), zap.Error(err))
			report.Failed += len(batch)
			errs = append(errs, fmt.Errorf("batch %d: %w", start/ImportBatchSize+1, err))
			continue
		}
		report.Written += len(batch)
	}

	u.log.Info("import done", zap.Int("written", report.Written), zap.Int("failed", report.Failed), zap.Int("skipped", report.Skipped))
	return report, errors.Join(errs...)
}

// RowsToCatalogItems maps raw rows by header name. Rows without a code are
// skipped; a repeated code keeps the last row.
func RowsToCatalogItems(header []string, rows [][]string) ([]entities.CatalogItem, int, error) {
	if len(header) == 0 {
		return nil, 0, ErrImportNoHeader
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		if field, ok := catalogColumns[strings.ToLower(strings.TrimSpace(h))]; ok {
			if _, taken := idx[field]; !taken {
				idx[field] = i
			}
		}
	}
	if _, ok := idx["codigo"]; !ok {
		return nil, 0, ErrImportMissingCode
	}

	cell := func(row []string, field string) string {
		i, ok := idx[field]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	skipped := 0
	pos := make(map[string]int, len(rows))
	items := make([]entities.CatalogItem, 0, len(rows))
	for _, row := range rows {
		code := cell(row, "codigo")
		if code == "" {
			skipped++
			continue
		}
		it := entities.CatalogItem{
			Codigo:                 code,
			Descripcion:            cell(row, "descripcion"),
			Unidad:                 cell(row, "unidad"),
			NombreSimple:           cell(row, "nombre_simple"),
			Categoria:              cell(row, "categoria"),
			Subcategoria:           cell(row, "subcategoria"),
			SubcategoriaSecundaria: cell(row, "subcategoria_secundaria"),
			CodigoSecundario:       cell(row, "codigo_secundario"),
			Moneda:                 cell(row, "moneda"),
			Costo:                  ParseCost(cell(row, "costo")),
			Activo:                 true,
		}
		if i, dup := pos[code]; dup {
			items[i] = it
			skipped++
			continue
		}
		pos[code] = len(items)
		items = append(items, it)
	}
	return items, skipped, nil
}

// ParseCost turns provider cost strings such as "$ 14.55" into a decimal.
// Anything unparseable is a zero cost.
func ParseCost(raw string) decimal.Decimal {
	cleaned := nonCostChars.ReplaceAllString(raw, "")
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}
