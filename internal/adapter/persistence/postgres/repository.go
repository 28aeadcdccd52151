package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bitacora_materiales/internal/domain/entities"
	"bitacora_materiales/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	PgErrUniqueViolation = "23505" // unique_violation
	PgErrUndefinedTable  = "42P01" // undefined_table

	catalogUpsertBatchSize = 100
)

// Migrate creates or updates every table the service uses.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Bitacora{}, &MaterialAcumulado{}); err != nil {
		return err
	}
	for _, t := range []string{catalogoClaroTable, catalogoCicsaTable} {
		if err := db.Table(t).AutoMigrate(&CatalogoMaterial{}); err != nil {
			return fmt.Errorf("migrate %s: %w", t, err)
		}
	}
	return nil
}

func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == PgErrUniqueViolation {
		return fmt.Errorf("%w: %s", interfaces.ErrDuplicateEntry, pgErr.Detail)
	}
	return err
}

type BitacoraRepository struct {
	db *gorm.DB
}

var _ interfaces.IBitacoraRepository = (*BitacoraRepository)(nil)

func NewBitacoraRepository(db *gorm.DB) *BitacoraRepository {
	return &BitacoraRepository{db: db}
}

func (r *BitacoraRepository) GetByID(ctx context.Context, id string) (entities.Bitacora, error) {
	var b Bitacora
	err := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&b).Error
	if err != nil {
		return entities.Bitacora{}, err
	}
	if b.ID == "" {
		return entities.Bitacora{}, nil
	}
	return fromBitacoraModel(b), nil
}

type MaterialRepository struct {
	db *gorm.DB
}

var _ interfaces.IMaterialRepository = (*MaterialRepository)(nil)

func NewMaterialRepository(db *gorm.DB) *MaterialRepository {
	return &MaterialRepository{db: db}
}

func (r *MaterialRepository) Create(ctx context.Context, m entities.MaterialEntry) (entities.MaterialEntry, error) {
	row := toMaterialModel(m)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.MaterialEntry{}, translateError(err)
	}
	return fromMaterialModel(row), nil
}

func (r *MaterialRepository) CreateBatch(ctx context.Context, lines []entities.MaterialEntry) ([]entities.MaterialEntry, error) {
	if len(lines) == 0 {
		return []entities.MaterialEntry{}, nil
	}

	rows := make([]MaterialAcumulado, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, toMaterialModel(l))
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
	if err != nil {
		return nil, translateError(err)
	}

	out := make([]entities.MaterialEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromMaterialModel(row))
	}
	return out, nil
}

func (r *MaterialRepository) GetByID(ctx context.Context, id string) (entities.MaterialEntry, error) {
	var row MaterialAcumulado
	err := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&row).Error
	if err != nil {
		return entities.MaterialEntry{}, err
	}
	if row.ID == "" {
		return entities.MaterialEntry{}, nil
	}
	return fromMaterialModel(row), nil
}

func (r *MaterialRepository) ListByBitacoraID(ctx context.Context, bitacoraID string) ([]entities.MaterialEntry, error) {
	var rows []MaterialAcumulado
	err := r.db.WithContext(ctx).
		Where("bitacora_id = ?", bitacoraID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]entities.MaterialEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromMaterialModel(row))
	}
	return out, nil
}

func (r *MaterialRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&MaterialAcumulado{}).Error
}

type CatalogRepository struct {
	db *gorm.DB
}

var _ interfaces.ICatalogRepository = (*CatalogRepository)(nil)

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) Search(ctx context.Context, origin entities.Origin, term string, limit int) ([]entities.CatalogItem, error) {
	table, err := catalogTable(origin)
	if err != nil {
		return nil, err
	}

	pattern := "%" + escapeLike(term) + "%"
	var rows []CatalogoMaterial
	err = r.db.WithContext(ctx).
		Table(table).
		Where("activo = ?", true).
		Where("codigo ILIKE ? OR descripcion ILIKE ? OR nombre_simple ILIKE ?", pattern, pattern, pattern).
		Order("codigo").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]entities.CatalogItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromCatalogModel(row))
	}
	return out, nil
}

func (r *CatalogRepository) UpsertBatch(ctx context.Context, origin entities.Origin, items []entities.CatalogItem) error {
	table, err := catalogTable(origin)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	rows := make([]CatalogoMaterial, 0, len(items))
	for _, c := range items {
		rows = append(rows, toCatalogModel(c))
	}
	return r.db.WithContext(ctx).
		Table(table).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "codigo"}},
			UpdateAll: true,
		}).
		CreateInBatches(&rows, catalogUpsertBatchSize).Error
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
