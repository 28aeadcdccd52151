package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"bitacora_materiales/internal/domain/entities"
	"bitacora_materiales/internal/domain/units"
	"bitacora_materiales/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxBatchLines bounds a cart save. DynamoDB transactions accept at most 100
// writes, and no field cart gets close to it.
const MaxBatchLines = 100

var (
	ErrMissingData        = errors.New("missing bitacora_id or codigo")
	ErrInvalidQuantity    = errors.New("cantidad must be greater than zero")
	ErrFractionalQuantity = errors.New("cantidad does not match the unit granularity")
	ErrCrewNotAssigned    = errors.New("brigada not assigned")
	ErrMaterialNotFound   = errors.New("material entry not found")
	ErrInvalidMaterialID  = errors.New("invalid material id")
	ErrEmptyBatch         = errors.New("empty material batch")
	ErrBatchTooLarge      = errors.New("material batch too large")
	ErrDuplicateBatchLine = errors.New("duplicate codigo in material batch")
)

// IMaterialUseCase covers the material lines of a bitácora.
//
// It maps to the field page actions:
//   - "Guardar" (single selection) => Save()
//   - "Guardar lote" (cart) => SaveBatch()
//   - list refresh => ListByBitacoraID()
//   - trash icon => Delete()

type IMaterialUseCase interface {
	Save(ctx context.Context, m entities.MaterialEntry) (entities.MaterialEntry, error)
	SaveBatch(ctx context.Context, batch entities.MaterialBatch) ([]entities.MaterialEntry, error)
	ListByBitacoraID(ctx context.Context, bitacoraID string) ([]entities.MaterialEntry, error)
	Delete(ctx context.Context, id string) error
}

type MaterialUseCase struct {
	repo         interfaces.IMaterialRepository
	bitacoraRepo interfaces.IBitacoraRepository
	now          func() time.Time
	log          *zap.Logger
}

var _ IMaterialUseCase = (*MaterialUseCase)(nil)

func NewMaterialUseCase(repo interfaces.IMaterialRepository, bitacoraRepo interfaces.IBitacoraRepository) *MaterialUseCase {
	return &MaterialUseCase{
		repo:         repo,
		bitacoraRepo: bitacoraRepo,
		now:          func() time.Time { return time.Now().UTC() },
		log:          zap.L().Named("material.usecase"),
	}
}

func (u *MaterialUseCase) Save(ctx context.Context, m entities.MaterialEntry) (entities.MaterialEntry, error) {
	m.BitacoraID = strings.TrimSpace(m.BitacoraID)
	m.Codigo = strings.TrimSpace(m.Codigo)
	u.log.Info("save start", zap.String("bitacora_id", m.BitacoraID), zap.String("codigo", m.Codigo), zap.String("cantidad", m.Cantidad.String()))

	if m.BitacoraID == "" || m.Codigo == "" {
		return entities.MaterialEntry{}, ErrMissingData
	}
	if !entities.IsCrewAssigned(m.Brigada) {
		return entities.MaterialEntry{}, ErrCrewNotAssigned
	}
	origen, err := normalizeOrigin(m.Origen)
	if err != nil {
		return entities.MaterialEntry{}, err
	}
	if err := validateQuantity(m); err != nil {
		u.log.Info("save rejected", zap.String("codigo", m.Codigo), zap.String("unidad", m.Unidad), zap.Error(err))
		return entities.MaterialEntry{}, err
	}
	if err := u.ensureBitacora(ctx, m.BitacoraID); err != nil {
		return entities.MaterialEntry{}, err
	}

	m.ID = uuid.NewString()
	m.Origen = origen
	m.Brigada = strings.TrimSpace(m.Brigada)
	m.CreatedAt = u.now()

	created, err := u.repo.Create(ctx, m)
	if err != nil {
		u.log.Error("save failed", zap.String("bitacora_id", m.BitacoraID), zap.String("codigo", m.Codigo), zap.Error(err))
		return entities.MaterialEntry{}, err
	}
	u.log.Info("save success", zap.String("bitacora_id", created.BitacoraID), zap.String("id", created.ID))
	return created, nil
}

func (u *MaterialUseCase) SaveBatch(ctx context.Context, batch entities.MaterialBatch) ([]entities.MaterialEntry, error) {
	bitacoraID := strings.TrimSpace(batch.BitacoraID)
	u.log.Info("save-batch start", zap.String("bitacora_id", bitacoraID), zap.Int("lines", len(batch.Lines)))

	if bitacoraID == "" {
		return nil, ErrMissingData
	}
	if len(batch.Lines) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(batch.Lines) > MaxBatchLines {
		return nil, ErrBatchTooLarge
	}
	if !entities.IsCrewAssigned(batch.Brigada) {
		return nil, ErrCrewNotAssigned
	}
	origen, err := normalizeOrigin(batch.Origen)
	if err != nil {
		return nil, err
	}

	now := u.now()
	seen := make(map[string]struct{}, len(batch.Lines))
	lines := make([]entities.MaterialEntry, 0, len(batch.Lines))
	for _, l := range batch.Lines {
		l.Codigo = strings.TrimSpace(l.Codigo)
		if l.Codigo == "" {
			return nil, ErrMissingData
		}
		if _, dup := seen[l.Codigo]; dup {
			return nil, ErrDuplicateBatchLine
		}
		seen[l.Codigo] = struct{}{}
		if err := validateQuantity(l); err != nil {
			u.log.Info("save-batch rejected", zap.String("codigo", l.Codigo), zap.String("unidad", l.Unidad), zap.Error(err))
			return nil, err
		}

		l.ID = uuid.NewString()
		l.BitacoraID = bitacoraID
		l.Origen = origen
		l.Brigada = strings.TrimSpace(batch.Brigada)
		l.CreatedAt = now
		lines = append(lines, l)
	}

	if err := u.ensureBitacora(ctx, bitacoraID); err != nil {
		return nil, err
	}

	created, err := u.repo.CreateBatch(ctx, lines)
	if err != nil {
		u.log.Error("save-batch failed", zap.String("bitacora_id", bitacoraID), zap.Error(err))
		return nil, err
	}
	u.log.Info("save-batch success", zap.String("bitacora_id", bitacoraID), zap.Int("lines", len(created)))
	return created, nil
}

func (u *MaterialUseCase) ListByBitacoraID(ctx context.Context, bitacoraID string) ([]entities.MaterialEntry, error) {
	bitacoraID = strings.TrimSpace(bitacoraID)
	if bitacoraID == "" {
		return nil, ErrInvalidBitacoraID
	}

	items, err := u.repo.ListByBitacoraID(ctx, bitacoraID)
	if err != nil {
		u.log.Error("list failed", zap.String("bitacora_id", bitacoraID), zap.Error(err))
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (u *MaterialUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidMaterialID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrMaterialNotFound
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		u.log.Error("delete failed", zap.String("id", id), zap.Error(err))
		return err
	}
	u.log.Info("delete success", zap.String("id", id), zap.String("bitacora_id", existing.BitacoraID))
	return nil
}

func (u *MaterialUseCase) ensureBitacora(ctx context.Context, id string) error {
	if u.bitacoraRepo == nil {
		return nil
	}
	b, err := u.bitacoraRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.ID == "" {
		return ErrBitacoraNotFound
	}
	return nil
}

func normalizeOrigin(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return entities.DefaultOrigin.Label(), nil
	}
	o, err := entities.ParseOrigin(raw)
	if err != nil {
		return "", err
	}
	return o.Label(), nil
}

func validateQuantity(m entities.MaterialEntry) error {
	if !m.Cantidad.IsPositive() {
		return ErrInvalidQuantity
	}
	if !units.Classify(m.Unidad).Accepts(m.Cantidad) {
		return ErrFractionalQuantity
	}
	return nil
}
