// Package reconcile saves staged lines and keeps the persisted list in sync
// with the server.
package reconcile

import (
	"context"
	"strings"
	"sync"

	request "bitacora_materiales/internal/adapter/http/dto/request"
	response "bitacora_materiales/internal/adapter/http/dto/response"
	"bitacora_materiales/internal/client/apierr"
	"bitacora_materiales/internal/client/staging"
	"bitacora_materiales/internal/domain/entities"

	"go.uber.org/zap"
)

type API interface {
	SaveMaterial(ctx context.Context, req request.SaveMaterialRequest) (response.MaterialResponse, error)
	SaveBatch(ctx context.Context, req request.SaveBatchRequest) ([]response.MaterialResponse, error)
	ListMaterials(ctx context.Context, bitacoraID string) ([]response.MaterialResponse, error)
	DeleteMaterial(ctx context.Context, id string) error
}

// Confirmer asks the operator before a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

type ConfirmFunc func(ctx context.Context, prompt string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool { return f(ctx, prompt) }

// AlwaysConfirm is for callers that already asked, like the page's own modal.
var AlwaysConfirm Confirmer = ConfirmFunc(func(context.Context, string) bool { return true })

const DeletePrompt = "¿Eliminar este material?"

// ListView is the last server list. Loaded is false until the first refresh.
type ListView struct {
	Items  []response.MaterialResponse
	Loaded bool
	Err    error
}

func (v ListView) Empty() bool { return v.Loaded && v.Err == nil && len(v.Items) == 0 }

type Reconciler struct {
	api        API
	bitacoraID string
	origin     string
	confirm    Confirmer
	log        *zap.Logger

	mu   sync.Mutex
	busy bool
	list ListView
}

func New(api API, bitacoraID, origin string, confirm Confirmer) *Reconciler {
	if confirm == nil {
		confirm = AlwaysConfirm
	}
	if strings.TrimSpace(origin) == "" {
		origin = string(entities.DefaultOrigin)
	}
	return &Reconciler{
		api:        api,
		bitacoraID: bitacoraID,
		origin:     origin,
		confirm:    confirm,
		log:        zap.L().Named("reconcile.client"),
	}
}

func (r *Reconciler) BitacoraID() string { return r.bitacoraID }

// SaveSelection sends the single selected line.
func (r *Reconciler) SaveSelection(ctx context.Context, sel staging.Staged, crew string) error {
	lines, err := r.precheck(sel, crew)
	if err != nil {
		return err
	}
	if !r.acquire() {
		return apierr.ErrBusy
	}
	defer r.release()

	l := lines[0]
	_, err = r.api.SaveMaterial(ctx, request.SaveMaterialRequest{
		BitacoraID:    r.bitacoraID,
		Origen:        r.origin,
		Brigada:       strings.TrimSpace(crew),
		Codigo:        l.Codigo,
		Descripcion:   l.Descripcion,
		Unidad:        l.Unidad,
		Cantidad:      l.Cantidad,
		CostoUnitario: l.CostoUnitario,
	})
	if err != nil {
		r.log.Warn("save failed", zap.String("bitacora_id", r.bitacoraID), zap.String("codigo", l.Codigo), zap.Error(err))
		return err
	}
	r.log.Info("save success", zap.String("bitacora_id", r.bitacoraID), zap.String("codigo", l.Codigo))
	sel.ClearSent(lines)
	r.refresh(ctx)
	return nil
}

// SaveCart sends every cart line in one request.
func (r *Reconciler) SaveCart(ctx context.Context, cart staging.Staged, crew string) error {
	lines, err := r.precheck(cart, crew)
	if err != nil {
		return err
	}
	if !r.acquire() {
		return apierr.ErrBusy
	}
	defer r.release()

	materiales := make([]request.BatchLineRequest, 0, len(lines))
	for _, l := range lines {
		materiales = append(materiales, request.BatchLineRequest{
			Codigo:        l.Codigo,
			Descripcion:   l.Descripcion,
			Unidad:        l.Unidad,
			Cantidad:      l.Cantidad,
			CostoUnitario: l.CostoUnitario,
			Subtotal:      l.Subtotal(),
		})
	}
	if _, err := r.api.SaveBatch(ctx, request.SaveBatchRequest{
		BitacoraID: r.bitacoraID,
		Origen:     r.origin,
		Brigada:    strings.TrimSpace(crew),
		Materiales: materiales,
	}); err != nil {
		r.log.Warn("save-batch failed", zap.String("bitacora_id", r.bitacoraID), zap.Int("lines", len(lines)), zap.Error(err))
		return err
	}
	r.log.Info("save-batch success", zap.String("bitacora_id", r.bitacoraID), zap.Int("lines", len(lines)))
	cart.ClearSent(lines)
	r.refresh(ctx)
	return nil
}

// Remove deletes a persisted entry after confirmation. A decline returns
// false with no error.
func (r *Reconciler) Remove(ctx context.Context, id string) (bool, error) {
	if !r.confirm.Confirm(ctx, DeletePrompt) {
		return false, nil
	}
	if !r.acquire() {
		return false, apierr.ErrBusy
	}
	defer r.release()

	if err := r.api.DeleteMaterial(ctx, id); err != nil {
		r.log.Warn("delete failed", zap.String("id", id), zap.Error(err))
		return false, err
	}
	r.log.Info("delete success", zap.String("id", id))
	r.refresh(ctx)
	return true, nil
}

// Refresh replaces the list with the server's.
func (r *Reconciler) Refresh(ctx context.Context) (ListView, error) {
	v := r.refresh(ctx)
	return v, v.Err
}

func (r *Reconciler) List() ListView {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list
}

func (r *Reconciler) Busy() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.busy
}

func (r *Reconciler) refresh(ctx context.Context) ListView {
	items, err := r.api.ListMaterials(ctx, r.bitacoraID)

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.log.Warn("list failed", zap.String("bitacora_id", r.bitacoraID), zap.Error(err))
		r.list.Err = err
		return r.list
	}
	if items == nil {
		items = []response.MaterialResponse{}
	}
	r.list = ListView{Items: items, Loaded: true}
	return r.list
}

func (r *Reconciler) precheck(s staging.Staged, crew string) ([]staging.StagedLine, error) {
	if !entities.IsCrewAssigned(crew) {
		return nil, apierr.ErrCrewRequired
	}
	lines := s.Lines()
	if len(lines) == 0 {
		return nil, apierr.ErrNothingStaged
	}
	return lines, nil
}

func (r *Reconciler) acquire() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.busy {
		return false
	}
	r.busy = true
	return true
}

func (r *Reconciler) release() {
	r.mu.Lock()
	r.busy = false
	r.mu.Unlock()
}
