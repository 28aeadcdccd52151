package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"bitacora_materiales/internal/domain/entities"
	"bitacora_materiales/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	MinSearchTermLength = 3
	MaxSearchResults    = 20
)

// ICatalogUseCase exposes the material lookup used by the field pages.
type ICatalogUseCase interface {
	Search(ctx context.Context, origin string, term string) ([]entities.CatalogItem, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
	log  *zap.Logger
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, log: zap.L().Named("catalog.usecase")}
}

// Search returns an empty result, not an error, for short terms.
func (u *CatalogUseCase) Search(ctx context.Context, origin string, term string) ([]entities.CatalogItem, error) {
	o, err := entities.ParseOrigin(origin)
	if err != nil {
		u.log.Info("search rejected", zap.String("origen", origin))
		return nil, err
	}

	term = strings.TrimSpace(term)
	if utf8.RuneCountInString(term) < MinSearchTermLength {
		return []entities.CatalogItem{}, nil
	}

	items, err := u.repo.Search(ctx, o, term, MaxSearchResults)
	if err != nil {
		u.log.Error("search failed", zap.String("origen", string(o)), zap.String("q", term), zap.Error(err))
		return nil, err
	}
	if len(items) > MaxSearchResults {
		items = items[:MaxSearchResults]
	}
	u.log.Debug("search done", zap.String("origen", string(o)), zap.String("q", term), zap.Int("items", len(items)))
	return items, nil
}
