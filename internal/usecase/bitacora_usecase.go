package usecase

import (
	"context"
	"errors"
	"strings"

	"bitacora_materiales/internal/domain/entities"
	"bitacora_materiales/internal/usecase/interfaces"
)

var (
	ErrBitacoraNotFound  = errors.New("bitacora not found")
	ErrInvalidBitacoraID = errors.New("invalid bitacora_id")
)

type IBitacoraUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Bitacora, error)
}

type BitacoraUseCase struct {
	repo interfaces.IBitacoraRepository
}

var _ IBitacoraUseCase = (*BitacoraUseCase)(nil)

func NewBitacoraUseCase(repo interfaces.IBitacoraRepository) *BitacoraUseCase {
	return &BitacoraUseCase{repo: repo}
}

func (u *BitacoraUseCase) GetByID(ctx context.Context, id string) (entities.Bitacora, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Bitacora{}, ErrInvalidBitacoraID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Bitacora{}, err
	}
	if b.ID == "" {
		return entities.Bitacora{}, ErrBitacoraNotFound
	}
	return b, nil
}
