package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"cobranca_facil/internal/domain/entities"
	"cobranca_facil/internal/usecase/interfaces"
)

var (
	ErrCreditorNotFound      = errors.New("creditor not found")
	ErrCreditorAlreadyExists = errors.New("creditor already exists")
	ErrInvalidCreditorName   = errors.New("invalid creditor name")
	ErrInvalidReissueMargin  = errors.New("invalid reissue margin")
)

// ICreditorUseCase exposes creditor CRUD operations. Deletion is logical:
// agreements keep referencing the creditor by name.
type ICreditorUseCase interface {
	Create(ctx context.Context, name string, reissueMargin int) (entities.Creditor, error)
	GetByName(ctx context.Context, name string) (entities.Creditor, error)
	List(ctx context.Context) ([]entities.Creditor, error)
	UpdateReissueMargin(ctx context.Context, name string, margin int) (entities.Creditor, error)
	Delete(ctx context.Context, name string) (entities.Creditor, error)
}

type CreditorUseCase struct {
	repo interfaces.ICreditorRepository
}

var _ ICreditorUseCase = (*CreditorUseCase)(nil)

func NewCreditorUseCase(repo interfaces.ICreditorRepository) *CreditorUseCase {
	return &CreditorUseCase{repo: repo}
}

func (u *CreditorUseCase) Create(ctx context.Context, name string, reissueMargin int) (entities.Creditor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Creditor{}, ErrInvalidCreditorName
	}
	if reissueMargin < 0 {
		return entities.Creditor{}, ErrInvalidReissueMargin
	}

	if existing, err := u.repo.GetByName(ctx, name); err != nil {
		return entities.Creditor{}, err
	} else if existing.Name != "" {
		return entities.Creditor{}, ErrCreditorAlreadyExists
	}

	now := time.Now().UTC()
	return u.repo.Create(ctx, entities.Creditor{
		Name:          name,
		ReissueMargin: reissueMargin,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
}

func (u *CreditorUseCase) GetByName(ctx context.Context, name string) (entities.Creditor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Creditor{}, ErrInvalidCreditorName
	}

	c, err := u.repo.GetByName(ctx, name)
	if err != nil {
		return entities.Creditor{}, err
	}
	if c.Name == "" {
		return entities.Creditor{}, ErrCreditorNotFound
	}
	return c, nil
}

func (u *CreditorUseCase) List(ctx context.Context) ([]entities.Creditor, error) {
	return u.repo.List(ctx)
}

func (u *CreditorUseCase) UpdateReissueMargin(ctx context.Context, name string, margin int) (entities.Creditor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Creditor{}, ErrInvalidCreditorName
	}
	if margin < 0 {
		return entities.Creditor{}, ErrInvalidReissueMargin
	}

	updated, err := u.repo.UpdateReissueMargin(ctx, name, margin)
	if err != nil {
		return entities.Creditor{}, err
	}
	if updated.Name == "" {
		return entities.Creditor{}, ErrCreditorNotFound
	}
	return updated, nil
}

func (u *CreditorUseCase) Delete(ctx context.Context, name string) (entities.Creditor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Creditor{}, ErrInvalidCreditorName
	}

	deleted, err := u.repo.SoftDelete(ctx, name)
	if err != nil {
		return entities.Creditor{}, err
	}
	if deleted.Name == "" {
		return entities.Creditor{}, ErrCreditorNotFound
	}
	return deleted, nil
}
