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
	ErrPayerNotFound      = errors.New("payer not found")
	ErrPayerAlreadyExists = errors.New("payer already exists")
	ErrInvalidCPFCNPJ     = errors.New("invalid cpf_cnpj")
	ErrInvalidPayerName   = errors.New("invalid payer name")
)

// IPayerUseCase exposes payer CRUD operations. Creating a payer also creates
// its login user: payers and users are one-to-one by CPF/CNPJ.
type IPayerUseCase interface {
	Create(ctx context.Context, cpfCNPJ, name, phone string) (entities.Payer, error)
	GetByCPFCNPJ(ctx context.Context, cpfCNPJ string) (entities.Payer, error)
	List(ctx context.Context) ([]entities.Payer, error)
	Update(ctx context.Context, cpfCNPJ, name, phone string) (entities.Payer, error)
	Delete(ctx context.Context, cpfCNPJ string) error
}

type PayerUseCase struct {
	repo  interfaces.IPayerRepository
	users interfaces.IUserRepository
}

var _ IPayerUseCase = (*PayerUseCase)(nil)

func NewPayerUseCase(repo interfaces.IPayerRepository, users interfaces.IUserRepository) *PayerUseCase {
	return &PayerUseCase{repo: repo, users: users}
}

func (u *PayerUseCase) Create(ctx context.Context, cpfCNPJ, name, phone string) (entities.Payer, error) {
	cpfCNPJ = sanitizeDigits(cpfCNPJ)
	if cpfCNPJ == "" {
		return entities.Payer{}, ErrInvalidCPFCNPJ
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Payer{}, ErrInvalidPayerName
	}

	if existing, err := u.repo.GetByCPFCNPJ(ctx, cpfCNPJ); err != nil {
		return entities.Payer{}, err
	} else if existing.CPFCNPJ != "" {
		return entities.Payer{}, ErrPayerAlreadyExists
	}

	now := time.Now().UTC()
	user, err := u.users.GetByCPFCNPJ(ctx, cpfCNPJ)
	if err != nil {
		return entities.Payer{}, err
	}
	if user.CPFCNPJ == "" {
		if _, err := u.users.Create(ctx, entities.User{
			CPFCNPJ:   cpfCNPJ,
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		}); err != nil {
			return entities.Payer{}, err
		}
	}

	return u.repo.Create(ctx, entities.Payer{
		CPFCNPJ:   cpfCNPJ,
		Name:      name,
		Phone:     sanitizeDigits(phone),
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (u *PayerUseCase) GetByCPFCNPJ(ctx context.Context, cpfCNPJ string) (entities.Payer, error) {
	cpfCNPJ = sanitizeDigits(cpfCNPJ)
	if cpfCNPJ == "" {
		return entities.Payer{}, ErrInvalidCPFCNPJ
	}

	p, err := u.repo.GetByCPFCNPJ(ctx, cpfCNPJ)
	if err != nil {
		return entities.Payer{}, err
	}
	if p.CPFCNPJ == "" {
		return entities.Payer{}, ErrPayerNotFound
	}
	return p, nil
}

func (u *PayerUseCase) List(ctx context.Context) ([]entities.Payer, error) {
	return u.repo.List(ctx)
}

func (u *PayerUseCase) Update(ctx context.Context, cpfCNPJ, name, phone string) (entities.Payer, error) {
	cpfCNPJ = sanitizeDigits(cpfCNPJ)
	if cpfCNPJ == "" {
		return entities.Payer{}, ErrInvalidCPFCNPJ
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Payer{}, ErrInvalidPayerName
	}

	updated, err := u.repo.Update(ctx, cpfCNPJ, name, sanitizeDigits(phone))
	if err != nil {
		return entities.Payer{}, err
	}
	if updated.CPFCNPJ == "" {
		return entities.Payer{}, ErrPayerNotFound
	}
	return updated, nil
}

func (u *PayerUseCase) Delete(ctx context.Context, cpfCNPJ string) error {
	cpfCNPJ = sanitizeDigits(cpfCNPJ)
	if cpfCNPJ == "" {
		return ErrInvalidCPFCNPJ
	}

	if _, err := u.GetByCPFCNPJ(ctx, cpfCNPJ); err != nil {
		return err
	}
	return u.repo.Delete(ctx, cpfCNPJ)
}
