package usecase

import (
	"context"
	"errors"
	"time"

	"cobranca_facil/internal/domain/entities"
	"cobranca_facil/internal/usecase/interfaces"
)

var (
	ErrAgreementNotFound      = errors.New("agreement not found")
	ErrAgreementAlreadyExists = errors.New("agreement already exists")
	ErrInvalidAgreementNumber = errors.New("invalid agreement number")
)

// IAgreementUseCase exposes agreement CRUD operations. Creation enforces that
// the referenced payer and creditor already exist; the spreadsheet engine
// guarantees the same via its commit walk order.
type IAgreementUseCase interface {
	Create(ctx context.Context, number, payerCPFCNPJ, creditorName string) (entities.Agreement, error)
	GetByNumber(ctx context.Context, number string) (entities.Agreement, error)
	ListByPayer(ctx context.Context, payerCPFCNPJ string) ([]entities.Agreement, error)
	Close(ctx context.Context, number string) (entities.Agreement, error)
}

type AgreementUseCase struct {
	repo      interfaces.IAgreementRepository
	payers    interfaces.IPayerRepository
	creditors interfaces.ICreditorRepository
}

var _ IAgreementUseCase = (*AgreementUseCase)(nil)

func NewAgreementUseCase(repo interfaces.IAgreementRepository, payers interfaces.IPayerRepository, creditors interfaces.ICreditorRepository) *AgreementUseCase {
	return &AgreementUseCase{repo: repo, payers: payers, creditors: creditors}
}

func (u *AgreementUseCase) Create(ctx context.Context, number, payerCPFCNPJ, creditorName string) (entities.Agreement, error) {
	number = sanitizeDigits(number)
	if number == "" {
		return entities.Agreement{}, ErrInvalidAgreementNumber
	}
	payerCPFCNPJ = sanitizeDigits(payerCPFCNPJ)

	if existing, err := u.repo.GetByNumber(ctx, number); err != nil {
		return entities.Agreement{}, err
	} else if existing.Number != "" {
		return entities.Agreement{}, ErrAgreementAlreadyExists
	}

	payer, err := u.payers.GetByCPFCNPJ(ctx, payerCPFCNPJ)
	if err != nil {
		return entities.Agreement{}, err
	}
	if payer.CPFCNPJ == "" {
		return entities.Agreement{}, ErrPayerNotFound
	}

	creditor, err := u.creditors.GetByName(ctx, creditorName)
	if err != nil {
		return entities.Agreement{}, err
	}
	if creditor.Name == "" {
		return entities.Agreement{}, ErrCreditorNotFound
	}

	now := time.Now().UTC()
	return u.repo.Create(ctx, entities.Agreement{
		Number:       number,
		PayerCPFCNPJ: payer.CPFCNPJ,
		CreditorName: creditor.Name,
		Status:       entities.AgreementStatusOpen,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func (u *AgreementUseCase) GetByNumber(ctx context.Context, number string) (entities.Agreement, error) {
	number = sanitizeDigits(number)
	if number == "" {
		return entities.Agreement{}, ErrInvalidAgreementNumber
	}

	a, err := u.repo.GetByNumber(ctx, number)
	if err != nil {
		return entities.Agreement{}, err
	}
	if a.Number == "" {
		return entities.Agreement{}, ErrAgreementNotFound
	}
	return a, nil
}

func (u *AgreementUseCase) ListByPayer(ctx context.Context, payerCPFCNPJ string) ([]entities.Agreement, error) {
	payerCPFCNPJ = sanitizeDigits(payerCPFCNPJ)
	if payerCPFCNPJ == "" {
		return nil, ErrInvalidCPFCNPJ
	}
	return u.repo.ListByPayer(ctx, payerCPFCNPJ)
}

func (u *AgreementUseCase) Close(ctx context.Context, number string) (entities.Agreement, error) {
	number = sanitizeDigits(number)
	if number == "" {
		return entities.Agreement{}, ErrInvalidAgreementNumber
	}

	updated, err := u.repo.UpdateStatus(ctx, number, entities.AgreementStatusClosed)
	if err != nil {
		return entities.Agreement{}, err
	}
	if updated.Number == "" {
		return entities.Agreement{}, ErrAgreementNotFound
	}
	return updated, nil
}
