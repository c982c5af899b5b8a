package usecase

import (
	"context"
	"errors"
	"time"

	"cobranca_facil/internal/domain/entities"
	"cobranca_facil/internal/usecase/interfaces"
)

var (
	ErrInstallmentNotFound      = errors.New("installment not found")
	ErrInstallmentAlreadyExists = errors.New("installment already exists")
	ErrInvalidInstallmentNumber = errors.New("invalid installment number")
	ErrInvalidDueDate           = errors.New("invalid due date")
)

type IInstallmentUseCase interface {
	Create(ctx context.Context, agreementNumber string, number int, dueDate time.Time) (entities.Installment, error)
	GetByAgreementAndNumber(ctx context.Context, agreementNumber string, number int) (entities.Installment, error)
	ListByAgreement(ctx context.Context, agreementNumber string) ([]entities.Installment, error)
}

type InstallmentUseCase struct {
	repo       interfaces.IInstallmentRepository
	agreements interfaces.IAgreementRepository
}

var _ IInstallmentUseCase = (*InstallmentUseCase)(nil)

func NewInstallmentUseCase(repo interfaces.IInstallmentRepository, agreements interfaces.IAgreementRepository) *InstallmentUseCase {
	return &InstallmentUseCase{repo: repo, agreements: agreements}
}

func (u *InstallmentUseCase) Create(ctx context.Context, agreementNumber string, number int, dueDate time.Time) (entities.Installment, error) {
	agreementNumber = sanitizeDigits(agreementNumber)
	if agreementNumber == "" {
		return entities.Installment{}, ErrInvalidAgreementNumber
	}
	if number <= 0 {
		return entities.Installment{}, ErrInvalidInstallmentNumber
	}
	if dueDate.IsZero() {
		return entities.Installment{}, ErrInvalidDueDate
	}

	agreement, err := u.agreements.GetByNumber(ctx, agreementNumber)
	if err != nil {
		return entities.Installment{}, err
	}
	if agreement.Number == "" {
		return entities.Installment{}, ErrAgreementNotFound
	}

	if existing, err := u.repo.GetByAgreementAndNumber(ctx, agreementNumber, number); err != nil {
		return entities.Installment{}, err
	} else if existing.AgreementNumber != "" {
		return entities.Installment{}, ErrInstallmentAlreadyExists
	}

	now := time.Now().UTC()
	return u.repo.Create(ctx, entities.Installment{
		AgreementNumber: agreementNumber,
		Number:          number,
		DueDate:         dueDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
}

func (u *InstallmentUseCase) GetByAgreementAndNumber(ctx context.Context, agreementNumber string, number int) (entities.Installment, error) {
	agreementNumber = sanitizeDigits(agreementNumber)
	if agreementNumber == "" {
		return entities.Installment{}, ErrInvalidAgreementNumber
	}
	if number <= 0 {
		return entities.Installment{}, ErrInvalidInstallmentNumber
	}

	i, err := u.repo.GetByAgreementAndNumber(ctx, agreementNumber, number)
	if err != nil {
		return entities.Installment{}, err
	}
	if i.AgreementNumber == "" {
		return entities.Installment{}, ErrInstallmentNotFound
	}
	return i, nil
}

func (u *InstallmentUseCase) ListByAgreement(ctx context.Context, agreementNumber string) ([]entities.Installment, error) {
	agreementNumber = sanitizeDigits(agreementNumber)
	if agreementNumber == "" {
		return nil, ErrInvalidAgreementNumber
	}
	return u.repo.ListByAgreement(ctx, agreementNumber)
}
