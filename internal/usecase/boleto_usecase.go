package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cobranca_facil/internal/domain/entities"
	"cobranca_facil/internal/usecase/interfaces"
)

var (
	ErrBoletoNotFound      = errors.New("boleto not found")
	ErrBoletoAlreadyExists = errors.New("boleto already exists")
	ErrInvalidBoletoPDF    = errors.New("invalid boleto pdf")
)

// IBoletoUseCase exposes boleto operations. Creation persists the PDF bytes
// into media storage and records the document against its installment; a
// boleto exists at most once per installment.
type IBoletoUseCase interface {
	Create(ctx context.Context, agreementNumber string, installmentNumber int, pdf []byte) (entities.Boleto, error)
	GetByInstallment(ctx context.Context, agreementNumber string, installmentNumber int) (entities.Boleto, error)
	MarkPaid(ctx context.Context, agreementNumber string, installmentNumber int) (entities.Boleto, error)
}

type BoletoUseCase struct {
	repo         interfaces.IBoletoRepository
	installments interfaces.IInstallmentRepository
	storage      interfaces.IMediaStorage
}

var _ IBoletoUseCase = (*BoletoUseCase)(nil)

func NewBoletoUseCase(repo interfaces.IBoletoRepository, installments interfaces.IInstallmentRepository, storage interfaces.IMediaStorage) *BoletoUseCase {
	return &BoletoUseCase{repo: repo, installments: installments, storage: storage}
}

func (u *BoletoUseCase) Create(ctx context.Context, agreementNumber string, installmentNumber int, pdf []byte) (entities.Boleto, error) {
	agreementNumber = sanitizeDigits(agreementNumber)
	if agreementNumber == "" {
		return entities.Boleto{}, ErrInvalidAgreementNumber
	}
	if installmentNumber <= 0 {
		return entities.Boleto{}, ErrInvalidInstallmentNumber
	}
	if len(pdf) == 0 {
		return entities.Boleto{}, ErrInvalidBoletoPDF
	}

	installment, err := u.installments.GetByAgreementAndNumber(ctx, agreementNumber, installmentNumber)
	if err != nil {
		return entities.Boleto{}, err
	}
	if installment.AgreementNumber == "" {
		return entities.Boleto{}, ErrInstallmentNotFound
	}

	if existing, err := u.repo.GetByInstallment(ctx, agreementNumber, installmentNumber); err != nil {
		return entities.Boleto{}, err
	} else if existing.AgreementNumber != "" {
		return entities.Boleto{}, ErrBoletoAlreadyExists
	}

	name := fmt.Sprintf("%s PARC %d.pdf", agreementNumber, installmentNumber)
	path, err := u.storage.SaveBoletoPDF(ctx, name, pdf)
	if err != nil {
		return entities.Boleto{}, err
	}

	now := time.Now().UTC()
	return u.repo.Create(ctx, entities.Boleto{
		AgreementNumber:   agreementNumber,
		InstallmentNumber: installmentNumber,
		PDFPath:           path,
		Status:            entities.BoletoStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
}

func (u *BoletoUseCase) GetByInstallment(ctx context.Context, agreementNumber string, installmentNumber int) (entities.Boleto, error) {
	agreementNumber = sanitizeDigits(agreementNumber)
	if agreementNumber == "" {
		return entities.Boleto{}, ErrInvalidAgreementNumber
	}
	if installmentNumber <= 0 {
		return entities.Boleto{}, ErrInvalidInstallmentNumber
	}

	b, err := u.repo.GetByInstallment(ctx, agreementNumber, installmentNumber)
	if err != nil {
		return entities.Boleto{}, err
	}
	if b.AgreementNumber == "" {
		return entities.Boleto{}, ErrBoletoNotFound
	}
	return b, nil
}

func (u *BoletoUseCase) MarkPaid(ctx context.Context, agreementNumber string, installmentNumber int) (entities.Boleto, error) {
	agreementNumber = sanitizeDigits(agreementNumber)
	if agreementNumber == "" {
		return entities.Boleto{}, ErrInvalidAgreementNumber
	}
	if installmentNumber <= 0 {
		return entities.Boleto{}, ErrInvalidInstallmentNumber
	}

	updated, err := u.repo.UpdateStatus(ctx, agreementNumber, installmentNumber, entities.BoletoStatusPaid)
	if err != nil {
		return entities.Boleto{}, err
	}
	if updated.AgreementNumber == "" {
		return entities.Boleto{}, ErrBoletoNotFound
	}
	return updated, nil
}
