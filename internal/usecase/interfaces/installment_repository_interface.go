package interfaces

import (
	"context"

	"cobranca_facil/internal/domain/entities"
)

// IInstallmentRepository abstracts DynamoDB persistence for Installment.
//
// The natural key is (agreement number, installment number), mapped to the
// table's partition/sort key pair.
type IInstallmentRepository interface {
	Create(ctx context.Context, i entities.Installment) (entities.Installment, error)
	GetByAgreementAndNumber(ctx context.Context, agreementNumber string, number int) (entities.Installment, error)
	ListByAgreement(ctx context.Context, agreementNumber string) ([]entities.Installment, error)
}
