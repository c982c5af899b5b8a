package interfaces

import (
	"context"

	"cobranca_facil/internal/domain/entities"
)

// IBoletoRepository abstracts DynamoDB persistence for Boleto.
type IBoletoRepository interface {
	Create(ctx context.Context, b entities.Boleto) (entities.Boleto, error)
	GetByInstallment(ctx context.Context, agreementNumber string, installmentNumber int) (entities.Boleto, error)
	UpdateStatus(ctx context.Context, agreementNumber string, installmentNumber int, status entities.BoletoStatus) (entities.Boleto, error)
}
