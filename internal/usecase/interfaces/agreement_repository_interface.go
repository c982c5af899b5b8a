package interfaces

import (
	"context"

	"cobranca_facil/internal/domain/entities"
)

// IAgreementRepository abstracts DynamoDB persistence for Agreement.
type IAgreementRepository interface {
	Create(ctx context.Context, a entities.Agreement) (entities.Agreement, error)
	GetByNumber(ctx context.Context, number string) (entities.Agreement, error)
	ListByPayer(ctx context.Context, payerCPFCNPJ string) ([]entities.Agreement, error)
	UpdateStatus(ctx context.Context, number string, status entities.AgreementStatus) (entities.Agreement, error)
}
