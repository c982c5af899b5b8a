package interfaces

import (
	"context"

	"cobranca_facil/internal/domain/entities"
)

// IPayerRepository abstracts DynamoDB persistence for Payer.
//
// The spreadsheet engine resolves payers by CPF/CNPJ during reconciliation and
// creates them on commit; the CRUD surface additionally lists, updates and
// deletes.
type IPayerRepository interface {
	Create(ctx context.Context, p entities.Payer) (entities.Payer, error)
	GetByCPFCNPJ(ctx context.Context, cpfCNPJ string) (entities.Payer, error)
	List(ctx context.Context) ([]entities.Payer, error)
	Update(ctx context.Context, cpfCNPJ, name, phone string) (entities.Payer, error)
	Delete(ctx context.Context, cpfCNPJ string) error
}
