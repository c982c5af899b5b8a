package interfaces

import (
	"context"

	"cobranca_facil/internal/domain/entities"
)

// ICreditorRepository abstracts DynamoDB persistence for Creditor.
//
// Creditors are soft-deleted: Delete flips the deleted flag and lookups keep
// resolving the record, so agreements referencing the name stay consistent.
type ICreditorRepository interface {
	Create(ctx context.Context, c entities.Creditor) (entities.Creditor, error)
	GetByName(ctx context.Context, name string) (entities.Creditor, error)
	List(ctx context.Context) ([]entities.Creditor, error)
	UpdateReissueMargin(ctx context.Context, name string, margin int) (entities.Creditor, error)
	SoftDelete(ctx context.Context, name string) (entities.Creditor, error)
}
