package interfaces

import (
	"context"

	"cobranca_facil/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User.
//
// Not-found lookups return a zero-value entity and a nil error; callers test
// the natural key field.
type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByCPFCNPJ(ctx context.Context, cpfCNPJ string) (entities.User, error)
}
