package repository

import (
	"context"
	"errors"
	"time"

	"cobranca_facil/internal/domain/entities"
	"cobranca_facil/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPayersTableName = "payers"

type payerItem struct {
	CPFCNPJ   string `dynamodbav:"cpf_cnpj"`
	Name      string `dynamodbav:"name"`
	Phone     string `dynamodbav:"phone"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// PayerDynamoRepository persists Payer entities in DynamoDB.
//
// Table requirements:
//   - PK: cpf_cnpj (string)
//
// The payer's CPF/CNPJ doubles as its User key, so reconciliation lookups cost
// a single consistent GetItem.
type PayerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPayerRepository = (*PayerDynamoRepository)(nil)

func NewPayerDynamoRepository(ddb *dynamodb.Client) *PayerDynamoRepository {
	return &PayerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYERS_TABLE", defaultPayersTableName),
	}
}

func (r *PayerDynamoRepository) Create(ctx context.Context, p entities.Payer) (entities.Payer, error) {
	av, err := attributevalue.MarshalMap(toPayerItem(p))
	if err != nil {
		return entities.Payer{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{
			"#pk": "cpf_cnpj",
		},
	})
	if err != nil {
		return entities.Payer{}, err
	}
	return p, nil
}

func (r *PayerDynamoRepository) GetByCPFCNPJ(ctx context.Context, cpfCNPJ string) (entities.Payer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"cpf_cnpj": &types.AttributeValueMemberS{Value: cpfCNPJ},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payer{}, nil
	}

	var it payerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payer{}, err
	}
	return fromPayerItem(it), nil
}

func (r *PayerDynamoRepository) List(ctx context.Context) ([]entities.Payer, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	var items []payerItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	payers := make([]entities.Payer, 0, len(items))
	for _, it := range items {
		payers = append(payers, fromPayerItem(it))
	}
	return payers, nil
}

func (r *PayerDynamoRepository) Update(ctx context.Context, cpfCNPJ, name, phone string) (entities.Payer, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"cpf_cnpj": &types.AttributeValueMemberS{Value: cpfCNPJ},
		},
		ConditionExpression: aws.String("attribute_exists(#pk)"),
		UpdateExpression:    aws.String("SET #name = :name, #phone = :phone, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":       &types.AttributeValueMemberS{Value: name},
			":phone":      &types.AttributeValueMemberS{Value: phone},
			":updated_at": &types.AttributeValueMemberS{Value: fmtTimestamp(time.Now())},
		},
		ExpressionAttributeNames: map[string]string{
			"#pk":         "cpf_cnpj",
			"#name":       "name",
			"#phone":      "phone",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Payer{}, nil
		}
		return entities.Payer{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Payer{}, nil
	}

	var it payerItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payer{}, err
	}
	return fromPayerItem(it), nil
}

func (r *PayerDynamoRepository) Delete(ctx context.Context, cpfCNPJ string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"cpf_cnpj": &types.AttributeValueMemberS{Value: cpfCNPJ},
		},
	})
	return err
}

func toPayerItem(p entities.Payer) payerItem {
	return payerItem{
		CPFCNPJ:   p.CPFCNPJ,
		Name:      p.Name,
		Phone:     p.Phone,
		CreatedAt: fmtTimestamp(p.CreatedAt),
		UpdatedAt: fmtTimestamp(p.UpdatedAt),
	}
}

func fromPayerItem(it payerItem) entities.Payer {
	return entities.Payer{
		CPFCNPJ:   it.CPFCNPJ,
		Name:      it.Name,
		Phone:     it.Phone,
		CreatedAt: parseTimestamp(it.CreatedAt),
		UpdatedAt: parseTimestamp(it.UpdatedAt),
	}
}
