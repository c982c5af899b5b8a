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

const defaultAgreementsTableName = "agreements"

type agreementItem struct {
	Number       string `dynamodbav:"number"`
	PayerCPFCNPJ string `dynamodbav:"payer_cpf_cnpj"`
	CreditorName string `dynamodbav:"creditor_name"`
	Status       string `dynamodbav:"status"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// AgreementDynamoRepository persists Agreement entities in DynamoDB.
//
// Table requirements:
//   - PK: number (string)
//   - GSI (payer_cpf_cnpj-index): payer_cpf_cnpj
//
// The agreement number is the external contract number, unique across all
// payers, so reconciliation resolves it with one GetItem.
type AgreementDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAgreementRepository = (*AgreementDynamoRepository)(nil)

func NewAgreementDynamoRepository(ddb *dynamodb.Client) *AgreementDynamoRepository {
	return &AgreementDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AGREEMENTS_TABLE", defaultAgreementsTableName),
	}
}

func (r *AgreementDynamoRepository) Create(ctx context.Context, a entities.Agreement) (entities.Agreement, error) {
	av, err := attributevalue.MarshalMap(toAgreementItem(a))
	if err != nil {
		return entities.Agreement{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{
			"#pk": "number",
		},
	})
	if err != nil {
		return entities.Agreement{}, err
	}
	return a, nil
}

func (r *AgreementDynamoRepository) GetByNumber(ctx context.Context, number string) (entities.Agreement, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"number": &types.AttributeValueMemberS{Value: number},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Agreement{}, err
	}
	if len(out.Item) == 0 {
		return entities.Agreement{}, nil
	}

	var it agreementItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Agreement{}, err
	}
	return fromAgreementItem(it), nil
}

func (r *AgreementDynamoRepository) ListByPayer(ctx context.Context, payerCPFCNPJ string) ([]entities.Agreement, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("payer_cpf_cnpj-index"),
		KeyConditionExpression: aws.String("#payer = :payer"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":payer": &types.AttributeValueMemberS{Value: payerCPFCNPJ},
		},
		ExpressionAttributeNames: map[string]string{
			"#payer": "payer_cpf_cnpj",
		},
	})
	if err != nil {
		return nil, err
	}

	var items []agreementItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	agreements := make([]entities.Agreement, 0, len(items))
	for _, it := range items {
		agreements = append(agreements, fromAgreementItem(it))
	}
	return agreements, nil
}

func (r *AgreementDynamoRepository) UpdateStatus(ctx context.Context, number string, status entities.AgreementStatus) (entities.Agreement, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"number": &types.AttributeValueMemberS{Value: number},
		},
		ConditionExpression: aws.String("attribute_exists(#pk)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: fmtTimestamp(time.Now())},
		},
		ExpressionAttributeNames: map[string]string{
			"#pk":         "number",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Agreement{}, nil
		}
		return entities.Agreement{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Agreement{}, nil
	}

	var it agreementItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Agreement{}, err
	}
	return fromAgreementItem(it), nil
}

func toAgreementItem(a entities.Agreement) agreementItem {
	return agreementItem{
		Number:       a.Number,
		PayerCPFCNPJ: a.PayerCPFCNPJ,
		CreditorName: a.CreditorName,
		Status:       string(a.Status),
		CreatedAt:    fmtTimestamp(a.CreatedAt),
		UpdatedAt:    fmtTimestamp(a.UpdatedAt),
	}
}

func fromAgreementItem(it agreementItem) entities.Agreement {
	return entities.Agreement{
		Number:       it.Number,
		PayerCPFCNPJ: it.PayerCPFCNPJ,
		CreditorName: it.CreditorName,
		Status:       entities.AgreementStatus(it.Status),
		CreatedAt:    parseTimestamp(it.CreatedAt),
		UpdatedAt:    parseTimestamp(it.UpdatedAt),
	}
}
