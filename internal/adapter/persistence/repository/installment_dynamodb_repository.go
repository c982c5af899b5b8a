package repository

import (
	"context"

	"cobranca_facil/internal/domain/entities"
	"cobranca_facil/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInstallmentsTableName = "installments"

type installmentItem struct {
	AgreementNumber string `dynamodbav:"agreement_number"`
	Number          int    `dynamodbav:"number"`
	DueDate         string `dynamodbav:"due_date"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// InstallmentDynamoRepository persists Installment entities in DynamoDB.
//
// Table requirements:
//   - PK: agreement_number (string)
//   - SK: number (number)
//
// The composite key is the installment's natural identity, so the
// reconciliation lookup by (agreement, ordinal) is a single GetItem and
// listing an agreement's installments is a Query on the partition.
type InstallmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInstallmentRepository = (*InstallmentDynamoRepository)(nil)

func NewInstallmentDynamoRepository(ddb *dynamodb.Client) *InstallmentDynamoRepository {
	return &InstallmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INSTALLMENTS_TABLE", defaultInstallmentsTableName),
	}
}

func (r *InstallmentDynamoRepository) Create(ctx context.Context, i entities.Installment) (entities.Installment, error) {
	av, err := attributevalue.MarshalMap(installmentItem{
		AgreementNumber: i.AgreementNumber,
		Number:          i.Number,
		DueDate:         fmtDate(i.DueDate),
		CreatedAt:       fmtTimestamp(i.CreatedAt),
		UpdatedAt:       fmtTimestamp(i.UpdatedAt),
	})
	if err != nil {
		return entities.Installment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#pk) AND attribute_not_exists(#sk)"),
		ExpressionAttributeNames: map[string]string{
			"#pk": "agreement_number",
			"#sk": "number",
		},
	})
	if err != nil {
		return entities.Installment{}, err
	}
	return i, nil
}

func (r *InstallmentDynamoRepository) GetByAgreementAndNumber(ctx context.Context, agreementNumber string, number int) (entities.Installment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"agreement_number": &types.AttributeValueMemberS{Value: agreementNumber},
			"number":           &types.AttributeValueMemberN{Value: intToString(number)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Installment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Installment{}, nil
	}

	var it installmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Installment{}, err
	}
	return fromInstallmentItem(it), nil
}

func (r *InstallmentDynamoRepository) ListByAgreement(ctx context.Context, agreementNumber string) ([]entities.Installment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#pk = :agreement"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":agreement": &types.AttributeValueMemberS{Value: agreementNumber},
		},
		ExpressionAttributeNames: map[string]string{
			"#pk": "agreement_number",
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	var items []installmentItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	installments := make([]entities.Installment, 0, len(items))
	for _, it := range items {
		installments = append(installments, fromInstallmentItem(it))
	}
	return installments, nil
}

func fromInstallmentItem(it installmentItem) entities.Installment {
	return entities.Installment{
		AgreementNumber: it.AgreementNumber,
		Number:          it.Number,
		DueDate:         parseDate(it.DueDate),
		CreatedAt:       parseTimestamp(it.CreatedAt),
		UpdatedAt:       parseTimestamp(it.UpdatedAt),
	}
}
