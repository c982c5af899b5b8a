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

const defaultBoletosTableName = "boletos"

type boletoItem struct {
	AgreementNumber   string `dynamodbav:"agreement_number"`
	InstallmentNumber int    `dynamodbav:"installment_number"`
	PDFPath           string `dynamodbav:"pdf_path"`
	Status            string `dynamodbav:"status"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// BoletoDynamoRepository persists Boleto entities in DynamoDB.
//
// Table requirements:
//   - PK: agreement_number (string)
//   - SK: installment_number (number)
//
// The key mirrors the installment table: one boleto per installment.
type BoletoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBoletoRepository = (*BoletoDynamoRepository)(nil)

func NewBoletoDynamoRepository(ddb *dynamodb.Client) *BoletoDynamoRepository {
	return &BoletoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOLETOS_TABLE", defaultBoletosTableName),
	}
}

func (r *BoletoDynamoRepository) Create(ctx context.Context, b entities.Boleto) (entities.Boleto, error) {
	av, err := attributevalue.MarshalMap(boletoItem{
		AgreementNumber:   b.AgreementNumber,
		InstallmentNumber: b.InstallmentNumber,
		PDFPath:           b.PDFPath,
		Status:            string(b.Status),
		CreatedAt:         fmtTimestamp(b.CreatedAt),
		UpdatedAt:         fmtTimestamp(b.UpdatedAt),
	})
	if err != nil {
		return entities.Boleto{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#pk) AND attribute_not_exists(#sk)"),
		ExpressionAttributeNames: map[string]string{
			"#pk": "agreement_number",
			"#sk": "installment_number",
		},
	})
	if err != nil {
		return entities.Boleto{}, err
	}
	return b, nil
}

func (r *BoletoDynamoRepository) GetByInstallment(ctx context.Context, agreementNumber string, installmentNumber int) (entities.Boleto, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"agreement_number":   &types.AttributeValueMemberS{Value: agreementNumber},
			"installment_number": &types.AttributeValueMemberN{Value: intToString(installmentNumber)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Boleto{}, err
	}
	if len(out.Item) == 0 {
		return entities.Boleto{}, nil
	}

	var it boletoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Boleto{}, err
	}
	return fromBoletoItem(it), nil
}

func (r *BoletoDynamoRepository) UpdateStatus(ctx context.Context, agreementNumber string, installmentNumber int, status entities.BoletoStatus) (entities.Boleto, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"agreement_number":   &types.AttributeValueMemberS{Value: agreementNumber},
			"installment_number": &types.AttributeValueMemberN{Value: intToString(installmentNumber)},
		},
		ConditionExpression: aws.String("attribute_exists(#pk)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: fmtTimestamp(time.Now())},
		},
		ExpressionAttributeNames: map[string]string{
			"#pk":         "agreement_number",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Boleto{}, nil
		}
		return entities.Boleto{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Boleto{}, nil
	}

	var it boletoItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Boleto{}, err
	}
	return fromBoletoItem(it), nil
}

func fromBoletoItem(it boletoItem) entities.Boleto {
	return entities.Boleto{
		AgreementNumber:   it.AgreementNumber,
		InstallmentNumber: it.InstallmentNumber,
		PDFPath:           it.PDFPath,
		Status:            entities.BoletoStatus(it.Status),
		CreatedAt:         parseTimestamp(it.CreatedAt),
		UpdatedAt:         parseTimestamp(it.UpdatedAt),
	}
}
